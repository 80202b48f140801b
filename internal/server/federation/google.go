package federation

import (
	"context"
	"net/http"

	"golang.org/x/oauth2/endpoints"
)

const defaultGoogleUserInfoURL = "https://openidconnect.googleapis.com/v1/userinfo"

type googleUserInfo struct {
	Sub           string `json:"sub"`
	Email         string `json:"email"`
	EmailVerified bool   `json:"email_verified"`
	Name          string `json:"name"`
	Picture       string `json:"picture"`
}

// NewGoogle returns a Google OpenID Connect provider.
func NewGoogle(cfg Config) Provider {
	return newProvider(cfg, endpoints.Google, defaultGoogleUserInfoURL,
		[]string{"openid", "email", "profile"}, fetchGoogleUserInfo)
}

func fetchGoogleUserInfo(ctx context.Context, client *http.Client, url string) (*Profile, error) {
	var info googleUserInfo
	if err := getJSON(ctx, client, url, &info); err != nil {
		return nil, err
	}
	return &Profile{
		Subject:       info.Sub,
		Email:         info.Email,
		EmailVerified: info.EmailVerified,
		Name:          info.Name,
		PictureURL:    info.Picture,
	}, nil
}
