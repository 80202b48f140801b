package federation

import (
	"context"
	"net/http"
	"strconv"

	"golang.org/x/oauth2/endpoints"
)

const defaultGitHubUserURL = "https://api.github.com/user"

type gitHubUser struct {
	ID        int64  `json:"id"`
	Login     string `json:"login"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	AvatarURL string `json:"avatar_url"`
}

type gitHubEmail struct {
	Email    string `json:"email"`
	Primary  bool   `json:"primary"`
	Verified bool   `json:"verified"`
}

// NewGitHub returns a GitHub provider. The user's primary address comes
// from the /emails endpoint next to the user URL, since the public profile
// may hide it.
func NewGitHub(cfg Config) Provider {
	return newProvider(cfg, endpoints.GitHub, defaultGitHubUserURL,
		[]string{"read:user", "user:email"}, fetchGitHubUser)
}

func fetchGitHubUser(ctx context.Context, client *http.Client, url string) (*Profile, error) {
	var user gitHubUser
	if err := getJSON(ctx, client, url, &user); err != nil {
		return nil, err
	}
	if user.ID == 0 {
		return &Profile{}, nil
	}

	name := user.Name
	if name == "" {
		name = user.Login
	}
	profile := &Profile{
		Subject:    strconv.FormatInt(user.ID, 10),
		Email:      user.Email,
		Name:       name,
		PictureURL: user.AvatarURL,
	}

	var emails []gitHubEmail
	if err := getJSON(ctx, client, url+"/emails", &emails); err != nil {
		return nil, err
	}
	for _, e := range emails {
		if e.Primary {
			profile.Email = e.Email
			profile.EmailVerified = e.Verified
			break
		}
	}
	return profile, nil
}
