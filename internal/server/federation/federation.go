// Package federation exchanges OAuth 2.0 authorization codes from Google
// and GitHub for the external profile of the user who gave consent.
package federation

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/dmitrijs2005/esgportal/internal/identity"
	"github.com/dmitrijs2005/esgportal/internal/server/config"
	"golang.org/x/oauth2"
)

// ErrExchange is returned when the provider rejects the authorization code.
var ErrExchange = errors.New("authorization code exchange failed")

// Profile is what a provider tells us about the user.
type Profile struct {
	Subject       string
	Email         string
	EmailVerified bool
	Name          string
	PictureURL    string
}

// Provider is one configured OAuth provider.
type Provider interface {
	AuthCodeURL(state string) string
	Exchange(ctx context.Context, code string) (*Profile, error)
}

// Config configures one provider. The URL fields override the provider
// defaults and exist for tests.
type Config struct {
	ClientID     string
	ClientSecret string
	RedirectURL  string

	AuthURL     string
	TokenURL    string
	UserInfoURL string
}

type userInfoFunc func(ctx context.Context, client *http.Client, url string) (*Profile, error)

type oauthProvider struct {
	conf        *oauth2.Config
	userInfoURL string
	userInfo    userInfoFunc
}

func newProvider(cfg Config, endpoint oauth2.Endpoint, userInfoURL string, scopes []string, fn userInfoFunc) *oauthProvider {
	if cfg.AuthURL != "" {
		endpoint.AuthURL = cfg.AuthURL
	}
	if cfg.TokenURL != "" {
		endpoint.TokenURL = cfg.TokenURL
	}
	if cfg.UserInfoURL != "" {
		userInfoURL = cfg.UserInfoURL
	}
	return &oauthProvider{
		conf: &oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			RedirectURL:  cfg.RedirectURL,
			Scopes:       scopes,
			Endpoint:     endpoint,
		},
		userInfoURL: userInfoURL,
		userInfo:    fn,
	}
}

func (p *oauthProvider) AuthCodeURL(state string) string {
	return p.conf.AuthCodeURL(state, oauth2.AccessTypeOnline)
}

func (p *oauthProvider) Exchange(ctx context.Context, code string) (*Profile, error) {
	tok, err := p.conf.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrExchange, err)
	}

	profile, err := p.userInfo(ctx, p.conf.Client(ctx, tok), p.userInfoURL)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch user info: %w", err)
	}
	if profile.Subject == "" {
		return nil, fmt.Errorf("empty subject in user info response")
	}
	return profile, nil
}

// getJSON fetches url with client and decodes the body into dst.
func getJSON(ctx context.Context, client *http.Client, url string, dst any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%s returned status %d: %s", url, resp.StatusCode, string(body))
	}
	return json.Unmarshal(body, dst)
}

// Registry maps provider tags to configured providers.
type Registry map[identity.ProviderTag]Provider

// Get returns the provider for tag.
func (r Registry) Get(tag identity.ProviderTag) (Provider, bool) {
	p, ok := r[tag]
	return p, ok
}

// NewRegistry builds a registry from the server config. Providers without
// a client id are left out.
func NewRegistry(cfg *config.Config) Registry {
	r := Registry{}
	if cfg.GoogleClientID != "" {
		r[identity.ProviderGoogle] = NewGoogle(Config{
			ClientID:     cfg.GoogleClientID,
			ClientSecret: cfg.GoogleClientSecret,
			RedirectURL:  cfg.OAuthRedirectURL,
		})
	}
	if cfg.GitHubClientID != "" {
		r[identity.ProviderGitHub] = NewGitHub(Config{
			ClientID:     cfg.GitHubClientID,
			ClientSecret: cfg.GitHubClientSecret,
			RedirectURL:  cfg.OAuthRedirectURL,
		})
	}
	return r
}
