package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/esgportal/internal/flagx"
	"github.com/dmitrijs2005/esgportal/internal/timex"
)

// JsonConfig defines a configuration structure tailored for JSON unmarshalling.
// It uses timex.Duration for interval fields, which allows parsing both
// string values such as "1s" and integer nanoseconds.
type JsonConfig struct {
	EndpointAddrGRPC             string         `json:"endpoint_addr_grpc"`
	MetricsAddr                  string         `json:"metrics_addr"`
	DatabaseDSN                  string         `json:"database_dsn"`
	SecretKey                    string         `json:"secret_key"`
	AccessTokenValidityDuration  timex.Duration `json:"access_token_validity_duration"`
	RefreshTokenValidityDuration timex.Duration `json:"refresh_token_validity_duration"`
	RecentLoginWindow            timex.Duration `json:"recent_login_window"`
	ActionCodeValidityDuration   timex.Duration `json:"action_code_validity_duration"`
	SignInRatePerMinute          int            `json:"sign_in_rate_per_minute"`
	SignInBurst                  int            `json:"sign_in_burst"`
	OAuthRedirectURL             string         `json:"oauth_redirect_url"`
	GoogleClientID               string         `json:"google_client_id"`
	GoogleClientSecret           string         `json:"google_client_secret"`
	GitHubClientID               string         `json:"github_client_id"`
	GitHubClientSecret           string         `json:"github_client_secret"`
	S3RootUser                   string         `json:"s3_root_user"`
	S3RootPassword               string         `json:"s3_root_password"`
	S3Bucket                     string         `json:"s3_bucket"`
	S3Region                     string         `json:"s3_region"`
	S3BaseEndpoint               string         `json:"s3_base_endpoint"`
	S3PublicBaseURL              string         `json:"s3_public_base_url"`
	LogLevel                     string         `json:"log_level"`
}

// parseJson overlays config with values loaded from the file named by -c or
// -config. Fields missing from the file keep their current value. If the
// file cannot be read or contains invalid JSON, the function panics.
func parseJson(config *Config) {
	jsonConfigFile := flagx.ConfigFileFlag(os.Args[1:])
	if jsonConfigFile == "" {
		return
	}

	c := &JsonConfig{}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(file, c); err != nil {
		panic(err)
	}

	setString(&config.EndpointAddrGRPC, c.EndpointAddrGRPC)
	setString(&config.MetricsAddr, c.MetricsAddr)
	setString(&config.DatabaseDSN, c.DatabaseDSN)
	setString(&config.SecretKey, c.SecretKey)
	if c.AccessTokenValidityDuration.Duration != 0 {
		config.AccessTokenValidityDuration = c.AccessTokenValidityDuration.Duration
	}
	if c.RefreshTokenValidityDuration.Duration != 0 {
		config.RefreshTokenValidityDuration = c.RefreshTokenValidityDuration.Duration
	}
	if c.RecentLoginWindow.Duration != 0 {
		config.RecentLoginWindow = c.RecentLoginWindow.Duration
	}
	if c.ActionCodeValidityDuration.Duration != 0 {
		config.ActionCodeValidityDuration = c.ActionCodeValidityDuration.Duration
	}
	if c.SignInRatePerMinute != 0 {
		config.SignInRatePerMinute = c.SignInRatePerMinute
	}
	if c.SignInBurst != 0 {
		config.SignInBurst = c.SignInBurst
	}
	setString(&config.OAuthRedirectURL, c.OAuthRedirectURL)
	setString(&config.GoogleClientID, c.GoogleClientID)
	setString(&config.GoogleClientSecret, c.GoogleClientSecret)
	setString(&config.GitHubClientID, c.GitHubClientID)
	setString(&config.GitHubClientSecret, c.GitHubClientSecret)
	setString(&config.S3RootUser, c.S3RootUser)
	setString(&config.S3RootPassword, c.S3RootPassword)
	setString(&config.S3Bucket, c.S3Bucket)
	setString(&config.S3Region, c.S3Region)
	setString(&config.S3BaseEndpoint, c.S3BaseEndpoint)
	setString(&config.S3PublicBaseURL, c.S3PublicBaseURL)
	setString(&config.LogLevel, c.LogLevel)
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
