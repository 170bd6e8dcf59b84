package google

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strings"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"

	"github.com/slidescribe/slidescribe/internal/logging"
)

// Environment variable names for the three required secrets.
const (
	EnvClientID     = "GOOGLE_CLIENT_ID"
	EnvClientSecret = "GOOGLE_CLIENT_SECRET"
	EnvRefreshToken = "GOOGLE_REFRESH_TOKEN"
)

// Config holds the OAuth2 credentials used to construct the Slides
// capability handle. It is built once at startup and passed by reference;
// there is no ambient singleton.
type Config struct {
	ClientID     string
	ClientSecret string
	RefreshToken string
}

// ConfigFromEnv reads the three required secrets from the environment.
// All missing variables are reported in a single error so operators can
// fix the deployment in one pass.
func ConfigFromEnv() (*Config, error) {
	cfg := &Config{
		ClientID:     os.Getenv(EnvClientID),
		ClientSecret: os.Getenv(EnvClientSecret),
		RefreshToken: os.Getenv(EnvRefreshToken),
	}

	var missing []string
	if cfg.ClientID == "" {
		missing = append(missing, EnvClientID)
	}
	if cfg.ClientSecret == "" {
		missing = append(missing, EnvClientSecret)
	}
	if cfg.RefreshToken == "" {
		missing = append(missing, EnvRefreshToken)
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("missing required environment variables: %s", strings.Join(missing, ", "))
	}

	return cfg, nil
}

// oauthConfig returns the OAuth2 configuration for the Google Slides API
func (c *Config) oauthConfig() *oauth2.Config {
	return &oauth2.Config{
		ClientID:     c.ClientID,
		ClientSecret: c.ClientSecret,
		Endpoint:     google.Endpoint,
		Scopes:       DefaultOAuthScopes,
	}
}

// TokenSource returns an auto-refreshing OAuth2 token source backed by the
// configured refresh token.
func (c *Config) TokenSource(ctx context.Context) oauth2.TokenSource {
	conf := c.oauthConfig()
	return conf.TokenSource(ctx, &oauth2.Token{
		TokenType:    "Bearer",
		RefreshToken: c.RefreshToken,
	})
}

// HTTPClient returns an HTTP client configured with OAuth2 authentication.
// The client is configured to use HTTP/1.1 to avoid HTTP/2 protocol errors
// seen with some Google API endpoints.
func (c *Config) HTTPClient(ctx context.Context) (*http.Client, error) {
	ts := c.TokenSource(ctx)

	// Validate the refresh token before handing out a client; an invalid
	// credential should fail at startup, not on the first tool call.
	if _, err := ts.Token(); err != nil {
		slog.Error("failed to exchange refresh token",
			"refresh_token", logging.SanitizeToken(c.RefreshToken),
			"error", err.Error())
		return nil, fmt.Errorf("failed to obtain access token from refresh token: %w", err)
	}
	slog.Debug("validated Google OAuth credentials",
		"refresh_token", logging.SanitizeToken(c.RefreshToken))

	client := oauth2.NewClient(ctx, ts)

	// Force HTTP/1.1 by disabling HTTP/2
	if transport, ok := client.Transport.(*oauth2.Transport); ok {
		transport.Base = &http.Transport{
			ForceAttemptHTTP2: false,
		}
	}

	return client, nil
}
