package google

import (
	"strings"
	"testing"
)

func TestConfigFromEnv(t *testing.T) {
	tests := []struct {
		name        string
		env         map[string]string
		wantErr     bool
		errContains []string
	}{
		{
			name: "all secrets present",
			env: map[string]string{
				EnvClientID:     "client-id",
				EnvClientSecret: "client-secret",
				EnvRefreshToken: "refresh-token",
			},
			wantErr: false,
		},
		{
			name:        "all secrets missing",
			env:         map[string]string{},
			wantErr:     true,
			errContains: []string{EnvClientID, EnvClientSecret, EnvRefreshToken},
		},
		{
			name: "refresh token missing",
			env: map[string]string{
				EnvClientID:     "client-id",
				EnvClientSecret: "client-secret",
			},
			wantErr:     true,
			errContains: []string{EnvRefreshToken},
		},
		{
			name: "client credentials missing",
			env: map[string]string{
				EnvRefreshToken: "refresh-token",
			},
			wantErr:     true,
			errContains: []string{EnvClientID, EnvClientSecret},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, key := range []string{EnvClientID, EnvClientSecret, EnvRefreshToken} {
				t.Setenv(key, tt.env[key])
			}

			cfg, err := ConfigFromEnv()
			if tt.wantErr {
				if err == nil {
					t.Fatalf("Expected error, got config %+v", cfg)
				}
				for _, want := range tt.errContains {
					if !strings.Contains(err.Error(), want) {
						t.Errorf("Error %q does not mention %s", err.Error(), want)
					}
				}
				return
			}

			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if cfg.ClientID != tt.env[EnvClientID] {
				t.Errorf("ClientID = %q, want %q", cfg.ClientID, tt.env[EnvClientID])
			}
			if cfg.RefreshToken != tt.env[EnvRefreshToken] {
				t.Errorf("RefreshToken = %q, want %q", cfg.RefreshToken, tt.env[EnvRefreshToken])
			}
		})
	}
}

func TestTokenSourceUsesRefreshToken(t *testing.T) {
	cfg := &Config{
		ClientID:     "client-id",
		ClientSecret: "client-secret",
		RefreshToken: "refresh-token",
	}

	ts := cfg.TokenSource(t.Context())
	if ts == nil {
		t.Fatal("Expected non-nil token source")
	}
}

func TestDefaultOAuthScopesIncludePresentations(t *testing.T) {
	found := false
	for _, scope := range DefaultOAuthScopes {
		if scope == "https://www.googleapis.com/auth/presentations" {
			found = true
		}
	}
	if !found {
		t.Error("DefaultOAuthScopes is missing the presentations scope")
	}
}
