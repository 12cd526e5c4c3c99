package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadFromYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "customers-map.yaml")
	content := `
listen_addr: "127.0.0.1:9000"
client_id: "polar_ci_abc123"
auth_base: https://auth.example/
api_base: https://api.example
cache_path: /tmp/state.json
proxy_allowed_hosts:
  - img.example.com
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.ListenAddr != "127.0.0.1:9000" {
		t.Errorf("listen_addr = %q", cfg.ListenAddr)
	}
	if cfg.ClientID != "polar_ci_abc123" {
		t.Errorf("client_id = %q", cfg.ClientID)
	}
	if cfg.AuthBase != "https://auth.example" {
		t.Errorf("auth_base not trimmed: %q", cfg.AuthBase)
	}
	if len(cfg.ProxyAllowedHosts) != 1 || cfg.ProxyAllowedHosts[0] != "img.example.com" {
		t.Errorf("proxy_allowed_hosts = %v", cfg.ProxyAllowedHosts)
	}
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.AuthBase != "https://polar.sh" {
		t.Errorf("auth_base = %q", cfg.AuthBase)
	}
	if cfg.APIBase != "https://api.polar.sh" {
		t.Errorf("api_base = %q", cfg.APIBase)
	}
	if len(cfg.ProxyAllowedHosts) == 0 {
		t.Error("expected a default proxy allowlist")
	}
	if cfg.CachePath == "" {
		t.Error("expected a derived cache path")
	}
}

func TestLoadExplicitMissingFileFails(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("expected error for an explicitly named missing file")
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("POLAR_CLIENT_ID", "from-env")
	t.Setenv("CUSTOMERS_MAP_ADDR", "127.0.0.1:7777")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.ClientID != "from-env" {
		t.Errorf("client_id = %q, want env override", cfg.ClientID)
	}
	if cfg.ListenAddr != "127.0.0.1:7777" {
		t.Errorf("listen_addr = %q, want env override", cfg.ListenAddr)
	}
	if cfg.PublicURL != "http://127.0.0.1:7777" {
		t.Errorf("public_url = %q, want derived from listen addr", cfg.PublicURL)
	}
}

func TestDerivedEndpoints(t *testing.T) {
	cfg := defaults()
	fill(cfg)

	if got := cfg.RedirectURI(); got != "http://127.0.0.1:8787/auth/callback" {
		t.Errorf("RedirectURI() = %q", got)
	}
	if got := cfg.AuthorizeURL(); got != "https://polar.sh/oauth2/authorize" {
		t.Errorf("AuthorizeURL() = %q", got)
	}
	if got := cfg.TokenURL(); got != "https://api.polar.sh/v1/oauth2/token" {
		t.Errorf("TokenURL() = %q", got)
	}
}
