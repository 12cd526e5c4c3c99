// Package config loads the customers-map configuration from an optional YAML
// file, with .env and environment-variable overrides for the values the
// hosted original took from its environment.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// DefaultConfigFile is looked for in the working directory when no -config
// flag is given.
const DefaultConfigFile = "customers-map.yaml"

// Config is the full application configuration.
type Config struct {
	// ListenAddr is the local address the app serves on.
	ListenAddr string `yaml:"listen_addr"`
	// PublicURL is the externally visible base URL; the OAuth redirect URI
	// is derived from it. Defaults to http://<listen_addr>.
	PublicURL string `yaml:"public_url"`
	// ClientID is the OAuth client id registered with the platform.
	ClientID string `yaml:"client_id"`
	// AuthBase hosts the authorization endpoint (full-page navigation).
	AuthBase string `yaml:"auth_base"`
	// APIBase hosts the token endpoint and the REST API.
	APIBase string `yaml:"api_base"`
	// CachePath is the view-state file. Defaults to
	// ~/.customers-map/state.json.
	CachePath string `yaml:"cache_path"`
	// ProxyAllowedHosts are the only remote hosts the image proxy forwards.
	ProxyAllowedHosts []string `yaml:"proxy_allowed_hosts"`
	// Verbose enables debug logging.
	Verbose bool `yaml:"verbose"`
}

func defaults() *Config {
	return &Config{
		ListenAddr:        "127.0.0.1:8787",
		AuthBase:          "https://polar.sh",
		APIBase:           "https://api.polar.sh",
		ProxyAllowedHosts: []string{"polar-public-files.s3.amazonaws.com"},
	}
}

// Load reads configuration from the given path (or DefaultConfigFile when
// empty). A missing file is not an error: defaults plus environment apply.
// Values from a .env file in the working directory are folded into the
// environment first, without overriding variables already set.
func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	explicit := path != ""
	if path == "" {
		path = DefaultConfigFile
	}

	cfg := defaults()
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config %s: %w", path, err)
		}
	case os.IsNotExist(err) && !explicit:
		// fall through to defaults
	default:
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}

	applyEnv(cfg)
	fill(cfg)
	return cfg, nil
}

// applyEnv folds environment overrides over the file values.
func applyEnv(cfg *Config) {
	if v := os.Getenv("POLAR_CLIENT_ID"); v != "" {
		cfg.ClientID = v
	}
	if v := os.Getenv("POLAR_AUTH_BASE"); v != "" {
		cfg.AuthBase = v
	}
	if v := os.Getenv("POLAR_API_BASE"); v != "" {
		cfg.APIBase = v
	}
	if v := os.Getenv("CUSTOMERS_MAP_ADDR"); v != "" {
		cfg.ListenAddr = v
	}
	if v := os.Getenv("CUSTOMERS_MAP_PUBLIC_URL"); v != "" {
		cfg.PublicURL = v
	}
	if v := os.Getenv("CUSTOMERS_MAP_CACHE"); v != "" {
		cfg.CachePath = v
	}
}

// fill completes derived and defaulted fields after file and env are merged.
func fill(cfg *Config) {
	if cfg.PublicURL == "" {
		cfg.PublicURL = "http://" + cfg.ListenAddr
	}
	cfg.PublicURL = strings.TrimRight(cfg.PublicURL, "/")
	if cfg.CachePath == "" {
		if home, err := os.UserHomeDir(); err == nil {
			cfg.CachePath = filepath.Join(home, ".customers-map", "state.json")
		} else {
			cfg.CachePath = "customers-map-state.json"
		}
	}
	cfg.AuthBase = strings.TrimRight(cfg.AuthBase, "/")
	cfg.APIBase = strings.TrimRight(cfg.APIBase, "/")
}

// RedirectURI is where the authorization server sends the browser back.
func (c *Config) RedirectURI() string {
	return c.PublicURL + "/auth/callback"
}

// AuthorizeURL is the authorization endpoint.
func (c *Config) AuthorizeURL() string {
	return c.AuthBase + "/oauth2/authorize"
}

// TokenURL is the token-exchange endpoint.
func (c *Config) TokenURL() string {
	return c.APIBase + "/v1/oauth2/token"
}
