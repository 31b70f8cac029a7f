// Package config provides configuration loading and defaults for the
// spotify-mcp server.
package config

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultEndpoint is the production pathfinder query endpoint.
const DefaultEndpoint = "https://api-partner.spotify.com/pathfinder/v1/query"

// ServerConfig holds network and authentication settings for the MCP
// HTTP surface.
type ServerConfig struct {
	Port      int    `yaml:"port"`
	AuthToken string `yaml:"auth_token"`
}

// SpotifyConfig holds connection details for the pathfinder API.
type SpotifyConfig struct {
	Endpoint    string `yaml:"endpoint"`
	AccessToken string `yaml:"access_token"`
	ClientToken string `yaml:"client_token"`
	// Timeout is the HTTP request timeout in seconds.
	Timeout int `yaml:"timeout"`
}

// AuditConfig controls audit logging behaviour.
type AuditConfig struct {
	Enabled bool   `yaml:"enabled"`
	LogPath string `yaml:"log_path"`
}

// Config is the top-level configuration structure for the spotify-mcp
// server.
type Config struct {
	Server  ServerConfig  `yaml:"server"`
	Spotify SpotifyConfig `yaml:"spotify"`
	Audit   AuditConfig   `yaml:"audit"`
}

// LoadConfig reads and parses a YAML configuration file from the given path.
// It returns a pointer to the populated Config and any error encountered.
// On error, nil is returned for the config pointer.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

// DefaultConfig returns a new Config populated with sensible default values.
// Each call returns a distinct instance.
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port: 8080,
		},
		Spotify: SpotifyConfig{
			Endpoint: DefaultEndpoint,
			Timeout:  30,
		},
		Audit: AuditConfig{
			Enabled: false,
			LogPath: "/config/audit.log",
		},
	}
}

// ApplyEnvOverrides updates cfg in place with values from environment
// variables. Recognized variables:
//   - SPOTIFY_MCP_AUTH_TOKEN overrides cfg.Server.AuthToken
//   - SPOTIFY_PATHFINDER_URL overrides cfg.Spotify.Endpoint
//   - SPOTIFY_ACCESS_TOKEN overrides cfg.Spotify.AccessToken
//   - SPOTIFY_CLIENT_TOKEN overrides cfg.Spotify.ClientToken
func ApplyEnvOverrides(cfg *Config) {
	if token := os.Getenv("SPOTIFY_MCP_AUTH_TOKEN"); token != "" {
		cfg.Server.AuthToken = token
	}
	if endpoint := os.Getenv("SPOTIFY_PATHFINDER_URL"); endpoint != "" {
		cfg.Spotify.Endpoint = endpoint
	}
	if token := os.Getenv("SPOTIFY_ACCESS_TOKEN"); token != "" {
		cfg.Spotify.AccessToken = token
	}
	if token := os.Getenv("SPOTIFY_CLIENT_TOKEN"); token != "" {
		cfg.Spotify.ClientToken = token
	}
}

// EnsureAuthToken generates a random auth token and sets it on cfg if
// cfg.Server.AuthToken is empty. It returns the token (existing or
// generated) and any error encountered during generation.
func EnsureAuthToken(cfg *Config) (string, error) {
	if cfg.Server.AuthToken != "" {
		return cfg.Server.AuthToken, nil
	}
	token, err := GenerateRandomToken()
	if err != nil {
		return "", fmt.Errorf("generate auth token: %w", err)
	}
	cfg.Server.AuthToken = token
	return token, nil
}

// GenerateRandomToken returns a 32-character hex-encoded cryptographically
// random token string.
func GenerateRandomToken() (string, error) {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("rand.Read: %w", err)
	}
	return hex.EncodeToString(b), nil
}
