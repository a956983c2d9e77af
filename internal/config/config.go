package config

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/s22625/ghdash/internal/model"
)

const defaultHost = "github.com"

// Config holds the dashboard configuration.
type Config struct {
	Host      string             `yaml:"host"`
	AuthToken string             `yaml:"auth_token"`
	Repos     []model.Repository `yaml:"repos"`
	LogLevel  string             `yaml:"log_level"`
	LogFile   string             `yaml:"log_file"`
}

// Load reads configuration with the following precedence (highest first):
// 1. Environment variables (GHDASH_HOST, GHDASH_LOG_LEVEL, GHDASH_LOG_FILE)
// 2. The config file at path, GHDASH_CONFIG, or ~/.config/ghdash/config.yaml
// 3. Built-in defaults
// A missing config file is not an error; the caller decides whether an
// empty repo list is acceptable.
func Load(path string) (*Config, error) {
	cfg := &Config{Host: defaultHost}

	if path == "" {
		path = os.Getenv("GHDASH_CONFIG")
	}
	if path == "" {
		path = defaultConfigPath()
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil && !os.IsNotExist(err) {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
		if err == nil {
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("parse config %s: %w", path, err)
			}
		}
	}

	applyEnv(cfg)

	if cfg.Host == "" {
		cfg.Host = defaultHost
	}
	for i, repo := range cfg.Repos {
		cfg.Repos[i] = repo.Normalized()
	}

	return cfg, nil
}

// Token resolves the API token: config value, then GITHUB_TOKEN, then the
// gh CLI's stored credentials for the configured host.
func (c *Config) Token() (string, error) {
	if c.AuthToken != "" {
		return c.AuthToken, nil
	}

	if t := os.Getenv("GITHUB_TOKEN"); t != "" {
		return t, nil
	}

	ghPath := os.Getenv("GH_PATH")
	if ghPath == "" {
		ghPath = "gh"
	}
	out, err := exec.Command(ghPath, "auth", "token", "--hostname", c.Host).Output()
	if err == nil {
		if token := strings.TrimSpace(string(out)); token != "" {
			return token, nil
		}
	}

	return "", fmt.Errorf("no GitHub token found for %s (set auth_token, GITHUB_TOKEN, or run gh auth login)", c.Host)
}

// DefaultLogFile returns where logs go when the config does not say.
func (c *Config) DefaultLogFile() string {
	if c.LogFile != "" {
		return c.LogFile
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".local", "state", "ghdash", "ghdash.log")
}

func applyEnv(cfg *Config) {
	if host := os.Getenv("GHDASH_HOST"); host != "" {
		cfg.Host = host
	}
	if level := os.Getenv("GHDASH_LOG_LEVEL"); level != "" {
		cfg.LogLevel = level
	}
	if file := os.Getenv("GHDASH_LOG_FILE"); file != "" {
		cfg.LogFile = file
	}
}

func defaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "ghdash", "config.yaml")
}
