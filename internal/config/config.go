package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config de la API. Se arma con Default(), luego el YAML (si hay), luego env.
type Config struct {
	Port    string        `yaml:"port"`
	Log     LogConfig     `yaml:"log"`
	Seed    SeedConfig    `yaml:"seed"`
	Session SessionConfig `yaml:"session"`
	Auth    AuthConfig    `yaml:"auth"`
}

type LogConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // json, text
	App    string `yaml:"app"`
}

type SeedConfig struct {
	Enabled   bool   `yaml:"enabled"`
	Value     uint64 `yaml:"value"`
	Animals   int    `yaml:"animals"`
	Resources int    `yaml:"resources"`
	Reports   int    `yaml:"reports"`
}

type SessionConfig struct {
	// Vacío = sesión solo en memoria.
	File       string        `yaml:"file"`
	LoginDelay time.Duration `yaml:"login_delay"`
}

type AuthConfig struct {
	// DevMode acepta X-Debug-User-ID sin token.
	DevMode      bool   `yaml:"dev_mode"`
	RemoteURL    string `yaml:"remote_url"`
	RemoteAPIKey string `yaml:"remote_api_key"`
}

func Default() *Config {
	return &Config{
		Port: "8080",
		Log: LogConfig{
			Level:  "info",
			Format: "text",
			App:    "zoo-dashboard",
		},
		Seed: SeedConfig{
			Enabled:   true,
			Value:     1,
			Animals:   12,
			Resources: 10,
			Reports:   8,
		},
		Session: SessionConfig{
			LoginDelay: time.Second,
		},
	}
}

// Load lee el YAML en path (opcional: path vacío o inexistente => defaults)
// y aplica overrides de entorno.
func Load(path string) (*Config, error) {
	cfg := Default()

	if strings.TrimSpace(path) != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
			// defaults
		case err != nil:
			return nil, fmt.Errorf("read config: %w", err)
		default:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("parse config: %w", err)
			}
		}
	}

	if err := cfg.applyEnv(os.LookupEnv); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if strings.TrimSpace(c.Port) == "" {
		return errors.New("config: port required")
	}
	if c.Seed.Animals < 0 || c.Seed.Resources < 0 || c.Seed.Reports < 0 {
		return errors.New("config: seed counts must be >= 0")
	}
	if c.Session.LoginDelay < 0 {
		return errors.New("config: session.login_delay must be >= 0")
	}
	return nil
}

// Addr para http.Server.
func (c *Config) Addr() string {
	return ":" + strings.TrimPrefix(c.Port, ":")
}

type lookupFunc func(string) (string, bool)

func (c *Config) applyEnv(lookup lookupFunc) error {
	str := func(key string, dst *string) {
		if v, ok := lookup(key); ok && strings.TrimSpace(v) != "" {
			*dst = strings.TrimSpace(v)
		}
	}

	str("PORT", &c.Port)
	str("LOG_LEVEL", &c.Log.Level)
	str("LOG_FORMAT", &c.Log.Format)
	str("APP_NAME", &c.Log.App)
	str("SESSION_FILE", &c.Session.File)
	str("AUTH_REMOTE_URL", &c.Auth.RemoteURL)
	str("AUTH_REMOTE_API_KEY", &c.Auth.RemoteAPIKey)

	if v, ok := lookup("SEED"); ok && strings.TrimSpace(v) != "" {
		switch strings.ToLower(strings.TrimSpace(v)) {
		case "off", "false", "none":
			c.Seed.Enabled = false
		default:
			n, err := strconv.ParseUint(strings.TrimSpace(v), 10, 64)
			if err != nil {
				return fmt.Errorf("config: SEED must be a number or \"off\": %w", err)
			}
			c.Seed.Enabled = true
			c.Seed.Value = n
		}
	}

	ints := []struct {
		key string
		dst *int
	}{
		{"SEED_ANIMALS", &c.Seed.Animals},
		{"SEED_RESOURCES", &c.Seed.Resources},
		{"SEED_REPORTS", &c.Seed.Reports},
	}
	for _, it := range ints {
		v, ok := lookup(it.key)
		if !ok || strings.TrimSpace(v) == "" {
			continue
		}
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("config: %s: %w", it.key, err)
		}
		*it.dst = n
	}

	if v, ok := lookup("SESSION_LOGIN_DELAY"); ok && strings.TrimSpace(v) != "" {
		d, err := time.ParseDuration(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("config: SESSION_LOGIN_DELAY: %w", err)
		}
		c.Session.LoginDelay = d
	}

	if v, ok := lookup("DEV_AUTH"); ok && strings.TrimSpace(v) != "" {
		b, err := strconv.ParseBool(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("config: DEV_AUTH: %w", err)
		}
		c.Auth.DevMode = b
	}

	return nil
}
