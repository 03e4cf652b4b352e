package config

import (
	"errors"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config is the on-disk configuration shape (YAML).
type Config struct {
	Input    InputConfig    `yaml:"input"`
	Output   OutputConfig   `yaml:"output"`
	Server   ServerConfig   `yaml:"server"`
	Redis    RedisConfig    `yaml:"redis"`
	Database DatabaseConfig `yaml:"database"`
}

type InputConfig struct {
	// Dir is scanned for loan exports matching Pattern.
	Dir     string `yaml:"dir"`
	Pattern string `yaml:"pattern"`
}

type OutputConfig struct {
	// Suffix is appended to each input path to form its report path.
	Suffix string `yaml:"suffix"`
}

type ServerConfig struct {
	Port        string   `yaml:"port"`
	CORSOrigins []string `yaml:"cors_origins"`
}

type RedisConfig struct {
	// Addr enables the redis report cache when set, e.g. "localhost:6379".
	Addr string `yaml:"addr"`
}

type DatabaseConfig struct {
	// URL enables Postgres run persistence when set. The CLI also accepts
	// LOAN_SUMMARY_DB_URL / DATABASE_URL from the environment.
	URL    string `yaml:"url"`
	Schema string `yaml:"schema"`
	Tag    string `yaml:"tag"`
}

// Default returns the configuration used when no file is provided.
func Default() *Config {
	return &Config{
		Input:    InputConfig{Dir: "data", Pattern: "*.csv"},
		Output:   OutputConfig{Suffix: ".md"},
		Server:   ServerConfig{Port: "8080"},
		Database: DatabaseConfig{Schema: "loan_summary"},
	}
}

// Load reads a YAML config, fills unset fields with defaults and validates.
func Load(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var c Config
	if err := yaml.Unmarshal(raw, &c); err != nil {
		return nil, err
	}
	c.applyDefaults()
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

func (c *Config) applyDefaults() {
	def := Default()
	if c.Input.Dir == "" {
		c.Input.Dir = def.Input.Dir
	}
	if c.Input.Pattern == "" {
		c.Input.Pattern = def.Input.Pattern
	}
	if c.Output.Suffix == "" {
		c.Output.Suffix = def.Output.Suffix
	}
	if c.Server.Port == "" {
		c.Server.Port = def.Server.Port
	}
	if c.Database.Schema == "" {
		c.Database.Schema = def.Database.Schema
	}
}

func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}
	if c.Input.Dir == "" {
		return errors.New("input.dir is required")
	}
	if c.Input.Pattern == "" {
		return errors.New("input.pattern is required")
	}
	if !strings.HasPrefix(c.Output.Suffix, ".") {
		return errors.New("output.suffix must start with '.'")
	}
	if c.Server.Port == "" {
		return errors.New("server.port is required")
	}
	return nil
}
