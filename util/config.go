package util

import (
	"fmt"
	"os"

	"github.com/go-yaml/yaml"
)

// Config is the bookden base configuration
type Config struct {
	Server Server `yaml:"server"`
	Token  Token  `yaml:"token"`
}

type Server struct {
	Dsn           string `yaml:"dsn"`
	RedisAddr     string `yaml:"redisAddr"`
	MemcachedAddr string `yaml:"memcachedAddr"`
	TraceEndpoint string `yaml:"traceEndpoint"`
	EnableTrace   bool   `yaml:"enableTrace"`
}

// Token configures the identity token codec. All fields are mandatory;
// a blank or non-positive value refuses to boot.
type Token struct {
	Issuer          string `yaml:"issuer"`
	Audience        string `yaml:"audience"`
	Secret          string `yaml:"secret"`
	LifetimeMinutes int    `yaml:"lifetimeMinutes"`
}

// Load loads config from given path
func (c *Config) Load(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	err = yaml.NewDecoder(f).Decode(&c)
	if err != nil {
		return err
	}

	return nil
}

// Validate fails fast at startup instead of at first token use
func (c *Config) Validate() error {
	if c.Server.Dsn == "" {
		return fmt.Errorf("server.dsn is required")
	}
	if c.Token.Issuer == "" {
		return fmt.Errorf("token.issuer is required")
	}
	if c.Token.Audience == "" {
		return fmt.Errorf("token.audience is required")
	}
	if c.Token.Secret == "" {
		return fmt.Errorf("token.secret is required")
	}
	if c.Token.LifetimeMinutes <= 0 {
		return fmt.Errorf("token.lifetimeMinutes must be greater than 0")
	}
	return nil
}
