// Package config holds the session configuration shared by the request and
// event channels.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"
)

const envPrefix = "CENTRAL"

const (
	DefaultHost    = "localhost"
	DefaultPort    = 4440
	DefaultPrefix  = "/v1"
	DefaultTimeout = 3 * time.Second
	DefaultLocale  = "en"
)

// Config is the connection surface of a Central session.
type Config struct {
	Host    string        `yaml:"host" envconfig:"HOST" default:"localhost"`
	Port    int           `yaml:"port" envconfig:"PORT" default:"4440"`
	Prefix  string        `yaml:"prefix" envconfig:"PREFIX" default:"/v1"`
	HTTPS   bool          `yaml:"https" envconfig:"HTTPS" default:"false"`
	Timeout time.Duration `yaml:"timeout" envconfig:"TIMEOUT" default:"3s"`
	Locale  string        `yaml:"locale" envconfig:"LOCALE" default:"en"`
}

func Default() Config {
	return Config{
		Host:    DefaultHost,
		Port:    DefaultPort,
		Prefix:  DefaultPrefix,
		Timeout: DefaultTimeout,
		Locale:  DefaultLocale,
	}
}

// FromEnv reads CENTRAL_* variables on top of the defaults.
func FromEnv() (Config, error) {
	var c Config
	if err := envconfig.Process(envPrefix, &c); err != nil {
		return Config{}, fmt.Errorf("config: read environment: %w", err)
	}
	return c, nil
}

// Load reads a YAML file and then applies any CENTRAL_* overrides set in the
// environment. Keys missing from the file keep their defaults.
func Load(path string) (Config, error) {
	c := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &c); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}

	if err := applyEnvOverrides(&c); err != nil {
		return Config{}, err
	}
	return c, nil
}

// applyEnvOverrides only touches fields whose variable is actually set, so
// envconfig defaults never clobber values from the file.
func applyEnvOverrides(c *Config) error {
	var env struct {
		Host    *string        `envconfig:"HOST"`
		Port    *int           `envconfig:"PORT"`
		Prefix  *string        `envconfig:"PREFIX"`
		HTTPS   *bool          `envconfig:"HTTPS"`
		Timeout *time.Duration `envconfig:"TIMEOUT"`
		Locale  *string        `envconfig:"LOCALE"`
	}
	if err := envconfig.Process(envPrefix, &env); err != nil {
		return fmt.Errorf("config: read environment: %w", err)
	}

	if env.Host != nil {
		c.Host = *env.Host
	}
	if env.Port != nil {
		c.Port = *env.Port
	}
	if env.Prefix != nil {
		c.Prefix = *env.Prefix
	}
	if env.HTTPS != nil {
		c.HTTPS = *env.HTTPS
	}
	if env.Timeout != nil {
		c.Timeout = *env.Timeout
	}
	if env.Locale != nil {
		c.Locale = *env.Locale
	}
	return nil
}

// WithDefaults fills zero-valued fields from Default. HTTPS stays as given.
func (c Config) WithDefaults() Config {
	d := Default()
	if c.Host == "" {
		c.Host = d.Host
	}
	if c.Port == 0 {
		c.Port = d.Port
	}
	if c.Prefix == "" {
		c.Prefix = d.Prefix
	}
	if c.Timeout == 0 {
		c.Timeout = d.Timeout
	}
	if c.Locale == "" {
		c.Locale = d.Locale
	}
	return c
}

func (c Config) Validate() error {
	var errs []error
	if strings.TrimSpace(c.Host) == "" {
		errs = append(errs, errors.New("host is required"))
	}
	if c.Port < 1 || c.Port > 65535 {
		errs = append(errs, fmt.Errorf("port %d out of range", c.Port))
	}
	if c.Prefix != "" && !strings.HasPrefix(c.Prefix, "/") {
		errs = append(errs, fmt.Errorf("prefix %q must start with /", c.Prefix))
	}
	if c.Timeout <= 0 {
		errs = append(errs, errors.New("timeout must be positive"))
	}
	if strings.TrimSpace(c.Locale) == "" {
		errs = append(errs, errors.New("locale is required"))
	}
	if len(errs) > 0 {
		return fmt.Errorf("config: %w", errors.Join(errs...))
	}
	return nil
}

func (c Config) hostPort() string {
	return c.Host + ":" + strconv.Itoa(c.Port)
}

// BaseURL is the request channel root, prefix included.
func (c Config) BaseURL() string {
	scheme := "http"
	if c.HTTPS {
		scheme = "https"
	}
	return scheme + "://" + c.hostPort() + c.Prefix
}

// SocketPath is the event channel path derived from the HTTP prefix.
func (c Config) SocketPath() string {
	return strings.TrimSuffix(c.Prefix, "/") + "/socket.io"
}

func (c Config) SocketURL() string {
	scheme := "ws"
	if c.HTTPS {
		scheme = "wss"
	}
	return scheme + "://" + c.hostPort() + c.SocketPath()
}
