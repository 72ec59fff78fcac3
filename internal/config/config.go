package config

import (
	"encoding/json"
	"log/slog"
	"net"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/vango-dev/tally/internal/errors"
)

const (
	// ConfigFileName is the name of the JSON configuration file.
	ConfigFileName = "tally.json"

	// DefaultPort is the default server port.
	DefaultPort = 8080

	// DefaultHost is the default server host.
	DefaultHost = "localhost"

	// DefaultShutdownTimeout bounds graceful shutdown.
	DefaultShutdownTimeout = "10s"

	// DefaultReadHeaderTimeout bounds reading request headers.
	DefaultReadHeaderTimeout = "5s"

	// DefaultMetricsPath is where Prometheus metrics are served.
	DefaultMetricsPath = "/metrics"

	// DefaultNamespace is the Prometheus namespace.
	DefaultNamespace = "tally"

	// DefaultDemoDepth is the number of nested counter scopes per section.
	DefaultDemoDepth = 3

	// DefaultDemoSections is the number of independent sections.
	DefaultDemoSections = 2
)

// searchOrder lists the file names Load tries, first match wins.
var searchOrder = []string{ConfigFileName, "tally.yaml", "tally.yml"}

// Config represents the complete tally configuration.
type Config struct {
	// Name labels the deployment in logs.
	Name string `json:"name,omitempty" yaml:"name,omitempty"`

	// Server contains HTTP server configuration.
	Server ServerConfig `json:"server" yaml:"server"`

	// Metrics contains Prometheus configuration.
	Metrics MetricsConfig `json:"metrics" yaml:"metrics"`

	// Log contains logging configuration.
	Log LogConfig `json:"log" yaml:"log"`

	// Demo shapes the demo page.
	Demo DemoConfig `json:"demo" yaml:"demo"`

	// configPath stores the path where the config was loaded from.
	configPath string
}

// ServerConfig contains HTTP server settings.
type ServerConfig struct {
	Host string `json:"host,omitempty" yaml:"host,omitempty"`
	Port int    `json:"port,omitempty" yaml:"port,omitempty"`

	// ShutdownTimeout is a Go duration string, e.g. "10s".
	ShutdownTimeout string `json:"shutdownTimeout,omitempty" yaml:"shutdownTimeout,omitempty"`

	// ReadHeaderTimeout is a Go duration string, e.g. "5s".
	ReadHeaderTimeout string `json:"readHeaderTimeout,omitempty" yaml:"readHeaderTimeout,omitempty"`
}

// MetricsConfig contains Prometheus settings.
type MetricsConfig struct {
	Enabled   bool   `json:"enabled" yaml:"enabled"`
	Path      string `json:"path,omitempty" yaml:"path,omitempty"`
	Namespace string `json:"namespace,omitempty" yaml:"namespace,omitempty"`
}

// LogConfig contains logging settings.
type LogConfig struct {
	// Level is one of debug, info, warn, error.
	Level string `json:"level,omitempty" yaml:"level,omitempty"`

	// Format is text or json.
	Format string `json:"format,omitempty" yaml:"format,omitempty"`
}

// DemoConfig shapes the demo page.
type DemoConfig struct {
	Depth    int `json:"depth,omitempty" yaml:"depth,omitempty"`
	Sections int `json:"sections,omitempty" yaml:"sections,omitempty"`
}

// New creates a new Config with default values.
func New() *Config {
	return &Config{
		Server: ServerConfig{
			Host:              DefaultHost,
			Port:              DefaultPort,
			ShutdownTimeout:   DefaultShutdownTimeout,
			ReadHeaderTimeout: DefaultReadHeaderTimeout,
		},
		Metrics: MetricsConfig{
			Enabled:   true,
			Path:      DefaultMetricsPath,
			Namespace: DefaultNamespace,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
		Demo: DemoConfig{
			Depth:    DefaultDemoDepth,
			Sections: DefaultDemoSections,
		},
	}
}

// Load loads the first of tally.json, tally.yaml and tally.yml found in dir.
func Load(dir string) (*Config, error) {
	for _, name := range searchOrder {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err == nil {
			return LoadFile(path)
		}
	}
	return nil, errors.New("T101").
		WithDetail("No " + strings.Join(searchOrder, ", ") + " found in " + dir)
}

// LoadFile loads configuration from a specific file. Files ending in .yaml or
// .yml are decoded as YAML, anything else as JSON.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.New("T101").
				WithDetail("No configuration file at " + path).
				Wrap(err)
		}
		return nil, errors.New("T101").Wrap(err)
	}

	cfg := New()
	if isYAML(path) {
		err = yaml.Unmarshal(data, cfg)
	} else {
		err = json.Unmarshal(data, cfg)
	}
	if err != nil {
		return nil, errors.New("T102").
			WithDetail("Failed to parse " + filepath.Base(path) + ": " + err.Error()).
			WithSuggestion("Check that " + filepath.Base(path) + " is valid " + formatName(path))
	}

	cfg.configPath = path
	cfg.applyDefaults()

	return cfg, nil
}

func isYAML(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".yaml" || ext == ".yml"
}

func formatName(path string) string {
	if isYAML(path) {
		return "YAML"
	}
	return "JSON"
}

// Path returns the path the config was loaded from, or "".
func (c *Config) Path() string {
	return c.configPath
}

// applyDefaults fills fields a file explicitly zeroed.
func (c *Config) applyDefaults() {
	if c.Server.Host == "" {
		c.Server.Host = DefaultHost
	}
	if c.Server.Port == 0 {
		c.Server.Port = DefaultPort
	}
	if c.Server.ShutdownTimeout == "" {
		c.Server.ShutdownTimeout = DefaultShutdownTimeout
	}
	if c.Server.ReadHeaderTimeout == "" {
		c.Server.ReadHeaderTimeout = DefaultReadHeaderTimeout
	}

	if c.Metrics.Path == "" {
		c.Metrics.Path = DefaultMetricsPath
	}
	if c.Metrics.Namespace == "" {
		c.Metrics.Namespace = DefaultNamespace
	}

	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.Format == "" {
		c.Log.Format = "text"
	}

	if c.Demo.Depth == 0 {
		c.Demo.Depth = DefaultDemoDepth
	}
	if c.Demo.Sections == 0 {
		c.Demo.Sections = DefaultDemoSections
	}
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return errors.New("T103").
			WithDetailf("server.port must be between 1 and 65535, got %d", c.Server.Port)
	}
	if _, err := parsePositiveDuration(c.Server.ShutdownTimeout); err != nil {
		return errors.New("T103").
			WithDetailf("server.shutdownTimeout %q: %v", c.Server.ShutdownTimeout, err)
	}
	if _, err := parsePositiveDuration(c.Server.ReadHeaderTimeout); err != nil {
		return errors.New("T103").
			WithDetailf("server.readHeaderTimeout %q: %v", c.Server.ReadHeaderTimeout, err)
	}
	if !strings.HasPrefix(c.Metrics.Path, "/") {
		return errors.New("T103").
			WithDetailf("metrics.path must start with /, got %q", c.Metrics.Path)
	}
	if _, ok := logLevels[strings.ToLower(c.Log.Level)]; !ok {
		return errors.New("T103").
			WithDetailf("log.level must be debug, info, warn or error, got %q", c.Log.Level)
	}
	if f := strings.ToLower(c.Log.Format); f != "text" && f != "json" {
		return errors.New("T103").
			WithDetailf("log.format must be text or json, got %q", c.Log.Format)
	}
	if c.Demo.Depth < 1 {
		return errors.New("T103").
			WithDetailf("demo.depth must be at least 1, got %d", c.Demo.Depth)
	}
	if c.Demo.Sections < 1 {
		return errors.New("T103").
			WithDetailf("demo.sections must be at least 1, got %d", c.Demo.Sections)
	}
	return nil
}

func parsePositiveDuration(s string) (time.Duration, error) {
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, err
	}
	if d <= 0 {
		return 0, errors.Newf(errors.CategoryConfig, "must be positive")
	}
	return d, nil
}

// Address returns host:port for the HTTP listener.
func (c *Config) Address() string {
	return net.JoinHostPort(c.Server.Host, strconv.Itoa(c.Server.Port))
}

// SetAddress overrides host and port from a host:port string, as given to
// --addr. An empty host keeps the configured one.
func (c *Config) SetAddress(addr string) error {
	host, port, err := net.SplitHostPort(addr)
	if err != nil {
		return errors.New("T201").WithDetailf("--addr %q: %v", addr, err)
	}
	n, err := strconv.Atoi(port)
	if err != nil {
		return errors.New("T201").WithDetailf("--addr %q: port is not a number", addr)
	}
	if host != "" {
		c.Server.Host = host
	}
	c.Server.Port = n
	return nil
}

// ShutdownTimeout returns Server.ShutdownTimeout, or the default when it does
// not parse.
func (c *Config) ShutdownTimeout() time.Duration {
	return durationOr(c.Server.ShutdownTimeout, DefaultShutdownTimeout)
}

// ReadHeaderTimeout returns Server.ReadHeaderTimeout, or the default when it
// does not parse.
func (c *Config) ReadHeaderTimeout() time.Duration {
	return durationOr(c.Server.ReadHeaderTimeout, DefaultReadHeaderTimeout)
}

func durationOr(s, fallback string) time.Duration {
	if d, err := parsePositiveDuration(s); err == nil {
		return d
	}
	d, _ := time.ParseDuration(fallback)
	return d
}

var logLevels = map[string]slog.Level{
	"debug": slog.LevelDebug,
	"info":  slog.LevelInfo,
	"warn":  slog.LevelWarn,
	"error": slog.LevelError,
}

// SlogLevel returns the configured level, info when unknown.
func (l LogConfig) SlogLevel() slog.Level {
	if level, ok := logLevels[strings.ToLower(l.Level)]; ok {
		return level
	}
	return slog.LevelInfo
}

// JSON reports whether logs should be written as JSON.
func (l LogConfig) JSON() bool {
	return strings.EqualFold(l.Format, "json")
}
