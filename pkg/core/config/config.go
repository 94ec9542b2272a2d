package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	pwerror "github.com/msto63/pwoli/pkg/core/error"
)

// EnvConfigPath names the environment variable holding the config file path
const EnvConfigPath = "PWOLI_CONFIG"

// Config holds the complete interpreter configuration
type Config struct {
	General  GeneralConfig  `toml:"general" yaml:"general"`
	Parser   ParserConfig   `toml:"parser" yaml:"parser"`
	Executor ExecutorConfig `toml:"executor" yaml:"executor"`
}

// GeneralConfig holds logging settings
type GeneralConfig struct {
	LogLevel  string `toml:"log_level" yaml:"log_level"`
	LogFormat string `toml:"log_format" yaml:"log_format"`
}

// ParserConfig holds front end limits
type ParserConfig struct {
	MaxSourceLength int `toml:"max_source_length" yaml:"max_source_length"`
}

// ExecutorConfig holds runtime limits. A negative MaxLoopIterations disables
// the iteration limit; a zero Timeout disables the deadline.
type ExecutorConfig struct {
	MaxLoopIterations int64    `toml:"max_loop_iterations" yaml:"max_loop_iterations"`
	Timeout           Duration `toml:"timeout" yaml:"timeout"`
}

// Duration wraps time.Duration for TOML and YAML parsing
type Duration struct {
	time.Duration
}

// UnmarshalText parses a duration string
func (d *Duration) UnmarshalText(text []byte) error {
	var err error
	d.Duration, err = time.ParseDuration(string(text))
	return err
}

// MarshalText formats the duration as a string
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// Default returns a configuration with every default applied
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load loads configuration from a TOML or YAML file, chosen by extension
func Load(path string) (*Config, error) {
	path = os.ExpandEnv(path)

	content, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, pwerror.New(fmt.Sprintf("config file not found: %s", path)).
			WithCode(pwerror.CodeNotFound).
			WithOperation("config.Load").
			WithDetail("path", path)
	}
	if err != nil {
		return nil, pwerror.Wrap(err, "failed to read config").
			WithCode(pwerror.CodeConfigError).
			WithOperation("config.Load")
	}

	var cfg Config
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(content, &cfg)
	case ".toml", "":
		err = toml.Unmarshal(content, &cfg)
	default:
		return nil, pwerror.New(fmt.Sprintf("unsupported config format: %s", ext)).
			WithCode(pwerror.CodeConfigError).
			WithOperation("config.Load").
			WithDetail("path", path)
	}
	if err != nil {
		return nil, pwerror.Wrap(err, "failed to parse config").
			WithCode(pwerror.CodeConfigError).
			WithOperation("config.Load").
			WithDetail("path", path)
	}

	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadFromEnv loads the file named by PWOLI_CONFIG, or the first default
// location that exists. Without any file the defaults are returned.
func LoadFromEnv() (*Config, error) {
	if path := os.Getenv(EnvConfigPath); path != "" {
		return Load(path)
	}

	for _, p := range defaultPaths() {
		if _, err := os.Stat(p); err == nil {
			return Load(p)
		}
	}
	return Default(), nil
}

func defaultPaths() []string {
	paths := []string{"./pwoli.toml", "./pwoli.yaml"}
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", "pwoli", "config.toml"))
	}
	return paths
}

// Validate checks value ranges
func (c *Config) Validate() error {
	if c.Parser.MaxSourceLength < 0 {
		return pwerror.New("parser.max_source_length must not be negative").
			WithCode(pwerror.CodeConfigError).
			WithOperation("config.Validate")
	}
	if c.Executor.Timeout.Duration < 0 {
		return pwerror.New("executor.timeout must not be negative").
			WithCode(pwerror.CodeConfigError).
			WithOperation("config.Validate")
	}
	return nil
}

// applyDefaults sets default values for missing configuration
func (c *Config) applyDefaults() {
	if c.General.LogLevel == "" {
		c.General.LogLevel = "warn"
	}
	if c.General.LogFormat == "" {
		c.General.LogFormat = "text"
	}
	if c.Parser.MaxSourceLength == 0 {
		c.Parser.MaxSourceLength = 1 << 20
	}
	if c.Executor.MaxLoopIterations == 0 {
		c.Executor.MaxLoopIterations = 1_000_000
	}
}
