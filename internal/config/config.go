package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/KaramelBytes/propmap-cli/internal/loader"
	"github.com/KaramelBytes/propmap-cli/internal/utils"
)

// Global configuration structure.
type Global struct {
	// Source used when a command is given none.
	DataSource string `mapstructure:"data_source" yaml:"data_source"`
	// Field delimiter for text sources; empty picks by extension.
	Delimiter string `mapstructure:"delimiter" yaml:"delimiter" validate:"omitempty,max=4"`
	Sheet     string `mapstructure:"sheet" yaml:"sheet"`
	// Banding center; 0 means the dataset median.
	Center       int64  `mapstructure:"center" yaml:"center" validate:"gte=0"`
	OutputFormat string `mapstructure:"output_format" yaml:"output_format" validate:"oneof=markdown md json yaml yml"`
	LogLevel     string `mapstructure:"log_level" yaml:"log_level" validate:"oneof=trace debug info warn warning error"`

	// HTTP server
	ListenAddr  string   `mapstructure:"listen_addr" yaml:"listen_addr" validate:"required"`
	CORSOrigins []string `mapstructure:"cors_origins" yaml:"cors_origins"`
	MaxListRows int      `mapstructure:"max_list_rows" yaml:"max_list_rows" validate:"gte=0"`
}

var validate = validator.New()

// Validate checks field constraints.
func (c *Global) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	if utf8.RuneCountInString(c.Delimiter) > 1 && !isTab(c.Delimiter) {
		return fmt.Errorf("invalid config: delimiter must be a single character, got %q", c.Delimiter)
	}
	return nil
}

// LoaderOptions converts the source settings into loader options.
func (c *Global) LoaderOptions() loader.Options {
	opt := loader.Options{Sheet: c.Sheet}
	switch {
	case c.Delimiter == "":
	case isTab(c.Delimiter):
		opt.Delimiter = '\t'
	default:
		opt.Delimiter, _ = utf8.DecodeRuneInString(c.Delimiter)
	}
	return opt
}

// isTab accepts the spellings of a tab that survive YAML and shell quoting.
func isTab(s string) bool { return s == `\t` || strings.EqualFold(s, "tab") }

// Dir returns ~/.propmap.
func Dir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home dir: %w", err)
	}
	return filepath.Join(home, ".propmap"), nil
}

// Save writes the given configuration to the cfgFile path. If cfgFile is empty,
// it writes to ~/.propmap/config.yaml, creating the directory if necessary.
func Save(c *Global, cfgFile string) error {
	path := cfgFile
	if path == "" {
		dir, err := Dir()
		if err != nil {
			return err
		}
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("mkdir config dir: %w", err)
		}
		path = filepath.Join(dir, "config.yaml")
	}
	b, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal yaml: %w", err)
	}
	if err := utils.SafeWriteFile(path, b); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// Load loads configuration from file, env, and defaults.
// Precedence: env > config file > defaults. Flags are applied by the caller.
func Load(cfgFile string) (*Global, error) {
	v := viper.New()
	v.SetEnvPrefix("PROPMAP")
	v.AutomaticEnv()

	v.SetDefault("data_source", "")
	v.SetDefault("delimiter", "")
	v.SetDefault("sheet", "")
	v.SetDefault("center", 0)
	v.SetDefault("output_format", "markdown")
	v.SetDefault("log_level", "info")
	v.SetDefault("listen_addr", "127.0.0.1:8080")
	v.SetDefault("cors_origins", []string{"*"})
	v.SetDefault("max_list_rows", 100)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		dir, err := Dir()
		if err != nil {
			return nil, err
		}
		v.AddConfigPath(dir)
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}
	// optional read
	_ = v.ReadInConfig()

	var c Global
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}
