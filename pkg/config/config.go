package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
	yamlv3 "gopkg.in/yaml.v3"
)

// EnvPrefix is the prefix of environment variables overriding config values.
// A double underscore separates nested keys: FOLIO_PANDOC__ENABLED=true.
const EnvPrefix = "FOLIO_"

// Config represents the application configuration.
type Config struct {
	Content   string        `yaml:"content"`
	OutputDir string        `yaml:"output_dir"`
	Pandoc    PandocConfig  `yaml:"pandoc"`
	Logging   LoggingConfig `yaml:"logging"`
}

// PandocConfig holds pandoc-related configuration for the resume PDF.
type PandocConfig struct {
	Enabled      bool   `yaml:"enabled"`
	TemplatePath string `yaml:"template_path,omitempty"`
	ClassFile    string `yaml:"class_file,omitempty"`
}

// DefaultConfig returns a configuration with every default filled in.
func DefaultConfig() (cfg Config) {
	cfg = Config{
		Content:   "portfolio.yaml",
		OutputDir: "dist",
		Logging: LoggingConfig{
			Console: LoggerConfig{Level: LevelNormal},
		},
	}
	return cfg
}

// DefaultPath returns $HOME/.folio/config.yaml.
func DefaultPath() (path string, err error) {
	var homeDir string
	homeDir, err = os.UserHomeDir()
	if err != nil {
		err = errors.Wrap(err, "failed to get user home directory")
		return path, err
	}
	path = filepath.Join(homeDir, ".folio", "config.yaml")
	return path, err
}

// Load reads configuration from file with environment variable overrides.
// A missing file at the default location is not an error; defaults apply.
func Load(configPath string) (cfg Config, err error) {
	cfg = DefaultConfig()

	path := configPath
	if path == "" {
		path, err = DefaultPath()
		if err != nil {
			return cfg, err
		}
	}

	k := koanf.New(".")

	_, err = os.Stat(path)
	switch {
	case err == nil:
		err = k.Load(file.Provider(path), yaml.Parser())
		if err != nil {
			err = errors.Wrapf(err, "failed to parse config file: %s", path)
			return cfg, err
		}
	case os.IsNotExist(err) && configPath == "":
		err = nil
	case os.IsNotExist(err):
		err = errors.Errorf("config file not found: %s (run 'folio init' to create)", path)
		return cfg, err
	default:
		err = errors.Wrapf(err, "failed to read config file: %s", path)
		return cfg, err
	}

	err = k.Load(env.Provider(EnvPrefix, ".", envKey), nil)
	if err != nil {
		err = errors.Wrap(err, "failed to load environment overrides")
		return cfg, err
	}

	err = k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "yaml"})
	if err != nil {
		err = errors.Wrapf(err, "failed to decode config: %s", path)
		return cfg, err
	}

	err = cfg.Validate()
	if err != nil {
		err = errors.Wrap(err, "config validation failed")
		return cfg, err
	}

	return cfg, err
}

// envKey maps FOLIO_PANDOC__TEMPLATE_PATH to pandoc.template_path.
func envKey(s string) (key string) {
	key = strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	key = strings.ReplaceAll(key, "__", ".")
	return key
}

// Validate checks that all required configuration is present.
func (c *Config) Validate() (err error) {
	if c.Content == "" {
		err = errors.New("content is required in config")
		return err
	}

	if c.Pandoc.ClassFile != "" && c.Pandoc.TemplatePath == "" {
		err = errors.New("pandoc.template_path is required when pandoc.class_file is set")
		return err
	}

	switch c.Logging.Console.Level {
	case "":
		c.Logging.Console.Level = LevelNormal
	case LevelNone, LevelNormal, LevelDebug:
	default:
		err = errors.Errorf("invalid logging.console.level %q: must be none, normal or debug", c.Logging.Console.Level)
		return err
	}

	// Set default output_dir if not specified
	if c.OutputDir == "" {
		c.OutputDir = "dist"
	}

	return err
}

// Save writes the configuration as YAML.
func (c *Config) Save(path string) (err error) {
	var data []byte
	data, err = yamlv3.Marshal(c)
	if err != nil {
		err = errors.Wrap(err, "failed to marshal config")
		return err
	}

	err = os.WriteFile(path, data, 0600)
	if err != nil {
		err = errors.Wrapf(err, "failed to write config file: %s", path)
		return err
	}

	return err
}

// InitConfig creates a default configuration file and returns its path.
func InitConfig(configPath string) (path string, err error) {
	path = configPath
	if path == "" {
		path, err = DefaultPath()
		if err != nil {
			return path, err
		}
	}

	// Create directory if it doesn't exist
	dir := filepath.Dir(path)
	err = os.MkdirAll(dir, 0750)
	if err != nil {
		err = errors.Wrapf(err, "failed to create config directory: %s", dir)
		return path, err
	}

	// Check if file already exists
	_, err = os.Stat(path)
	if err == nil {
		err = errors.Errorf("config file already exists: %s", path)
		return path, err
	}

	defaultConfig := DefaultConfig()
	defaultConfig.Content = filepath.Join(dir, "portfolio.yaml")

	err = defaultConfig.Save(path)
	return path, err
}
