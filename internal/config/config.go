// Package config loads simplerdf settings from an optional YAML file and
// SIMPLERDF_* environment variables.
package config

import (
	"sort"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/spf13/viper"
	"go.uber.org/zap/zapcore"

	"github.com/aleksaelezovic/simplerdf/pkg/rdf"
)

// EnvPrefix is prepended to environment overrides, e.g. SIMPLERDF_LOG_LEVEL.
const EnvPrefix = "SIMPLERDF"

// Config is the root configuration
type Config struct {
	Log LogConfig `mapstructure:"log"`

	// Namespaces maps short names to IRI prefixes. Viper lowercases map
	// keys, so short names are always lowercase.
	Namespaces map[string]string `mapstructure:"namespaces"`
}

// LogConfig controls logger construction
type LogConfig struct {
	JSON  bool   `mapstructure:"json"`
	Level string `mapstructure:"level"`
}

// SetDefaults configures default values for all configuration options
func SetDefaults(v *viper.Viper) {
	v.SetDefault("log.json", false)
	v.SetDefault("log.level", "info")

	v.SetDefault("namespaces.rdf", "http://www.w3.org/1999/02/22-rdf-syntax-ns#")
	v.SetDefault("namespaces.rdfs", "http://www.w3.org/2000/01/rdf-schema#")
	v.SetDefault("namespaces.xsd", "http://www.w3.org/2001/XMLSchema#")
	v.SetDefault("namespaces.owl", "http://www.w3.org/2002/07/owl#")
}

// NewViper returns a viper instance with defaults and environment binding.
// When path is not empty the file is read as YAML.
func NewViper(path string) (*viper.Viper, error) {
	v := viper.New()

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	SetDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrapf(err, "failed to read config file %s", path)
		}
	}
	return v, nil
}

// Load reads configuration from path (optional) and the environment.
func Load(path string) (*Config, error) {
	v, err := NewViper(path)
	if err != nil {
		return nil, err
	}
	return LoadWithViper(v)
}

// LoadWithViper loads configuration using a provided Viper instance
func LoadWithViper(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal config")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the log level and namespace entries.
func (c *Config) Validate() error {
	if _, err := zapcore.ParseLevel(c.Log.Level); err != nil {
		return errors.Wrapf(err, "log.level")
	}
	for name, iri := range c.Namespaces {
		if strings.TrimSpace(iri) == "" {
			return errors.Newf("namespaces.%s: IRI can't be empty", name)
		}
		if strings.Contains(name, ":") {
			return errors.Newf("namespaces.%s: short name can't contain ':'", name)
		}
	}
	return nil
}

// NamespaceMap builds the configured namespaces.
func (c *Config) NamespaceMap() *rdf.Namespaces {
	ns := rdf.NewNamespaces()
	names := make([]string, 0, len(c.Namespaces))
	for name := range c.Namespaces {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		ns.Add(c.Namespaces[name], name)
	}
	return ns
}
