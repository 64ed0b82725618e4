package beanie

import (
	"github.com/ilyakaznacheev/cleanenv"
)

// EnvConfig is the part of Config that can come from the environment or a
// YAML file. Model lists are code, not configuration, so callers turn an
// EnvConfig into a full Config with Config.
type EnvConfig struct {
	ConnectionString   string `yaml:"connection_string" env:"BEANIE_CONNECTION_STRING" env-default:""`
	Database           string `yaml:"database" env:"BEANIE_DATABASE" env-default:""`
	AllowIndexDropping bool   `yaml:"allow_index_dropping" env:"BEANIE_ALLOW_INDEX_DROPPING" env-default:"false"`
	RecreateViews      bool   `yaml:"recreate_views" env:"BEANIE_RECREATE_VIEWS" env-default:"false"`
}

// ReadEnvConfig reads configuration from environment variables only.
func ReadEnvConfig() (*EnvConfig, error) {
	cfg := &EnvConfig{}
	if err := cleanenv.ReadEnv(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ReadConfigFile reads configuration from a YAML file with environment
// variable overrides.
func ReadConfigFile(path string) (*EnvConfig, error) {
	cfg := &EnvConfig{}
	if err := cleanenv.ReadConfig(path, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Config combines the loaded settings with the models to initialize.
func (c *EnvConfig) Config(models ...any) Config {
	return Config{
		ConnectionString:   c.ConnectionString,
		DatabaseName:       c.Database,
		DocumentModels:     models,
		AllowIndexDropping: c.AllowIndexDropping,
		RecreateViews:      c.RecreateViews,
	}
}
