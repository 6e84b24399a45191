package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	Environment string  `mapstructure:"environment"`
	Port        int     `mapstructure:"port"`
	DataDir     string  `mapstructure:"data_dir"`
	LambdaMax   float64 `mapstructure:"lambda_max"`
}

// Load reads config.yaml if present and lets ALPHADASH_* env vars override
// it. Every key has a default; a missing file is fine, a malformed one isn't.
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./configs")

	v.SetEnvPrefix("ALPHADASH")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("environment", "production")
	v.SetDefault("port", 3009)
	v.SetDefault("data_dir", ".")
	// the upstream parameter sweep only makes sense below this
	// regularization level; matches the dashboard's fixed filter
	v.SetDefault("lambda_max", 0.0001)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if cfg.LambdaMax <= 0 {
		return nil, fmt.Errorf("lambda_max must be positive, got %v", cfg.LambdaMax)
	}

	return cfg, nil
}
