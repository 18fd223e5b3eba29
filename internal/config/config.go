package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/haytac/fa2emoji/internal/logging"
)

// HistoryConfig controls the optional run-history database.
type HistoryConfig struct {
	Enabled      bool   `mapstructure:"enabled"`
	DatabasePath string `mapstructure:"database_path"`
}

// AppConfig holds the application configuration.
type AppConfig struct {
	ViewsDir    string         `mapstructure:"views_dir"`
	Extensions  []string       `mapstructure:"extensions"`
	ExcludeDirs []string       `mapstructure:"exclude_dirs"`
	Log         logging.Config `mapstructure:"log"`
	MetricsPort string         `mapstructure:"metrics_port"`
	History     HistoryConfig  `mapstructure:"history"`
	DryRun      bool           // Not from config file, set by flag
}

// LoadConfig loads configuration from file and environment variables.
// With no config file and no env overrides the defaults reproduce the
// classic behavior: rewrite ./views/**/*.ejs, skipping backup directories.
func LoadConfig(configPath string) (*AppConfig, error) {
	var cfg AppConfig

	viper.SetDefault("views_dir", "./views")
	viper.SetDefault("extensions", []string{".ejs"})
	viper.SetDefault("exclude_dirs", []string{"backup"})
	viper.SetDefault("log.level", "info")
	viper.SetDefault("log.console", true)
	viper.SetDefault("log.time_format", time.RFC3339)
	viper.SetDefault("metrics_port", "")
	viper.SetDefault("history.enabled", false)
	viper.SetDefault("history.database_path", "./fa2emoji.db")

	if configPath != "" {
		viper.SetConfigFile(configPath)
		if err := viper.ReadInConfig(); err != nil {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				return nil, err
			}
		}
	} else {
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
		viper.AddConfigPath("$HOME/.fa2emoji")
		if err := viper.ReadInConfig(); err != nil {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				return nil, err
			}
		}
	}

	viper.SetEnvPrefix("FA2EMOJI")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}
