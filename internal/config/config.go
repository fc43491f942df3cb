package config

import (
	"strings"

	"github.com/spf13/viper"
)

// Config carries everything the process needs at startup. Values come from
// defaults, an optional config.yaml in the working directory, and TRIVIA_*
// environment variables, in increasing order of precedence.
type Config struct {
	ServerPort string `mapstructure:"server_port"`
	ServerMode string `mapstructure:"server_mode"`

	DBHost     string `mapstructure:"db_host"`
	DBPort     string `mapstructure:"db_port"`
	DBUser     string `mapstructure:"db_user"`
	DBPassword string `mapstructure:"db_password"`
	DBName     string `mapstructure:"db_name"`
	DBSSLMode  string `mapstructure:"db_sslmode"`

	LogPath  string `mapstructure:"log_path"`
	LogLevel string `mapstructure:"log_level"`
}

func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	v.SetDefault("server_port", "8080")
	v.SetDefault("server_mode", "debug")
	v.SetDefault("db_host", "localhost")
	v.SetDefault("db_port", "5432")
	v.SetDefault("db_user", "postgres")
	v.SetDefault("db_password", "postgres")
	v.SetDefault("db_name", "trivia")
	v.SetDefault("db_sslmode", "disable")
	v.SetDefault("log_path", "logs/trivia.log")
	v.SetDefault("log_level", "info")

	v.SetEnvPrefix("TRIVIA")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
