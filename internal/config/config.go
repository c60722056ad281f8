package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
	"github.com/spf13/viper"
)

type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	Clinic   ClinicConfig   `mapstructure:"clinic"`
}

type ServerConfig struct {
	Port           int `mapstructure:"port"`
	TimeoutSeconds int `mapstructure:"timeout_seconds"`
}

type DatabaseConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Name     string `mapstructure:"name"`
	SSLMode  string `mapstructure:"sslmode"`
}

// ClinicConfig describes the daily appointment template: two blocks of
// fixed-length slots with a lunch gap between them. Block ends are
// exclusive.
type ClinicConfig struct {
	SlotMinutes    int    `mapstructure:"slot_minutes"`
	MorningStart   string `mapstructure:"morning_start"`
	MorningEnd     string `mapstructure:"morning_end"`
	AfternoonStart string `mapstructure:"afternoon_start"`
	AfternoonEnd   string `mapstructure:"afternoon_end"`
}

// envOverrides are applied on top of the file config so deployments can
// inject credentials without editing config.yaml.
type envOverrides struct {
	Port       int    `envconfig:"PORT"`
	DBHost     string `envconfig:"DB_HOST"`
	DBPort     int    `envconfig:"DB_PORT"`
	DBUser     string `envconfig:"DB_USER"`
	DBPassword string `envconfig:"DB_PASSWORD"`
	DBName     string `envconfig:"DB_NAME"`
}

func LoadConfig() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")

	viper.SetDefault("server.port", 8080)
	viper.SetDefault("server.timeout_seconds", 30)
	viper.SetDefault("database.sslmode", "disable")
	viper.SetDefault("clinic.slot_minutes", 30)
	viper.SetDefault("clinic.morning_start", "09:00")
	viper.SetDefault("clinic.morning_end", "12:00")
	viper.SetDefault("clinic.afternoon_start", "14:00")
	viper.SetDefault("clinic.afternoon_end", "17:30")

	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	var env envOverrides
	if err := envconfig.Process("clinic", &env); err != nil {
		return nil, fmt.Errorf("failed to read environment overrides: %w", err)
	}
	if env.Port != 0 {
		config.Server.Port = env.Port
	}
	if env.DBHost != "" {
		config.Database.Host = env.DBHost
	}
	if env.DBPort != 0 {
		config.Database.Port = env.DBPort
	}
	if env.DBUser != "" {
		config.Database.User = env.DBUser
	}
	if env.DBPassword != "" {
		config.Database.Password = env.DBPassword
	}
	if env.DBName != "" {
		config.Database.Name = env.DBName
	}

	return &config, nil
}
