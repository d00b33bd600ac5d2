package config

import (
	"log"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

type AppConfig struct {
	Env        string `yaml:"env" env-default:"local"`
	HTTPServer `yaml:"http_server"`
	CRMDB      `yaml:"crm_db"`
	LogConfig  `yaml:"log_config"`
	Kafka      `yaml:"kafka"`
	Owner      `yaml:"owner"`
	VINService `yaml:"vin_service"`
}

type HTTPServer struct {
	Host string `yaml:"host" env-default:"0.0.0.0"`
	Port string `yaml:"port" env-default:"8080"`
}

type CRMDB struct {
	// Driver selects the storage engine: "sqlite" (embedded, default) or
	// "postgres".
	Driver string `yaml:"driver" env-default:"sqlite"`
	Dsn    string `yaml:"dsn" env-default:"autosales.db"`
}

type LogConfig struct {
	LogLevel  string `yaml:"log_level" env-default:"info"`
	LogFormat string `yaml:"log_format" env-default:"json"`
}

type Kafka struct {
	Enabled bool   `yaml:"enabled" env-default:"false"`
	Host    string `yaml:"host"`
	Port    string `yaml:"port"`
	Topic   string `yaml:"topic" env-default:"crm-events"`
}

type Owner struct {
	// DefaultOwnerID scopes requests that carry no X-Owner-ID header, for
	// the single-user deployment.
	DefaultOwnerID string `yaml:"default_owner_id" env-default:"default"`
}

type VINService struct {
	BaseURL        string `yaml:"base_url" env-default:"https://vpic.nhtsa.dot.gov/api"`
	TimeoutSeconds int    `yaml:"timeout_seconds" env-default:"5"`
}

func MustLoad() *AppConfig {
	configPath := os.Getenv("AUTOSALES_CONFIG_PATH")

	if configPath == "" {
		log.Fatalf("AUTOSALES_CONFIG_PATH was not found\n")
	}

	if _, err := os.Stat(configPath); err != nil {
		log.Fatalf("failed to find config file: %v\n", err)
	}

	var cfg AppConfig
	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		log.Fatalf("failed to read config file: %v", err)
	}

	return &cfg
}
