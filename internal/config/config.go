package config

import (
	"log"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

type ExchangeConfig struct {
	Env        string `yaml:"env"`
	HTTPServer `yaml:"http_server"`
	ExchangeDB `yaml:"exchange_db"`
	RateAPI    `yaml:"rate_api"`
	Exchange   `yaml:"exchange"`
	JWT        `yaml:"jwt"`
	Kafka      `yaml:"kafka"`
	LogConfig  `yaml:"log_config"`
}

type HTTPServer struct {
	Host string `yaml:"host"`
	Port string `yaml:"port"`
}

type ExchangeDB struct {
	Dsn            string `yaml:"dsn"`
	MigrationsPath string `yaml:"migrations_path"`
}

type RateAPI struct {
	// URLTemplate carries two %s placeholders: API key, then currency code.
	URLTemplate    string `yaml:"url_template" env:"EXCHANGE_RATE_URL"`
	APIKey         string `yaml:"api_key" env:"EXCHANGE_RATE_API_KEY"`
	TimeoutSeconds int    `yaml:"timeout_seconds" env-default:"10"`
}

type Exchange struct {
	CostPerRequest  int64 `yaml:"cost_per_request" env:"COST_PER_REQUEST" env-default:"5"`
	StartingBalance int64 `yaml:"starting_balance" env-default:"1000"`
}

type JWT struct {
	Secret   string `yaml:"secret" env:"JWT_SECRET"`
	TTLHours int    `yaml:"ttl_hours" env-default:"24"`
}

type Kafka struct {
	Enabled bool   `yaml:"enabled"`
	Host    string `yaml:"host"`
	Port    string `yaml:"port"`
	Topic   string `yaml:"topic" env-default:"exchange-events"`
}

type LogConfig struct {
	LogLevel  string `yaml:"log_level"`
	LogFormat string `yaml:"log_format"`
	LogOutput string `yaml:"log_output"`
}

func MustLoad() *ExchangeConfig {

	// Processing env config variable and file
	configPath := os.Getenv("EXCHANGE_CONFIG_PATH")

	if configPath == "" {
		log.Fatalf("EXCHANGE_CONFIG_PATH was not found\n")
	}

	if _, err := os.Stat(configPath); err != nil {
		log.Fatalf("failed to find config file: %v\n", err)
	}

	// YAML to struct object
	var cfg ExchangeConfig
	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		log.Fatalf("failed to read config file: %v", err)
	}

	return &cfg
}
