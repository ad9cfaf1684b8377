package config

import (
	"log"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type StorefrontConfig struct {
	Env           string `yaml:"env" env:"ENV" env-default:"local"`
	HTTPServer    `yaml:"http_server"`
	StoreDB       `yaml:"store_db"`
	LogConfig     `yaml:"log_config"`
	KafkaService  `yaml:"kafka-service"`
	Gateway       `yaml:"payment_gateway"`
	Email         `yaml:"email"`
	FallbackCache `yaml:"fallback_cache"`
	Orders        `yaml:"orders"`
	Tenancy       `yaml:"tenancy"`
	AdminAPIKey   string `yaml:"admin_api_key" env:"ADMIN_API_KEY"`
}

type HTTPServer struct {
	Host string `yaml:"host" env-default:"0.0.0.0"`
	Port string `yaml:"port" env-default:"8080"`
}

type StoreDB struct {
	Dsn string `yaml:"dsn" env:"STORE_DB_DSN"`
}

type LogConfig struct {
	LogLevel  string `yaml:"log_level" env-default:"info"`
	LogFormat string `yaml:"log_format" env-default:"json"`
	LogOutput string `yaml:"log_output" env-default:"stdout"`
}

type KafkaService struct {
	Host  string `yaml:"host"`
	Port  string `yaml:"port"`
	Topic string `yaml:"topic" env-default:"order-events"`
}

type Gateway struct {
	BaseURL       string `yaml:"base_url" env:"GATEWAY_BASE_URL"`
	WebhookSecret string `yaml:"webhook_secret" env:"GATEWAY_WEBHOOK_SECRET"`
	RedirectURL   string `yaml:"redirect_url"`
}

type Email struct {
	BaseURL string `yaml:"base_url" env-default:"https://api.resend.com"`
	APIKey  string `yaml:"api_key" env:"RESEND_API_KEY"`
	From    string `yaml:"from"`
}

type FallbackCache struct {
	Dir string `yaml:"dir" env-default:"./fallback-cache"`
}

type Orders struct {
	TTL time.Duration `yaml:"ttl" env-default:"30m"`
}

type Tenancy struct {
	DefaultStoreSlug string `yaml:"default_store_slug" env-default:"lojinha-das-gracas"`
}

func MustLoad() *StorefrontConfig {
	configPath := os.Getenv("STORE_CONFIG_PATH")
	if configPath == "" {
		log.Fatalf("STORE_CONFIG_PATH was not found\n")
	}

	if _, err := os.Stat(configPath); err != nil {
		log.Fatalf("failed to find config file: %v\n", err)
	}

	var cfg StorefrontConfig
	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		log.Fatalf("failed to read config file: %v", err)
	}

	return &cfg
}
