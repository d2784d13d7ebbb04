package config

import (
	"log"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

type FulfillmentConfig struct {
	Env string 	   	`yaml:"env"`
	HTTPServer 	   	`yaml:"http_server"`
	FulfillmentDB  	`yaml:"fulfillment_db"`
	LogConfig 	   	`yaml:"log_config"`
	KafkaService   	`yaml:"kafka-service"`
	EmailProvider  	`yaml:"email-provider"`
	SMSProvider    	`yaml:"sms-provider"`
	WebhookSecrets 	`yaml:"webhook-secrets"`
}

type HTTPServer struct {
	Host string `yaml:"host"`
	Port string `yaml:"port"`
}

type FulfillmentDB struct {
	Dsn           string `yaml:"dsn"`
	MigrationPath string `yaml:"migration_path"`
}

type LogConfig struct {
	LogLevel 	string 	`yaml:"log_level"`
	LogFormat 	string 	`yaml:"log_format"`
	LogOutput 	string 	`yaml:"log_output"`
}

type KafkaService struct {
	Host string `yaml:"host"`
	Port string `yaml:"port"`
}

type EmailProvider struct {
	Address string `yaml:"address"`
	APIKey  string `yaml:"api_key" env:"EMAIL_PROVIDER_API_KEY"`
}

type SMSProvider struct {
	Address string `yaml:"address"`
	APIKey  string `yaml:"api_key" env:"SMS_PROVIDER_API_KEY"`
}

type WebhookSecrets struct {
	Payrail    string `yaml:"payrail" env:"WEBHOOK_SECRET_PAYRAIL"`
	Quickpay   string `yaml:"quickpay" env:"WEBHOOK_SECRET_QUICKPAY"`
	Stellarpay string `yaml:"stellarpay" env:"WEBHOOK_SECRET_STELLARPAY"`
}

func MustLoad() *FulfillmentConfig {

	// Processing env config variable and file
	configPath := os.Getenv("FULFILLMENT_CONFIG_PATH")

	if configPath == ""{
		log.Fatalf("FULFILLMENT_CONFIG_PATH was not found\n")
	}

	if _, err := os.Stat(configPath); err != nil{
		log.Fatalf("failed to find config file: %v\n", err)
	}

	// YAML to struct object
	var cfg FulfillmentConfig
	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil{
		log.Fatalf("failed to read config file: %v", err)
	}

	return &cfg
}
