package config

import (
	"log"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type EscrowConfig struct {
	Env           string `yaml:"env" env:"ESCROW_ENV" env-default:"local"`
	GRPCServer    `yaml:"grpc_server"`
	HTTPServer    `yaml:"http_server"`
	EscrowDB      `yaml:"escrow_db"`
	LogConfig     `yaml:"log_config"`
	KafkaService  `yaml:"kafka-service"`
	Ledger        `yaml:"ledger"`
	WalletService `yaml:"wallet-service"`
	Auth          `yaml:"auth"`
	Callback      `yaml:"callback"`
}

type GRPCServer struct {
	Host string `yaml:"host" env:"GRPC_HOST" env-default:"0.0.0.0"`
	Port string `yaml:"port" env:"GRPC_PORT" env-default:"50051"`
}

type HTTPServer struct {
	Host string `yaml:"host" env:"HTTP_HOST" env-default:"0.0.0.0"`
	Port string `yaml:"port" env:"HTTP_PORT" env-default:"8080"`
}

type EscrowDB struct {
	Dsn            string `yaml:"dsn" env:"ESCROW_DB_DSN" env-required:"true"`
	MigrationsPath string `yaml:"migrations_path" env:"ESCROW_DB_MIGRATIONS_PATH"`
	MaxOpenConns   int    `yaml:"max_open_conns" env-default:"20"`
}

type LogConfig struct {
	LogLevel      string `yaml:"log_level" env:"LOG_LEVEL" env-default:"info"`
	LogFormat     string `yaml:"log_format" env:"LOG_FORMAT" env-default:"json"`
	LogOutput     string `yaml:"log_output" env:"LOG_OUTPUT" env-default:"stdout"`
	MaxSizeMB     int    `yaml:"max_size_mb" env-default:"100"`
	MaxBackups    int    `yaml:"max_backups" env-default:"5"`
	MaxAgeDays    int    `yaml:"max_age_days" env-default:"30"`
	CompressFiles bool   `yaml:"compress" env-default:"true"`
}

type KafkaService struct {
	Enabled    bool   `yaml:"enabled" env:"KAFKA_ENABLED" env-default:"false"`
	Host       string `yaml:"host" env:"KAFKA_HOST"`
	Port       string `yaml:"port" env:"KAFKA_PORT"`
	Topic      string `yaml:"topic" env:"KAFKA_TOPIC" env-default:"escrow-events"`
	Username   string `yaml:"username" env:"KAFKA_USERNAME"`
	Password   string `yaml:"password" env:"KAFKA_PASSWORD"`
	Mechanism  string `yaml:"mechanism" env:"KAFKA_MECHANISM"`
	TLSEnabled bool   `yaml:"tls_enabled" env:"KAFKA_TLS_ENABLED"`
}

const (
	LedgerBackendPostgres      = "postgres"
	LedgerBackendWalletService = "wallet-service"
)

type Ledger struct {
	Backend string `yaml:"backend" env:"LEDGER_BACKEND" env-default:"postgres"`
}

type WalletService struct {
	Host    string        `yaml:"host" env:"WALLET_HOST"`
	Port    string        `yaml:"port" env:"WALLET_PORT"`
	Timeout time.Duration `yaml:"timeout" env:"WALLET_TIMEOUT" env-default:"5s"`
}

type Auth struct {
	HS256Secret string        `yaml:"hs256_secret" env:"AUTH_HS256_SECRET" env-required:"true"`
	Issuer      string        `yaml:"issuer" env:"AUTH_ISSUER" env-default:"shvark-identity"`
	Leeway      time.Duration `yaml:"leeway" env:"AUTH_LEEWAY" env-default:"30s"`
}

// Callback is the order service endpoint told about settled escrows.
// An empty URL disables callbacks.
type Callback struct {
	URL     string        `yaml:"url" env:"CALLBACK_URL"`
	Secret  string        `yaml:"secret" env:"CALLBACK_SECRET"`
	Timeout time.Duration `yaml:"timeout" env:"CALLBACK_TIMEOUT" env-default:"5s"`
}

func MustLoad() *EscrowConfig {

	// Processing env config variable and file
	configPath := os.Getenv("ESCROW_CONFIG_PATH")

	if configPath == "" {
		log.Fatalf("ESCROW_CONFIG_PATH was not found\n")
	}

	if _, err := os.Stat(configPath); err != nil {
		log.Fatalf("failed to find config file: %v\n", err)
	}

	cfg, err := Load(configPath)
	if err != nil {
		log.Fatalf("failed to read config file: %v", err)
	}

	return cfg
}

// Load reads the YAML file at path; environment variables override it.
func Load(path string) (*EscrowConfig, error) {
	var cfg EscrowConfig
	if err := cleanenv.ReadConfig(path, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
