package config

import (
	"errors"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	HTTP     HTTP
	Logger   Logger
	Postgres Postgres
	Auth     Auth
	Contract Contract
	Storage  Storage
	Kafka    Kafka
	Renderer Renderer
}

type HTTP struct {
	Port int `env:"HTTP_PORT" envDefault:"8080"`
}

type Logger struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Format string `env:"LOG_FORMAT" envDefault:"json"`
}

type Postgres struct {
	DSN     string `env:"POSTGRES_DSN"`
	MaxConn int32  `env:"POSTGRES_MAX_CONNS" envDefault:"10"`
}

type Auth struct {
	ManagerJWTSecret string        `env:"MANAGER_JWT_SECRET"`
	MasterJWTSecret  string        `env:"MASTER_JWT_SECRET"`
	AccessTokenTTL   time.Duration `env:"ACCESS_TOKEN_TTL" envDefault:"12h"`
}

type Contract struct {
	HMACSecret     string `env:"CONTRACT_HMAC_SECRET"`
	InvoiceDueDays int    `env:"INVOICE_DUE_DAYS" envDefault:"3"`
}

type Storage struct {
	Endpoint      string        `env:"STORAGE_ENDPOINT"`
	Bucket        string        `env:"STORAGE_BUCKET" envDefault:"privet"`
	AccessKey     string        `env:"STORAGE_ACCESS_KEY"`
	SecretKey     string        `env:"STORAGE_SECRET_KEY"`
	PublicURL     string        `env:"STORAGE_PUBLIC_URL"`
	PresignTTL    time.Duration `env:"STORAGE_PRESIGN_TTL" envDefault:"10m"`
	RetryAttempts int           `env:"STORAGE_RETRY_ATTEMPTS" envDefault:"3"`
	Timeout       time.Duration `env:"STORAGE_TIMEOUT" envDefault:"10s"`
}

type Kafka struct {
	Brokers            []string `env:"KAFKA_BROKERS"`
	ContourEventsTopic string   `env:"KAFKA_CONTOUR_EVENTS_TOPIC" envDefault:"backoffice.contour.events"`
}

type Renderer struct {
	FontPath string `env:"RENDERER_FONT_PATH" envDefault:"fonts/DejaVuSans.ttf"`
}

func New(envPath string) (Config, error) {
	err := godotenv.Load(envPath)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, err
	}

	c, err := env.ParseAsWithOptions[Config](env.Options{
		RequiredIfNoDef: true,
	})
	if err != nil {
		return Config{}, err
	}

	return c, nil
}
