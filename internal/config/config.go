package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
)

type Config struct {
	Env        string     `yaml:"env" env:"ENV" env-default:"local"`
	Database   Database   `yaml:"database"`
	HTTPServer HTTPServer `yaml:"http_server"`
	Redis      Redis      `yaml:"redis"`
	Broker     Broker     `yaml:"broker"`
	Stripe     Stripe     `yaml:"stripe"`
	Auth       Auth       `yaml:"auth"`
	Wizard     Wizard     `yaml:"wizard"`
	Checkout   Checkout   `yaml:"checkout"`
	CORS       CORS       `yaml:"cors"`
}

type Database struct {
	Host     string `yaml:"host" env:"DB_HOST" env-default:"localhost"`
	Port     int    `yaml:"port" env:"DB_PORT" env-default:"5432"`
	User     string `yaml:"user" env:"DB_USER" env-default:"postgres"`
	Password string `yaml:"password" env:"DB_PASSWORD"`
	DBName   string `yaml:"dbname" env:"DB_NAME" env-default:"culturehub"`
	SSLMode  string `yaml:"sslmode" env:"DB_SSLMODE" env-default:"disable"`
	MaxConns int    `yaml:"max_conns" env:"DB_MAX_CONNS" env-default:"10"`
}

type HTTPServer struct {
	Address     string        `yaml:"address" env:"HTTP_ADDRESS" env-default:"localhost:8080"`
	Timeout     time.Duration `yaml:"timeout" env-default:"4s"`
	IdleTimeout time.Duration `yaml:"idle_timeout" env-default:"60s"`
	StaticDir   string        `yaml:"static_dir" env-default:"./static"`
}

type Redis struct {
	Address  string `yaml:"address" env:"REDIS_ADDRESS" env-default:"localhost:6379"`
	Password string `yaml:"password" env:"REDIS_PASSWORD"`
	DB       int    `yaml:"db" env:"REDIS_DB" env-default:"0"`
}

type Broker struct {
	URL      string `yaml:"url" env:"RABBITMQ_URL"`
	Exchange string `yaml:"exchange" env-default:"culturehub"`
	Queue    string `yaml:"queue" env-default:"order_notifications"`
}

type Stripe struct {
	SecretKey     string `yaml:"secret_key" env:"STRIPE_SECRET_KEY"`
	WebhookSecret string `yaml:"webhook_secret" env:"STRIPE_WEBHOOK_SECRET"`
	Currency      string `yaml:"currency" env-default:"eur"`
}

type Auth struct {
	TokenSecret string        `yaml:"token_secret" env:"AUTH_TOKEN_SECRET" env-required:"true"`
	TokenTTL    time.Duration `yaml:"token_ttl" env-default:"24h"`
	DemoUser    string        `yaml:"demo_user" env:"AUTH_DEMO_USER"`
}

type Wizard struct {
	AutosaveInterval time.Duration `yaml:"autosave_interval" env-default:"30s"`
	DraftTTL         time.Duration `yaml:"draft_ttl" env-default:"168h"`
}

type Checkout struct {
	SessionTTL         time.Duration `yaml:"session_ttl" env-default:"1h"`
	HoldMinutes        int           `yaml:"hold_minutes" env-default:"15"`
	SweepInterval      time.Duration `yaml:"sweep_interval" env-default:"1m"`
	MaxTicketsPerOrder int           `yaml:"max_tickets_per_order" env-default:"10"`
}

type CORS struct {
	AllowedOrigins []string `yaml:"allowed_origins" env:"CORS_ALLOWED_ORIGINS" env-separator:"," env-default:"http://localhost:5173"`
}

// MustLoad reads the configuration file named by --config or CONFIG_PATH.
// A .env file in the working directory, if present, is loaded first.
func MustLoad() *Config {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Fatalf("cannot load .env file: %s", err)
	}

	configPath := fetchConfigPath()
	if configPath == "" {
		log.Fatal("config path is not set")
	}

	cfg, err := Load(configPath)
	if err != nil {
		log.Fatal(err)
	}

	return cfg
}

func Load(configPath string) (*Config, error) {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file does not exist: %s", configPath)
	}

	var cfg Config

	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		return nil, fmt.Errorf("cannot read config: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

// validate rejects values the background loops cannot run with. Zero values
// never get here since cleanenv replaces them with the defaults.
func (c *Config) validate() error {
	if c.Wizard.AutosaveInterval <= 0 {
		return fmt.Errorf("wizard.autosave_interval must be positive, got %s", c.Wizard.AutosaveInterval)
	}
	if c.Checkout.SweepInterval <= 0 {
		return fmt.Errorf("checkout.sweep_interval must be positive, got %s", c.Checkout.SweepInterval)
	}
	if c.Checkout.HoldMinutes <= 0 {
		return fmt.Errorf("checkout.hold_minutes must be positive, got %d", c.Checkout.HoldMinutes)
	}

	return nil
}

// fetchConfigPath prefers the command line flag over the environment.
func fetchConfigPath() string {
	var res string

	flags := pflag.NewFlagSet("culturehub", pflag.ExitOnError)
	flags.StringVar(&res, "config", "", "path to config file")
	_ = flags.Parse(os.Args[1:])

	if res == "" {
		res = os.Getenv("CONFIG_PATH")
	}

	return res
}

func (d Database) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host,
		d.Port,
		d.User,
		d.Password,
		d.DBName,
		d.SSLMode,
	)
}
