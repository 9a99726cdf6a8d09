package config

import (
	"time"
)

type DB struct {
	Url string `envconfig:"URL"`
}

type Jwt struct {
	Secret string        `envconfig:"SECRET" required:"true"`
	Expiry time.Duration `envconfig:"EXPIRY" default:"24h"`
}

// Payment holds the mocked provider configuration. PublicKey and SecretKey
// are reserved for a real provider integration and are not read by the
// dummy provider.
type Payment struct {
	ProviderName  string `envconfig:"PROVIDER_NAME" default:"dummy"`
	WebhookSecret string `envconfig:"WEBHOOK_SECRET"`
	PublicKey     string `envconfig:"PUBLIC_KEY"`
	SecretKey     string `envconfig:"SECRET_KEY"`
}

type Email struct {
	From       string        `envconfig:"FROM" default:"donations@briskfarm.example"`
	MaxElapsed time.Duration `envconfig:"MAX_ELAPSED" default:"30s"`
}

type RateLimit struct {
	MaxRequests int           `envconfig:"MAX_REQUESTS" default:"100"`
	Window      time.Duration `envconfig:"WINDOW" default:"1m"`
}

type Log struct {
	Level      int    `envconfig:"LEVEL" default:"0"`
	Format     string `envconfig:"FORMAT" default:"json"`
	TimeFormat string `envconfig:"TIME_FORMAT" default:"2006-01-02 15:04:05"`
	Prefix     string `envconfig:"PREFIX" default:"[briskfarm]"`
}

type Server struct {
	Scheme string `envconfig:"SCHEME" default:"http"`
	Host   string `envconfig:"HOST" default:"localhost"`
	Port   int    `envconfig:"PORT" default:"8000"`
}

type App struct {
	Env       string     `envconfig:"APP_ENV" default:"development"`
	Server    *Server    `envconfig:"SERVER"`
	Log       *Log       `envconfig:"LOG"`
	DB        *DB        `envconfig:"DATABASE"`
	Jwt       *Jwt       `envconfig:"JWT"`
	Payment   *Payment   `envconfig:"PAYMENT"`
	Email     *Email     `envconfig:"EMAIL"`
	RateLimit *RateLimit `envconfig:"RATE_LIMIT"`
}
