package app

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

// Config holds every tunable of the service. All values come from the
// environment; a .env file in the working directory is loaded first if
// present so local development needs no exported variables.
type Config struct {
	Env       string `env:"ENV" envDefault:"dev"`
	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"json"`
	Port      int    `env:"PORT" envDefault:"8080"`

	DatabaseFile string `env:"AUTH_DATABASE_FILE" envDefault:"auth.db"`
	PepperFile   string `env:"AUTH_PEPPER_FILE" envDefault:"pepper"`

	// ResetBaseURL is the page the emailed reset link points at; the raw
	// token is appended as a query parameter.
	ResetBaseURL  string        `env:"RESET_BASE_URL" envDefault:"http://localhost:5500/pages/reset-password.html"`
	ResetTokenTTL time.Duration `env:"RESET_TOKEN_TTL" envDefault:"10m"`

	ShutdownGracePeriod  time.Duration `env:"SHUTDOWN_GRACE_PERIOD" envDefault:"10s"`
	HousekeepingInterval time.Duration `env:"HOUSEKEEPING_INTERVAL" envDefault:"1h"`

	// MailDriver selects how reset links leave the service: "smtp" sends
	// real email, "log" writes the link to the service log, "disabled"
	// fails every forgot-password request.
	MailDriver   string `env:"MAIL_DRIVER" envDefault:"log"`
	SMTPHost     string `env:"SMTP_HOST"`
	SMTPPort     int    `env:"SMTP_PORT" envDefault:"587"`
	SMTPUser     string `env:"SMTP_USER"`
	SMTPPass     string `env:"SMTP_PASS"`
	SMTPFrom     string `env:"SMTP_FROM"`
	SMTPFromName string `env:"SMTP_FROM_NAME" envDefault:"FreightFlow Support"`
	SMTPUseTLS   bool   `env:"SMTP_USE_TLS" envDefault:"false"`
}

// LoadConfig loads configuration from a .env file (if any) and the process
// environment. Environment variables win over .env entries.
func LoadConfig() (Config, error) {
	// Ignore a missing .env; only the environment is authoritative.
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse environment: %w", err)
	}

	return cfg, nil
}
