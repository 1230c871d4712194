package config

import (
	"github.com/kelseyhightower/envconfig"
)

type App struct {
	// DB
	PGDonationsDSN string `envconfig:"PG_DONATIONS_DSN" required:"true"`
	// JWT
	JWTSecret    string `envconfig:"JWT_SECRET" required:"true"`
	JWTExpireMin int    `envconfig:"JWT_EXPIRE_MIN" default:"60"`
	// Stripe
	StripeSecretKey string `envconfig:"STRIPE_SECRET_KEY" required:"true"`
	StripeCurrency  string `envconfig:"STRIPE_CURRENCY" default:"usd"`
	// RabbitMQ
	RabbitURL        string `envconfig:"RABBIT_URL" required:"true"`
	DonationExchange string `envconfig:"DONATION_EXCHANGE" default:"donation.exchange"`
	// Network
	APIHTTPAddr    string   `envconfig:"API_HTTP_ADDR" default:":8080"`
	AllowedOrigins []string `envconfig:"ALLOWED_ORIGINS" default:"http://localhost:5173"`
	// Seed admin account (both empty -> no seeding)
	AdminEmail    string `envconfig:"ADMIN_EMAIL" default:""`
	AdminPassword string `envconfig:"ADMIN_PASSWORD" default:""`
}

func Load() (App, error) {
	var c App
	err := envconfig.Process("", &c)
	return c, err
}
