package main

import (
	"log"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/kelseyhightower/envconfig"

	"github.com/hyperlinqai/tulip-foundation/services/mail-relay/internal/handlers"
	"github.com/hyperlinqai/tulip-foundation/services/mail-relay/internal/mailer"
)

type Cfg struct {
	RelayHTTPAddr  string   `envconfig:"RELAY_HTTP_ADDR" default:":3001"`
	AllowedOrigins []string `envconfig:"ALLOWED_ORIGINS" default:"http://localhost:5173"`

	SMTPHost string `envconfig:"SMTP_HOST" required:"true"`
	SMTPPort int    `envconfig:"SMTP_PORT" default:"587"`
	SMTPUser string `envconfig:"SMTP_USER" required:"true"`
	SMTPPass string `envconfig:"SMTP_PASS" required:"true"`
	MailFrom string `envconfig:"MAIL_FROM" required:"true"`

	// Falls back to handlers.FallbackRecipient when unset.
	VolunteerRecipient string `envconfig:"VOLUNTEER_RECIPIENT" default:""`
}

func must[T any](v T, err error) T {
	if err != nil {
		log.Fatal(err)
	}
	return v
}

func main() {
	var cfg Cfg
	must(0, envconfig.Process("", &cfg))

	sender := mailer.NewSMTPSender(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass, cfg.MailFrom)
	vh := handlers.NewVolunteerHandler(sender, cfg.VolunteerRecipient)

	r := gin.Default()
	r.Use(cors.New(cors.Config{
		AllowOrigins: cfg.AllowedOrigins,
		AllowMethods: []string{"GET", "POST", "OPTIONS"},
		AllowHeaders: []string{"Content-Type"},
		MaxAge:       12 * time.Hour,
	}))

	r.POST("/send-volunteer-application", vh.SendApplication)
	r.GET("/test", vh.Test)

	log.Println("mail-relay on", cfg.RelayHTTPAddr)
	r.Run(cfg.RelayHTTPAddr)
}
