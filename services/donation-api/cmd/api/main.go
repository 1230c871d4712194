package main

import (
	"context"
	"log"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/hyperlinqai/tulip-foundation/pkg/config"
	"github.com/hyperlinqai/tulip-foundation/pkg/db"
	"github.com/hyperlinqai/tulip-foundation/pkg/mq"
	"github.com/hyperlinqai/tulip-foundation/pkg/obs"
	"github.com/hyperlinqai/tulip-foundation/services/donation-api/internal/handlers"
	"github.com/hyperlinqai/tulip-foundation/services/donation-api/internal/middlewares"
	"github.com/hyperlinqai/tulip-foundation/services/donation-api/internal/payments"
	"github.com/hyperlinqai/tulip-foundation/services/donation-api/internal/repository"
	"github.com/hyperlinqai/tulip-foundation/services/donation-api/internal/service"
)

func must[T any](v T, err error) T {
	if err != nil {
		log.Fatal(err)
	}
	return v
}

func main() {
	cfg := must(config.Load())

	shutdown := obs.InitTracer("donation-api")
	defer func() { _ = shutdown(context.Background()) }()

	// DB + repos
	gdb := db.Open(cfg.PGDonationsDSN)
	regRepo := repository.NewRegistrationRepo(gdb)
	donRepo := repository.NewDonationRepo(gdb)
	userRepo := repository.NewAdminUserRepo(gdb)
	must(0, regRepo.Migrate())
	must(0, donRepo.Migrate())
	must(0, userRepo.Migrate())

	// Events
	pub := must(mq.NewPublisher(cfg.RabbitURL, cfg.DonationExchange))
	defer pub.Close()

	// Gateway + services
	gw := payments.NewStripeGateway(cfg.StripeSecretKey, cfg.StripeCurrency)
	donationSvc := service.NewDonationSvc(donRepo, gw, pub)
	adminSvc := service.NewAdminSvc(regRepo, donRepo, pub)
	authSvc := service.NewAuthSvc(userRepo, time.Duration(cfg.JWTExpireMin)*time.Minute)
	must(0, authSvc.EnsureAdmin(context.Background(), cfg.AdminEmail, cfg.AdminPassword))

	r := gin.Default()
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PATCH", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	v1 := r.Group("/v1")
	{
		ah := handlers.NewAuthHandler(authSvc)
		v1.POST("/auth/login", ah.Login)

		dh := handlers.NewDonationHandler(donationSvc)
		v1.POST("/donations/intent", dh.CreateIntent)
		v1.POST("/donations", dh.Submit)

		admin := v1.Group("/admin")
		admin.Use(middlewares.JWTAuth(), middlewares.RequireAdmin())
		{
			adh := handlers.NewAdminHandler(adminSvc)
			admin.GET("/registrations", adh.ListRegistrations)
			admin.GET("/donations", adh.ListDonations)
			admin.GET("/stats", adh.Stats)
			admin.PATCH("/registrations/:id/payment-status", adh.UpdatePaymentStatus)
			admin.PATCH("/donations/:id/status", adh.UpdateDonationStatus)
			admin.POST("/donations/:id/certificate", adh.SendCertificate)
			admin.GET("/export/:kind", adh.Export)
		}
	}

	log.Println("donation-api on", cfg.APIHTTPAddr)
	r.Run(cfg.APIHTTPAddr)
}
