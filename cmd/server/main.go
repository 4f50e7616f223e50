package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	gintrace "gopkg.in/DataDog/dd-trace-go.v1/contrib/gin-gonic/gin"
	"gopkg.in/DataDog/dd-trace-go.v1/ddtrace/tracer"

	"github.com/cloudlearn-droid/CloudVault/cmd/middleware"
	"github.com/cloudlearn-droid/CloudVault/internal/api"
	"github.com/cloudlearn-droid/CloudVault/internal/api/handlers/file"
	"github.com/cloudlearn-droid/CloudVault/internal/api/handlers/share"
	"github.com/cloudlearn-droid/CloudVault/internal/configuration"
	natsroutes "github.com/cloudlearn-droid/CloudVault/internal/nats"
	"github.com/cloudlearn-droid/CloudVault/internal/services"
)

func main() {
	cfg := configuration.Load()

	if cfg.DDEnabled {
		tracer.Start(tracer.WithService("cloudvault-backend"))
		defer tracer.Stop()
	}

	// PostgreSQL
	if err := services.InitializePostgres(cfg.Database.ConnectionString()); err != nil {
		log.Fatalf("Failed to connect to PostgreSQL: %v", err)
	}

	// MinIO
	if err := services.InitializeMinio(
		cfg.MinIO.Endpoint,
		cfg.MinIO.AccessKey,
		cfg.MinIO.SecretKey,
		cfg.MinIO.BucketName,
		cfg.MinIO.UseSSL,
	); err != nil {
		log.Fatalf("Failed to connect to MinIO: %v", err)
	}

	// NATS JetStream
	if _, _, err := services.ConnectNATS(cfg.NATSURL); err != nil {
		log.Printf("Warning: NATS unavailable, events disabled: %v", err)
	} else {
		defer services.CloseNATS()
		if err := natsroutes.SubscribeAll(natsroutes.Routes()); err != nil {
			log.Printf("Warning: failed to subscribe to events: %v", err)
		}
	}

	// Auth: local session tokens by default, OIDC when an issuer is set
	services.InitializeIdentity(cfg.JWTSecret)
	if cfg.OIDCIssuerURL != "" {
		if err := middleware.InitAuth(cfg.OIDCIssuerURL); err != nil {
			log.Fatalf("Failed to initialize OIDC: %v", err)
		}
	}

	// Handler wiring
	file.Init(cfg.CLAMAVURL)
	share.Init(cfg.PublicBaseURL, time.Duration(cfg.LinkTTLHours)*time.Hour)

	setupGracefulShutdown()

	r := gin.Default()
	if cfg.DDEnabled {
		r.Use(gintrace.Middleware("cloudvault-backend"))
	}

	api.RegisterRoutes(r)

	addr := ":" + cfg.Server.Port
	log.Println("Server starting on " + addr)
	if err := r.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func setupGracefulShutdown() {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		log.Println("Shutting down gracefully...")
		services.CloseNATS()
		os.Exit(0)
	}()
}
