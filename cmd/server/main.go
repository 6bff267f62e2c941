package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/jinzhu/gorm"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"shiptrack/internal/configs"
	httpdelivery "shiptrack/internal/delivery/http"
	"shiptrack/internal/delivery/kafka"
	"shiptrack/internal/geo"
	"shiptrack/internal/jobs"
	"shiptrack/internal/mailer"
	"shiptrack/internal/repository"
	"shiptrack/internal/repository/cache"
	"shiptrack/internal/repository/postgres"
	"shiptrack/internal/service"
)

// @title shiptrack API
// @version 1.0
// @description Shipment tracking backend: shipment lifecycle, public tracking, CSV export, world map aggregation, service catalog and notification preferences.

// @host localhost:8080
// @basePath /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

func main() {
	_ = godotenv.Load()
	cfg, err := configs.LoadConfig()
	if err != nil {
		logrus.Fatalf("config load: %s", err)
	}
	logrus.Print("config parsed")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	db, err := openDB(cfg)
	if err != nil {
		logrus.Fatalf("postgres connect: %s", err)
	}
	defer func() {
		if derr := db.Close(); derr != nil {
			logrus.Errorf("db close: %v", derr)
		}
	}()
	logrus.Print("connected to postgres")

	if err := postgres.Migrate(db); err != nil {
		logrus.Fatalf("migrate: %s", err)
	}

	repo := repository.NewRepository(db)

	publisher := kafka.NewPublisher(cfg.KafkaBrokersSlice(), cfg.KafkaTopic)
	defer func() {
		if cerr := publisher.Close(); cerr != nil {
			logrus.Errorf("publisher close: %v", cerr)
		}
	}()

	geoCache := cache.NewCache(cache.WithTTL(cfg.GeocodeCacheTTL))
	defer geoCache.Close()
	locator := geo.NewGeocoder(cfg.GeocodeBaseURL, cfg.GeocodeTimeout, cache.NewGeoCache(geoCache))

	sender := mailer.New(mailer.SMTP{
		Host:      cfg.SMTPHost,
		Port:      cfg.SMTPPort,
		User:      cfg.SMTPUser,
		Pass:      cfg.SMTPPass,
		FromName:  cfg.SMTPFromName,
		FromEmail: cfg.SMTPFromEmail,
	})

	svc := service.NewService(repo, publisher, locator, sender)

	worldJob := jobs.NewWorldRefreshJob(svc, cfg.WorldRefreshCron)
	if err := worldJob.Start(); err != nil {
		logrus.Fatalf("world refresh job: %s", err)
	}
	defer worldJob.Stop()

	h := httpdelivery.NewHandler(httpdelivery.Services{
		Shipments:     svc,
		Catalog:       svc,
		Prefs:         svc,
		Contacts:      svc,
		Notifications: svc,
	}, httpdelivery.NewStaticTokens(cfg.AuthTokenEntries()))

	srv := new(httpdelivery.Server)
	go func() {
		if err := srv.Run(cfg.HTTPAddr, h.InitRoutes()); err != nil {
			logrus.Errorf("http run: %v", err)
			cancel()
		}
	}()
	logrus.Printf("http server started on %s", cfg.HTTPAddr)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)

	select {
	case <-quit:
		logrus.Print("shutdown signal received")
	case <-ctx.Done():
		logrus.Print("context canceled, shutting down")
	}

	if err := srv.Shutdown(context.Background()); err != nil {
		logrus.Errorf("http shutdown: %s", err)
	}
	logrus.Print("service stopped")
}

func openDB(cfg configs.Config) (*gorm.DB, error) {
	if cfg.DatabaseURL != "" {
		return postgres.ConnectURL(cfg.DatabaseURL)
	}
	return postgres.ConnectDB(postgres.Config{
		Host:     cfg.PostgresHost,
		Port:     cfg.PostgresPort,
		Username: cfg.PostgresUser,
		Password: cfg.PostgresPass,
		DbName:   cfg.PostgresDB,
		SslMode:  cfg.PostgresSSLMode,
	})
}
