package main

import (
	"github.com/jinzhu/gorm"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"shiptrack/internal/configs"
	"shiptrack/internal/models"
	"shiptrack/internal/repository"
	"shiptrack/internal/repository/postgres"
)

// seed installs the demo service catalog and, when ADMIN_EMAIL is set,
// an admin preference record subscribed to admin-wide notifications.
// Re-running is safe: existing rows are left untouched.
func main() {
	_ = godotenv.Load()
	cfg, err := configs.LoadConfig()
	if err != nil {
		logrus.Fatalf("config load: %s", err)
	}

	db, err := openDB(cfg)
	if err != nil {
		logrus.Fatalf("postgres connect: %s", err)
	}
	defer func() {
		if derr := db.Close(); derr != nil {
			logrus.Errorf("db close: %v", derr)
		}
	}()

	if err := postgres.Migrate(db); err != nil {
		logrus.Fatalf("migrate: %s", err)
	}

	created, err := postgres.Seed(db)
	if err != nil {
		logrus.Fatalf("seed services: %s", err)
	}
	logrus.Printf("seeded %d catalog services", created)

	if cfg.AdminEmail != "" {
		repo := repository.NewRepository(db)
		if _, err := repo.Preferences.Get("admin"); gorm.IsRecordNotFoundError(err) {
			p := models.DefaultEmailPreferences("admin", cfg.AdminEmail)
			p.AdminNotifications = true
			if err := repo.Preferences.Upsert(p); err != nil {
				logrus.Fatalf("seed admin preferences: %s", err)
			}
			logrus.Printf("seeded admin preferences for %s", cfg.AdminEmail)
		} else if err != nil {
			logrus.Fatalf("check admin preferences: %s", err)
		}
	}
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
