package database

import (
	"fmt"
	"log"
	"os"

	"github.com/priyansh-ag/jobbot-backend/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func Connect() *gorm.DB {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = fmt.Sprintf(
			"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
			envOr("DB_HOST", "localhost"),
			envOr("DB_USER", "postgres"),
			envOr("DB_PASSWORD", "password"),
			envOr("DB_NAME", "jobbot"),
			envOr("DB_PORT", "5432"),
		)
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	log.Println("Database connection established")

	log.Println("Running Migrations...")
	err = db.AutoMigrate(
		&models.UserProfile{},
		&models.Campaign{},
		&models.Job{},
		&models.Application{},
		&models.AIPreference{},
		&models.AIGeneration{},
	)
	if err != nil {
		log.Fatal("Migration failed:", err)
	}
	return db
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
