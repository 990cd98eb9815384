package main

import (
	"fmt"
	"log"
	"os"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/DoSomethingGreat07/Online-taxi-rental-service/entity"
)

func setupDatabase() *gorm.DB {
	dsn := fmt.Sprintf(
		"host=%s user=%s password='%s' dbname=%s port=%s sslmode=%s",
		envOr("DB_HOST", "localhost"),
		envOr("DB_USER", "postgres"),
		os.Getenv("DB_PASSWORD"),
		envOr("DB_NAME", "taxi_rental"),
		envOr("DB_PORT", "5432"),
		envOr("DB_SSLMODE", "disable"),
	)

	// TranslateError turns unique-index violations into gorm.ErrDuplicatedKey,
	// which the allocation engine's retry loop depends on.
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatal("failed to connect database:", err)
	}

	if err := db.AutoMigrate(
		&entity.Manager{},
		&entity.Client{},
		&entity.ClientAddress{},
		&entity.CreditCard{},
		&entity.Vehicle{},
		&entity.VehicleModel{},
		&entity.Driver{},
		&entity.CapabilityGrant{},
		&entity.Rental{},
		&entity.Review{},
	); err != nil {
		log.Fatal("failed to run migrations:", err)
	}
	return db
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
