package database

import (
	"fmt"
	"log"
	"os"

	"internship-app/internal/domain/billing"
	"internship-app/internal/domain/internships"
	"internship-app/internal/domain/plans"
	"internship-app/internal/domain/referrals"
	"internship-app/internal/domain/users"
	"internship-app/internal/kvstore"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func InitDB() {
	dsn := os.Getenv("DB_URL")
	if dsn == "" {
		log.Fatal("❌ DB_URL not set")
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatal("❌ Failed to connect to database:", err)
	}

	DB = db

	if err := DB.AutoMigrate(
		// core
		&users.User{},
		&users.VerificationToken{},
		&plans.Plan{},
		&billing.Payment{},

		// entitlement / token state
		&kvstore.Record{},

		// catalog
		&internships.Internship{},
		&internships.Application{},

		// referrals
		&referrals.Code{},
		&referrals.Redemption{},
	); err != nil {
		log.Fatal("❌ AutoMigrate error:", err)
	}

	fmt.Println("✅ Connected and migrated successfully")
}
