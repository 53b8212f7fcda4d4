// Command seed creates the admin account and loads a starter fee schedule
// so a fresh environment can accept submissions.
package main

import (
	"context"
	"log"
	"os"

	"pullapi/internal/config"
	"pullapi/internal/models"
	"pullapi/internal/repositories"

	"golang.org/x/crypto/bcrypt"
)

func main() {
	config.LoadEnv()

	adminEmail := os.Getenv("ADMIN_EMAIL")
	adminPassword := os.Getenv("ADMIN_PASSWORD")
	adminUsername := os.Getenv("ADMIN_USERNAME")

	if adminEmail == "" || adminPassword == "" || adminUsername == "" {
		log.Fatal("ADMIN_EMAIL, ADMIN_PASSWORD, and ADMIN_USERNAME must be set in environment")
	}

	if err := repositories.InitDB(); err != nil {
		log.Fatal("Failed to initialize database:", err)
	}
	defer func() {
		if repositories.DB != nil {
			sqlDB, err := repositories.DB.DB()
			if err != nil {
				log.Printf("⚠️ Failed to get SQL DB instance: %v", err)
			} else if err := sqlDB.Close(); err != nil {
				log.Printf("⚠️ Failed to close PostgreSQL connection: %v", err)
			}
		}
		if repositories.CacheService != nil {
			if err := repositories.CacheService.Close(); err != nil {
				log.Printf("⚠️ Failed to close Redis connection: %v", err)
			}
		}
	}()

	seedAdmin(adminUsername, adminEmail, adminPassword)
	seedFeeRules()
}

func seedAdmin(username, email, password string) {
	var existing models.User
	if err := repositories.DB.Where("email = ?", email).First(&existing).Error; err == nil {
		log.Println("Admin user already exists")
		return
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal("Failed to hash password:", err)
	}

	admin := models.User{
		Username:     username,
		Email:        email,
		Password:     string(hashedPassword),
		Name:         "Administrator",
		AgentName:    os.Getenv("ADMIN_AGENT_NAME"),
		Role:         "admin",
		TokenVersion: 1,
	}

	if err := repositories.DB.Create(&admin).Error; err != nil {
		log.Fatal("Failed to create admin user:", err)
	}

	log.Println("✅ Admin account created successfully!")
}

func seedFeeRules() {
	bank := "BANK"
	cash := "CASH"
	f64 := func(v float64) *float64 { return &v }

	rules := []models.FeeRule{
		{ReceivingCountry: "FR", Currency: models.CurrencyEUR, TransferType: &bank, IsDeposit: true, FeeInPercent: f64(3)},
		{ReceivingCountry: "DE", Currency: models.CurrencyEUR, TransferType: &bank, IsDeposit: true, FeeInPercent: f64(2.5)},
		{ReceivingCountry: "PH", Currency: models.CurrencyUSD, TransferType: &cash, IsPickup: true, FeeFixedAmount: f64(7)},
		{ReceivingCountry: "TH", Currency: models.CurrencyUSD, TransferType: &cash, IsPickup: true, FeeFixedAmount: f64(5)},
	}

	for _, rule := range rules {
		var existing models.FeeRule
		q := repositories.DB.Where(
			"receiving_country = ? AND currency = ? AND is_deposit = ? AND is_pickup = ?",
			rule.ReceivingCountry, rule.Currency, rule.IsDeposit, rule.IsPickup)
		if rule.TransferType != nil {
			q = q.Where("transfer_type = ?", *rule.TransferType)
		} else {
			q = q.Where("transfer_type IS NULL")
		}
		if err := q.First(&existing).Error; err == nil {
			continue
		}
		if err := repositories.DB.Create(&rule).Error; err != nil {
			log.Fatal("Failed to seed fee rule:", err)
		}
	}

	// Stale cached rules would shadow the fresh schedule.
	if repositories.CacheService != nil {
		if err := repositories.CacheService.DeleteByPattern(context.Background(), "fee_rule:*"); err != nil {
			log.Printf("⚠️ Failed to invalidate fee rule cache: %v", err)
		}
	}

	log.Println("✅ Fee schedule seeded successfully!")
}
