package database

import (
	"errors"
	"log"

	"trainhub/config"
	"trainhub/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// seedDefaults bootstraps the fixed admin account and, when the batch
// table is empty, a set of sample batches.
func seedDefaults(db *gorm.DB) {
	seedAdmin(db)
	seedSampleBatches(db)
}

func seedAdmin(db *gorm.DB) {
	var admin models.User
	err := db.Where("username = ?", config.AppConfig.AdminUsername).First(&admin).Error
	if err == nil {
		return
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Printf("Error checking for admin user: %v", err)
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(config.AppConfig.AdminPassword), config.AppConfig.SaltRound)
	if err != nil {
		log.Printf("Error hashing admin password: %v", err)
		return
	}

	admin = models.User{
		Username: config.AppConfig.AdminUsername,
		Email:    config.AppConfig.AdminEmail,
		Password: string(hashed),
		Name:     "Administrator",
		Role:     models.RoleAdmin,
	}
	if err := db.Create(&admin).Error; err != nil {
		log.Printf("Error seeding admin user: %v", err)
		return
	}
	log.Println("Seeded default admin user.")
}

func seedSampleBatches(db *gorm.DB) {
	var count int64
	if err := db.Model(&models.Batch{}).Count(&count).Error; err != nil {
		log.Printf("Error counting batches: %v", err)
		return
	}
	if count > 0 {
		return
	}

	batches := []models.Batch{
		{Name: "Full Stack Web Development", Duration: "12 weeks", StartDate: "2026-09-01", Status: models.BatchStatusUpcoming, MaxParticipants: 100},
		{Name: "Data Engineering Fundamentals", Duration: "8 weeks", StartDate: "2026-08-01", Status: models.BatchStatusActive, MaxParticipants: 100},
		{Name: "Cloud Infrastructure Basics", Duration: "6 weeks", StartDate: "2026-05-01", Status: models.BatchStatusCompleted, MaxParticipants: 100},
	}
	if err := db.Create(&batches).Error; err != nil {
		log.Printf("Error seeding sample batches: %v", err)
		return
	}
	log.Println("Seeded sample batches.")
}
