package config

import (
	"log"
	"strings"

	"booking-backend/models"
)

// SeedDatabase inserts a few sample rooms when SEED_SAMPLE_DATA=true and the
// rooms table is empty.
func SeedDatabase() {
	if !strings.EqualFold(envOrDefault("SEED_SAMPLE_DATA", "false"), "true") {
		return
	}

	var count int64
	DB.Model(&models.Room{}).Count(&count)
	if count > 0 {
		log.Println("Rooms already seeded")
		return
	}

	rooms := []models.Room{
		{Description: "Standard room with city view", Price: 2000},
		{Description: "Superior room with balcony", Price: 3000},
		{Description: "Deluxe suite with sea view", Price: 5000},
	}
	if err := DB.Create(&rooms).Error; err != nil {
		log.Printf("warning: failed to seed rooms: %v", err)
		return
	}
	log.Println("Rooms seeded")
}
