package database

import (
	"fmt"
	"log"

	"gorm.io/gorm"

	"github.com/hospistay/backend/internal/models"
)

// SeedPrecautions is the fixed advisory catalog inserted at first startup.
// The texts are part of the external contract; do not reword them.
var SeedPrecautions = []string{
	"Maintain proper hygiene to prevent hospital-acquired infections.",
	"Follow all prescribed medication schedules without missing doses.",
	"Engage in light physical activity as recommended by your healthcare provider.",
	"Ensure adequate hydration and nutrition during your hospital stay.",
	"Communicate openly with your care team about any concerns or symptoms.",
	"Get sufficient rest to support your body's healing process.",
	"Keep your environment clean and sanitized.",
	"Monitor your vital signs regularly as instructed.",
	"Report any new or worsening symptoms immediately.",
	"Follow discharge instructions carefully to prevent readmission.",
}

// Migrate creates the schema for all record-store entities
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Precaution{},
		&models.Prediction{},
	)
}

// Seed inserts the precaution catalog when the table is empty. Calling it
// again is a no-op, so restarts never duplicate rows.
func Seed(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Precaution{}).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to count precautions: %w", err)
	}
	if count > 0 {
		return nil
	}

	for _, text := range SeedPrecautions {
		if err := db.Create(&models.Precaution{Text: text}).Error; err != nil {
			return fmt.Errorf("failed to seed precaution: %w", err)
		}
	}

	log.Printf("Seeded %d precautions", len(SeedPrecautions))
	return nil
}
