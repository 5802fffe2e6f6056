package main

import (
	"log"

	"github.com/harshil12345000/certifyr-sub001/internal/model"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// SeedNotificationTypes populates the database with default notification types.
func SeedNotificationTypes(db *gorm.DB) {
	types := []model.NotificationType{
		{
			Code:        "DOCUMENT_GENERATED",
			DisplayName: "Document Generated",
			Template:    "Document \"{template_name}\" was issued for {person_name}",
			TargetType:  "SELF",
			Priority:    "MEDIUM",
			IsActive:    true,
			Channels:    datatypes.JSON([]byte(`["web"]`)),
		},
		{
			Code:        "DATASET_IMPORTED",
			DisplayName: "Dataset Imported",
			Template:    "Dataset \"{dataset_name}\" imported with {record_count} records",
			TargetType:  "SELF",
			Priority:    "LOW",
			IsActive:    true,
			Channels:    datatypes.JSON([]byte(`["web"]`)),
		},
		{
			Code:        "USER_REGISTERED",
			DisplayName: "New Registration",
			Template:    "Welcome to Certifyr, {full_name}!",
			TargetType:  "SELF",
			Priority:    "LOW",
			IsActive:    true,
			Channels:    datatypes.JSON([]byte(`["web"]`)),
		},
		{
			Code:        "SYSTEM_ANNOUNCEMENT",
			DisplayName: "System Announcement",
			Template:    "{message}",
			TargetType:  "BROADCAST",
			Priority:    "HIGH",
			IsActive:    true,
			Channels:    datatypes.JSON([]byte(`["web"]`)),
		},
	}

	for _, t := range types {
		var existing model.NotificationType
		if err := db.Where("code = ?", t.Code).First(&existing).Error; err == nil {
			log.Printf("Notification type '%s' already exists, skipping...", t.Code)
			continue
		}

		if err := db.Create(&t).Error; err != nil {
			log.Printf("Error creating notification type '%s': %v", t.Code, err)
		} else {
			log.Printf("Created notification type: %s", t.Code)
		}
	}
}
