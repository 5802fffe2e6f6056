package main

import (
	"log"
	"os"

	"github.com/harshil12345000/certifyr-sub001/internal/model"
	"github.com/harshil12345000/certifyr-sub001/pkg/database"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

func main() {
	// Load Environment Variables
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		log.Fatal("Error: DB_CONNECTION_STRING is not set")
	}

	db, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	log.Println("Seeding Notification Types...")
	SeedNotificationTypes(db)

	log.Println("Seeding Demo Organization...")
	seedDemoOrganization(db)

	log.Println("Seeding completed!")
}

// seedDemoOrganization creates a working tenant that the simulation
// client can log into: one owner account, two templates and a small
// person dataset.
func seedDemoOrganization(db *gorm.DB) {
	var existing model.Organization
	if err := db.Where("slug = ?", "demo-institute").First(&existing).Error; err == nil {
		log.Println("Demo organization already exists, skipping...")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("demo1234"), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("Error hashing demo password: %v", err)
		return
	}
	hashStr := string(hash)

	err = db.Transaction(func(tx *gorm.DB) error {
		owner := model.User{
			Email:        "admin@demo-institute.test",
			PasswordHash: &hashStr,
			FullName:     "Demo Admin",
			Role:         "owner",
			Status:       "active",
		}

		org := model.Organization{
			Name:                 "Demo Institute",
			Slug:                 "demo-institute",
			Address:              "12 College Road",
			Place:                "Springfield",
			Email:                "office@demo-institute.test",
			Phone:                "+1 555 0100",
			SignatoryName:        "Dr. A. Principal",
			SignatoryDesignation: "Principal",
		}

		if err := tx.Create(&org).Error; err != nil {
			return err
		}
		owner.OrganizationId = org.Id
		if err := tx.Create(&owner).Error; err != nil {
			return err
		}
		org.OwnerId = owner.Id
		if err := tx.Save(&org).Error; err != nil {
			return err
		}

		templates := []model.DocumentTemplate{
			{
				OrganizationId: org.Id,
				Name:           "Bonafide Certificate",
				Slug:           "bonafide-certificate",
				Keywords:       datatypes.NewJSONSlice([]string{"bonafide", "study certificate"}),
				RequiredFields: datatypes.NewJSONSlice([]string{"name", "department", "academic_year"}),
				Body:           "This is to certify that {{name}} of {{department}} is a bonafide student of this institute for the academic year {{academic_year}}.",
				IsActive:       true,
			},
			{
				OrganizationId: org.Id,
				Name:           "Transfer Certificate",
				Slug:           "transfer-certificate",
				Keywords:       datatypes.NewJSONSlice([]string{"transfer", "tc"}),
				RequiredFields: datatypes.NewJSONSlice([]string{"name", "father_name", "date_of_birth", "department"}),
				Body:           "Certified that {{name}}, son/daughter of {{father_name}}, born on {{date_of_birth}}, was a student of the {{department}} department.",
				IsActive:       true,
			},
		}
		if err := tx.Create(&templates).Error; err != nil {
			return err
		}

		dataset := model.PersonDataset{
			OrganizationId: org.Id,
			Name:           "Students 2026",
			FileName:       "students_2026.csv",
			RecordCount:    2,
			UploadedBy:     owner.Id,
		}
		if err := tx.Create(&dataset).Error; err != nil {
			return err
		}

		records := []model.PersonRecord{
			{
				OrganizationId: org.Id,
				DatasetId:      dataset.Id,
				Data: datatypes.JSONMap{
					"Student Name": "Ravi Kumar",
					"Roll No":      "CS-101",
					"Department":   "Computer Science",
					"DOB":          "14/03/2005",
					"Gender":       "M",
				},
			},
			{
				OrganizationId: org.Id,
				DatasetId:      dataset.Id,
				Data: datatypes.JSONMap{
					"Student Name": "Anita Sharma",
					"Roll No":      "EC-204",
					"Department":   "Electronics",
					"DOB":          "02/11/2004",
					"Gender":       "F",
				},
			},
		}
		return tx.Create(&records).Error
	})

	if err != nil {
		log.Printf("Error seeding demo organization: %v", err)
		return
	}
	log.Println("Created demo organization (login: admin@demo-institute.test / demo1234)")
}
