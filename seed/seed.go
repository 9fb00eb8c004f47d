// seed/seed.go
package seed

import (
	"log"

	"gorm.io/gorm"

	"github.com/priyeshgu/kqrgaushala-be/models"
)

// Products inserts a starter donation catalog when the product table is empty.
func Products(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.DonationProduct{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		log.Println("Donation products already present. Skipping seeding.")
		return nil
	}

	products := []models.DonationProduct{
		{NameInEnglish: "Dry Fodder", NameInHindi: "सूखा चारा", Type: "Daily Care", Cost: 51},
		{NameInEnglish: "Green Fodder", NameInHindi: "हरा चारा", Type: "Daily Care", Cost: 101},
		{NameInEnglish: "Cattle Feed", NameInHindi: "पशु आहार", Type: "Daily Care", Cost: 151},
		{NameInEnglish: "Medicine Kit", NameInHindi: "दवा किट", Type: "Medical Care", Cost: 501},
		{NameInEnglish: "Shelter Repair", NameInHindi: "आश्रय मरम्मत", Type: "Shelter", Cost: 1100},
	}
	if err := db.Create(&products).Error; err != nil {
		return err
	}

	log.Println("Starter donation products seeded successfully.")
	return nil
}
