package migrations

import (
	"gorm.io/gorm"

	"github.com/priyeshgu/kqrgaushala-be/models"
)

// Run creates or updates the portal's three tables.
func Run(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Donator{},
		&models.DonationProduct{},
		&models.NewsletterEntry{},
	)
}
