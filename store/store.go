package store

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/priyeshgu/kqrgaushala-be/models"
)

// ErrNotFound is returned when an update or delete matched no row.
var ErrNotFound = errors.New("record not found")

// Store is the gateway to the portal's three tables. Every method issues one
// autonomous statement with positional parameter binding; there are no
// transactions and no retries, so a storage failure reaches the caller as-is.
type Store struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

// RecordDonation inserts one donator row and fills in the generated id.
func (s *Store) RecordDonation(donator *models.Donator) error {
	donator.ID = 0 // id is always assigned by the database
	return s.db.Create(donator).Error
}

// ListDonators returns every donation ever recorded, id ascending.
func (s *Store) ListDonators() ([]models.Donator, error) {
	var donators []models.Donator
	if err := s.db.Order("id asc").Find(&donators).Error; err != nil {
		return nil, err
	}
	return donators, nil
}

// AddProduct inserts one catalog item and fills in the generated id.
func (s *Store) AddProduct(product *models.DonationProduct) error {
	product.ID = 0
	return s.db.Create(product).Error
}

// UpdateProduct replaces every non-id field of the product with the given id.
func (s *Store) UpdateProduct(product *models.DonationProduct) error {
	var existing models.DonationProduct
	if err := s.db.First(&existing, product.ID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	existing.NameInEnglish = product.NameInEnglish
	existing.NameInHindi = product.NameInHindi
	existing.Type = product.Type
	existing.Cost = product.Cost
	return s.db.Save(&existing).Error
}

// DeleteProduct removes a catalog item only when the id AND every other field
// match the stored row exactly. A caller holding a stale or partial copy of the
// record gets ErrNotFound and the row stays intact.
func (s *Store) DeleteProduct(product *models.DonationProduct) error {
	res := s.db.Where(
		"id = ? AND name_in_english = ? AND name_in_hindi = ? AND type = ? AND cost = ?",
		product.ID, product.NameInEnglish, product.NameInHindi, product.Type, product.Cost,
	).Delete(&models.DonationProduct{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// ListProducts returns the full catalog, id ascending.
func (s *Store) ListProducts() ([]models.DonationProduct, error) {
	var products []models.DonationProduct
	if err := s.db.Order("id asc").Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

// Subscribe appends a newsletter signup stamped with the current server time.
// Duplicate emails are accepted silently; no uniqueness is enforced here.
func (s *Store) Subscribe(email string) (models.NewsletterEntry, error) {
	entry := models.NewsletterEntry{Email: email, CreatedAt: time.Now()}
	if err := s.db.Create(&entry).Error; err != nil {
		return models.NewsletterEntry{}, err
	}
	return entry, nil
}

// Ping checks the underlying connection pool.
func (s *Store) Ping() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}
