package models

import "time"

type NewsletterEntry struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Email     string    `gorm:"column:email" json:"email"`
	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
}

// TableName to override the default pluralized name
func (NewsletterEntry) TableName() string {
	return "newsletter" // the portal's table is singular
}
