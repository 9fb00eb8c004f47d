package models

// DonationProduct is one catalog item donors can fund, tagged with the category
// (type) it is grouped under.
type DonationProduct struct {
	ID            uint    `gorm:"primaryKey" json:"id"`
	NameInEnglish string  `gorm:"column:name_in_english" json:"name_in_english"`
	NameInHindi   string  `gorm:"column:name_in_hindi" json:"name_in_hindi"`
	Type          string  `gorm:"column:type" json:"type"`
	Cost          float64 `gorm:"column:cost" json:"cost"`
}
