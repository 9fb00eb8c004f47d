package models

// DonationCategory is derived on read by grouping donation products on their
// type tag. It is never persisted.
type DonationCategory struct {
	CategoryName string         `json:"categoryName"`
	Donations    []DonationItem `json:"donations"`
}

type DonationItem struct {
	NameEnglish string  `json:"nameEnglish"`
	NameHindi   string  `json:"nameHindi"`
	CostPerUnit float64 `json:"costPerUnit"`
}
