package models

// Donator is one submitted donation transaction. Amount, datetime and units are
// stored exactly as the portal front-end submits them (strings); this layer does
// not parse or validate them.
type Donator struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	Name      string `gorm:"column:name" json:"name"`
	PhoneNum  string `gorm:"column:phone_num" json:"phone_num"`
	Email     string `gorm:"column:email" json:"email"`
	Address   string `gorm:"column:address" json:"address"`
	Product   string `gorm:"column:product" json:"product"`
	Type      string `gorm:"column:type" json:"type"`
	Amount    string `gorm:"column:amount" json:"amount"`
	Datetime  string `gorm:"column:datetime" json:"datetime"`
	PanNumber string `gorm:"column:pan_number" json:"pan_number"`
	Units     string `gorm:"column:units" json:"units"`
	OrderID   string `gorm:"column:order_id" json:"order_id"`
}
