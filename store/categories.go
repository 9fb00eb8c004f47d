package store

import "github.com/priyeshgu/kqrgaushala-be/models"

// FormatDonationCategories groups a flat product listing into nested category
// views. Categories appear in order of first appearance in the input; donations
// within a category keep the input order. No sorting, no deduplication.
func FormatDonationCategories(products []models.DonationProduct) []models.DonationCategory {
	index := make(map[string]int)
	categories := make([]models.DonationCategory, 0, len(products))

	for _, product := range products {
		i, ok := index[product.Type]
		if !ok {
			i = len(categories)
			index[product.Type] = i
			categories = append(categories, models.DonationCategory{CategoryName: product.Type})
		}
		categories[i].Donations = append(categories[i].Donations, models.DonationItem{
			NameEnglish: product.NameInEnglish,
			NameHindi:   product.NameInHindi,
			CostPerUnit: product.Cost,
		})
	}

	return categories
}
