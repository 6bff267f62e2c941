package postgres

import (
	"github.com/jinzhu/gorm"

	"shiptrack/internal/models"
)

// Demo catalog entries with fixed ids, installed by the explicit seed
// command. Read paths never fall back to these.
var seedServices = []models.Service{
	{
		ID:          "64a000000000000000000001",
		Name:        "Express Delivery",
		Description: "Next business day delivery for urgent packages",
		Features:    []string{"Next day delivery", "Real-time tracking", "Insurance included"},
		Price:       "from $29.99",
		Icon:        "bolt",
		Active:      true,
	},
	{
		ID:          "64a000000000000000000002",
		Name:        "Standard Shipping",
		Description: "Reliable delivery within 3-5 business days",
		Features:    []string{"3-5 business days", "Tracking included", "Signature on delivery"},
		Price:       "from $9.99",
		Icon:        "truck",
		Active:      true,
	},
	{
		ID:          "64a000000000000000000003",
		Name:        "International Freight",
		Description: "Door-to-door international shipping with customs handling",
		Features:    []string{"Worldwide coverage", "Customs clearance", "Cargo insurance"},
		Price:       "quote on request",
		Icon:        "globe",
		Active:      true,
	},
}

// Seed installs the demo services. Existing ids are left untouched so
// the command stays safe to re-run.
func Seed(db *gorm.DB) (int, error) {
	created := 0
	for _, s := range seedServices {
		var count int
		if err := db.Model(&models.Service{}).Where("id = ?", s.ID).Count(&count).Error; err != nil {
			return created, err
		}
		if count > 0 {
			continue
		}
		if err := db.Create(&s).Error; err != nil {
			return created, err
		}
		created++
	}
	return created, nil
}
