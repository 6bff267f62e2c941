package models

import (
	"encoding/json"
	"time"
)

// Service is a catalog entry for a shipping offering. The price is a
// display string, not a structured amount. Shipments reference services
// by id without version pinning.
type Service struct {
	ID          string `json:"id"          validate:"required,len=24,hexadecimal" gorm:"primary_key;type:varchar(24)"`
	Name        string `json:"name"        validate:"required"`
	Description string `json:"description"`

	// Features is the ordered feature list, persisted as JSON text.
	Features    []string `json:"features" gorm:"-"`
	FeaturesRaw string   `json:"-"        gorm:"column:features;type:text"`

	Price  string `json:"price"`
	Icon   string `json:"icon"`
	Active bool   `json:"active" gorm:"index"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (s *Service) BeforeSave() error {
	if len(s.Features) == 0 {
		s.FeaturesRaw = ""
		return nil
	}
	raw, err := json.Marshal(s.Features)
	if err != nil {
		return err
	}
	s.FeaturesRaw = string(raw)
	return nil
}

func (s *Service) AfterFind() error {
	if s.FeaturesRaw == "" {
		return nil
	}
	return json.Unmarshal([]byte(s.FeaturesRaw), &s.Features)
}
