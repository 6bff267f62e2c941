package service

import (
	"github.com/jinzhu/gorm"

	"shiptrack/internal/models"
)

// GetPreferences returns the stored record, creating one with all-true
// shipment flags (admin flag off) on first read.
func (s *Service) GetPreferences(userID, email string) (models.EmailPreferences, error) {
	p, err := s.repo.Preferences.Get(userID)
	if err == nil {
		return p, nil
	}
	if !gorm.IsRecordNotFoundError(err) {
		return models.EmailPreferences{}, err
	}

	p = models.DefaultEmailPreferences(userID, email)
	if err := s.repo.Preferences.Upsert(p); err != nil {
		return models.EmailPreferences{}, err
	}
	return p, nil
}

func (s *Service) SavePreferences(p models.EmailPreferences) (models.EmailPreferences, error) {
	if err := s.validate(p); err != nil {
		return models.EmailPreferences{}, err
	}
	if err := s.repo.Preferences.Upsert(p); err != nil {
		return models.EmailPreferences{}, err
	}
	return s.repo.Preferences.Get(p.UserID)
}

// ResetPreferences drops the stored record; the next read recreates the
// defaults.
func (s *Service) ResetPreferences(userID string) error {
	return s.repo.Preferences.Delete(userID)
}
