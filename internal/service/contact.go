package service

import (
	"time"

	"shiptrack/internal/models"
)

func (s *Service) SubmitContact(f models.ContactForm) (models.ContactForm, error) {
	if err := s.validate(f); err != nil {
		return models.ContactForm{}, err
	}

	f.ID = 0
	f.Status = models.ContactStatusNew
	f.CreatedAt = time.Now().UTC()

	if err := s.repo.Contacts.Create(f); err != nil {
		return models.ContactForm{}, err
	}
	return f, nil
}

func (s *Service) ListContacts(page, limit int) ([]models.ContactForm, int, error) {
	if limit <= 0 {
		limit = 20
	}
	return s.repo.Contacts.List(page, limit)
}
