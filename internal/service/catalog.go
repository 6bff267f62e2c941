package service

import (
	"time"

	"github.com/jinzhu/gorm"

	"shiptrack/internal/models"
)

type ServiceInput struct {
	Name        string   `json:"name" validate:"required"`
	Description string   `json:"description"`
	Features    []string `json:"features"`
	Price       string   `json:"price"`
	Icon        string   `json:"icon"`
	Active      *bool    `json:"active"`
}

// ListServices returns the catalog. An empty catalog is returned as-is;
// demo data is installed by the seed command, never faked here.
func (s *Service) ListServices(activeOnly bool) ([]models.Service, error) {
	services, err := s.repo.Services.List(activeOnly)
	if err != nil {
		return nil, err
	}
	if services == nil {
		services = []models.Service{}
	}
	return services, nil
}

func (s *Service) CreateService(in ServiceInput) (models.Service, error) {
	if err := s.validate(in); err != nil {
		return models.Service{}, err
	}

	active := true
	if in.Active != nil {
		active = *in.Active
	}
	now := time.Now().UTC()

	svc := models.Service{
		ID:          newID(),
		Name:        in.Name,
		Description: in.Description,
		Features:    in.Features,
		Price:       in.Price,
		Icon:        in.Icon,
		Active:      active,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.repo.Services.Create(svc); err != nil {
		return models.Service{}, err
	}
	return svc, nil
}

func (s *Service) UpdateService(id string, in ServiceInput) (models.Service, error) {
	if err := s.validate(in); err != nil {
		return models.Service{}, err
	}

	updates := map[string]interface{}{
		"name":        in.Name,
		"description": in.Description,
		"price":       in.Price,
		"icon":        in.Icon,
		"updated_at":  time.Now().UTC(),
	}
	if in.Active != nil {
		updates["active"] = *in.Active
	}
	if in.Features != nil {
		tmp := models.Service{Features: in.Features}
		if err := tmp.BeforeSave(); err != nil {
			return models.Service{}, err
		}
		updates["features"] = tmp.FeaturesRaw
	}

	if err := s.repo.Services.Update(id, updates); err != nil {
		if gorm.IsRecordNotFoundError(err) {
			return models.Service{}, ErrNotFound
		}
		return models.Service{}, err
	}
	return s.repo.Services.Get(id)
}

func (s *Service) DeleteService(id string) error {
	if err := s.repo.Services.Delete(id); err != nil {
		if gorm.IsRecordNotFoundError(err) {
			return ErrNotFound
		}
		return err
	}
	return nil
}
