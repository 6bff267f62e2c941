package postgres

import (
	"github.com/jinzhu/gorm"
	"github.com/pkg/errors"

	"shiptrack/internal/models"
)

type ServicePostgresRepo struct {
	db *gorm.DB
}

func NewServicePostgres(db *gorm.DB) *ServicePostgresRepo {
	return &ServicePostgresRepo{db: db}
}

func (r *ServicePostgresRepo) Create(s models.Service) error {
	return errors.Wrap(r.db.Create(&s).Error, "create service")
}

func (r *ServicePostgresRepo) Update(id string, updates map[string]interface{}) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var s models.Service
		if err := tx.Where("id = ?", id).First(&s).Error; err != nil {
			return err
		}
		return tx.Model(&models.Service{}).Where("id = ?", id).Updates(updates).Error
	})
}

func (r *ServicePostgresRepo) Get(id string) (models.Service, error) {
	var s models.Service
	q := r.db.Where("id = ?", id).First(&s)
	return s, q.Error
}

func (r *ServicePostgresRepo) List(activeOnly bool) ([]models.Service, error) {
	q := r.db.Order("name ASC")
	if activeOnly {
		q = q.Where("active = ?", true)
	}

	var out []models.Service
	if err := q.Find(&out).Error; err != nil {
		return nil, errors.Wrap(err, "list services")
	}
	return out, nil
}

func (r *ServicePostgresRepo) Delete(id string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var s models.Service
		if err := tx.Where("id = ?", id).First(&s).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(models.Service{}).Error
	})
}
