package postgres

import (
	"github.com/jinzhu/gorm"
	"github.com/pkg/errors"

	"shiptrack/internal/models"
)

type ContactPostgresRepo struct {
	db *gorm.DB
}

func NewContactPostgres(db *gorm.DB) *ContactPostgresRepo {
	return &ContactPostgresRepo{db: db}
}

func (r *ContactPostgresRepo) Create(f models.ContactForm) error {
	return errors.Wrap(r.db.Create(&f).Error, "create contact form")
}

func (r *ContactPostgresRepo) List(page, limit int) ([]models.ContactForm, int, error) {
	var total int
	if err := r.db.Model(&models.ContactForm{}).Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "count contact forms")
	}

	if page < 1 {
		page = 1
	}
	q := r.db.Order("created_at DESC")
	if limit > 0 {
		q = q.Offset((page - 1) * limit).Limit(limit)
	}

	var out []models.ContactForm
	if err := q.Find(&out).Error; err != nil {
		return nil, 0, errors.Wrap(err, "list contact forms")
	}
	return out, total, nil
}
