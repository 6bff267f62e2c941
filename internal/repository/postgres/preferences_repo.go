package postgres

import (
	"github.com/jinzhu/gorm"
	"github.com/pkg/errors"

	"shiptrack/internal/models"
)

type PreferencesPostgresRepo struct {
	db *gorm.DB
}

func NewPreferencesPostgres(db *gorm.DB) *PreferencesPostgresRepo {
	return &PreferencesPostgresRepo{db: db}
}

func (r *PreferencesPostgresRepo) Get(userID string) (models.EmailPreferences, error) {
	var p models.EmailPreferences
	q := r.db.Where("user_id = ?", userID).First(&p)
	return p, q.Error
}

func (r *PreferencesPostgresRepo) FindByEmail(email string) (models.EmailPreferences, error) {
	var p models.EmailPreferences
	q := r.db.Where("email = ?", email).First(&p)
	return p, q.Error
}

// Upsert saves the preferences record, replacing any existing one for
// the same user.
func (r *PreferencesPostgresRepo) Upsert(p models.EmailPreferences) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var existing models.EmailPreferences
		err := tx.Where("user_id = ?", p.UserID).First(&existing).Error
		switch {
		case gorm.IsRecordNotFoundError(err):
			return errors.Wrap(tx.Create(&p).Error, "create preferences")
		case err != nil:
			return err
		default:
			return errors.Wrap(tx.Model(&existing).Updates(map[string]interface{}{
				"email":                     p.Email,
				"shipment_created":          p.ShipmentCreated,
				"shipment_picked_up":        p.ShipmentPickedUp,
				"shipment_in_transit":       p.ShipmentInTransit,
				"shipment_out_for_delivery": p.ShipmentOutForDelivery,
				"shipment_delivered":        p.ShipmentDelivered,
				"shipment_cancelled":        p.ShipmentCancelled,
				"admin_notifications":       p.AdminNotifications,
			}).Error, "update preferences")
		}
	})
}

func (r *PreferencesPostgresRepo) Delete(userID string) error {
	return r.db.Where("user_id = ?", userID).Delete(models.EmailPreferences{}).Error
}

// AdminEnabled lists every user who opted into admin-wide notifications.
func (r *PreferencesPostgresRepo) AdminEnabled() ([]models.EmailPreferences, error) {
	var out []models.EmailPreferences
	q := r.db.Where("admin_notifications = ?", true).Find(&out)
	return out, q.Error
}
