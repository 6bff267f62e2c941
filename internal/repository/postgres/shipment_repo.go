package postgres

import (
	"time"

	"github.com/jinzhu/gorm"
	"github.com/pkg/errors"

	"shiptrack/internal/models"
)

type ShipmentPostgresRepo struct {
	db *gorm.DB
}

func NewShipmentPostgres(db *gorm.DB) *ShipmentPostgresRepo {
	return &ShipmentPostgresRepo{db: db}
}

// CreateWithEvent stores a shipment together with its first tracking
// event in one transaction.
func (r *ShipmentPostgresRepo) CreateWithEvent(sh models.Shipment, ev models.TrackingEvent) error {
	ev.ShipmentRefer = sh.ID

	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&sh).Error; err != nil {
			return errors.Wrap(err, "create shipment")
		}
		if err := tx.Create(&ev).Error; err != nil {
			return errors.Wrap(err, "create tracking event")
		}
		return nil
	})
}

func (r *ShipmentPostgresRepo) GetByID(id string) (models.Shipment, error) {
	var sh models.Shipment
	q := r.db.Where("id = ?", id).First(&sh)
	return sh, q.Error
}

func (r *ShipmentPostgresRepo) GetByTrackingNumber(number string) (models.Shipment, error) {
	var sh models.Shipment
	q := r.db.Where("tracking_number = ?", number).First(&sh)
	return sh, q.Error
}

func (r *ShipmentPostgresRepo) filtered(f models.ShipmentFilter) *gorm.DB {
	q := r.db.Model(&models.Shipment{})

	if f.Status != "" && f.Status != "all" {
		q = q.Where("status = ?", f.Status)
	}
	if f.ServiceID != "" {
		q = q.Where("service_id = ?", f.ServiceID)
	}
	if f.Search != "" {
		p := "%" + f.Search + "%"
		q = q.Where(
			"tracking_number ILIKE ? OR sender_name ILIKE ? OR receiver_name ILIKE ? OR sender_email ILIKE ? OR receiver_email ILIKE ?",
			p, p, p, p, p,
		)
	}
	if f.From != nil {
		q = q.Where("created_at >= ?", *f.From)
	}
	if f.To != nil {
		q = q.Where("created_at <= ?", *f.To)
	}

	return q
}

// List returns one page of filtered shipments plus the unpaginated total.
// A zero Limit disables pagination, which is what export relies on.
func (r *ShipmentPostgresRepo) List(f models.ShipmentFilter) ([]models.Shipment, int, error) {
	var total int
	if err := r.filtered(f).Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "count shipments")
	}

	q := r.filtered(f).Order("created_at DESC")
	if f.Limit > 0 {
		q = q.Offset(f.Offset()).Limit(f.Limit)
	}

	var out []models.Shipment
	if err := q.Find(&out).Error; err != nil {
		return nil, 0, errors.Wrap(err, "list shipments")
	}
	return out, total, nil
}

func (r *ShipmentPostgresRepo) All() ([]models.Shipment, error) {
	var out []models.Shipment
	q := r.db.Find(&out)
	return out, q.Error
}

func (r *ShipmentPostgresRepo) Recent(limit int) ([]models.Shipment, error) {
	var out []models.Shipment
	q := r.db.Order("created_at DESC").Limit(limit).Find(&out)
	return out, q.Error
}

// Transition applies a status update and appends the matching tracking
// event atomically, so the event log can never lag behind the current
// status.
func (r *ShipmentPostgresRepo) Transition(id string, updates map[string]interface{}, ev models.TrackingEvent) error {
	ev.ShipmentRefer = id

	return r.db.Transaction(func(tx *gorm.DB) error {
		var sh models.Shipment
		if err := tx.Where("id = ?", id).First(&sh).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.Shipment{}).Where("id = ?", id).Updates(updates).Error; err != nil {
			return errors.Wrap(err, "update shipment")
		}
		if err := tx.Create(&ev).Error; err != nil {
			return errors.Wrap(err, "append tracking event")
		}
		return nil
	})
}

func (r *ShipmentPostgresRepo) Patch(id string, updates map[string]interface{}) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var sh models.Shipment
		if err := tx.Where("id = ?", id).First(&sh).Error; err != nil {
			return err
		}
		return tx.Model(&models.Shipment{}).Where("id = ?", id).Updates(updates).Error
	})
}

// Delete removes the shipment's events first, then the shipment itself.
func (r *ShipmentPostgresRepo) Delete(id string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var sh models.Shipment
		if err := tx.Where("id = ?", id).First(&sh).Error; err != nil {
			return err
		}
		if err := tx.Where("shipment_refer = ?", id).Delete(models.TrackingEvent{}).Error; err != nil {
			return errors.Wrap(err, "delete tracking events")
		}
		if err := tx.Where("id = ?", id).Delete(models.Shipment{}).Error; err != nil {
			return errors.Wrap(err, "delete shipment")
		}
		return nil
	})
}

func (r *ShipmentPostgresRepo) EventsFor(shipmentID string, newestFirst bool) ([]models.TrackingEvent, error) {
	order := "timestamp ASC"
	if newestFirst {
		order = "timestamp DESC"
	}

	var out []models.TrackingEvent
	q := r.db.Where("shipment_refer = ?", shipmentID).Order(order).Find(&out)
	return out, q.Error
}

func (r *ShipmentPostgresRepo) TrackingNumberExists(number string) (bool, error) {
	var count int
	err := r.db.Model(&models.Shipment{}).
		Where("tracking_number = ?", number).
		Count(&count).Error
	return count > 0, err
}

func (r *ShipmentPostgresRepo) CountByStatus() (map[string]int, error) {
	rows, err := r.db.Model(&models.Shipment{}).
		Select("status, count(*)").
		Group("status").
		Rows()
	if err != nil {
		return nil, errors.Wrap(err, "count by status")
	}
	defer rows.Close()

	out := make(map[string]int)
	for rows.Next() {
		var status string
		var count int
		if err := rows.Scan(&status, &count); err != nil {
			return nil, err
		}
		out[status] = count
	}
	return out, rows.Err()
}

func (r *ShipmentPostgresRepo) DeliveredSince(t time.Time) (int, error) {
	var count int
	err := r.db.Model(&models.Shipment{}).
		Where("status = ? AND actual_delivery >= ?", models.StatusDelivered, t).
		Count(&count).Error
	return count, err
}
