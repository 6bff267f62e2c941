package repository

import (
	"time"

	"github.com/jinzhu/gorm"

	"shiptrack/internal/models"
	"shiptrack/internal/repository/postgres"
)

type ShipmentPostgres interface {
	CreateWithEvent(sh models.Shipment, ev models.TrackingEvent) error
	GetByID(id string) (models.Shipment, error)
	GetByTrackingNumber(number string) (models.Shipment, error)
	List(f models.ShipmentFilter) ([]models.Shipment, int, error)
	All() ([]models.Shipment, error)
	Recent(limit int) ([]models.Shipment, error)
	Transition(id string, updates map[string]interface{}, ev models.TrackingEvent) error
	Patch(id string, updates map[string]interface{}) error
	Delete(id string) error
	EventsFor(shipmentID string, newestFirst bool) ([]models.TrackingEvent, error)
	TrackingNumberExists(number string) (bool, error)
	CountByStatus() (map[string]int, error)
	DeliveredSince(t time.Time) (int, error)
}

type ServicePostgres interface {
	Create(s models.Service) error
	Update(id string, updates map[string]interface{}) error
	Get(id string) (models.Service, error)
	List(activeOnly bool) ([]models.Service, error)
	Delete(id string) error
}

type PreferencesPostgres interface {
	Get(userID string) (models.EmailPreferences, error)
	FindByEmail(email string) (models.EmailPreferences, error)
	Upsert(p models.EmailPreferences) error
	Delete(userID string) error
	AdminEnabled() ([]models.EmailPreferences, error)
}

type ContactPostgres interface {
	Create(f models.ContactForm) error
	List(page, limit int) ([]models.ContactForm, int, error)
}

type Repository struct {
	Shipments   ShipmentPostgres
	Services    ServicePostgres
	Preferences PreferencesPostgres
	Contacts    ContactPostgres
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{
		Shipments:   postgres.NewShipmentPostgres(db),
		Services:    postgres.NewServicePostgres(db),
		Preferences: postgres.NewPreferencesPostgres(db),
		Contacts:    postgres.NewContactPostgres(db),
	}
}
