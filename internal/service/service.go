package service

import (
	"context"

	"github.com/go-playground/validator/v10"

	"shiptrack/internal/geo"
	"shiptrack/internal/mailer"
	"shiptrack/internal/models"
	"shiptrack/internal/repository"
)

type Shipments interface {
	Create(ctx context.Context, in CreateShipmentInput) (models.Shipment, error)
	Get(ref string) (models.Shipment, error)
	Track(number string) (TrackingInfo, error)
	List(f models.ShipmentFilter) (ShipmentPage, error)
	UpdateStatus(ctx context.Context, ref string, upd StatusUpdate) (models.Shipment, error)
	Patch(ctx context.Context, ref string, upd PatchShipmentInput) (models.Shipment, error)
	Delete(ref string) error
	ExportCSV(f models.ShipmentFilter) ([]byte, error)
	WorldStats(ctx context.Context) ([]CountryStat, error)
	Stats() (AdminStats, error)
}

type Catalog interface {
	ListServices(activeOnly bool) ([]models.Service, error)
	CreateService(in ServiceInput) (models.Service, error)
	UpdateService(id string, in ServiceInput) (models.Service, error)
	DeleteService(id string) error
}

type Prefs interface {
	GetPreferences(userID, email string) (models.EmailPreferences, error)
	SavePreferences(p models.EmailPreferences) (models.EmailPreferences, error)
	ResetPreferences(userID string) error
}

type Contacts interface {
	SubmitContact(f models.ContactForm) (models.ContactForm, error)
	ListContacts(page, limit int) ([]models.ContactForm, int, error)
}

type Notifications interface {
	HandleMessage(ctx context.Context, payload []byte) error
	SendTest(to string) error
}

// EventPublisher pushes shipment events onto the notification topic.
type EventPublisher interface {
	Publish(ctx context.Context, payload []byte) error
}

// Locator resolves an alpha-3 code to map coordinates.
type Locator interface {
	Locate(ctx context.Context, code string) geo.Coordinates
}

type Service struct {
	repo      *repository.Repository
	publisher EventPublisher
	locator   Locator
	sender    mailer.Sender

	v *validator.Validate
}

// NewService wires the business layer. publisher, locator and sender
// may be nil for binaries that do not need them; the corresponding
// operations then degrade (no events published, fallback coordinates,
// mail send errors).
func NewService(repo *repository.Repository, publisher EventPublisher, locator Locator, sender mailer.Sender) *Service {
	return &Service{
		repo:      repo,
		publisher: publisher,
		locator:   locator,
		sender:    sender,
		v:         validator.New(),
	}
}
