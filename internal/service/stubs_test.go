package service_test

import (
	"context"
	"strings"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	gorm "github.com/jinzhu/gorm"

	"shiptrack/internal/geo"
	"shiptrack/internal/models"
	"shiptrack/internal/repository"
	svc "shiptrack/internal/service"
)

type transitionCall struct {
	id      string
	updates map[string]interface{}
	event   models.TrackingEvent
}

type shipmentsStub struct {
	byID     map[string]models.Shipment
	byNumber map[string]models.Shipment
	events   map[string][]models.TrackingEvent
	all      []models.Shipment

	created       []models.Shipment
	createdEvents []models.TrackingEvent
	transitions   []transitionCall
	patches       []map[string]interface{}
	deleted       []string

	takenFirst  int
	existsCalls int

	listResp   []models.Shipment
	listTotal  int
	listErr    error
	lastFilter models.ShipmentFilter

	countByStatus  map[string]int
	deliveredSince int
}

var _ repository.ShipmentPostgres = (*shipmentsStub)(nil)

func newShipmentsStub() *shipmentsStub {
	return &shipmentsStub{
		byID:     map[string]models.Shipment{},
		byNumber: map[string]models.Shipment{},
		events:   map[string][]models.TrackingEvent{},
	}
}

func (s *shipmentsStub) add(sh models.Shipment) {
	s.byID[sh.ID] = sh
	s.byNumber[sh.TrackingNumber] = sh
	s.all = append(s.all, sh)
}

func (s *shipmentsStub) CreateWithEvent(sh models.Shipment, ev models.TrackingEvent) error {
	s.created = append(s.created, sh)
	s.createdEvents = append(s.createdEvents, ev)
	s.add(sh)
	return nil
}

func (s *shipmentsStub) GetByID(id string) (models.Shipment, error) {
	sh, ok := s.byID[id]
	if !ok {
		return models.Shipment{}, gorm.ErrRecordNotFound
	}
	return sh, nil
}

func (s *shipmentsStub) GetByTrackingNumber(number string) (models.Shipment, error) {
	sh, ok := s.byNumber[number]
	if !ok {
		return models.Shipment{}, gorm.ErrRecordNotFound
	}
	return sh, nil
}

func (s *shipmentsStub) List(f models.ShipmentFilter) ([]models.Shipment, int, error) {
	s.lastFilter = f
	return s.listResp, s.listTotal, s.listErr
}

func (s *shipmentsStub) All() ([]models.Shipment, error) { return s.all, nil }

func (s *shipmentsStub) Recent(limit int) ([]models.Shipment, error) {
	if limit > len(s.all) {
		limit = len(s.all)
	}
	return s.all[:limit], nil
}

func (s *shipmentsStub) Transition(id string, updates map[string]interface{}, ev models.TrackingEvent) error {
	if _, ok := s.byID[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	s.transitions = append(s.transitions, transitionCall{id: id, updates: updates, event: ev})
	sh := s.byID[id]
	if status, ok := updates["status"].(string); ok {
		sh.Status = status
	}
	s.byID[id] = sh
	s.byNumber[sh.TrackingNumber] = sh
	s.events[id] = append(s.events[id], ev)
	return nil
}

func (s *shipmentsStub) Patch(id string, updates map[string]interface{}) error {
	if _, ok := s.byID[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	s.patches = append(s.patches, updates)
	return nil
}

func (s *shipmentsStub) Delete(id string) error {
	if _, ok := s.byID[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	s.deleted = append(s.deleted, id)
	delete(s.byID, id)
	return nil
}

func (s *shipmentsStub) EventsFor(shipmentID string, newestFirst bool) ([]models.TrackingEvent, error) {
	return s.events[shipmentID], nil
}

func (s *shipmentsStub) TrackingNumberExists(number string) (bool, error) {
	s.existsCalls++
	if s.takenFirst > 0 {
		s.takenFirst--
		return true, nil
	}
	return false, nil
}

func (s *shipmentsStub) CountByStatus() (map[string]int, error) {
	if s.countByStatus == nil {
		return map[string]int{}, nil
	}
	return s.countByStatus, nil
}

func (s *shipmentsStub) DeliveredSince(time.Time) (int, error) { return s.deliveredSince, nil }

type catalogStub struct {
	byID    map[string]models.Service
	list    []models.Service
	created []models.Service
	updates []map[string]interface{}
	deleted []string
}

var _ repository.ServicePostgres = (*catalogStub)(nil)

func newCatalogStub() *catalogStub {
	return &catalogStub{byID: map[string]models.Service{}}
}

func (c *catalogStub) Create(s models.Service) error {
	c.created = append(c.created, s)
	c.byID[s.ID] = s
	return nil
}

func (c *catalogStub) Update(id string, updates map[string]interface{}) error {
	if _, ok := c.byID[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	c.updates = append(c.updates, updates)
	return nil
}

func (c *catalogStub) Get(id string) (models.Service, error) {
	s, ok := c.byID[id]
	if !ok {
		return models.Service{}, gorm.ErrRecordNotFound
	}
	return s, nil
}

func (c *catalogStub) List(activeOnly bool) ([]models.Service, error) { return c.list, nil }

func (c *catalogStub) Delete(id string) error {
	if _, ok := c.byID[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	c.deleted = append(c.deleted, id)
	delete(c.byID, id)
	return nil
}

type prefsStub struct {
	byUser   map[string]models.EmailPreferences
	byEmail  map[string]models.EmailPreferences
	admins   []models.EmailPreferences
	upserted []models.EmailPreferences
	deleted  []string
}

var _ repository.PreferencesPostgres = (*prefsStub)(nil)

func newPrefsStub() *prefsStub {
	return &prefsStub{
		byUser:  map[string]models.EmailPreferences{},
		byEmail: map[string]models.EmailPreferences{},
	}
}

func (p *prefsStub) Get(userID string) (models.EmailPreferences, error) {
	pr, ok := p.byUser[userID]
	if !ok {
		return models.EmailPreferences{}, gorm.ErrRecordNotFound
	}
	return pr, nil
}

func (p *prefsStub) FindByEmail(email string) (models.EmailPreferences, error) {
	pr, ok := p.byEmail[email]
	if !ok {
		return models.EmailPreferences{}, gorm.ErrRecordNotFound
	}
	return pr, nil
}

func (p *prefsStub) Upsert(pr models.EmailPreferences) error {
	p.upserted = append(p.upserted, pr)
	p.byUser[pr.UserID] = pr
	p.byEmail[pr.Email] = pr
	return nil
}

func (p *prefsStub) Delete(userID string) error {
	p.deleted = append(p.deleted, userID)
	delete(p.byUser, userID)
	return nil
}

func (p *prefsStub) AdminEnabled() ([]models.EmailPreferences, error) { return p.admins, nil }

type contactsStub struct {
	created []models.ContactForm
	list    []models.ContactForm
	total   int
}

var _ repository.ContactPostgres = (*contactsStub)(nil)

func (c *contactsStub) Create(f models.ContactForm) error {
	c.created = append(c.created, f)
	return nil
}

func (c *contactsStub) List(page, limit int) ([]models.ContactForm, int, error) {
	return c.list, c.total, nil
}

type publisherStub struct {
	payloads [][]byte
	err      error
}

func (p *publisherStub) Publish(_ context.Context, payload []byte) error {
	if p.err != nil {
		return p.err
	}
	p.payloads = append(p.payloads, payload)
	return nil
}

type locatorStub struct {
	coords map[string]geo.Coordinates
}

func (l *locatorStub) Locate(_ context.Context, code string) geo.Coordinates {
	return l.coords[code]
}

type sentMail struct {
	to      string
	subject string
	body    string
}

type senderStub struct {
	sent []sentMail
	err  error
}

func (s *senderStub) Send(to, subject, body string) error {
	if s.err != nil {
		return s.err
	}
	s.sent = append(s.sent, sentMail{to: to, subject: subject, body: body})
	return nil
}

type deps struct {
	shipments *shipmentsStub
	catalog   *catalogStub
	prefs     *prefsStub
	contacts  *contactsStub
	publisher *publisherStub
	locator   *locatorStub
	sender    *senderStub
}

func newTestService() (*svc.Service, *deps) {
	d := &deps{
		shipments: newShipmentsStub(),
		catalog:   newCatalogStub(),
		prefs:     newPrefsStub(),
		contacts:  &contactsStub{},
		publisher: &publisherStub{},
		locator:   &locatorStub{coords: map[string]geo.Coordinates{}},
		sender:    &senderStub{},
	}
	repo := &repository.Repository{
		Shipments:   d.shipments,
		Services:    d.catalog,
		Preferences: d.prefs,
		Contacts:    d.contacts,
	}
	return svc.NewService(repo, d.publisher, d.locator, d.sender), d
}

func makeAddress(f *gofakeit.Faker, country string) models.Address {
	return models.Address{
		Street:     f.Street(),
		City:       f.City(),
		State:      f.State(),
		PostalCode: f.Zip(),
		Country:    country,
	}
}

func makeCreateInput(f *gofakeit.Faker) svc.CreateShipmentInput {
	return svc.CreateShipmentInput{
		SenderName:      f.Name(),
		SenderEmail:     strings.ToLower(f.Email()),
		SenderPhone:     f.Phone(),
		SenderAddress:   makeAddress(f, "Netherlands"),
		ReceiverName:    f.Name(),
		ReceiverEmail:   strings.ToLower(f.Email()),
		ReceiverPhone:   f.Phone(),
		ReceiverAddress: makeAddress(f, "United States"),
		Weight:          f.Float64Range(0.5, 40),
		Dimensions:      models.Dimensions{Length: 30, Width: 20, Height: 10, Unit: "cm"},
		DeclaredValue:   f.Float64Range(10, 500),
		Description:     f.ProductName(),
		EstimatedCost:   f.Float64Range(5, 200),
	}
}

func makeShipment(f *gofakeit.Faker, id, number string) models.Shipment {
	in := makeCreateInput(f)
	return models.Shipment{
		ID:              id,
		TrackingNumber:  number,
		SenderName:      in.SenderName,
		SenderEmail:     in.SenderEmail,
		SenderAddress:   in.SenderAddress,
		ReceiverName:    in.ReceiverName,
		ReceiverEmail:   in.ReceiverEmail,
		ReceiverAddress: in.ReceiverAddress,
		Weight:          in.Weight,
		Dimensions:      in.Dimensions,
		DeclaredValue:   in.DeclaredValue,
		Status:          models.StatusPending,
		EstimatedCost:   in.EstimatedCost,
		Currency:        "USD",
		PaymentStatus:   models.PaymentPending,
		CreatedAt:       time.Now().UTC(),
		UpdatedAt:       time.Now().UTC(),
	}
}
