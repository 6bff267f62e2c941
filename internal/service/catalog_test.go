package service_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"shiptrack/internal/models"
	svc "shiptrack/internal/service"
)

func TestListServices_EmptyCatalogStaysEmpty(t *testing.T) {
	s, _ := newTestService()

	services, err := s.ListServices(true)
	require.NoError(t, err)
	require.NotNil(t, services)
	require.Empty(t, services)
}

func TestCreateService_DefaultsActive(t *testing.T) {
	s, d := newTestService()

	created, err := s.CreateService(svc.ServiceInput{
		Name:     "Overnight Freight",
		Features: []string{"Next day", "Insured"},
		Price:    "from $59.99",
	})
	require.NoError(t, err)

	require.Len(t, created.ID, 24)
	require.True(t, created.Active)
	require.Equal(t, []string{"Next day", "Insured"}, created.Features)
	require.Len(t, d.catalog.created, 1)
}

func TestCreateService_RequiresName(t *testing.T) {
	s, _ := newTestService()

	_, err := s.CreateService(svc.ServiceInput{Price: "$1"})
	require.ErrorIs(t, err, svc.ErrValidation)
}

func TestUpdateService_SerializesFeatures(t *testing.T) {
	s, d := newTestService()
	d.catalog.byID["64a000000000000000000001"] = models.Service{
		ID: "64a000000000000000000001", Name: "Express Delivery",
	}

	inactive := false
	_, err := s.UpdateService("64a000000000000000000001", svc.ServiceInput{
		Name:     "Express Delivery",
		Features: []string{"Same day"},
		Active:   &inactive,
	})
	require.NoError(t, err)

	require.Len(t, d.catalog.updates, 1)
	updates := d.catalog.updates[0]
	require.Equal(t, false, updates["active"])
	require.JSONEq(t, `["Same day"]`, updates["features"].(string))
}

func TestUpdateService_NotFound(t *testing.T) {
	s, _ := newTestService()

	_, err := s.UpdateService("64a0000000000000000000ff", svc.ServiceInput{Name: "Ghost"})
	require.ErrorIs(t, err, svc.ErrNotFound)
}

func TestDeleteService(t *testing.T) {
	s, d := newTestService()
	d.catalog.byID["64a000000000000000000003"] = models.Service{ID: "64a000000000000000000003", Name: "Freight"}

	require.NoError(t, s.DeleteService("64a000000000000000000003"))
	require.ErrorIs(t, s.DeleteService("64a000000000000000000003"), svc.ErrNotFound)
}

func TestGetPreferences_CreatesDefaultsOnFirstRead(t *testing.T) {
	s, d := newTestService()

	p, err := s.GetPreferences("u1", "u1@example.com")
	require.NoError(t, err)
	require.True(t, p.ShipmentDelivered)
	require.False(t, p.AdminNotifications)
	require.Len(t, d.prefs.upserted, 1)

	// Second read returns the stored record without another upsert.
	_, err = s.GetPreferences("u1", "u1@example.com")
	require.NoError(t, err)
	require.Len(t, d.prefs.upserted, 1)
}

func TestSavePreferences_ValidatesAndStores(t *testing.T) {
	s, d := newTestService()

	p := models.DefaultEmailPreferences("u2", "u2@example.com")
	p.ShipmentCancelled = false

	saved, err := s.SavePreferences(p)
	require.NoError(t, err)
	require.False(t, saved.ShipmentCancelled)
	require.Len(t, d.prefs.upserted, 1)

	p.Email = "not-an-email"
	_, err = s.SavePreferences(p)
	require.ErrorIs(t, err, svc.ErrValidation)
}

func TestResetPreferences(t *testing.T) {
	s, d := newTestService()
	d.prefs.byUser["u3"] = models.DefaultEmailPreferences("u3", "u3@example.com")

	require.NoError(t, s.ResetPreferences("u3"))
	require.Equal(t, []string{"u3"}, d.prefs.deleted)
}

func TestSubmitContact(t *testing.T) {
	s, d := newTestService()

	saved, err := s.SubmitContact(models.ContactForm{
		Name:    "Jordan Li",
		Email:   "jordan@example.com",
		Message: "Need a freight quote for 3 pallets",
	})
	require.NoError(t, err)
	require.Equal(t, models.ContactStatusNew, saved.Status)
	require.False(t, saved.CreatedAt.IsZero())
	require.Len(t, d.contacts.created, 1)

	_, err = s.SubmitContact(models.ContactForm{Name: "No Message", Email: "x@example.com"})
	require.ErrorIs(t, err, svc.ErrValidation)
}

func TestStats_Aggregates(t *testing.T) {
	s, d := newTestService()

	final := 80.0
	d.shipments.countByStatus = map[string]int{
		models.StatusPending:   2,
		models.StatusDelivered: 1,
	}
	d.shipments.deliveredSince = 1
	d.shipments.all = []models.Shipment{
		{ID: "64a1b2c3d4e5f60718293e01", EstimatedCost: 20, PaymentStatus: models.PaymentPending},
		{ID: "64a1b2c3d4e5f60718293e02", EstimatedCost: 10, FinalCost: &final, PaymentStatus: models.PaymentPaid},
		{ID: "64a1b2c3d4e5f60718293e03", EstimatedCost: 5, PaymentStatus: models.PaymentPending, CreatedAt: time.Now()},
	}

	stats, err := s.Stats()
	require.NoError(t, err)

	require.Equal(t, 3, stats.Total)
	require.Equal(t, 1, stats.DeliveredToday)
	require.Equal(t, 105.0, stats.TotalRevenue)
	require.Equal(t, 25.0, stats.PendingRevenue)
	require.Len(t, stats.Recent, 3)
}
