package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"shiptrack/internal/geo"
	"shiptrack/internal/models"
	"shiptrack/internal/repository"
	svc "shiptrack/internal/service"
)

func worldShipment(id, from, to string, cost float64) models.Shipment {
	return models.Shipment{
		ID:              id,
		SenderAddress:   models.Address{Country: from},
		ReceiverAddress: models.Address{Country: to},
		EstimatedCost:   cost,
	}
}

func TestWorldStats_BucketsBothEnds(t *testing.T) {
	s, d := newTestService()
	d.locator.coords = map[string]geo.Coordinates{
		"NLD": {Lat: 52.1, Lng: 5.3},
		"USA": {Lat: 37.1, Lng: -95.7},
	}
	d.shipments.all = []models.Shipment{
		worldShipment("64a1b2c3d4e5f60718293c01", "Netherlands", "United States", 100),
	}

	stats, err := s.WorldStats(context.Background())
	require.NoError(t, err)
	require.Len(t, stats, 2)

	// Sorted by alpha-3 code.
	require.Equal(t, "NLD", stats[0].Country)
	require.Equal(t, "USA", stats[1].Country)

	nld, usa := stats[0], stats[1]
	require.Equal(t, 1, nld.SentFrom)
	require.Equal(t, 0, nld.ReceivedIn)
	require.Equal(t, 1, nld.ShipmentCount)
	require.Equal(t, 100.0, nld.TotalRevenue)
	require.Equal(t, 52.1, nld.Lat)
	require.Equal(t, 5.3, nld.Lng)

	require.Equal(t, 0, usa.SentFrom)
	require.Equal(t, 1, usa.ReceivedIn)
	require.Equal(t, 1, usa.ShipmentCount)
	require.Equal(t, 100.0, usa.TotalRevenue)
}

func TestWorldStats_SameCountryCountsTwice(t *testing.T) {
	s, d := newTestService()
	d.shipments.all = []models.Shipment{
		worldShipment("64a1b2c3d4e5f60718293c02", "Germany", "Germany", 40),
	}

	stats, err := s.WorldStats(context.Background())
	require.NoError(t, err)
	require.Len(t, stats, 1)

	deu := stats[0]
	require.Equal(t, "DEU", deu.Country)
	require.Equal(t, 1, deu.SentFrom)
	require.Equal(t, 1, deu.ReceivedIn)
	require.Equal(t, 2, deu.ShipmentCount)
	require.Equal(t, 80.0, deu.TotalRevenue)
}

func TestWorldStats_UnresolvableCountryDropped(t *testing.T) {
	s, d := newTestService()
	d.shipments.all = []models.Shipment{
		worldShipment("64a1b2c3d4e5f60718293c03", "Atlantis", "France", 25),
	}

	stats, err := s.WorldStats(context.Background())
	require.NoError(t, err)
	require.Len(t, stats, 1)
	require.Equal(t, "FRA", stats[0].Country)
	require.Equal(t, 1, stats[0].ShipmentCount)
}

func TestWorldStats_FinalCostWinsOverEstimate(t *testing.T) {
	s, d := newTestService()

	sh := worldShipment("64a1b2c3d4e5f60718293c04", "Japan", "Singapore", 10)
	final := 99.0
	sh.FinalCost = &final
	d.shipments.all = []models.Shipment{sh}

	stats, err := s.WorldStats(context.Background())
	require.NoError(t, err)
	require.Len(t, stats, 2)
	for _, st := range stats {
		require.Equal(t, 99.0, st.TotalRevenue)
	}
}

func TestWorldStats_NilLocatorFallsBack(t *testing.T) {
	s := svcWithoutCollaborators(t)

	stats, err := s.WorldStats(context.Background())
	require.NoError(t, err)
	require.Len(t, stats, 2)

	for _, st := range stats {
		want := geo.Fallback(st.Country)
		require.Equal(t, want.Lat, st.Lat)
		require.Equal(t, want.Lng, st.Lng)
	}
}

func svcWithoutCollaborators(t *testing.T) *svc.Service {
	t.Helper()
	shipments := newShipmentsStub()
	shipments.all = []models.Shipment{
		worldShipment("64a1b2c3d4e5f60718293c05", "Norway", "Sweden", 5),
	}
	repo := &repository.Repository{
		Shipments:   shipments,
		Services:    newCatalogStub(),
		Preferences: newPrefsStub(),
		Contacts:    &contactsStub{},
	}
	return svc.NewService(repo, nil, nil, nil)
}
