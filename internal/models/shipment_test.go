package models_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"shiptrack/internal/models"
)

func TestProgress_Mapping(t *testing.T) {
	cases := []struct {
		status string
		want   int
	}{
		{models.StatusPending, 0},
		{models.StatusPickedUp, 25},
		{models.StatusInTransit, 50},
		{models.StatusOutForDelivery, 75},
		{models.StatusDelivered, 100},
		{models.StatusCancelled, 0},
		{"SOMETHING_ELSE", 0},
		{"", 0},
	}
	for _, tc := range cases {
		require.Equal(t, tc.want, models.Progress(tc.status), "status %q", tc.status)
	}
}

func TestShipment_Terminal(t *testing.T) {
	for _, status := range []string{models.StatusPending, models.StatusPickedUp, models.StatusInTransit, models.StatusOutForDelivery} {
		sh := models.Shipment{Status: status}
		require.False(t, sh.Terminal(), "status %q", status)
	}
	for _, status := range []string{models.StatusDelivered, models.StatusCancelled} {
		sh := models.Shipment{Status: status}
		require.True(t, sh.Terminal(), "status %q", status)
	}
}

func TestValidStatus(t *testing.T) {
	for _, status := range []string{
		models.StatusPending, models.StatusPickedUp, models.StatusInTransit,
		models.StatusOutForDelivery, models.StatusDelivered, models.StatusCancelled,
	} {
		require.True(t, models.ValidStatus(status))
	}
	require.False(t, models.ValidStatus("pending"))
	require.False(t, models.ValidStatus("LOST"))
	require.False(t, models.ValidStatus(""))
}

func TestShipment_Revenue(t *testing.T) {
	sh := models.Shipment{EstimatedCost: 49.99}
	require.Equal(t, 49.99, sh.Revenue())

	final := 55.5
	sh.FinalCost = &final
	require.Equal(t, 55.5, sh.Revenue())
}

func TestShipment_RouteRoundTrip(t *testing.T) {
	sh := models.Shipment{Route: []string{"Rotterdam", "Hamburg", "Copenhagen"}}
	require.NoError(t, sh.BeforeSave())
	require.Equal(t, `["Rotterdam","Hamburg","Copenhagen"]`, sh.RouteRaw)

	loaded := models.Shipment{RouteRaw: sh.RouteRaw}
	require.NoError(t, loaded.AfterFind())
	require.Equal(t, sh.Route, loaded.Route)

	empty := models.Shipment{}
	require.NoError(t, empty.BeforeSave())
	require.Equal(t, "", empty.RouteRaw)
	require.NoError(t, empty.AfterFind())
	require.Nil(t, empty.Route)
}

func TestTemplateForStatus(t *testing.T) {
	cases := map[string]models.EmailTemplate{
		models.StatusPickedUp:       models.TemplatePickedUp,
		models.StatusInTransit:      models.TemplateInTransit,
		models.StatusOutForDelivery: models.TemplateOutForDelivery,
		models.StatusDelivered:      models.TemplateDelivered,
		models.StatusCancelled:      models.TemplateCancelled,
	}
	for status, want := range cases {
		got, ok := models.TemplateForStatus(status)
		require.True(t, ok, "status %q", status)
		require.Equal(t, want, got)
	}

	_, ok := models.TemplateForStatus(models.StatusPending)
	require.False(t, ok, "PENDING has no transition template")
}
