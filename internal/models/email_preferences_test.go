package models_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"shiptrack/internal/models"
)

func TestDefaultEmailPreferences(t *testing.T) {
	p := models.DefaultEmailPreferences("u1", "u1@example.com")

	require.Equal(t, "u1", p.UserID)
	require.Equal(t, "u1@example.com", p.Email)
	require.True(t, p.ShipmentCreated)
	require.True(t, p.ShipmentPickedUp)
	require.True(t, p.ShipmentInTransit)
	require.True(t, p.ShipmentOutForDelivery)
	require.True(t, p.ShipmentDelivered)
	require.True(t, p.ShipmentCancelled)
	require.False(t, p.AdminNotifications)
}

func TestEmailPreferences_Allows(t *testing.T) {
	p := models.DefaultEmailPreferences("u1", "u1@example.com")
	p.ShipmentDelivered = false

	require.False(t, p.Allows(models.TemplateDelivered))

	// The other event flags stay independent of the disabled one.
	require.True(t, p.Allows(models.TemplateShipmentCreated))
	require.True(t, p.Allows(models.TemplatePickedUp))
	require.True(t, p.Allows(models.TemplateInTransit))
	require.True(t, p.Allows(models.TemplateOutForDelivery))
	require.True(t, p.Allows(models.TemplateCancelled))

	require.False(t, p.Allows(models.EmailTemplate("NOT_A_TEMPLATE")))
}
