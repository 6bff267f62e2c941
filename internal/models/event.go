package models

import (
	"time"

	"github.com/google/uuid"
)

// EmailTemplate identifies one of the fixed notification templates.
type EmailTemplate string

const (
	TemplateShipmentCreated EmailTemplate = "SHIPMENT_CREATED"
	TemplatePickedUp        EmailTemplate = "PICKED_UP"
	TemplateInTransit       EmailTemplate = "IN_TRANSIT"
	TemplateOutForDelivery  EmailTemplate = "OUT_FOR_DELIVERY"
	TemplateDelivered       EmailTemplate = "DELIVERED"
	TemplateCancelled       EmailTemplate = "CANCELLED"
)

// TemplateForStatus maps a shipment status to its notification
// template. PENDING has no transition template of its own; creation is
// announced with SHIPMENT_CREATED.
func TemplateForStatus(status string) (EmailTemplate, bool) {
	switch status {
	case StatusPickedUp:
		return TemplatePickedUp, true
	case StatusInTransit:
		return TemplateInTransit, true
	case StatusOutForDelivery:
		return TemplateOutForDelivery, true
	case StatusDelivered:
		return TemplateDelivered, true
	case StatusCancelled:
		return TemplateCancelled, true
	}
	return "", false
}

// ShipmentEvent is the envelope published to the event topic on every
// shipment creation and status transition. The notifier consumes it to
// fan out emails.
type ShipmentEvent struct {
	ID             uuid.UUID     `json:"id"`
	Template       EmailTemplate `json:"template"`
	ShipmentID     string        `json:"shipmentId"`
	TrackingNumber string        `json:"trackingNumber"`
	Status         string        `json:"status"`
	Location       string        `json:"location,omitempty"`
	Description    string        `json:"description,omitempty"`
	OccurredAt     time.Time     `json:"occurredAt"`
}

func NewShipmentEvent(template EmailTemplate, sh Shipment, location, description string) ShipmentEvent {
	return ShipmentEvent{
		ID:             uuid.New(),
		Template:       template,
		ShipmentID:     sh.ID,
		TrackingNumber: sh.TrackingNumber,
		Status:         sh.Status,
		Location:       location,
		Description:    description,
		OccurredAt:     time.Now().UTC(),
	}
}
