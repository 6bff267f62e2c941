package models

import "time"

// EmailPreferences holds the per-user opt-in flags controlling which
// lifecycle emails are sent. Shipment-event flags default to true, the
// admin-wide flag to false. A record is created lazily with defaults the
// first time it is read.
type EmailPreferences struct {
	UserID string `json:"userId" validate:"required"       gorm:"primary_key;type:varchar(64)"`
	Email  string `json:"email"  validate:"required,email" gorm:"index"`

	ShipmentCreated        bool `json:"shipmentCreated"`
	ShipmentPickedUp       bool `json:"shipmentPickedUp"`
	ShipmentInTransit      bool `json:"shipmentInTransit"`
	ShipmentOutForDelivery bool `json:"shipmentOutForDelivery"`
	ShipmentDelivered      bool `json:"shipmentDelivered"`
	ShipmentCancelled      bool `json:"shipmentCancelled"`
	AdminNotifications     bool `json:"adminNotifications"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func DefaultEmailPreferences(userID, email string) EmailPreferences {
	return EmailPreferences{
		UserID:                 userID,
		Email:                  email,
		ShipmentCreated:        true,
		ShipmentPickedUp:       true,
		ShipmentInTransit:      true,
		ShipmentOutForDelivery: true,
		ShipmentDelivered:      true,
		ShipmentCancelled:      true,
		AdminNotifications:     false,
	}
}

// Allows reports whether the given notification template is enabled for
// this user.
func (p EmailPreferences) Allows(t EmailTemplate) bool {
	switch t {
	case TemplateShipmentCreated:
		return p.ShipmentCreated
	case TemplatePickedUp:
		return p.ShipmentPickedUp
	case TemplateInTransit:
		return p.ShipmentInTransit
	case TemplateOutForDelivery:
		return p.ShipmentOutForDelivery
	case TemplateDelivered:
		return p.ShipmentDelivered
	case TemplateCancelled:
		return p.ShipmentCancelled
	}
	return false
}
