package models

import (
	"encoding/json"
	"time"
)

// Shipment statuses. PENDING is the initial state; DELIVERED and
// CANCELLED are terminal.
const (
	StatusPending        = "PENDING"
	StatusPickedUp       = "PICKED_UP"
	StatusInTransit      = "IN_TRANSIT"
	StatusOutForDelivery = "OUT_FOR_DELIVERY"
	StatusDelivered      = "DELIVERED"
	StatusCancelled      = "CANCELLED"
)

// Payment statuses.
const (
	PaymentPending  = "PENDING"
	PaymentPaid     = "PAID"
	PaymentFailed   = "FAILED"
	PaymentRefunded = "REFUNDED"
)

type Address struct {
	Street     string `json:"street"     validate:"required"`
	City       string `json:"city"       validate:"required"`
	State      string `json:"state"`
	PostalCode string `json:"postalCode"`
	Country    string `json:"country"    validate:"required"`
}

type Dimensions struct {
	Length float64 `json:"length" validate:"gte=0"`
	Width  float64 `json:"width"  validate:"gte=0"`
	Height float64 `json:"height" validate:"gte=0"`
	Unit   string  `json:"unit"`
}

type Shipment struct {
	ID             string `json:"id"             validate:"required,len=24,hexadecimal" gorm:"primary_key;type:varchar(24)"`
	TrackingNumber string `json:"trackingNumber" validate:"required,len=11"             gorm:"type:varchar(11);unique_index"`

	SenderName    string  `json:"senderName"    validate:"required"`
	SenderEmail   string  `json:"senderEmail"   validate:"required,email"`
	SenderPhone   string  `json:"senderPhone"`
	SenderAddress Address `json:"senderAddress" validate:"required" gorm:"embedded;embedded_prefix:sender_"`

	ReceiverName    string  `json:"receiverName"    validate:"required"`
	ReceiverEmail   string  `json:"receiverEmail"   validate:"required,email"`
	ReceiverPhone   string  `json:"receiverPhone"`
	ReceiverAddress Address `json:"receiverAddress" validate:"required" gorm:"embedded;embedded_prefix:receiver_"`

	ServiceID string `json:"serviceId" gorm:"type:varchar(24);index"`

	Weight              float64    `json:"weight" validate:"gt=0"`
	Dimensions          Dimensions `json:"dimensions" gorm:"embedded;embedded_prefix:dim_"`
	DeclaredValue       float64    `json:"declaredValue" validate:"gte=0"`
	Description         string    `json:"description"`
	SpecialInstructions string    `json:"specialInstructions"`

	Status string `json:"status" validate:"required,oneof=PENDING PICKED_UP IN_TRANSIT OUT_FOR_DELIVERY DELIVERED CANCELLED" gorm:"type:varchar(20);index"`

	EstimatedCost float64  `json:"estimatedCost" validate:"gte=0"`
	FinalCost     *float64 `json:"finalCost,omitempty"`
	Currency      string   `json:"currency"`
	PaymentStatus string   `json:"paymentStatus" validate:"oneof=PENDING PAID FAILED REFUNDED" gorm:"type:varchar(10)"`

	EstimatedDelivery *time.Time `json:"estimatedDelivery,omitempty"`
	ActualDelivery    *time.Time `json:"actualDelivery,omitempty"`

	CurrentLocation string `json:"currentLocation"`

	// Route is the ordered waypoint list, persisted as a JSON text column.
	Route    []string `json:"route" gorm:"-"`
	RouteRaw string   `json:"-"     gorm:"column:route;type:text"`

	CreatedBy string `json:"createdBy,omitempty" gorm:"type:varchar(64)"`

	CreatedAt time.Time `json:"createdAt" gorm:"index"`
	UpdatedAt time.Time `json:"updatedAt"`

	Events []TrackingEvent `json:"events,omitempty" gorm:"foreignkey:ShipmentRefer;association_foreignkey:ID"`
}

func (s *Shipment) BeforeSave() error {
	if len(s.Route) == 0 {
		s.RouteRaw = ""
		return nil
	}
	raw, err := json.Marshal(s.Route)
	if err != nil {
		return err
	}
	s.RouteRaw = string(raw)
	return nil
}

func (s *Shipment) AfterFind() error {
	if s.RouteRaw == "" {
		return nil
	}
	return json.Unmarshal([]byte(s.RouteRaw), &s.Route)
}

// Revenue is the amount a shipment contributes to revenue aggregates:
// the final cost once known, the estimate before that.
func (s *Shipment) Revenue() float64 {
	if s.FinalCost != nil {
		return *s.FinalCost
	}
	return s.EstimatedCost
}

func (s *Shipment) Terminal() bool {
	return s.Status == StatusDelivered || s.Status == StatusCancelled
}

// Progress maps a status to the percentage shown on tracking progress
// bars. Unknown statuses (CANCELLED included) map to 0.
func Progress(status string) int {
	switch status {
	case StatusPending:
		return 0
	case StatusPickedUp:
		return 25
	case StatusInTransit:
		return 50
	case StatusOutForDelivery:
		return 75
	case StatusDelivered:
		return 100
	default:
		return 0
	}
}

func ValidStatus(status string) bool {
	switch status {
	case StatusPending, StatusPickedUp, StatusInTransit, StatusOutForDelivery, StatusDelivered, StatusCancelled:
		return true
	}
	return false
}
