package models

import "time"

// TrackingEvent is one immutable log entry describing a status or
// location change of a shipment. Events are owned by their shipment and
// removed together with it.
type TrackingEvent struct {
	ID            uint      `json:"id"          gorm:"primary_key;auto_increment"`
	ShipmentRefer string    `json:"-"           gorm:"type:varchar(24);index"`
	Status        string    `json:"status"      validate:"required"`
	Description   string    `json:"description"`
	Location      string    `json:"location"`
	Timestamp     time.Time `json:"timestamp"`
}
