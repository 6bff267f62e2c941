package models

import "time"

// ContactForm is an inbound lead record. No lifecycle beyond create and
// list.
type ContactForm struct {
	ID          uint      `json:"id"          gorm:"primary_key;auto_increment"`
	Name        string    `json:"name"        validate:"required"`
	Email       string    `json:"email"       validate:"required,email"`
	Phone       string    `json:"phone"`
	Company     string    `json:"company"`
	ServiceType string    `json:"serviceType"`
	Message     string    `json:"message"     validate:"required"`
	Status      string    `json:"status"      gorm:"type:varchar(16)"`
	CreatedAt   time.Time `json:"createdAt"`
}

const ContactStatusNew = "NEW"
