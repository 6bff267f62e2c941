package models

import "time"

// ShipmentFilter describes the admin listing filters. Page is 1-indexed;
// a Limit of 0 means unpaginated (used by CSV export and aggregation).
type ShipmentFilter struct {
	Status    string
	ServiceID string
	Search    string
	From      *time.Time
	To        *time.Time
	Page      int
	Limit     int
}

func (f ShipmentFilter) Offset() int {
	page := f.Page
	if page < 1 {
		page = 1
	}
	return (page - 1) * f.Limit
}

// TotalPages is ceil(total/limit); 0 when unpaginated.
func (f ShipmentFilter) TotalPages(total int) int {
	if f.Limit <= 0 {
		return 0
	}
	return (total + f.Limit - 1) / f.Limit
}
