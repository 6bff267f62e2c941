package service

import (
	"time"

	"shiptrack/internal/models"
)

type AdminStats struct {
	Total          int               `json:"total"`
	ByStatus       map[string]int    `json:"byStatus"`
	DeliveredToday int               `json:"deliveredToday"`
	TotalRevenue   float64           `json:"totalRevenue"`
	PendingRevenue float64           `json:"pendingRevenue"`
	Recent         []models.Shipment `json:"recent"`
}

// VehicleStats is the fleet dashboard block. There is no fleet model
// behind it yet, so the numbers are honest zeros rather than demo data.
type VehicleStats struct {
	Total       int `json:"total"`
	Active      int `json:"active"`
	Maintenance int `json:"maintenance"`
	Idle        int `json:"idle"`
}

func (s *Service) Stats() (AdminStats, error) {
	byStatus, err := s.repo.Shipments.CountByStatus()
	if err != nil {
		return AdminStats{}, err
	}

	total := 0
	for _, n := range byStatus {
		total += n
	}

	midnight := time.Now().UTC().Truncate(24 * time.Hour)
	deliveredToday, err := s.repo.Shipments.DeliveredSince(midnight)
	if err != nil {
		return AdminStats{}, err
	}

	shipments, err := s.repo.Shipments.All()
	if err != nil {
		return AdminStats{}, err
	}

	var totalRevenue, pendingRevenue float64
	for i := range shipments {
		r := shipments[i].Revenue()
		totalRevenue += r
		if shipments[i].PaymentStatus == models.PaymentPending {
			pendingRevenue += r
		}
	}

	recent, err := s.repo.Shipments.Recent(10)
	if err != nil {
		return AdminStats{}, err
	}

	return AdminStats{
		Total:          total,
		ByStatus:       byStatus,
		DeliveredToday: deliveredToday,
		TotalRevenue:   totalRevenue,
		PendingRevenue: pendingRevenue,
		Recent:         recent,
	}, nil
}
