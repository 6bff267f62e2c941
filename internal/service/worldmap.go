package service

import (
	"context"
	"sort"
	"sync"

	"shiptrack/internal/geo"
	"shiptrack/internal/models"
)

// CountryStat is one world-map bucket. A shipment contributes to both
// its sender and its receiver country, so the sum of ShipmentCount over
// all countries exceeds the number of shipments: the figure is "total
// involvement", not unique shipments.
type CountryStat struct {
	Country       string  `json:"country"`
	ShipmentCount int     `json:"shipmentCount"`
	TotalRevenue  float64 `json:"totalRevenue"`
	SentFrom      int     `json:"sentFrom"`
	ReceivedIn    int     `json:"receivedIn"`
	Lat           float64 `json:"lat"`
	Lng           float64 `json:"lng"`
}

func (s *Service) WorldStats(ctx context.Context) ([]CountryStat, error) {
	shipments, err := s.repo.Shipments.All()
	if err != nil {
		return nil, err
	}

	stats := aggregateByCountry(shipments)

	// Geocode surviving countries concurrently; each lookup degrades
	// to fallback coordinates on its own.
	var wg sync.WaitGroup
	for i := range stats {
		wg.Add(1)
		go func(st *CountryStat) {
			defer wg.Done()
			c := s.locate(ctx, st.Country)
			st.Lat = c.Lat
			st.Lng = c.Lng
		}(&stats[i])
	}
	wg.Wait()

	return stats, nil
}

func (s *Service) locate(ctx context.Context, code string) geo.Coordinates {
	if s.locator == nil {
		return geo.Fallback(code)
	}
	return s.locator.Locate(ctx, code)
}

// aggregateByCountry buckets sender-side and receiver-side involvement
// per alpha-3 code. Countries that do not resolve are dropped. A
// same-country shipment increments that country's count and revenue
// twice, by design.
func aggregateByCountry(shipments []models.Shipment) []CountryStat {
	byCode := make(map[string]*CountryStat)

	bucket := func(code string) *CountryStat {
		st, ok := byCode[code]
		if !ok {
			st = &CountryStat{Country: code}
			byCode[code] = st
		}
		return st
	}

	for i := range shipments {
		sh := &shipments[i]
		revenue := sh.Revenue()

		if code, ok := geo.Alpha3(sh.SenderAddress.Country); ok {
			st := bucket(code)
			st.SentFrom++
			st.ShipmentCount++
			st.TotalRevenue += revenue
		}
		if code, ok := geo.Alpha3(sh.ReceiverAddress.Country); ok {
			st := bucket(code)
			st.ReceivedIn++
			st.ShipmentCount++
			st.TotalRevenue += revenue
		}
	}

	out := make([]CountryStat, 0, len(byCode))
	for _, st := range byCode {
		out = append(out, *st)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Country < out[j].Country })
	return out
}
