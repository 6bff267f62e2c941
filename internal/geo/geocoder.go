package geo

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
)

type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

func (c Coordinates) Zero() bool { return c.Lat == 0 && c.Lng == 0 }

// CoordinateCache is implemented by the TTL cache repo.
type CoordinateCache interface {
	PutCoordinates(code string, c Coordinates)
	GetCoordinates(code string) (Coordinates, bool)
}

// Geocoder resolves ISO alpha-3 codes to map coordinates: cache first,
// then the external lookup, then the static fallback table, then (0,0).
// A slow or failing lookup degrades per-country instead of blocking.
type Geocoder struct {
	client  *http.Client
	baseURL string
	cache   CoordinateCache
}

func NewGeocoder(baseURL string, timeout time.Duration, cch CoordinateCache) *Geocoder {
	if timeout <= 0 {
		timeout = 3 * time.Second
	}
	return &Geocoder{
		client:  &http.Client{Timeout: timeout},
		baseURL: baseURL,
		cache:   cch,
	}
}

func (g *Geocoder) Locate(ctx context.Context, code string) Coordinates {
	if g.cache != nil {
		if c, ok := g.cache.GetCoordinates(code); ok {
			return c
		}
	}

	c, err := g.lookup(ctx, code)
	if err != nil {
		logrus.WithError(err).WithField("country", code).Warn("geocode lookup failed, using fallback")
		c = Fallback(code)
	}
	if g.cache != nil && !c.Zero() {
		g.cache.PutCoordinates(code, c)
	}
	return c
}

type countryLookup struct {
	LatLng []float64 `json:"latlng"`
}

func (g *Geocoder) lookup(ctx context.Context, code string) (Coordinates, error) {
	url := fmt.Sprintf("%s/%s?fields=latlng", g.baseURL, code)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return Coordinates{}, err
	}

	resp, err := g.client.Do(req)
	if err != nil {
		return Coordinates{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Coordinates{}, fmt.Errorf("geocode status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return Coordinates{}, err
	}

	// The endpoint answers with either a single object or a one-element
	// array depending on the code shape.
	var single countryLookup
	if err := json.Unmarshal(body, &single); err == nil && len(single.LatLng) == 2 {
		return Coordinates{Lat: single.LatLng[0], Lng: single.LatLng[1]}, nil
	}

	var many []countryLookup
	if err := json.Unmarshal(body, &many); err == nil && len(many) > 0 && len(many[0].LatLng) == 2 {
		return Coordinates{Lat: many[0].LatLng[0], Lng: many[0].LatLng[1]}, nil
	}
	return Coordinates{}, fmt.Errorf("geocode response for %s has no coordinates", code)
}
