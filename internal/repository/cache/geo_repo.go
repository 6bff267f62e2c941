package cache

import "shiptrack/internal/geo"

// GeoCacheRepo stores resolved country coordinates keyed by ISO alpha-3
// code so that world-map aggregation does not repeat geocoding calls.
type GeoCacheRepo struct {
	cch KV
}

func NewGeoCache(cch KV) *GeoCacheRepo {
	return &GeoCacheRepo{cch: cch}
}

func (g *GeoCacheRepo) PutCoordinates(code string, c geo.Coordinates) {
	g.cch.Put(code, c)
}

func (g *GeoCacheRepo) GetCoordinates(code string) (geo.Coordinates, bool) {
	v, ok := g.cch.Get(code)
	if !ok {
		return geo.Coordinates{}, false
	}
	c, ok := v.(geo.Coordinates)
	if !ok {
		return geo.Coordinates{}, false
	}
	return c, true
}
