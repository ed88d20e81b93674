package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHaversine_KnownDistances(t *testing.T) {
	// One degree of longitude on the equator.
	assert.InDelta(t, 111.19, haversineKm(0, 0, 0, 1), 0.05)

	// Athens -> Thessaloniki, ~300 km.
	assert.InDelta(t, 302, haversineKm(37.9838, 23.7275, 40.6401, 22.9444), 10)
}

func TestHaversine_Symmetry(t *testing.T) {
	d1 := haversineKm(37.9838, 23.7275, 48.8566, 2.3522)
	d2 := haversineKm(48.8566, 2.3522, 37.9838, 23.7275)

	assert.InDelta(t, d1, d2, 1e-9)
}

func TestHaversine_ZeroForSamePoint(t *testing.T) {
	assert.InDelta(t, 0, haversineKm(37.9838, 23.7275, 37.9838, 23.7275), 1e-9)
}
