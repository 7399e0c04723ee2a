package allocation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hady-salama/hr-portal/pkg/core/model"
)

func coords(lat, lon float64) *model.Address {
	return &model.Address{Latitude: &lat, Longitude: &lon}
}

func TestDistanceKm_KnownPair(t *testing.T) {
	// Cairo to Alexandria, roughly 180 km great-circle
	cairo := coords(30.0444, 31.2357)
	alexandria := coords(31.2001, 29.9187)

	d := DistanceKm(cairo, alexandria)
	require.NotNil(t, d)
	assert.InDelta(t, 181, *d, 5)
}

func TestDistanceKm_SamePoint(t *testing.T) {
	a := coords(30.0444, 31.2357)
	b := coords(30.0444, 31.2357)

	d := DistanceKm(a, b)
	require.NotNil(t, d)
	assert.Equal(t, 0.0, *d)
}

func TestDistanceKm_Symmetric(t *testing.T) {
	a := coords(30.0444, 31.2357)
	b := coords(31.2001, 29.9187)

	ab := DistanceKm(a, b)
	ba := DistanceKm(b, a)
	require.NotNil(t, ab)
	require.NotNil(t, ba)
	assert.Equal(t, *ab, *ba)
}

func TestDistanceKm_MissingCoordinates(t *testing.T) {
	withCoords := coords(30.0444, 31.2357)
	withoutCoords := &model.Address{City: "Ismailia"}

	assert.Nil(t, DistanceKm(withCoords, withoutCoords))
	assert.Nil(t, DistanceKm(withoutCoords, withCoords))
	assert.Nil(t, DistanceKm(withoutCoords, withoutCoords))
}

func TestDistanceKm_NilAddress(t *testing.T) {
	assert.Nil(t, DistanceKm(nil, coords(30.0, 31.0)))
	assert.Nil(t, DistanceKm(coords(30.0, 31.0), nil))
}
