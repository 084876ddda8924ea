package services_test

import (
	"testing"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testCandidate carries coordinates as decimal strings the way dispatch-pool
// rows do; empty strings model missing coordinates.
type testCandidate struct {
	name      string
	latitude  string
	longitude string
}

func (c testCandidate) Coordinates() (kernel.Location, bool) {
	loc, err := kernel.ParseLocation(c.latitude, c.longitude)
	if err != nil {
		return kernel.Location{}, false
	}
	return loc, true
}

func mustLocation(t *testing.T, lat, lon float64) kernel.Location {
	t.Helper()
	loc, err := kernel.NewLocation(lat, lon)
	require.NoError(t, err)
	return loc
}

func TestMatchNearby_FiltersByRadius(t *testing.T) {
	// Courier in downtown São Paulo; candidate A across town, candidate B
	// in Rio (~357 km away).
	center := mustLocation(t, -23.5505, -46.6333)
	candidates := []testCandidate{
		{name: "A", latitude: "-23.5613", longitude: "-46.6565"},
		{name: "B", latitude: "-22.9068", longitude: "-43.1729"},
	}

	matches := services.MatchNearby(center, candidates, 50)

	require.Len(t, matches, 1)
	assert.Equal(t, "A", matches[0].Candidate.name)
	assert.InDelta(t, 2.6, matches[0].DistanceKm, 0.2)
}

func TestMatchNearby_SortsAscendingByDistance(t *testing.T) {
	center := mustLocation(t, 0, 0)
	candidates := []testCandidate{
		{name: "far", latitude: "0", longitude: "0.3"},
		{name: "near", latitude: "0", longitude: "0.1"},
		{name: "mid", latitude: "0.2", longitude: "0"},
	}

	matches := services.MatchNearby(center, candidates, services.DefaultRadiusKm)

	require.Len(t, matches, 3)
	assert.Equal(t, "near", matches[0].Candidate.name)
	assert.Equal(t, "mid", matches[1].Candidate.name)
	assert.Equal(t, "far", matches[2].Candidate.name)

	for i := 1; i < len(matches); i++ {
		assert.LessOrEqual(t, matches[i-1].DistanceKm, matches[i].DistanceKm)
	}
}

func TestMatchNearby_NoMatchExceedsRadius(t *testing.T) {
	center := mustLocation(t, 0, 0)
	candidates := []testCandidate{
		{name: "a", latitude: "0", longitude: "0.1"},
		{name: "b", latitude: "0", longitude: "0.4"},
		{name: "c", latitude: "0.5", longitude: "0.5"},
	}

	radius := 30.0
	for _, m := range services.MatchNearby(center, candidates, radius) {
		assert.LessOrEqual(t, m.DistanceKm, radius)
	}
}

func TestMatchNearby_SilentlyExcludesUnresolvableCoordinates(t *testing.T) {
	center := mustLocation(t, -23.5505, -46.6333)
	candidates := []testCandidate{
		{name: "missing", latitude: "", longitude: ""},
		{name: "garbage", latitude: "abc", longitude: "-46.6565"},
		{name: "valid", latitude: "-23.5613", longitude: "-46.6565"},
	}

	matches := services.MatchNearby(center, candidates, 50)

	require.Len(t, matches, 1)
	assert.Equal(t, "valid", matches[0].Candidate.name)
}

func TestMatchNearby_IdenticalPointIsZeroDistance(t *testing.T) {
	center := mustLocation(t, -23.5505, -46.6333)
	candidates := []testCandidate{
		{name: "same", latitude: "-23.5505", longitude: "-46.6333"},
	}

	matches := services.MatchNearby(center, candidates, 50)

	require.Len(t, matches, 1)
	assert.Zero(t, matches[0].DistanceKm)
}

func TestMatchNearby_EmptyInput(t *testing.T) {
	center := mustLocation(t, 0, 0)
	assert.Empty(t, services.MatchNearby(center, []testCandidate{}, services.DefaultRadiusKm))
	assert.Empty(t, services.MatchNearby[testCandidate](center, nil, services.DefaultRadiusKm))
}

func TestMatchNearby_DistanceProperties(t *testing.T) {
	saoPaulo := mustLocation(t, -23.5505, -46.6333)
	pinheiros := mustLocation(t, -23.5613, -46.6565)

	assert.Zero(t, saoPaulo.DistanceKmTo(saoPaulo))
	assert.InDelta(t, saoPaulo.DistanceKmTo(pinheiros), pinheiros.DistanceKmTo(saoPaulo), 1e-9)
	assert.InDelta(t, 2.6, saoPaulo.DistanceKmTo(pinheiros), 0.2)
}
