package services

import (
	"cmp"
	"slices"

	"dispatch/internal/core/domain/model/kernel"
)

// DefaultRadiusKm is the dispatch radius applied when callers have no reason
// to override it.
const DefaultRadiusKm = 50.0

// Candidate is anything that may carry pickup coordinates. Coordinates
// returns ok=false when the candidate has no resolvable position (missing or
// unparseable coordinates).
type Candidate interface {
	Coordinates() (kernel.Location, bool)
}

// Match is a candidate annotated with its distance from the center point.
type Match[T Candidate] struct {
	Candidate  T
	DistanceKm float64
}

// MatchNearby filters candidates to those within radiusKm of center and
// sorts them ascending by distance.
//
// Candidates without resolvable coordinates are silently excluded. This is
// intentional fail-closed behavior: a malformed coordinate must never be
// mistaken for "distance unknown, include anyway".
func MatchNearby[T Candidate](center kernel.Location, candidates []T, radiusKm float64) []Match[T] {
	matches := make([]Match[T], 0, len(candidates))

	for _, candidate := range candidates {
		location, ok := candidate.Coordinates()
		if !ok {
			continue
		}

		distance := center.DistanceKmTo(location)
		if distance > radiusKm {
			continue
		}

		matches = append(matches, Match[T]{Candidate: candidate, DistanceKm: distance})
	}

	slices.SortStableFunc(matches, func(a, b Match[T]) int {
		return cmp.Compare(a.DistanceKm, b.DistanceKm)
	})

	return matches
}
