// Package services contains stateless domain services for the dispatch core.
//
// MatchNearby implements proximity matching: it annotates candidates with
// their haversine distance from a center point, drops everything outside the
// radius, and sorts the remainder nearest-first. It is a pure function with
// no side effects and no error conditions.
package services
