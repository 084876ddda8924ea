// Package kernel contains shared domain primitives for the dispatch core.
//
// Its central type is Location, an immutable geographic coordinate pair in
// decimal degrees. Locations are constructor-validated: latitude must lie in
// [-90, 90] and longitude in [-180, 180], and the zero value fails
// validation. Great-circle distance between two locations is computed with
// the haversine formula.
package kernel
