// Package guard provides a defensive construction marker for value objects
// and aggregates. Embedding a ConstructorGuard lets a type detect whether it
// was created through its designated constructor or as a zero value, so that
// validation can reject improperly initialized instances.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when the guarded object
// was not constructed and no specific error was supplied.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks an object as having been created through its
// constructor function. The zero value fails validation.
//
// Example usage:
//
//	type Location struct {
//	    lat, lon float64
//	    guard    guard.ConstructorGuard
//	}
//
//	func NewLocation(lat, lon float64) (Location, error) {
//	    // ... validate ...
//	    return Location{lat: lat, lon: lon, guard: guard.NewConstructorGuard()}, nil
//	}
//
//	func (l Location) Validate() error {
//	    return l.guard.Validate(ErrLocationIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a guard marking the enclosing object as
// properly constructed. Call it from the object's constructor.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil for a properly constructed guard. For a zero-value
// guard it returns validationError, or ErrDefaultConstructorGuard when
// validationError is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
