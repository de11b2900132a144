// Package guard provides a defensive pattern that ensures value objects,
// commands, and queries are only created through their designated constructor
// functions. Embedding a ConstructorGuard in a struct makes zero-value
// instances detectable, so objects that bypassed validation fail fast.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no specific
// validation error is supplied for an unconstructed object.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard tracks whether the embedding object went through its
// constructor. The zero value fails validation; NewConstructorGuard passes.
//
// Example:
//
//	type Grant struct {
//	    level access.Level
//	    guard guard.ConstructorGuard
//	}
//
//	func NewGrant(level access.Level) (Grant, error) {
//	    if err := level.Validate(); err != nil {
//	        return Grant{}, err
//	    }
//	    return Grant{level: level, guard: guard.NewConstructorGuard()}, nil
//	}
//
//	func (g Grant) Validate() error {
//	    return g.guard.Validate(ErrGrantIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard marks an object as properly constructed.
// Call it in every constructor of a guarded type.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil when the object was built through its constructor.
// Otherwise it returns validationError, or ErrDefaultConstructorGuard when
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
