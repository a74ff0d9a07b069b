// Package guard provides a defensive construction check for value objects.
// Embedding a ConstructorGuard in a struct makes zero-value instances
// detectable, so domain objects can insist on being built through their
// constructor functions.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no specific error is
// provided for an object that was not properly constructed.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks an object as created through its designated
// constructor. The zero value fails validation, which prevents accidental use
// of directly instantiated structs that skipped invariant checks.
//
// Example usage:
//
//	type Token struct {
//	    value string
//	    guard guard.ConstructorGuard
//	}
//
//	func NewToken(value string) (Token, error) {
//	    // validation ...
//	    return Token{value: value, guard: guard.NewConstructorGuard()}, nil
//	}
//
//	func (t Token) Validate() error {
//	    return t.guard.Validate(ErrTokenIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a guard that marks an object as properly
// constructed. Call it inside the object's constructor.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil when the guarded object was created through its
// constructor. Otherwise it returns validationError, or
// ErrDefaultConstructorGuard when validationError is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
