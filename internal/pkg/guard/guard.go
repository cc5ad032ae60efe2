// Package guard marks domain objects that were built through their constructor.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when the caller passes no error of its own.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard tells a constructed value apart from a zero value. Aggregates
// embed it as a private field set by their constructor (or by the Restore
// function repositories use) and check it in their Validate method.
//
//	type Load struct {
//	    id    kernel.UUID
//	    guard guard.ConstructorGuard
//	}
//
//	func (l *Load) Validate() error {
//	    return l.guard.Validate(ErrLoadNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil for a constructed guard. For a zero value it returns
// validationError, or ErrDefaultConstructorGuard when validationError is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
