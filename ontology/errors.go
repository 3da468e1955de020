package ontology

import "errors"

// Sentinel errors returned by schema construction and graph mutation.
// Callers match them with errors.Is.
var (
	// ErrUnknownClass indicates a reference to an undeclared class.
	ErrUnknownClass = errors.New("unknown class")

	// ErrUnknownProperty indicates a reference to an undeclared property.
	ErrUnknownProperty = errors.New("unknown property")

	// ErrDuplicateID indicates an individual ID is already taken.
	ErrDuplicateID = errors.New("duplicate individual ID")

	// ErrDomainViolation indicates a subject outside a property's domain.
	ErrDomainViolation = errors.New("domain violation")

	// ErrRangeViolation indicates an object outside a property's range.
	ErrRangeViolation = errors.New("range violation")

	// ErrFunctionalViolation indicates a second assertion on a functional property.
	ErrFunctionalViolation = errors.New("functional property already asserted")

	// ErrKindMismatch indicates a literal of the wrong kind for a data property.
	ErrKindMismatch = errors.New("value kind mismatch")
)
