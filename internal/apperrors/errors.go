package apperrors

import "errors"

// ErrNotFound indicates that a record could not be found, including when a
// reference points at a row that no longer exists.
var ErrNotFound = errors.New("record not found")

// ErrUniquenessViolation indicates that a write would duplicate a unique value (product SKU).
var ErrUniquenessViolation = errors.New("uniqueness violation")

// ErrDomainConstraint indicates that a value breaks a declared field constraint.
var ErrDomainConstraint = errors.New("domain constraint violation")

// ErrReferentialIntegrity indicates a dangling reference that the cascade rules
// should have made impossible.
var ErrReferentialIntegrity = errors.New("referential integrity error")

// ErrUnauthorized indicates missing or rejected staff credentials.
var ErrUnauthorized = errors.New("unauthorized")
