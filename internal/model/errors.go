package model

import "errors"

var (
	// ErrNotFound is returned when a referenced applicant, company,
	// resume or offer does not exist.
	ErrNotFound = errors.New("not found")
	// ErrOfferNotPending is returned when a mutation is attempted on an
	// offer that has already been accepted or rejected.
	ErrOfferNotPending = errors.New("offer is not pending")
	// ErrEmailTaken is returned on registration with an email that
	// already belongs to a principal of the same kind.
	ErrEmailTaken = errors.New("email is already taken")
	// ErrInvalidCredentials is returned on login with a wrong email or
	// password. Both cases map to the same error on purpose.
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrVersionConflict is returned when a profile update lost the
	// optimistic version check.
	ErrVersionConflict = errors.New("version conflict")

	// ErrUnauthenticated signals a request with no resolvable identity
	// on a route that requires one.
	ErrUnauthenticated = errors.New("unauthenticated")
	// ErrForbidden signals a resolved identity that the route policy denies.
	ErrForbidden = errors.New("forbidden")
)
