package biz

import (
	"errors"
	"fmt"
)

// Failure kinds surfaced by the services. The transport layer maps them to
// its own status vocabulary; authentication and authorization failures are
// distinct kinds and must never be conflated.
var (
	ErrUnauthenticated = errors.New("unauthenticated")
	ErrForbidden       = errors.New("forbidden")
	ErrNotFound        = errors.New("not found")
	ErrConflict        = errors.New("conflict")
	ErrInternal        = errors.New("server internal error, please try again later")

	ErrInvalidJWT      = fmt.Errorf("%w: invalid jwt token", ErrUnauthenticated)
	ErrInvalidPassword = fmt.Errorf("%w: invalid login or password", ErrUnauthenticated)
)
