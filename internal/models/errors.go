package models

import (
	"errors"
)

var (
	// ErrGeneral is returned for storage failures where no details can be
	// shared with the client. The underlying error is logged.
	ErrGeneral = errors.New("an error occurred on the server during your request")

	// ErrResourceNotFound is wrapped by the query callback with the name of
	// the resource that could not be found.
	ErrResourceNotFound = errors.New("there is no")

	// ErrAccessDenied is returned whenever a resource is not reachable
	// through the authenticated user. It deliberately does not distinguish
	// between "does not exist" and "belongs to someone else".
	ErrAccessDenied = errors.New("you do not have access to this resource")

	ErrEmailTaken  = errors.New("a user with this email is already registered")
	ErrLoginFailed = errors.New("the email or password is incorrect")
)
