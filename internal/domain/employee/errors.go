package employee

import "errors"

var (
	// ErrUnknownEmail and ErrWrongPassword stay distinct internally
	// (audit wants to know which one happened); the gateway collapses
	// both into one invalid-credentials message on purpose.
	ErrUnknownEmail  = errors.New("email not registered")
	ErrWrongPassword = errors.New("wrong password")

	ErrDuplicateIdentity = errors.New("email or document number already registered")
	ErrNotFound          = errors.New("employee not found")
)
