package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Item errors
	ErrMsgInvalidItem    = "invalid item"
	ErrMsgUnknownVariant = "unknown variant"

	// Stock file errors
	ErrMsgInvalidStock = "invalid stock file"
	ErrMsgEmptyStock   = "no items defined"

	// Config errors
	ErrMsgInvalidConfig = "invalid configuration"
)

// Common domain errors
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	ErrInvalidItem    = errors.New(ErrMsgInvalidItem)
	ErrUnknownVariant = errors.New(ErrMsgUnknownVariant)

	ErrInvalidStock = errors.New(ErrMsgInvalidStock)
	ErrEmptyStock   = errors.New(ErrMsgEmptyStock)

	ErrInvalidConfig = errors.New(ErrMsgInvalidConfig)
)
