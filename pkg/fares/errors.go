package fares

import "errors"

// Failure taxonomy for a generation run. Errors are wrapped with context at
// the point of failure and checked with errors.Is by the invoking harness.
var (
	ErrInputUnavailable        = errors.New("input unavailable")
	ErrInvalidTicketData       = errors.New("invalid ticket data")
	ErrTemplateUnavailable     = errors.New("template unavailable")
	ErrTemplateMalformed       = errors.New("template malformed")
	ErrSerializationFailure    = errors.New("serialization failure")
	ErrSchemaValidationFailure = errors.New("schema validation failure")
)
