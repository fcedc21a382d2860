package services

import "errors"

// Sentinel errors for the quote engine. Callers match these with errors.Is;
// call sites wrap them with additional context via fmt.Errorf and %w.
var (
	// ErrDatabaseNotFound means no recognized SRT database encoding exists
	// in the data directory. Fatal at startup.
	ErrDatabaseNotFound = errors.New("SRT database not found")

	// ErrMalformedRecord means a source record's hours field could not be
	// parsed as a number.
	ErrMalformedRecord = errors.New("malformed SRT record")

	// ErrUnknownFactor means a difficulty factor name is not one of the six
	// recognized factors.
	ErrUnknownFactor = errors.New("unknown difficulty factor")

	// ErrIndexOutOfRange means a line-item index does not address an item.
	ErrIndexOutOfRange = errors.New("line item index out of range")

	// ErrInvalidInput means a manually supplied hours or labor rate value is
	// negative.
	ErrInvalidInput = errors.New("invalid input")
)
