package signal

import "errors"

var (
	// ErrUnknownCase indicates that a requested synthetic case label is not recognized.
	ErrUnknownCase = errors.New("signal: unknown case")

	// ErrBadOptions indicates generator options that cannot produce a sequence.
	ErrBadOptions = errors.New("signal: invalid generator options")

	// ErrEmptyCSV indicates a CSV source without any numeric sample.
	ErrEmptyCSV = errors.New("signal: no samples in csv input")

	// ErrBadSample indicates a CSV field that is not a finite number.
	ErrBadSample = errors.New("signal: malformed sample")
)
