package dataset

import "errors"

var (
	ErrUnknownCountry  = errors.New("unknown country code")
	ErrInvalidSequence = errors.New("sequence number must be positive")

	ErrNoMembers    = errors.New("member set is empty")
	ErrInvalidCount = errors.New("count must not be negative")

	ErrInvalidProfileVersion = errors.New("unsupported profile version")
	ErrInvalidProfileCount   = errors.New("profile count must not be negative")
)
