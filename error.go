package waymark

import (
	"errors"
	"fmt"
)

var (
	ErrBadConfig   = errors.New("bad config")
	ErrMissingData = errors.New("missing data")
	ErrNotValid    = errors.New("invalid")

	// ErrLeadingQuestionMark is returned by ParseQuery
	// when the raw query string still carries its "?".
	ErrLeadingQuestionMark = fmt.Errorf("%w: query string must not start with '?'", ErrNotValid)
)
