package services

import (
	"errors"
	"fmt"
)

// ErrInvalid marks a request rejected by validation.
var ErrInvalid = errors.New("invalid request")

func invalidf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrInvalid, fmt.Sprintf(format, args...))
}
