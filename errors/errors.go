package errors

import (
	"errors"
)

var (
	ErrMalformedURL = errors.New("malformed URL: no scheme delimiter")
	ErrBadPort      = errors.New("port is out of range")

	ErrShortBuffer = errors.New("destination buffer is too short")
	ErrNoInput     = errors.New("nothing to encode")
	ErrBadHex      = errors.New("invalid hexadecimal character")
)
