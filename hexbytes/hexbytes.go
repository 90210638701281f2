// Package hexbytes converts strings of hexadecimal digits, like "A489B1", into raw
// bytes, like [0xA4, 0x89, 0xB1]. Two digits make a byte, the most significant nibble
// going first. An odd-length input is treated as if it had an implicit leading zero,
// so "F" is 0x0F and "ABC" is [0x0A, 0xBC].
package hexbytes

import (
	"strconv"

	"github.com/indigo-web/netstr/config"
	"github.com/indigo-web/netstr/errors"
	"github.com/indigo-web/netstr/internal/hexconv"
)

// InvalidByteError is returned by strict decoding when a non-hex character is met.
type InvalidByteError struct {
	Offset int
	Char   byte
}

func (e *InvalidByteError) Error() string {
	return errors.ErrBadHex.Error() + " " + strconv.QuoteRune(rune(e.Char)) +
		" at offset " + strconv.Itoa(e.Offset)
}

func (e *InvalidByteError) Unwrap() error {
	return errors.ErrBadHex
}

// DecodedLen returns the number of bytes n hex digits decode into.
func DecodedLen(n int) int {
	return (n + 1) / 2
}

// Decode decodes src into dst and returns the number of written bytes, which is always
// DecodedLen(len(src)). Characters that aren't hex digits are silently decoded as zero
// nibbles. If dst is too short, nothing is written and errors.ErrShortBuffer is returned.
func Decode(dst []byte, src string) (int, error) {
	return decode(dst, src, false)
}

// DecodeStrict behaves like Decode, but reports the first non-hex character as an
// *InvalidByteError. dst may be partially written in that case.
func DecodeStrict(dst []byte, src string) (int, error) {
	return decode(dst, src, true)
}

// DecodeWith picks between Decode and DecodeStrict, depending on the config.
func DecodeWith(dst []byte, src string, cfg config.Hex) (int, error) {
	return decode(dst, src, cfg.Strict)
}

// DecodeString allocates a new slice and decodes src into it, the lossy way.
func DecodeString(src string) []byte {
	dst := make([]byte, DecodedLen(len(src)))
	n, _ := decode(dst, src, false)

	return dst[:n]
}

func decode(dst []byte, src string, strict bool) (int, error) {
	n := DecodedLen(len(src))
	if len(dst) < n {
		return 0, errors.ErrShortBuffer
	}

	// parity of the whole length decides which indices carry high nibbles. For an odd
	// length the first char is a low nibble, completing a byte on its own.
	highParity := len(src) & 1
	var (
		current byte
		written int
	)

	for i := 0; i < len(src); i++ {
		nibble := hexconv.Halfbyte[src[i]]
		if nibble == 0xFF {
			if strict {
				return written, &InvalidByteError{Offset: i, Char: src[i]}
			}

			nibble = 0
		}

		if i&1 == highParity {
			current = nibble << 4
			continue
		}

		dst[written] = current | nibble
		written++
		current = 0
	}

	return written, nil
}
