// Package b64 implements the standard padded base64 encoding (RFC 4648, section 4).
// Only the encoding direction is provided.
package b64

import (
	"github.com/indigo-web/netstr/errors"
	"github.com/indigo-web/utils/uf"
)

const (
	alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789+/"
	padding  = '='
)

// EncodedLen returns the length of the base64 encoding of n bytes. Incomplete trailing
// groups are padded, so it's always a multiple of 4.
func EncodedLen(n int) int {
	return (n + 2) / 3 * 4
}

// Encode encodes src into the first EncodedLen(len(src)) bytes of dst and returns that
// number. Empty src results in errors.ErrNoInput, undersized dst in errors.ErrShortBuffer.
// dst isn't touched in both cases.
func Encode(dst, src []byte) (int, error) {
	if len(src) == 0 {
		return 0, errors.ErrNoInput
	}

	n := EncodedLen(len(src))
	if len(dst) < n {
		return 0, errors.ErrShortBuffer
	}

	encode(dst[:n], src)

	return n, nil
}

// AppendEncode appends the encoded src to dst, growing it if needed.
func AppendEncode(dst, src []byte) ([]byte, error) {
	if len(src) == 0 {
		return dst, errors.ErrNoInput
	}

	n := EncodedLen(len(src))
	if free := cap(dst) - len(dst); free < n {
		grown := make([]byte, len(dst), len(dst)+n)
		copy(grown, dst)
		dst = grown
	}

	encode(dst[len(dst):len(dst)+n], src)

	return dst[:len(dst)+n], nil
}

// EncodeToString returns the encoded src as a string.
func EncodeToString(src []byte) (string, error) {
	if len(src) == 0 {
		return "", errors.ErrNoInput
	}

	buff := make([]byte, EncodedLen(len(src)))
	encode(buff, src)

	// buff doesn't escape anywhere else, so the string is the sole owner
	return uf.B2S(buff), nil
}

// encode expects dst to be exactly EncodedLen(len(src)) long.
func encode(dst, src []byte) {
	for i, j := 0, 0; i < len(src); i, j = i+3, j+4 {
		// missing trailing bytes contribute zero bits
		v := uint32(src[i]) << 16
		if i+1 < len(src) {
			v |= uint32(src[i+1]) << 8
		}
		if i+2 < len(src) {
			v |= uint32(src[i+2])
		}

		dst[j] = alphabet[v>>18&0x3F]
		dst[j+1] = alphabet[v>>12&0x3F]

		if i+1 < len(src) {
			dst[j+2] = alphabet[v>>6&0x3F]
		} else {
			dst[j+2] = padding
		}

		if i+2 < len(src) {
			dst[j+3] = alphabet[v&0x3F]
		} else {
			dst[j+3] = padding
		}
	}
}
