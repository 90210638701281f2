package strutil

// IsSpace reports whether the char is whitespace in the C locale: space, \t, \n, \v,
// \f or \r.
func IsSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}

	return false
}

// RStrip strips trailing whitespace from the buffer in place. Stripped bytes are
// overwritten with zeroes and the shortened slice, sharing the same backing array,
// is returned. Empty and nil buffers are returned as is.
func RStrip(buff []byte) []byte {
	for len(buff) > 0 && IsSpace(buff[len(buff)-1]) {
		buff[len(buff)-1] = 0
		buff = buff[:len(buff)-1]
	}

	return buff
}

// RStripString is a non-mutating counterpart of RStrip.
func RStripString(str string) string {
	for i := len(str); i > 0; i-- {
		if !IsSpace(str[i-1]) {
			return str[:i]
		}
	}

	return ""
}

// LStripString strips leading whitespace, using the same whitespace class as RStrip.
func LStripString(str string) string {
	for i := 0; i < len(str); i++ {
		if !IsSpace(str[i]) {
			return str[i:]
		}
	}

	return ""
}
