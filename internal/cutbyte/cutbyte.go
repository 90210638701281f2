package cutbyte

// Cut behaves like strings.Cut, but with a single-byte separator.
func Cut(str string, sep byte) (prefix, postfix string, found bool) {
	for i := 0; i < len(str); i++ {
		if str[i] == sep {
			return str[:i], str[i+1:], true
		}
	}

	return str, "", false
}

// Before returns everything preceding the first occurrence of sep, or the whole string
// if sep isn't presented.
func Before(str string, sep byte) string {
	prefix, _, _ := Cut(str, sep)
	return prefix
}
