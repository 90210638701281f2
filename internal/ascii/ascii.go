package ascii

// ToLower folds ASCII upper-case letters only. Bytes outside A-Z, including non-ASCII
// ones, are left as is. The original string is returned if nothing had to be changed.
func ToLower(str string) string {
	i := 0
	for ; i < len(str); i++ {
		if isUpper(str[i]) {
			break
		}
	}

	if i == len(str) {
		return str
	}

	buff := make([]byte, len(str))
	copy(buff, str[:i])
	for ; i < len(str); i++ {
		c := str[i]
		if isUpper(c) {
			c |= 0x20
		}

		buff[i] = c
	}

	return string(buff)
}

func isUpper(c byte) bool {
	return 'A' <= c && c <= 'Z'
}
