package grammar

const upperhex = "0123456789ABCDEF"

// HexByte returns the two uppercase hex digits of c.
func HexByte(c byte) (hi, lo byte) { return upperhex[c>>4], upperhex[c&15] }

// IsHex reports whether c is a hexadecimal digit.
func IsHex(c byte) bool {
	switch {
	case '0' <= c && c <= '9':
		return true
	case 'a' <= c && c <= 'f':
		return true
	case 'A' <= c && c <= 'F':
		return true
	}
	return false
}

// Unhex returns the value of the hex digit c.
func Unhex(c byte) byte {
	switch {
	case '0' <= c && c <= '9':
		return c - '0'
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10
	case 'A' <= c && c <= 'F':
		return c - 'A' + 10
	}
	return 0
}

// IsEscape reports whether s has a well-formed "%" HEXDIG HEXDIG triplet at i.
func IsEscape[T Byteseq](s T, i int) bool {
	return i+2 < len(s) && s[i] == '%' && IsHex(s[i+1]) && IsHex(s[i+2])
}

// IsAlphanumChar checks alphanum rule.
func IsAlphanumChar(c byte) bool {
	return 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z' || '0' <= c && c <= '9'
}

// IsCharUnreserved checks the RFC 3986 unreserved rule: ALPHA / DIGIT / "-" / "." / "_" / "~".
func IsCharUnreserved(c byte) bool {
	switch c {
	case '-', '.', '_', '~':
		return true
	}
	return IsAlphanumChar(c)
}

// IsCharComponentSafe reports whether c is left as is when a single URL component is escaped.
// Besides unreserved characters these are the marks "!", "'", "(", ")" and "*".
func IsCharComponentSafe(c byte) bool {
	switch c {
	case '!', '\'', '(', ')', '*':
		return true
	}
	return IsCharUnreserved(c)
}

// IsCharReserved checks the RFC 3986 reserved rule: gen-delims / sub-delims.
func IsCharReserved(c byte) bool {
	switch c {
	case ':', '/', '?', '#', '[', ']', '@', // gen-delims
		'!', '$', '&', '\'', '(', ')', '*', '+', ',', ';', '=': // sub-delims
		return true
	}
	return false
}
