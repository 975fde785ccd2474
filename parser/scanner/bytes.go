package scanner

// ASCII byte classes used by the literal grammar.

func IsDecimalDigit(b byte) bool {
	return '0' <= b && b <= '9'
}

func IsHexDigit(b byte) bool {
	return IsDecimalDigit(b) || ('a' <= b && b <= 'f') || ('A' <= b && b <= 'F')
}

// IsBase64URLByte reports whether b belongs to the URL-safe base64
// alphabet, padding included.
func IsBase64URLByte(b byte) bool {
	return ('a' <= b && b <= 'z') || ('A' <= b && b <= 'Z') ||
		IsDecimalDigit(b) || b == '-' || b == '_' || b == '='
}

func IsIdentifierStart(b byte) bool {
	return ('a' <= b && b <= 'z') || ('A' <= b && b <= 'Z') || b == '_'
}

func IsIdentifierPart(b byte) bool {
	return IsIdentifierStart(b) || IsDecimalDigit(b)
}
