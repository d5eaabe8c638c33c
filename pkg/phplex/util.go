package phplex

import "strconv"

func isSpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r' || b == '\v' || b == '\f'
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

func isHex(b byte) bool {
	return isDigit(b) || (b|0x20 >= 'a' && b|0x20 <= 'f')
}

// Bytes >= 0x80 are accepted in identifiers, as PHP does.
func isIdentStart(b byte) bool {
	return b == '_' || (b|0x20 >= 'a' && b|0x20 <= 'z') || b >= 0x80
}

func isIdentContinue(b byte) bool {
	return isIdentStart(b) || isDigit(b)
}

func quoteByte(b byte) string {
	return strconv.QuoteRune(rune(b))
}
