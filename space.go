package instream

// isSpace reports whether c delimits tokens. The delimiter set is the space
// character and the 0x09-0x0d control range (tab, line feed, vertical tab,
// form feed, carriage return). No other byte delimits, in particular no
// other control characters and no multi-byte runes.
func isSpace(c byte) bool {
	return c == ' ' || (c >= '\t' && c <= '\r')
}
