package roman

import "regexp"

// One group per place value. Each group admits only the glyph combinations
// that are legal for that place, which also fixes their order.
var numeralPattern = regexp.MustCompile(`^(M{0,3})(CM|CD|D?C{0,3})(XC|XL|L?X{0,3})(IX|IV|V?I{0,3})$`)

// Valid reports whether s, already normalized, is a well-formed Roman
// numeral between MinValue and MaxValue.
func Valid(s string) bool {
	// The pattern matches the empty string.
	if s == "" {
		return false
	}
	return numeralPattern.MatchString(s)
}
