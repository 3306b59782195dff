package roman

// Convert returns the value of a numeral that has already passed Valid.
// The result for any other input is meaningless; use Parse for untrusted
// strings.
func Convert(s string) int {
	if s == "" {
		return 0
	}

	last := len(s) - 1
	total := Symbol(s[last]).Value()

	for i := last; i > 0; i-- {
		right := Symbol(s[i]).Value()
		left := Symbol(s[i-1]).Value()

		if left >= right {
			total += left
		} else {
			total -= left
		}
	}

	return total
}
