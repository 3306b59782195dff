package roman

import "fmt"

// Parse normalizes numeral, validates it and returns its integer value.
// The returned error wraps ErrInvalidNumeral when the input is rejected.
func Parse(numeral string) (int, error) {
	clean := Normalize(numeral)
	if !Valid(clean) {
		return 0, fmt.Errorf("%w: %q", ErrInvalidNumeral, numeral)
	}
	return Convert(clean), nil
}

// MustParse is like Parse but panics if the numeral is invalid.
// It is intended for package-level constants and tests.
func MustParse(numeral string) int {
	n, err := Parse(numeral)
	if err != nil {
		panic(err)
	}
	return n
}
