package roman

import "errors"

// ErrInvalidNumeral is returned when the input is not a syntactically valid
// Roman numeral in the range 1–3999.
var ErrInvalidNumeral = errors.New("invalid roman numeral")
