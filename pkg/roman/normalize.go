package roman

import "github.com/dmitrymomot/roman/pkg/sanitizer"

var normalize = sanitizer.Compose(
	sanitizer.Trim,
	sanitizer.ToUpper,
)

// Normalize removes leading and trailing whitespace and upper-cases every
// letter. Interior characters are left in place so that they fail
// validation later.
func Normalize(s string) string {
	return normalize(s)
}
