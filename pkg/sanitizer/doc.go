// Package sanitizer provides small, composable helpers for cleaning user
// input before it is validated.
//
// Every helper is a func(string) string, so helpers chain naturally with the
// generic Apply and Compose functions:
//
//	clean := sanitizer.Compose(
//	    sanitizer.Trim,
//	    sanitizer.ToUpper,
//	)
//
//	numeral := clean("  mcmxciv\n") // "MCMXCIV"
//
// None of the helpers returns an error and none of them holds state, so they
// are safe for concurrent use.
package sanitizer
