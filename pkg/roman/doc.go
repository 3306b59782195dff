// Package roman recognizes classical Roman numerals and converts them to
// integers.
//
// The package accepts only well-formed numerals in the conventional range
// 1–3999 (MinValue..MaxValue). Input is normalized before it is checked:
// surrounding whitespace is removed and letters are upper-cased, so "xiv",
// " XIV " and "xIv" are all read as XIV. Nothing else is stripped; embedded
// spaces, punctuation and any other characters make the whole input invalid.
//
// # Architecture
//
// Conversion is a three-stage pipeline:
//
//   - Normalize: trim and upper-case (built on pkg/sanitizer).
//   - Valid: structural recognizer. A single anchored pattern with one
//     group per place value (thousands, hundreds, tens, units) encodes the
//     repetition limits, the six permitted subtractive pairs (IV, IX, XL,
//     XC, CD, CM) and the descending order of place values.
//   - Convert: one right-to-left scan that adds a symbol when it is not
//     smaller than its right neighbour and subtracts it otherwise.
//
// The symbol table and the compiled pattern are package-level values that
// are never mutated, so every function is safe for concurrent use without
// locking.
//
// # Usage
//
//	n, err := roman.Parse("MCMXCIV")
//	if err != nil {
//	    if errors.Is(err, roman.ErrInvalidNumeral) {
//	        // report bad input
//	    }
//	}
//	// n == 1994
//
// Tokens exposes the place-value decomposition of a numeral:
//
//	tokens, _ := roman.Tokens("XIX")
//	// [{tens X 10} {units IX 9}]
//
// # Error Handling
//
// Parse and Tokens return ErrInvalidNumeral (wrapped with the offending
// input) for anything that is not a valid numeral, including the empty
// string. There is no partial result.
package roman
