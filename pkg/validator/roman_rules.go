package validator

import "github.com/dmitrymomot/roman/pkg/roman"

// RomanNumeral validates that value is a Roman numeral between 1 and 3999.
// Case and surrounding whitespace are ignored. Blank values pass so that
// RequiredString alone reports them.
func RomanNumeral(field, value string) Rule {
	return Rule{
		Check: func() bool {
			clean := roman.Normalize(value)
			if clean == "" {
				return true
			}
			return roman.Valid(clean)
		},
		Error: ValidationError{
			Field:          field,
			Message:        "must be a roman numeral between I and MMMCMXCIX",
			TranslationKey: "validation.roman_numeral",
			TranslationValues: map[string]any{
				"field": field,
				"min":   roman.MinValue,
				"max":   roman.MaxValue,
			},
		},
	}
}
