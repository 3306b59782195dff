// Package validator provides declarative, translation-friendly validation
// rules for request and console input.
//
// A Rule couples a boolean Check function with the ValidationError to report
// when the check fails. Rules are evaluated with Apply, which aggregates all
// failures into a ValidationErrors slice that satisfies the error interface:
//
//	err := validator.Apply(
//	    validator.RequiredString("numeral", input),
//	    validator.MaxLenString("numeral", input, 64),
//	    validator.RomanNumeral("numeral", input),
//	)
//	if verrs := validator.ExtractValidationErrors(err); verrs != nil {
//	    for _, field := range verrs.Fields() {
//	        // render verrs.Get(field) or translate each TranslationKey
//	    }
//	}
//
// Every ValidationError carries a TranslationKey (for example
// "validation.roman_numeral") and TranslationValues so that callers can
// render messages in the user's language with pkg/i18n.
//
// Rules hold no state, so the package is safe for concurrent use.
package validator
