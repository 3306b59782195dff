package roman

import "fmt"

// Place identifies a decimal place value within a numeral.
type Place int

const (
	Thousands Place = iota
	Hundreds
	Tens
	Units
)

var placeNames = [...]string{
	Thousands: "thousands",
	Hundreds:  "hundreds",
	Tens:      "tens",
	Units:     "units",
}

func (p Place) String() string {
	if p < Thousands || p > Units {
		return fmt.Sprintf("Place(%d)", int(p))
	}
	return placeNames[p]
}

// Token is the part of a numeral that encodes one place value, for example
// "CM" in the hundreds place of MCMXCIV.
type Token struct {
	Place Place  `json:"place"`
	Text  string `json:"text"`
	Value int    `json:"value"`
}

// Tokens splits numeral into its non-empty place-value groups, from the
// thousands down to the units. Token values are strictly decreasing and
// add up to the numeral's value.
func Tokens(numeral string) ([]Token, error) {
	clean := Normalize(numeral)
	if !Valid(clean) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidNumeral, numeral)
	}

	groups := numeralPattern.FindStringSubmatch(clean)
	tokens := make([]Token, 0, len(groups)-1)
	for i, text := range groups[1:] {
		if text == "" {
			continue
		}
		tokens = append(tokens, Token{
			Place: Place(i),
			Text:  text,
			Value: Convert(text),
		})
	}

	return tokens, nil
}

// MarshalText encodes the place by name.
func (p Place) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}
