package roman

// Symbol is one of the seven Roman numeral glyphs.
type Symbol rune

const (
	I Symbol = 'I'
	V Symbol = 'V'
	X Symbol = 'X'
	L Symbol = 'L'
	C Symbol = 'C'
	D Symbol = 'D'
	M Symbol = 'M'
)

// Range of values representable by a classical numeral.
const (
	MinValue = 1
	MaxValue = 3999
)

var symbolValues = map[Symbol]int{
	I: 1,
	V: 5,
	X: 10,
	L: 50,
	C: 100,
	D: 500,
	M: 1000,
}

// Value returns the integer value of the symbol, or 0 for a rune that is
// not a Roman glyph.
func (s Symbol) Value() int {
	return symbolValues[s]
}

// IsValid reports whether s is one of the seven glyphs.
func (s Symbol) IsValid() bool {
	_, ok := symbolValues[s]
	return ok
}

func (s Symbol) String() string {
	return string(s)
}
