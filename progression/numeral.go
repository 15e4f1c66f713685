package progression

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/jsphweid/theorybox/interval"
)

var degrees = map[string]int{
	"I": 0, "II": 1, "III": 2, "IV": 3, "V": 4, "VI": 5, "VII": 6,
}

// Numeral is a parsed roman numeral token.
type Numeral struct {
	Token   string
	Degree  int
	Quality interval.Formula
}

// ParseNumeral reads the leading I/V letters of token case-insensitively.
// Anything it does not recognise falls back to degree 0 and reports false;
// that fallback is not an error.
//
// Quality comes from the first character and a "7" anywhere in the token:
// upper case gives major or dominant 7, lower case minor or minor 7.
// Diminished chords are not modelled, so "vii°" is a minor triad.
func ParseNumeral(token string) (Numeral, bool) {
	letters := token
	if end := strings.IndexFunc(token, func(r rune) bool {
		return !strings.ContainsRune("IVivV", r)
	}); end >= 0 {
		letters = token[:end]
	}

	degree, ok := degrees[strings.ToUpper(letters)]
	if !ok {
		degree = 0
	}

	first, _ := utf8.DecodeRuneInString(token)
	upper := first != utf8.RuneError && unicode.IsUpper(first)

	var quality interval.Formula
	switch {
	case strings.Contains(token, "7") && upper:
		quality = interval.Dominant7Chord
	case strings.Contains(token, "7"):
		quality = interval.Minor7Chord
	case upper:
		quality = interval.MajorChord
	default:
		quality = interval.MinorChord
	}

	return Numeral{Token: token, Degree: degree, Quality: quality}, ok
}
