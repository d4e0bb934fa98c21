package symbols

import "unicode"

// Regional indicator symbols form a contiguous block, starting with
// REGIONAL INDICATOR SYMBOL LETTER A.
const regionalIndicatorBase rune = 0x1F1E6

// RegionalIndicator maps a letter to its regional indicator symbol
// (A -> 🇦). The mapping is case-insensitive and computed from the codepoint
// distance to 'A', covering the complete Latin alphabet with a single
// formula. Non-letters are returned unchanged.
func RegionalIndicator(r rune) string {
	if !unicode.IsLetter(r) {
		return string(r)
	}
	return string(regionalIndicatorBase + (unicode.ToUpper(r) - 'A'))
}

// DigitKeycap maps an ASCII digit to its keycap emoji ('7' -> 7️⃣).
// Runes without a keycap equivalent are returned unchanged.
func DigitKeycap(r rune) string {
	if keycap, ok := digitKeycap[r]; ok {
		return keycap
	}
	return string(r)
}

// Flag builds the flag emoji for a 2-letter ISO 3166-1 country code
// ("DE" -> 🇩🇪). The code may be given in any case. Flag returns the empty
// string for anything that is not a 2-letter code.
func Flag(cc string) string {
	if len(cc) != 2 {
		return ""
	}
	flag := ""
	for _, r := range cc {
		u := unicode.ToUpper(r)
		if u < 'A' || u > 'Z' {
			return ""
		}
		flag += string(regionalIndicatorBase + (u - 'A'))
	}
	return flag
}
