package vaporetto

import "unicode"

// ClassifyChar assigns a CharType to a single rune. This mirrors
// vaporetto's own Hiragana/Katakana/Kanji/Digit/Roman/Other taxonomy; it is
// not part of the scorer's testable properties (scenarios supply
// char_types directly) but is required to build a Sentence from raw text.
func ClassifyChar(r rune) CharType {
	switch {
	case unicode.Is(unicode.Hiragana, r):
		return CharTypeHiragana
	case unicode.Is(unicode.Katakana, r):
		return CharTypeKatakana
	case unicode.Is(unicode.Han, r):
		return CharTypeKanji
	case unicode.IsDigit(r):
		return CharTypeDigit
	case unicode.Is(unicode.Latin, r):
		return CharTypeRoman
	default:
		return CharTypeOther
	}
}
