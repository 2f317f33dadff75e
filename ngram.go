package vaporetto

// NgramEntry is one pattern of an n-gram model: a pattern string (runes for
// the character model, class-code bytes for the type model) and its
// weight vector. For a window W, the weight vector has exactly
// 2*W - len(pattern) + 1 entries, one per gap whose 2W-character window
// contains the whole match, and fans out starting at offset (e-W)+padding
// for a match whose last character is at index e.
type NgramEntry struct {
	Pattern string
	Weights []int32
}

// NgramModel is a dictionary mapping patterns to weight vectors. Patterns
// are unique within a model.
type NgramModel []NgramEntry

// validate checks every weight vector's length against its pattern's
// length and the window size: it must be exactly 2*W - len(pattern) + 1.
// runeKeyed selects whether pattern length is measured in runes (the
// character model) or bytes (the class-code type model, whose patterns
// are class-code byte strings).
func (m NgramModel) validate(window int, kind string, runeKeyed bool) error {
	seen := make(map[string]bool, len(m))
	for _, e := range m {
		if seen[e.Pattern] {
			return newError(InvalidModel, "%s pattern %q is not unique", kind, e.Pattern)
		}
		seen[e.Pattern] = true
		var patLen int
		if runeKeyed {
			patLen = len([]rune(e.Pattern))
		} else {
			patLen = len(e.Pattern)
		}
		want := 2*window - patLen + 1
		if len(e.Weights) != want {
			return newError(InvalidModel, "%s pattern %q: weight vector length %d, want %d (window %d, pattern length %d)",
				kind, e.Pattern, len(e.Weights), want, window, patLen)
		}
	}
	return nil
}
