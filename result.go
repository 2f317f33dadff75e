package vaporetto

import "github.com/bytedance/sonic"

// tokenJSON is the wire shape of one decided token: its surface text and,
// once FillTags has run, its shared tag name (nil if tagging was never
// requested or FillTags has not run yet).
type tokenJSON struct {
	Surface string  `json:"surface"`
	Tag     *string `json:"tag,omitempty"`
}

// ToJSON renders the sentence's decided tokens (spec.md's ToTokenizedVec
// output) as a flat JSON array, using sonic for the marshal. This is
// presentation only — it carries none of the scorer's invariants.
func (s *Sentence) ToJSON() ([]byte, error) {
	tokens := s.ToTokenizedVec()
	out := make([]tokenJSON, len(tokens))
	for i, t := range tokens {
		out[i] = tokenJSON{Surface: t.Surface, Tag: t.Tag}
	}
	return sonic.Marshal(out)
}
