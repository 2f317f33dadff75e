package vaporetto

// BoundaryType is the label assigned to an inter-character gap.
type BoundaryType int

const (
	// Unknown means no label has been assigned yet.
	Unknown BoundaryType = iota
	// WordBoundary means a token boundary exists at this gap.
	WordBoundary
	// NotWordBoundary means the two surrounding characters belong to the
	// same token.
	NotWordBoundary
)

func (b BoundaryType) String() string {
	switch b {
	case WordBoundary:
		return "WordBoundary"
	case NotWordBoundary:
		return "NotWordBoundary"
	default:
		return "Unknown"
	}
}

// CharType is a small closed classification of a character, used as the
// alphabet for the type-n-gram scorer. The numeric values double as the
// byte codes the type matcher's patterns are keyed on.
type CharType byte

const (
	CharTypeHiragana CharType = 'H'
	CharTypeKatakana CharType = 'T'
	CharTypeKanji    CharType = 'K'
	CharTypeDigit    CharType = 'D'
	CharTypeRoman    CharType = 'R'
	CharTypeOther    CharType = 'O'
)

// SelfWeight is one entry of a self-score list: a tag-feature contribution
// that only applies when a token's length matches start_rel_position
// exactly.
type SelfWeight struct {
	StartRelPosition int32
	Weight           []int32
}

// TagScores holds the three per-position tag-feature matrices populated by
// CharScorerWithTags and consumed by Predictor.FillTags. LeftScores and
// RightScores are row-major, n rows of T columns each; SelfScores holds one
// (possibly empty) list of SelfWeight per position.
type TagScores struct {
	LeftScores  []int32
	RightScores []int32
	SelfScores  [][]SelfWeight
	numTags     int
}

// Init (re)shapes the matrices to hold n rows of T columns each, zeroing
// LeftScores/RightScores and clearing SelfScores. Existing backing arrays
// are reused when large enough, matching the "no allocation on the hot
// path once warmed up" design.
func (t *TagScores) Init(n, numTags int) {
	t.numTags = numTags
	need := n * numTags
	if cap(t.LeftScores) >= need {
		t.LeftScores = t.LeftScores[:need]
	} else {
		t.LeftScores = make([]int32, need)
	}
	for i := range t.LeftScores {
		t.LeftScores[i] = 0
	}
	if cap(t.RightScores) >= need {
		t.RightScores = t.RightScores[:need]
	} else {
		t.RightScores = make([]int32, need)
	}
	for i := range t.RightScores {
		t.RightScores[i] = 0
	}
	if cap(t.SelfScores) >= n {
		t.SelfScores = t.SelfScores[:n]
	} else {
		t.SelfScores = make([][]SelfWeight, n)
	}
	for i := range t.SelfScores {
		t.SelfScores[i] = nil
	}
}

// leftRow/rightRow return the T-wide slice of the matrix at row i. Every
// valid FillTags access stays within the allocated n rows (left rows 0..
// n-1, right rows 0..n-1); the zero-fallback below is a defensive
// backstop, not a load-bearing guard-row convention.
func (t *TagScores) leftRow(i int) []int32 {
	if i*t.numTags >= len(t.LeftScores) {
		return make([]int32, t.numTags)
	}
	return t.LeftScores[i*t.numTags : (i+1)*t.numTags]
}

func (t *TagScores) rightRow(i int) []int32 {
	if i*t.numTags >= len(t.RightScores) {
		return make([]int32, t.numTags)
	}
	return t.RightScores[i*t.numTags : (i+1)*t.numTags]
}

// addRow adds w (length T) into row i, extending the matrix with zero
// rows first if row i falls past the currently allocated rows.
// addScoresWithTags clips every row to 0..n-1 before calling, so it never
// triggers that growth; it is not a guard-row convention.
func (t *TagScores) addRow(rows *[]int32, i int, w []int32) {
	need := (i + 1) * t.numTags
	if need > len(*rows) {
		grown := make([]int32, need)
		copy(grown, *rows)
		*rows = grown
	}
	row := (*rows)[i*t.numTags : (i+1)*t.numTags]
	for k, v := range w {
		row[k] += v
	}
}

// Token is one decided span of a tokenized sentence: a surface substring
// and, once FillTags has run, an optional shared tag name.
type Token struct {
	Surface string
	Tag     *string
}

// Sentence is the mutable working buffer a Predictor reads from and
// writes into: characters, per-character class codes, decided boundary
// labels, scratch score vectors, and (when tagging) per-position tag-score
// matrices plus per-token tag slots.
type Sentence struct {
	chars          []rune
	charTypes      []CharType
	boundaries     []BoundaryType
	boundaryScores []int32
	tagScores      TagScores
	tags           []*string
}

// NewSentenceFromText builds a Sentence from raw text, assigning char_types
// via ClassifyChar. Returns InvalidInput if raw is empty.
func NewSentenceFromText(raw string) (*Sentence, error) {
	if raw == "" {
		return nil, newError(InvalidInput, "empty sentence")
	}
	chars := []rune(raw)
	s := &Sentence{
		chars:      chars,
		charTypes:  make([]CharType, len(chars)),
		boundaries: make([]BoundaryType, len(chars)-1),
		tags:       make([]*string, len(chars)),
	}
	for i, r := range chars {
		s.charTypes[i] = ClassifyChar(r)
	}
	return s, nil
}

// Reset reuses s's backing arrays for a new raw string, matching spec.md
// §9's "score vector reused across calls" design note. Returns InvalidInput
// if raw is empty.
func (s *Sentence) Reset(raw string) error {
	if raw == "" {
		return newError(InvalidInput, "empty sentence")
	}
	chars := []rune(raw)
	n := len(chars)
	if cap(s.chars) >= n {
		s.chars = s.chars[:n]
	} else {
		s.chars = make([]rune, n)
	}
	copy(s.chars, chars)
	if cap(s.charTypes) >= n {
		s.charTypes = s.charTypes[:n]
	} else {
		s.charTypes = make([]CharType, n)
	}
	for i, r := range s.chars {
		s.charTypes[i] = ClassifyChar(r)
	}
	if cap(s.boundaries) >= n-1 {
		s.boundaries = s.boundaries[:n-1]
	} else {
		s.boundaries = make([]BoundaryType, n-1)
	}
	for i := range s.boundaries {
		s.boundaries[i] = Unknown
	}
	if cap(s.tags) >= n {
		s.tags = s.tags[:n]
	} else {
		s.tags = make([]*string, n)
	}
	for i := range s.tags {
		s.tags[i] = nil
	}
	s.boundaryScores = s.boundaryScores[:0]
	return nil
}

// Len returns n, the number of characters.
func (s *Sentence) Len() int { return len(s.chars) }

// Chars returns the character sequence. Callers must not mutate it.
func (s *Sentence) Chars() []rune { return s.chars }

// CharTypes returns the per-character class codes. Callers must not
// mutate it.
func (s *Sentence) CharTypes() []CharType { return s.charTypes }

// Boundaries returns the decided boundary labels, length n-1.
func (s *Sentence) Boundaries() []BoundaryType { return s.boundaries }

// BoundariesMut returns a mutable view of the boundary labels, letting
// callers apply post-processors before FillTags runs.
func (s *Sentence) BoundariesMut() []BoundaryType { return s.boundaries }

// BoundaryScores returns the per-gap scores left by PredictWithScore.
func (s *Sentence) BoundaryScores() []int32 { return s.boundaryScores }

// ToTokenizedVec renders the decided boundaries (and tags, if FillTags has
// run) as a slice of Tokens, for test assertions and caller consumption.
func (s *Sentence) ToTokenizedVec() []Token {
	var tokens []Token
	start := 0
	for i := 0; i <= len(s.boundaries); i++ {
		if i == len(s.boundaries) || s.boundaries[i] == WordBoundary {
			tokens = append(tokens, Token{
				Surface: string(s.chars[start : i+1]),
				Tag:     s.tags[i],
			})
			start = i + 1
		}
	}
	return tokens
}
