package vaporetto

// simdLanes matches spec.md §4.1's "fixed-width integer-add vector"
// design note. Go has no portable SIMD intrinsic in the standard library,
// so this only buys branch-free, bounds-check-free scalar writes near the
// sentence's tail; a vectorized inner loop is out of scope.
const simdLanes = 16

// Predictor is the immutable, thread-safe scorer/decoder built once from
// a Model. Sentences carry all mutable per-call state.
type Predictor struct {
	bias       int32
	padding    int
	charScorer *CharScorer
	tagScorer  *CharScorerWithTags // nil unless predictTags
	typeScorer *TypeScorer
	tagBias    []int32
	tagNames   []string
}

// New builds a Predictor from model. Selects CharScorerWithTags iff
// predictTags and model.TagModel has at least one class; otherwise plain
// CharScorer. Returns InvalidModel if model.Validate fails, or if
// predictTags is requested against a model with no tag classes.
func New(model *Model, predictTags bool) (*Predictor, error) {
	if err := model.Validate(); err != nil {
		return nil, err
	}
	if predictTags && (model.TagModel == nil || len(model.TagModel.ClassInfo) == 0) {
		return nil, newError(InvalidModel, "predict_tags requested but model has no tag classes")
	}
	p := &Predictor{
		bias:       model.Bias,
		padding:    maxInt(model.CharWindowSize, model.TypeWindowSize),
		typeScorer: newTypeScorer(model),
	}
	if predictTags {
		p.tagScorer = newCharScorerWithTags(model)
		p.charScorer = &p.tagScorer.CharScorer
		p.tagBias = make([]int32, len(model.TagModel.ClassInfo))
		p.tagNames = make([]string, len(model.TagModel.ClassInfo))
		for i, c := range model.TagModel.ClassInfo {
			p.tagBias[i] = c.Bias
			p.tagNames[i] = c.Name
		}
	} else {
		p.charScorer = newCharScorer(model)
	}
	return p, nil
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// numTags returns the number of tag classes, or 0 if tagging was not
// requested at construction.
func (p *Predictor) numTags() int {
	return len(p.tagNames)
}

// predictImpl runs the full scoring pipeline per spec.md §4.1: allocates
// the padded ys vector, dispatches to the char (or char+tags) scorer and
// the type scorer, thresholds every gap into boundaries, and — when
// tagging — leaves tag_scores populated in sent for a later FillTags call.
// withScore controls whether boundary_scores is left aligned to 0..n-1 or
// cleared.
func (p *Predictor) predictImpl(sent *Sentence, withScore bool) {
	n := sent.Len()
	l := (n - 1) + p.padding + (simdLanes - 1)
	var ys []int32
	if cap(sent.boundaryScores) >= l {
		ys = sent.boundaryScores[:l]
	} else {
		ys = make([]int32, l)
	}
	for i := range ys {
		ys[i] = p.bias
	}

	if p.tagScorer != nil {
		sent.tagScores.Init(n, p.numTags())
		p.tagScorer.addScoresWithTags(sent, p.padding, ys, &sent.tagScores)
	} else {
		p.charScorer.addScores(sent, p.padding, ys)
	}
	p.typeScorer.addScores(sent, p.padding, ys)

	for i := 0; i < n-1; i++ {
		if ys[p.padding+i] >= 0 {
			sent.boundaries[i] = WordBoundary
		} else {
			sent.boundaries[i] = NotWordBoundary
		}
	}

	if withScore {
		copy(ys, ys[p.padding:p.padding+(n-1)])
		sent.boundaryScores = ys[:n-1]
	} else {
		sent.boundaryScores = ys[:0]
	}
}

// Predict runs scoring and writes sent.boundaries, clearing boundary_scores.
func (p *Predictor) Predict(sent *Sentence) {
	p.predictImpl(sent, false)
}

// PredictWithScore runs scoring and leaves boundary_scores aligned to
// positions 0..n-1.
func (p *Predictor) PredictWithScore(sent *Sentence) {
	p.predictImpl(sent, true)
}

// FillTags requires that sent.boundaries has been finalized (possibly
// after caller-side post-processing). No-op if the Predictor was built
// without tags. Implements the two-pass tag-assignment algorithm of
// spec.md §4.4, reconciled bit-for-bit against predictor.rs's fill_tags —
// see DESIGN.md for every point where this deviates from spec.md's
// literal prose: right_scores is read unshifted (row i, not i+1) both
// inside the loop and in the final step (row n-1, the array's own last
// row — there is no synthetic all-zero guard row past it), self-weight
// indexing uses the match's own end position, and ties in every per-token
// argmax resolve to the last index, not the first.
func (p *Predictor) FillTags(sent *Sentence) {
	if p.tagScorer == nil {
		return
	}
	n := sent.Len()
	t := p.numTags()
	if sent.tags == nil {
		sent.tags = make([]*string, n)
	}

	acc := make([]int32, t)
	copy(acc, p.tagBias)
	addRow(acc, sent.tagScores.leftRow(0))

	lastBoundaryIdx := 0
	for i := 0; i < n-1; i++ {
		if sent.boundaries[i] != WordBoundary {
			continue
		}
		addRow(acc, sent.tagScores.rightRow(i))

		diff := int32(lastBoundaryIdx - i - 1)
		applySelfWeight(acc, sent.tagScores.SelfScores[i], diff)

		sent.tags[i] = p.bestTag(acc)

		nextLeft := sent.tagScores.leftRow(i + 1)
		for k := range acc {
			acc[k] = p.tagBias[k] + nextLeft[k]
		}
		lastBoundaryIdx = i + 1
	}

	addRow(acc, sent.tagScores.rightRow(n-1))
	diff := int32(lastBoundaryIdx - n)
	applySelfWeight(acc, sent.tagScores.SelfScores[n-1], diff)
	sent.tags[n-1] = p.bestTag(acc)
}

func addRow(acc []int32, row []int32) {
	for k, v := range row {
		acc[k] += v
	}
}

// applySelfWeight scans a self-score list ordered descending by
// StartRelPosition: skip entries greater than diff, apply and stop on the
// entry equal to diff, stop (without applying) once an entry is less than
// diff — matching predictor.rs's termination rule exactly. A nil list (or
// one present but containing no matching entry) contributes nothing,
// tolerating the null-final-slot open question from spec.md §9.
func applySelfWeight(acc []int32, list []SelfWeight, diff int32) {
	for _, sw := range list {
		switch {
		case sw.StartRelPosition > diff:
			continue
		case sw.StartRelPosition == diff:
			addRow(acc, sw.Weight)
			return
		default:
			return
		}
	}
}

// bestTag returns the tag name of the accumulator's argmax entry. Ties
// resolve to the LAST index achieving the max, matching predictor.rs's
// own Iterator::max_by_key semantics (documented to return the last
// maximal element on ties) rather than spec.md §4.4/§8's stated "lowest
// index" — see DESIGN.md for why the worked scenario overrides the prose.
func (p *Predictor) bestTag(acc []int32) *string {
	best := 0
	for i := 1; i < len(acc); i++ {
		if acc[i] >= acc[best] {
			best = i
		}
	}
	return &p.tagNames[best]
}
