package vaporetto

import (
	"bytes"
	"encoding/gob"
	"io"
)

// Model is the immutable input to Predictor construction: a bias, the
// char/type n-gram window sizes, the n-gram and dictionary weight tables,
// and an optional tagging component. A Model is usually produced by
// cmd/compile from a YAML definition, or loaded from a previously-saved
// gob file with LoadModel.
type Model struct {
	Bias           int32
	CharWindowSize int
	TypeWindowSize int
	CharNgramModel NgramModel
	TypeNgramModel NgramModel
	DictModel      DictModel
	TagModel       *TagModel
}

// Validate enforces every weight-vector-length invariant named in
// spec.md §6: a char-n-gram pattern of length |p| under window W needs a
// weight vector of exactly 2W - |p| + 1 entries, one per gap whose
// 2W-character window contains the whole pattern; type-n-grams likewise;
// tag left/right weight rows are any positive multiple of T, the model
// defines the row count per pattern; self-model weight is exactly one
// row of T.
func (m *Model) Validate() error {
	if m.CharWindowSize < 0 || m.TypeWindowSize < 0 {
		return newError(InvalidModel, "window sizes must be non-negative")
	}
	if err := m.CharNgramModel.validate(m.CharWindowSize, "char n-gram", true); err != nil {
		return err
	}
	if err := m.TypeNgramModel.validate(m.TypeWindowSize, "type n-gram", false); err != nil {
		return err
	}
	if err := m.DictModel.validate(); err != nil {
		return err
	}
	if m.TagModel != nil {
		if err := m.TagModel.validate(); err != nil {
			return err
		}
	}
	return nil
}

// LoadModel decodes a Model previously written by (*Model).Save. Unlike
// the teacher's FromBinary, there is no unsafe mmap fast path: these
// models are small per-sentence feature tables, not multi-gigabyte
// language models, so plain gob decoding is the whole story (see
// DESIGN.md for the full rationale).
func LoadModel(r io.Reader) (*Model, error) {
	var m Model
	if err := gob.NewDecoder(r).Decode(&m); err != nil {
		return nil, err
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return &m, nil
}

// Save gob-encodes m to w.
func (m *Model) Save(w io.Writer) error {
	return gob.NewEncoder(w).Encode(m)
}

// gobModel has Model's fields but none of its methods, so gob encodes it
// field by field instead of calling back into MarshalBinary.
type gobModel Model

// MarshalBinary implements encoding.BinaryMarshaler via gob, mirroring
// the teacher's Model.MarshalBinary shape.
func (m *Model) MarshalBinary() ([]byte, error) {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode((*gobModel)(m)); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler via gob.
func (m *Model) UnmarshalBinary(data []byte) error {
	dec := gob.NewDecoder(bytes.NewReader(data))
	return dec.Decode((*gobModel)(m))
}
