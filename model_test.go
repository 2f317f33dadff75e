package vaporetto

import "testing"

func validModel() *Model {
	return &Model{
		Bias:           -10,
		CharWindowSize: 1,
		TypeWindowSize: 1,
		CharNgramModel: NgramModel{{Pattern: "猫", Weights: []int32{1, 2}}},
		TypeNgramModel: NgramModel{{Pattern: "H", Weights: []int32{1, 2}}},
		DictModel:      DictModel{{Word: "猫", Weights: DictWeight{Right: 1, Inside: 2, Left: 3}}},
	}
}

func TestModelValidateAcceptsWellFormedModel(t *testing.T) {
	if err := validModel().Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
}

func TestModelValidateRejectsNegativeWindow(t *testing.T) {
	m := validModel()
	m.CharWindowSize = -1
	if err := m.Validate(); err == nil {
		t.Fatal("expected error for negative window size")
	}
}

func TestModelValidateRejectsWrongNgramWeightLength(t *testing.T) {
	m := validModel()
	m.CharNgramModel[0].Weights = []int32{1}
	if err := m.Validate(); err == nil {
		t.Fatal("expected error for wrong char n-gram weight length")
	}
}

func TestModelValidateRejectsDuplicatePattern(t *testing.T) {
	m := validModel()
	m.CharNgramModel = append(m.CharNgramModel, NgramEntry{Pattern: "猫", Weights: []int32{1, 2}})
	if err := m.Validate(); err == nil {
		t.Fatal("expected error for duplicate char n-gram pattern")
	}
}

func TestModelValidateRejectsEmptyDictWord(t *testing.T) {
	m := validModel()
	m.DictModel = append(m.DictModel, DictEntry{Word: ""})
	if err := m.Validate(); err == nil {
		t.Fatal("expected error for empty dictionary word")
	}
}

func TestModelSaveLoadRoundTrip(t *testing.T) {
	m := validModel()
	m.TagModel = &TagModel{
		ClassInfo:      []TagClassInfo{{Name: "N", Bias: 1}},
		LeftCharModel:  []TagNgramEntry{{Pattern: "猫", Weights: []int32{1}}},
		RightCharModel: []TagNgramEntry{{Pattern: "猫", Weights: []int32{1}}},
		SelfCharModel:  []SelfNgramEntry{{Pattern: "猫", Weights: []int32{1}}},
	}

	data, err := m.MarshalBinary()
	if err != nil {
		t.Fatalf("MarshalBinary: %v", err)
	}

	var got Model
	if err := got.UnmarshalBinary(data); err != nil {
		t.Fatalf("UnmarshalBinary: %v", err)
	}
	if got.Bias != m.Bias || got.CharWindowSize != m.CharWindowSize {
		t.Fatalf("round trip lost scalar fields: got %+v", got)
	}
	if len(got.CharNgramModel) != len(m.CharNgramModel) {
		t.Fatalf("round trip lost char n-gram entries: got %+v", got.CharNgramModel)
	}
	if got.TagModel == nil || len(got.TagModel.ClassInfo) != 1 {
		t.Fatalf("round trip lost tag model: got %+v", got.TagModel)
	}
}

func TestTagModelValidateRejectsNonMultipleRowLength(t *testing.T) {
	tm := &TagModel{
		ClassInfo:     []TagClassInfo{{Name: "A", Bias: 0}, {Name: "B", Bias: 0}},
		LeftCharModel: []TagNgramEntry{{Pattern: "x", Weights: []int32{1, 2, 3}}},
	}
	if err := tm.validate(); err == nil {
		t.Fatal("expected error: 3 is not a multiple of 2 tags")
	}
}

func TestTagModelValidateRejectsSelfRowNotExactlyT(t *testing.T) {
	tm := &TagModel{
		ClassInfo:     []TagClassInfo{{Name: "A", Bias: 0}, {Name: "B", Bias: 0}},
		SelfCharModel: []SelfNgramEntry{{Pattern: "x", Weights: []int32{1, 2, 3}}},
	}
	if err := tm.validate(); err == nil {
		t.Fatal("expected error: self row must be exactly T=2 weights")
	}
}

func TestTagModelValidateRejectsNoClasses(t *testing.T) {
	tm := &TagModel{}
	if err := tm.validate(); err == nil {
		t.Fatal("expected error for empty class_info")
	}
}
