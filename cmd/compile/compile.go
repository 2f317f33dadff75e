package main

import (
	"flag"
	"os"

	"github.com/golang/glog"
	"gopkg.in/yaml.v3"

	"github.com/legalforce-research/vaporetto-go"
)

// modelDef is the YAML surface a human writes a model in. It mirrors
// vaporetto.Model field for field; cmd/compile's only job is to turn it
// into the binary gob Model the predictor loads.
type modelDef struct {
	Bias           int32           `yaml:"bias"`
	CharWindowSize int             `yaml:"char_window_size"`
	TypeWindowSize int             `yaml:"type_window_size"`
	CharNgramModel []ngramEntryDef `yaml:"char_ngram_model"`
	TypeNgramModel []ngramEntryDef `yaml:"type_ngram_model"`
	DictModel      []dictEntryDef  `yaml:"dict_model"`
	TagModel       *tagModelDef    `yaml:"tag_model"`
}

type ngramEntryDef struct {
	Pattern string  `yaml:"pattern"`
	Weights []int32 `yaml:"weights"`
}

type dictEntryDef struct {
	Word   string `yaml:"word"`
	Right  int32  `yaml:"right"`
	Inside int32  `yaml:"inside"`
	Left   int32  `yaml:"left"`
}

type tagModelDef struct {
	ClassInfo      []tagClassDef   `yaml:"class_info"`
	LeftCharModel  []ngramEntryDef `yaml:"left_char_model"`
	RightCharModel []ngramEntryDef `yaml:"right_char_model"`
	SelfCharModel  []ngramEntryDef `yaml:"self_char_model"`
}

type tagClassDef struct {
	Name string `yaml:"name"`
	Bias int32  `yaml:"bias"`
}

func toNgramModel(defs []ngramEntryDef) vaporetto.NgramModel {
	out := make(vaporetto.NgramModel, len(defs))
	for i, d := range defs {
		out[i] = vaporetto.NgramEntry{Pattern: d.Pattern, Weights: d.Weights}
	}
	return out
}

func toModel(def *modelDef) *vaporetto.Model {
	m := &vaporetto.Model{
		Bias:           def.Bias,
		CharWindowSize: def.CharWindowSize,
		TypeWindowSize: def.TypeWindowSize,
		CharNgramModel: toNgramModel(def.CharNgramModel),
		TypeNgramModel: toNgramModel(def.TypeNgramModel),
	}
	m.DictModel = make(vaporetto.DictModel, len(def.DictModel))
	for i, d := range def.DictModel {
		m.DictModel[i] = vaporetto.DictEntry{
			Word:    d.Word,
			Weights: vaporetto.DictWeight{Right: d.Right, Inside: d.Inside, Left: d.Left},
		}
	}
	if def.TagModel != nil {
		tm := &vaporetto.TagModel{
			LeftCharModel:  make([]vaporetto.TagNgramEntry, len(def.TagModel.LeftCharModel)),
			RightCharModel: make([]vaporetto.TagNgramEntry, len(def.TagModel.RightCharModel)),
			SelfCharModel:  make([]vaporetto.SelfNgramEntry, len(def.TagModel.SelfCharModel)),
		}
		for _, c := range def.TagModel.ClassInfo {
			tm.ClassInfo = append(tm.ClassInfo, vaporetto.TagClassInfo{Name: c.Name, Bias: c.Bias})
		}
		for i, d := range def.TagModel.LeftCharModel {
			tm.LeftCharModel[i] = vaporetto.TagNgramEntry{Pattern: d.Pattern, Weights: d.Weights}
		}
		for i, d := range def.TagModel.RightCharModel {
			tm.RightCharModel[i] = vaporetto.TagNgramEntry{Pattern: d.Pattern, Weights: d.Weights}
		}
		for i, d := range def.TagModel.SelfCharModel {
			tm.SelfCharModel[i] = vaporetto.SelfNgramEntry{Pattern: d.Pattern, Weights: d.Weights}
		}
		m.TagModel = tm
	}
	return m
}

func main() {
	input := flag.String("input", "", "path to the YAML model definition (default: stdin)")
	flag.Parse()

	var r *os.File
	if *input == "" {
		r = os.Stdin
	} else {
		f, err := os.Open(*input)
		if err != nil {
			glog.Fatal("opening model definition: ", err)
		}
		defer f.Close()
		r = f
	}

	var def modelDef
	if err := yaml.NewDecoder(r).Decode(&def); err != nil {
		glog.Fatal("parsing model definition: ", err)
	}

	model := toModel(&def)
	if err := model.Validate(); err != nil {
		glog.Fatal("compiled model is invalid: ", err)
	}
	if err := model.Save(os.Stdout); err != nil {
		glog.Fatal("writing compiled model: ", err)
	}
}
