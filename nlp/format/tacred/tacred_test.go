package tacred

import (
	"strings"
	"testing"
)

const sampleCorpus = `[
  {
    "id": "e7798fb926b9403cfcd2",
    "relation": "per:title",
    "token": ["At", "the", "same", "time", ",", "Chief", "Financial", "Officer", "Douglas", "Flint", "will", "become", "chairman"],
    "subj_start": 8,
    "subj_end": 9,
    "obj_start": 12,
    "obj_end": 12,
    "subj_type": "PERSON",
    "obj_type": "TITLE",
    "stanford_pos": ["IN", "DT", "JJ", "NN", ",", "NNP", "NNP", "NNP", "NNP", "NNP", "MD", "VB", "NN"],
    "stanford_ner": ["O", "O", "O", "O", "O", "O", "O", "O", "PERSON", "PERSON", "O", "O", "O"],
    "stanford_head": [4, 4, 4, 12, 12, 10, 10, 10, 10, 12, 12, 0, 12],
    "stanford_deprel": ["case", "det", "amod", "nmod", "punct", "compound", "compound", "compound", "compound", "nsubj", "aux", "ROOT", "xcomp"]
  }
]`

func TestRead(t *testing.T) {
	sents, err := Read(strings.NewReader(sampleCorpus))
	if err != nil {
		t.Fatal(err.Error())
	}
	if len(sents) != 1 {
		t.Fatalf("Expected 1 sentence, got %d", len(sents))
	}
	sent := sents[0]
	if sent.Len() != 13 {
		t.Errorf("Expected 13 tokens, got %d", sent.Len())
	}
	if sent.Relation != "per:title" {
		t.Errorf("Expected relation per:title, got %s", sent.Relation)
	}
	if sent.Subj.Start != 8 || sent.Subj.End != 9 {
		t.Errorf("Expected subj span [8,9], got [%d,%d]", sent.Subj.Start, sent.Subj.End)
	}
	if sent.SubjType != "PERSON" || sent.ObjType != "TITLE" {
		t.Errorf("Expected PERSON/TITLE entity types, got %s/%s", sent.SubjType, sent.ObjType)
	}
	if sent.POS[0] != "IN" {
		t.Errorf("Expected first POS tag IN, got %s", sent.POS[0])
	}
	if sent.DepRel[11] != "ROOT" {
		t.Errorf("Expected deprel ROOT at index 11, got %s", sent.DepRel[11])
	}
}

func TestReadEmptyCorpus(t *testing.T) {
	sents, err := Read(strings.NewReader("[]"))
	if err != nil {
		t.Fatal(err.Error())
	}
	if len(sents) != 0 {
		t.Errorf("Expected no sentences, got %d", len(sents))
	}
}

func TestParseRecordLengthMismatch(t *testing.T) {
	record := Record{
		ID:       "x",
		Relation: "no_relation",
		Token:    []string{"a", "b"},
		POS:      []string{"NN"},
		NER:      []string{"O", "O"},
		DepRel:   []string{"dep", "dep"},
		SubjType: "PERSON",
		ObjType:  "TITLE",
		SubjEnd:  0,
		ObjEnd:   1,
	}
	if _, err := ParseRecord(record); err == nil {
		t.Error("Expected error for POS length mismatch")
	}
}

func TestParseRecordBadSpan(t *testing.T) {
	record := Record{
		ID:        "x",
		Relation:  "no_relation",
		Token:     []string{"a", "b"},
		POS:       []string{"NN", "NN"},
		NER:       []string{"O", "O"},
		DepRel:    []string{"dep", "dep"},
		SubjType:  "PERSON",
		ObjType:   "TITLE",
		SubjStart: 1,
		SubjEnd:   2,
		ObjEnd:    0,
	}
	if _, err := ParseRecord(record); err == nil {
		t.Error("Expected error for out of range subj span")
	}

	record.SubjStart, record.SubjEnd = 1, 0
	if _, err := ParseRecord(record); err == nil {
		t.Error("Expected error for inverted subj span")
	}
}

func TestRoundTrip(t *testing.T) {
	sents, err := Read(strings.NewReader(sampleCorpus))
	if err != nil {
		t.Fatal(err.Error())
	}
	var buf strings.Builder
	if err := Write(&buf, sents); err != nil {
		t.Fatal(err.Error())
	}
	again, err := Read(strings.NewReader(buf.String()))
	if err != nil {
		t.Fatal(err.Error())
	}
	if len(again) != len(sents) {
		t.Fatalf("Expected %d sentences after round trip, got %d", len(sents), len(again))
	}
	if !again[0].Equal(sents[0]) {
		t.Error("Sentence changed after write/read round trip")
	}
}
