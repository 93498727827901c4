package relex

import (
	"math/rand"
	"testing"

	"relex/nlp/types"
)

func TestCountTokensAnonymizes(t *testing.T) {
	counts := CountTokens([]types.Sentence{testSentence()}, true)
	if counts["SUBJ-PERSON"] != 1 {
		t.Errorf("Expected 1 SUBJ-PERSON, got %d", counts["SUBJ-PERSON"])
	}
	if counts["OBJ-ORGANIZATION"] != 2 {
		t.Errorf("Expected 2 OBJ-ORGANIZATION, got %d", counts["OBJ-ORGANIZATION"])
	}
	if counts["john"] != 0 {
		t.Error("Subject surface form should be masked out of the counts")
	}
	if counts["works"] != 1 {
		t.Errorf("Expected lowercased token count, got %d", counts["works"])
	}
}

func TestMaskTokens(t *testing.T) {
	masks := MaskTokens([]types.Sentence{testSentence()})
	if len(masks) != 2 {
		t.Fatalf("Expected 2 mask tokens, got %v", masks)
	}
	if masks[0] != "OBJ-ORGANIZATION" || masks[1] != "SUBJ-PERSON" {
		t.Errorf("Expected sorted mask tokens, got %v", masks)
	}
}

func TestMaskTokensFromNER(t *testing.T) {
	masks := MaskTokensFromNER(NewTagEnum([]string{"O", "PERSON", "TITLE"}))
	if len(masks) != 6 {
		t.Fatalf("Expected 6 mask tokens, got %v", masks)
	}
	expected := map[string]bool{
		"SUBJ-O": true, "OBJ-O": true,
		"SUBJ-PERSON": true, "OBJ-PERSON": true,
		"SUBJ-TITLE": true, "OBJ-TITLE": true,
	}
	for _, mask := range masks {
		if !expected[mask] {
			t.Errorf("Unexpected mask token %s", mask)
		}
	}
}

func TestVocabCoversUnseenEntityTypes(t *testing.T) {
	// A corpus with only PERSON/ORGANIZATION mentions must still yield ids
	// for mask tokens of every other type in the tagset.
	corpus := []types.Sentence{testSentence()}
	masks := MergeMasks(MaskTokensFromNER(DefaultTagSets().NER), MaskTokens(corpus))
	words := BuildVocab(CountTokens(corpus, false), masks, nil, 2)

	for _, mask := range []string{"SUBJ-TITLE", "OBJ-CITY", "SUBJ-PERSON", "OBJ-ORGANIZATION"} {
		if _, exists := words.IndexOf(mask); !exists {
			t.Errorf("Vocabulary is missing mask token %s", mask)
		}
	}
	if id, _ := words.IndexOf(types.PAD_TOKEN); id != types.PAD_ID {
		t.Errorf("Expected pad at id 0, got %d", id)
	}
}

func TestMergeMasks(t *testing.T) {
	merged := MergeMasks([]string{"SUBJ-PERSON", "OBJ-TITLE"}, []string{"SUBJ-PERSON", "OBJ-MISC"})
	if len(merged) != 3 {
		t.Fatalf("Expected 3 distinct masks, got %v", merged)
	}
	if merged[0] != "OBJ-MISC" || merged[1] != "OBJ-TITLE" || merged[2] != "SUBJ-PERSON" {
		t.Errorf("Expected sorted union, got %v", merged)
	}
}

func TestBuildVocab(t *testing.T) {
	counts := map[string]int{
		"the":      10,
		"chairman": 3,
		"rare":     1,
		"oddball":  1,
	}
	embVocab := map[string]bool{"the": true, "chairman": true, "rare": true}
	words := BuildVocab(counts, []string{"SUBJ-PERSON"}, embVocab, 2)

	if id, _ := words.IndexOf(types.PAD_TOKEN); id != types.PAD_ID {
		t.Errorf("Expected pad at id 0, got %d", id)
	}
	if id, _ := words.IndexOf(types.UNK_TOKEN); id != types.UNK_ID {
		t.Errorf("Expected unknown at id 1, got %d", id)
	}
	if id, _ := words.IndexOf("SUBJ-PERSON"); id != 2 {
		t.Errorf("Expected mask token right after reserved ids, got %d", id)
	}
	if id, _ := words.IndexOf("the"); id != 3 {
		t.Errorf("Expected most frequent word first, got id %d", id)
	}
	if _, exists := words.IndexOf("rare"); !exists {
		t.Error("Embedding-covered word should be kept despite low count")
	}
	if _, exists := words.IndexOf("oddball"); exists {
		t.Error("Low-count uncovered word should be dropped")
	}
}

func TestBuildEmbeddings(t *testing.T) {
	words := BuildVocab(map[string]int{"the": 5}, nil, map[string]bool{"the": true}, 2)
	vectors := map[string][]float64{"the": {0.5, -0.5, 0.25}}
	rng := rand.New(rand.NewSource(1))
	emb, covered := BuildEmbeddings(words, vectors, 3, rng)

	rows, cols := emb.Dims()
	if rows != words.Len() || cols != 3 {
		t.Errorf("Expected %dx3 matrix, got %dx%d", words.Len(), rows, cols)
	}
	if covered != 1 {
		t.Errorf("Expected 1 covered word, got %d", covered)
	}
	for j := 0; j < 3; j++ {
		if emb.At(types.PAD_ID, j) != 0 {
			t.Error("Padding row must stay zero")
		}
	}
	id, _ := words.IndexOf("the")
	if emb.At(id, 0) != 0.5 || emb.At(id, 2) != 0.25 {
		t.Error("Pretrained vector was not copied")
	}
	for j := 0; j < 3; j++ {
		v := emb.At(types.UNK_ID, j)
		if v < -1 || v > 1 {
			t.Errorf("Random init out of range: %f", v)
		}
	}
}
