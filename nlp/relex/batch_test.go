package relex

import (
	"math/rand"
	"reflect"
	"testing"

	"relex/nlp/types"
)

func instanceOfLen(n, relation int, label string) *types.Instance {
	inst := &types.Instance{
		Words:    make([]int, n),
		POS:      make([]int, n),
		NER:      make([]int, n),
		DepRel:   make([]int, n),
		SubjPos:  make([]int, n),
		ObjPos:   make([]int, n),
		SentPos:  make([]int, n),
		Relation: relation,
		Label:    label,
	}
	for i := 0; i < n; i++ {
		inst.Words[i] = i + 2
		inst.POS[i] = 2
		inst.NER[i] = 2
		inst.DepRel[i] = 2
		inst.SentPos[i] = i + 1
	}
	return inst
}

func TestNewBatchSortsByLengthDescending(t *testing.T) {
	insts := []*types.Instance{
		instanceOfLen(2, 0, "no_relation"),
		instanceOfLen(5, 1, "per:title"),
		instanceOfLen(3, 2, "per:age"),
	}
	batch := NewBatch(insts, 0, nil)

	if batch.Size() != 3 {
		t.Fatalf("Expected batch size 3, got %d", batch.Size())
	}
	if batch.SeqLen() != 5 {
		t.Errorf("Expected padded length 5, got %d", batch.SeqLen())
	}

	expectedOrig := []int{1, 2, 0}
	if !reflect.DeepEqual(batch.OrigIndex, expectedOrig) {
		t.Errorf("Expected original indices %v, got %v", expectedOrig, batch.OrigIndex)
	}
	expectedRels := []int64{1, 2, 0}
	if !reflect.DeepEqual(batch.Relations, expectedRels) {
		t.Errorf("Expected relations %v, got %v", expectedRels, batch.Relations)
	}
	expectedLabels := []string{"per:title", "per:age", "no_relation"}
	if !reflect.DeepEqual(batch.Labels, expectedLabels) {
		t.Errorf("Expected labels %v, got %v", expectedLabels, batch.Labels)
	}
}

func TestNewBatchStableSort(t *testing.T) {
	insts := []*types.Instance{
		instanceOfLen(3, 0, "a"),
		instanceOfLen(3, 1, "b"),
		instanceOfLen(3, 2, "c"),
	}
	batch := NewBatch(insts, 0, nil)
	expectedOrig := []int{0, 1, 2}
	if !reflect.DeepEqual(batch.OrigIndex, expectedOrig) {
		t.Errorf("Equal lengths should keep input order, got %v", batch.OrigIndex)
	}
}

func TestNewBatchPaddingAndMask(t *testing.T) {
	insts := []*types.Instance{
		instanceOfLen(4, 0, "no_relation"),
		instanceOfLen(2, 1, "per:title"),
	}
	batch := NewBatch(insts, 0, nil)

	for j := 2; j < 4; j++ {
		if batch.Words.At(1, j) != types.PAD_ID {
			t.Errorf("Expected pad at (1,%d), got %d", j, batch.Words.At(1, j))
		}
		if !batch.Mask.At(1, j) {
			t.Errorf("Expected mask true at (1,%d)", j)
		}
		if batch.SentPos.At(1, j) != 0 {
			t.Errorf("Expected zero sentence position at pad cell (1,%d)", j)
		}
	}
	for j := 0; j < 2; j++ {
		if batch.Mask.At(1, j) {
			t.Errorf("Expected mask false at real token (1,%d)", j)
		}
	}

	rows, cols := batch.POS.Dims()
	if rows != 2 || cols != 4 {
		t.Errorf("Expected POS shape 2x4, got %dx%d", rows, cols)
	}
}

func TestWordDropoutAllAndNone(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	words := []int{2, 3, types.UNK_ID, 4}

	none := wordDropout(words, 0, rng)
	if !reflect.DeepEqual(none, words) {
		t.Errorf("Zero dropout changed words: %v", none)
	}

	all := wordDropout(words, 1, rng)
	expected := []int{types.UNK_ID, types.UNK_ID, types.UNK_ID, types.UNK_ID}
	if !reflect.DeepEqual(all, expected) {
		t.Errorf("Full dropout should map all words to unknown, got %v", all)
	}
}

func TestNewBatchDropoutOnlyAffectsWords(t *testing.T) {
	insts := []*types.Instance{instanceOfLen(4, 0, "no_relation")}
	rng := rand.New(rand.NewSource(7))
	batch := NewBatch(insts, 1, rng)

	for j := 0; j < 4; j++ {
		if batch.Words.At(0, j) != types.UNK_ID {
			t.Errorf("Expected dropped word at (0,%d), got %d", j, batch.Words.At(0, j))
		}
		if batch.POS.At(0, j) != 2 {
			t.Errorf("Dropout leaked into POS at (0,%d)", j)
		}
	}
	// mask reflects padding, not dropout
	if batch.Mask.At(0, 0) {
		t.Error("Dropout must not mark cells as padding")
	}
}
