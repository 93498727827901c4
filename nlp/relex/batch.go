package relex

import (
	"math/rand"
	"sort"

	"relex/alg/tensor"
	"relex/nlp/types"
	"relex/util"
)

// A Batch is a set of instances padded into rectangular id matrices. Rows
// are ordered by non-increasing sentence length so a downstream sequence
// model can pack them; OrigIndex maps row -> position in the pre-sort
// order, for unsorting predictions.
type Batch struct {
	Words   *tensor.Long
	POS     *tensor.Long
	NER     *tensor.Long
	DepRel  *tensor.Long
	SubjPos *tensor.Long
	ObjPos  *tensor.Long
	SentPos *tensor.Long

	// Mask is true exactly at padding cells of Words.
	Mask *tensor.Bool

	Relations []int64
	OrigIndex []int
	Labels    []string
}

func (b *Batch) Size() int {
	return len(b.Relations)
}

// SeqLen is the padded sequence length shared by all matrices.
func (b *Batch) SeqLen() int {
	return b.Words.Cols
}

// sortByLength orders instances by descending token count, stably, and
// returns the original index of each sorted row.
func sortByLength(insts []*types.Instance) ([]*types.Instance, []int) {
	origIndex := make([]int, len(insts))
	for i := range origIndex {
		origIndex[i] = i
	}
	sorted := make([]*types.Instance, len(insts))
	copy(sorted, insts)
	sort.SliceStable(origIndex, func(a, b int) bool {
		return insts[origIndex[a]].Len() > insts[origIndex[b]].Len()
	})
	for i, orig := range origIndex {
		sorted[i] = insts[orig]
	}
	return sorted, origIndex
}

// wordDropout replaces known word ids with the unknown id at probability p.
// Existing unknowns are left alone so evaluation against them stays exact.
func wordDropout(words []int, p float64, rng *rand.Rand) []int {
	dropped := make([]int, len(words))
	for i, w := range words {
		if w != types.UNK_ID && rng.Float64() < p {
			dropped[i] = types.UNK_ID
		} else {
			dropped[i] = w
		}
	}
	return dropped
}

func padLong(rows [][]int, cols int) *tensor.Long {
	m := tensor.NewLong(len(rows), cols)
	m.Fill(types.PAD_ID)
	for i, row := range rows {
		dst := m.Row(i)
		for j, v := range row {
			dst[j] = int64(v)
		}
	}
	return m
}

// NewBatch assembles padded matrices from instances. Word dropout fires
// only when dropout > 0 and rng is non-nil, i.e. in train mode; fresh
// assembly of the same instances resamples the dropout.
func NewBatch(insts []*types.Instance, dropout float64, rng *rand.Rand) *Batch {
	sorted, origIndex := sortByLength(insts)

	var maxLen int
	for _, inst := range sorted {
		maxLen = util.Max(maxLen, inst.Len())
	}

	n := len(sorted)
	words := make([][]int, n)
	pos := make([][]int, n)
	ner := make([][]int, n)
	deprel := make([][]int, n)
	subjPos := make([][]int, n)
	objPos := make([][]int, n)
	sentPos := make([][]int, n)
	relations := make([]int64, n)
	labels := make([]string, n)

	for i, inst := range sorted {
		if dropout > 0 && rng != nil {
			words[i] = wordDropout(inst.Words, dropout, rng)
		} else {
			words[i] = inst.Words
		}
		pos[i] = inst.POS
		ner[i] = inst.NER
		deprel[i] = inst.DepRel
		subjPos[i] = inst.SubjPos
		objPos[i] = inst.ObjPos
		sentPos[i] = inst.SentPos
		relations[i] = int64(inst.Relation)
		labels[i] = inst.Label
	}

	batch := &Batch{
		Words:     padLong(words, maxLen),
		POS:       padLong(pos, maxLen),
		NER:       padLong(ner, maxLen),
		DepRel:    padLong(deprel, maxLen),
		SubjPos:   padLong(subjPos, maxLen),
		ObjPos:    padLong(objPos, maxLen),
		SentPos:   padLong(sentPos, maxLen),
		Relations: relations,
		OrigIndex: origIndex,
		Labels:    labels,
	}

	mask := tensor.NewBool(n, maxLen)
	for i := 0; i < n; i++ {
		for j := 0; j < maxLen; j++ {
			mask.Set(i, j, batch.Words.At(i, j) == types.PAD_ID)
		}
	}
	batch.Mask = mask
	return batch
}
