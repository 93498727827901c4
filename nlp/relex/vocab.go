package relex

import (
	"math/rand"
	"sort"
	"strings"

	"relex/nlp/types"
	"relex/util"

	"gonum.org/v1/gonum/mat"
)

// CountTokens tallies corpus tokens for vocabulary construction. Entity
// mention tokens are counted in their anonymized mask form, since that is
// what the pipeline feeds the model.
func CountTokens(sents []types.Sentence, lower bool) map[string]int {
	counts := make(map[string]int)
	for _, sent := range sents {
		tokens := sent.Tokens
		if lower {
			lowered := make([]string, len(tokens))
			for i, token := range tokens {
				lowered[i] = strings.ToLower(token)
			}
			tokens = lowered
		}
		tokens = Anonymize(tokens, sent.Subj, sent.Obj, sent.SubjType, sent.ObjType)
		for _, token := range tokens {
			counts[token]++
		}
	}
	return counts
}

// MaskTokens collects every anonymized entity token observed in a corpus,
// sorted. Used alongside MaskTokensFromNER to cover entity types a
// configured tagset may be missing.
func MaskTokens(sents []types.Sentence) []string {
	seen := make(map[string]bool)
	for _, sent := range sents {
		seen[MaskToken("SUBJ", sent.SubjType)] = true
		seen[MaskToken("OBJ", sent.ObjType)] = true
	}
	masks := make([]string, 0, len(seen))
	for mask := range seen {
		masks = append(masks, mask)
	}
	sort.Strings(masks)
	return masks
}

// MaskTokensFromNER derives subject and object mask tokens for every entity
// type in the NER tagset, sorted. Types never seen in training still get
// vocabulary ids of their own instead of degrading to the unknown word at
// evaluation time.
func MaskTokensFromNER(ner *util.EnumSet) []string {
	values := ner.Values()
	masks := make([]string, 0, 2*len(values))
	for _, value := range values {
		if value == types.PAD_TOKEN || value == types.UNK_TOKEN {
			continue
		}
		masks = append(masks, MaskToken("SUBJ", value))
		masks = append(masks, MaskToken("OBJ", value))
	}
	sort.Strings(masks)
	return masks
}

// MergeMasks unions mask token lists into one sorted list.
func MergeMasks(groups ...[]string) []string {
	seen := make(map[string]bool)
	for _, group := range groups {
		for _, mask := range group {
			seen[mask] = true
		}
	}
	merged := make([]string, 0, len(seen))
	for mask := range seen {
		merged = append(merged, mask)
	}
	sort.Strings(merged)
	return merged
}

// BuildVocab constructs the word id space: padding and unknown first, then
// entity mask tokens, then corpus words that are either covered by the
// embedding vocabulary or frequent enough to stand alone, ordered by count
// descending (ties lexicographic) for stable ids.
func BuildVocab(counts map[string]int, masks []string, embVocab map[string]bool, minFreq int) *util.EnumSet {
	words := util.NewEnumSet(len(counts) + len(masks) + 2)
	words.Add(types.PAD_TOKEN)
	words.Add(types.UNK_TOKEN)
	for _, mask := range masks {
		words.Add(mask)
	}

	kept := make([]string, 0, len(counts))
	for word, count := range counts {
		if embVocab[word] || count >= minFreq {
			kept = append(kept, word)
		}
	}
	sort.Slice(kept, func(a, b int) bool {
		if counts[kept[a]] == counts[kept[b]] {
			return kept[a] < kept[b]
		}
		return counts[kept[a]] > counts[kept[b]]
	})
	for _, word := range kept {
		words.Add(word)
	}
	words.Frozen = true
	return words
}

// BuildEmbeddings initializes the embedding matrix for a vocabulary:
// uniform in [-1,1], the padding row zeroed, and pretrained vectors copied
// in where available. Returns the matrix and the number of covered words.
func BuildEmbeddings(words *util.EnumSet, vectors map[string][]float64, dim int, rng *rand.Rand) (*mat.Dense, int) {
	emb := mat.NewDense(words.Len(), dim, nil)
	var covered int
	for i := 1; i < words.Len(); i++ {
		word := words.ValueOf(i)
		if vector, exists := vectors[word]; exists {
			emb.SetRow(i, vector)
			covered++
			continue
		}
		row := make([]float64, dim)
		for j := range row {
			row[j] = rng.Float64()*2 - 1
		}
		emb.SetRow(i, row)
	}
	return emb, covered
}
