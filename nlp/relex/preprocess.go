package relex

import (
	"fmt"
	"strings"

	"relex/nlp/types"
	"relex/util"
)

// Options control corpus preprocessing and augmentation.
type Options struct {
	// Lower lowercases tokens before vocabulary lookup. Entity mask tokens
	// are inserted afterwards and stay uppercase.
	Lower bool
	// WordDropout is the train-mode probability of replacing a word id with
	// the unknown id. Ignored in evaluation mode.
	WordDropout float64
	// BinWidth, when positive, bins compressed entity distances into
	// windows of this width.
	BinWidth int
}

// MaskToken is the anonymized replacement for an entity mention token,
// e.g. SUBJ-PERSON or OBJ-TITLE.
func MaskToken(role, entityType string) string {
	return role + "-" + entityType
}

// Anonymize replaces subject and object mention tokens with per-type mask
// tokens. The object mask wins where spans overlap. Length is unchanged.
func Anonymize(tokens []string, subj, obj types.Span, subjType, objType string) []string {
	masked := make([]string, len(tokens))
	copy(masked, tokens)
	for i := subj.Start; i <= subj.End && i < len(masked); i++ {
		masked[i] = MaskToken("SUBJ", subjType)
	}
	for i := obj.Start; i <= obj.End && i < len(masked); i++ {
		masked[i] = MaskToken("OBJ", objType)
	}
	return masked
}

// MapToIDs looks values up in an enumeration, falling back to the unknown
// id for out-of-vocabulary values.
func MapToIDs(values []string, e *util.EnumSet) []int {
	ids := make([]int, len(values))
	for i, value := range values {
		if id, exists := e.IndexOf(value); exists {
			ids[i] = id
		} else {
			ids[i] = types.UNK_ID
		}
	}
	return ids
}

// Preprocess converts one annotated sentence into its id-mapped instance:
// lowercasing, span anonymization, vocabulary lookup, entity-relative
// position encoding with logarithmic compression, and label mapping.
func Preprocess(sent types.Sentence, words *util.EnumSet, tags *TagSets, opts Options) (*types.Instance, error) {
	tokens := sent.Tokens
	if opts.Lower {
		lowered := make([]string, len(tokens))
		for i, token := range tokens {
			lowered[i] = strings.ToLower(token)
		}
		tokens = lowered
	}
	tokens = Anonymize(tokens, sent.Subj, sent.Obj, sent.SubjType, sent.ObjType)

	relation, exists := tags.Label.IndexOf(sent.Relation)
	if !exists {
		return nil, fmt.Errorf("sentence %s: unknown relation label %q", sent.ID, sent.Relation)
	}

	length := len(tokens)
	subjPos := CompressPositions(EntityPositions(sent.Subj.Start, sent.Subj.End, length))
	objPos := CompressPositions(EntityPositions(sent.Obj.Start, sent.Obj.End, length))
	if opts.BinWidth > 0 {
		subjPos = BinPositions(subjPos, opts.BinWidth)
		objPos = BinPositions(objPos, opts.BinWidth)
	}

	wordIDs := MapToIDs(tokens, words)
	inst := &types.Instance{
		Words:    wordIDs,
		POS:      MapToIDs(sent.POS, tags.POS),
		NER:      MapToIDs(sent.NER, tags.NER),
		DepRel:   MapToIDs(sent.DepRel, tags.DepRel),
		SubjPos:  subjPos,
		ObjPos:   objPos,
		SentPos:  SentencePositions(wordIDs),
		Relation: relation,
		Label:    sent.Relation,
	}
	return inst, nil
}

// PreprocessCorpus maps a whole corpus; the first bad sentence aborts.
func PreprocessCorpus(sents []types.Sentence, words *util.EnumSet, tags *TagSets, opts Options) ([]*types.Instance, error) {
	instances := make([]*types.Instance, len(sents))
	for i, sent := range sents {
		inst, err := Preprocess(sent, words, tags, opts)
		if err != nil {
			return nil, fmt.Errorf("record %d: %s", i, err.Error())
		}
		instances[i] = inst
	}
	return instances, nil
}
