package types

import "reflect"

const (
	PAD_TOKEN = "<PAD>"
	UNK_TOKEN = "<UNK>"

	PAD_ID = 0
	UNK_ID = 1

	// NO_RELATION is the negative relation label; it is always id 0 in the
	// relation label space.
	NO_RELATION = "no_relation"
)

// A Span is an inclusive range of token indices marking an entity mention.
type Span struct {
	Start, End int
}

func (s Span) Len() int {
	return s.End - s.Start + 1
}

func (s Span) Contains(i int) bool {
	return i >= s.Start && i <= s.End
}

// A Sentence is one annotated relation example: a tokenized sentence with
// its tagging and parse layers, subject and object mentions, and a gold
// relation label.
type Sentence struct {
	ID       string
	Tokens   []string
	POS      []string
	NER      []string
	DepRel   []string
	Head     []int
	Subj     Span
	Obj      Span
	SubjType string
	ObjType  string
	Relation string
}

func (s Sentence) Len() int {
	return len(s.Tokens)
}

func (s Sentence) Equal(other Sentence) bool {
	return reflect.DeepEqual(s, other)
}

// An Instance is the id-mapped form of a Sentence, ready for batching.
// Position vectors run parallel to Words; SentPos ids are 1-based with 0
// reserved for padding.
type Instance struct {
	Words   []int
	POS     []int
	NER     []int
	DepRel  []int
	SubjPos []int
	ObjPos  []int
	SentPos []int

	Relation int
	// Label keeps the raw relation string for evaluation output.
	Label string
}

func (inst *Instance) Len() int {
	return len(inst.Words)
}
