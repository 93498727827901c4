package relex

import (
	"log"
	"math/rand"

	"relex/nlp/format/tacred"
	"relex/nlp/types"
	"relex/util"
)

// Config controls corpus loading and batching.
type Config struct {
	BatchSize int
	// Eval disables shuffling and word dropout.
	Eval bool
	Seed int64

	Options
}

// A Loader holds one preprocessed split chunked into batches. In train mode
// the corpus is shuffled once at load time and word dropout is resampled on
// every Batch call, so each epoch sees a different augmentation.
type Loader struct {
	config Config
	rng    *rand.Rand
	chunks [][]*types.Instance
	labels []string
}

// NewLoader reads a dataset file and prepares it for batched iteration.
func NewLoader(filename string, words *util.EnumSet, tags *TagSets, config Config) (*Loader, error) {
	sents, err := tacred.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	loader, err := NewLoaderFromCorpus(sents, words, tags, config)
	if err != nil {
		return nil, err
	}
	log.Println(loader.Len(), "batches created for", filename)
	return loader, nil
}

// NewLoaderFromCorpus is NewLoader over an already-read corpus.
func NewLoaderFromCorpus(sents []types.Sentence, words *util.EnumSet, tags *TagSets, config Config) (*Loader, error) {
	if config.BatchSize <= 0 {
		config.BatchSize = 50
	}
	instances, err := PreprocessCorpus(sents, words, tags, config.Options)
	if err != nil {
		return nil, err
	}

	rng := rand.New(rand.NewSource(config.Seed))
	if !config.Eval {
		rng.Shuffle(len(instances), func(i, j int) {
			instances[i], instances[j] = instances[j], instances[i]
		})
	}

	labels := make([]string, len(instances))
	for i, inst := range instances {
		labels[i] = inst.Label
	}

	var chunks [][]*types.Instance
	for start := 0; start < len(instances); start += config.BatchSize {
		end := util.Min(start+config.BatchSize, len(instances))
		chunks = append(chunks, instances[start:end])
	}

	return &Loader{
		config: config,
		rng:    rng,
		chunks: chunks,
		labels: labels,
	}, nil
}

// Len is the number of batches.
func (l *Loader) Len() int {
	return len(l.chunks)
}

// NumExamples is the number of instances across all batches.
func (l *Loader) NumExamples() int {
	return len(l.labels)
}

// Gold returns the gold labels in batch order (post shuffle, pre in-batch
// sorting), matching predictions unsorted via Batch.OrigIndex.
func (l *Loader) Gold() []string {
	retval := make([]string, len(l.labels))
	copy(retval, l.labels)
	return retval
}

// Batch assembles batch i. Train-mode word dropout is resampled per call.
func (l *Loader) Batch(i int) *Batch {
	if i < 0 || i >= len(l.chunks) {
		panic("batch index out of range")
	}
	if l.config.Eval {
		return NewBatch(l.chunks[i], 0, nil)
	}
	return NewBatch(l.chunks[i], l.config.WordDropout, l.rng)
}

// Batches assembles every batch in order.
func (l *Loader) Batches() []*Batch {
	retval := make([]*Batch, l.Len())
	for i := range retval {
		retval[i] = l.Batch(i)
	}
	return retval
}
