package app

import (
	"fmt"
	"log"
	"math/rand"

	"relex/nlp/format/glove"
	"relex/nlp/format/tacred"
	"relex/nlp/relex"
	"relex/nlp/types"

	"github.com/gonuts/commander"
	"github.com/gonuts/flag"
)

func VocabConfigOut() {
	log.Println("Configuration")
	log.Printf("Train file:\t\t%s", input)
	if len(devInput) > 0 {
		log.Printf("Dev file:\t\t%s", devInput)
	}
	log.Printf("Embeddings file:\t%s", gloveFile)
	log.Printf("Embedding dim:\t%d", embDim)
	log.Printf("Min frequency:\t%d", minFreq)
	log.Printf("Lowercase:\t\t%v", lower)
	log.Printf("Out vocab file:\t%s", outFile)
	log.Println()
}

func BuildVocabAndEmbeddings(cmd *commander.Command, args []string) error {
	REQUIRED_FLAGS := []string{"tc", "g", "v"}
	VerifyFlags(cmd, REQUIRED_FLAGS)
	if allOut {
		VocabConfigOut()
	}
	if !VerifyExists(input) || !VerifyExists(gloveFile) {
		return fmt.Errorf("missing input file")
	}

	sents, err := tacred.ReadFile(input)
	if err != nil {
		return err
	}
	if allOut {
		log.Println("Read", len(sents), "sentences from", input)
	}
	all := sents
	if len(devInput) > 0 {
		devSents, err := tacred.ReadFile(devInput)
		if err != nil {
			return err
		}
		if allOut {
			log.Println("Read", len(devSents), "sentences from", devInput)
		}
		all = append(all, devSents...)
	}

	if err := SetupTagSets(); err != nil {
		return err
	}
	counts := relex.CountTokens(all, lower)
	masks := relex.MergeMasks(relex.MaskTokensFromNER(TagSets.NER), relex.MaskTokens(all))
	if allOut {
		log.Println("Counted", len(counts), "distinct tokens,", len(masks), "entity mask tokens")
		log.Println("Loading embedding vocabulary from", gloveFile)
	}

	embVocab, err := glove.ReadVocabFile(gloveFile)
	if err != nil {
		return err
	}
	if allOut {
		log.Println("Embedding vocabulary has", len(embVocab), "words")
	}

	words := relex.BuildVocab(counts, masks, embVocab, minFreq)
	if allOut {
		log.Println("Built vocabulary of", words.Len(), "words")
	}

	wanted := make(map[string]bool, words.Len())
	for _, word := range words.Values() {
		wanted[word] = true
	}
	vectors, err := glove.ReadFilteredFile(gloveFile, embDim, wanted)
	if err != nil {
		return err
	}

	rng := rand.New(rand.NewSource(seed))
	emb, covered := relex.BuildEmbeddings(words, vectors, embDim, rng)
	if allOut {
		total := words.Len() - 2 // reserved ids are not coverable
		log.Printf("Embedding coverage: %d/%d (%.2f%%)", covered, total,
			100*float64(covered)/float64(total))
	}

	rows, _ := emb.Dims()
	artifact := &VocabArtifact{
		Words:      words,
		Dim:        embDim,
		Embeddings: make([]float64, 0, rows*embDim),
	}
	for i := 0; i < rows; i++ {
		artifact.Embeddings = append(artifact.Embeddings, emb.RawRowView(i)...)
	}

	if allOut {
		log.Println("Writing vocabulary to", outFile)
	}
	if err := WriteGob(outFile, artifact); err != nil {
		return err
	}
	if allOut {
		log.Println("Done")
	}
	return nil
}

func VocabCmd() *commander.Command {
	cmd := &commander.Command{
		Run:       BuildVocabAndEmbeddings,
		UsageLine: "vocab <file options> [arguments]",
		Short:     "builds the word vocabulary and embedding matrix",
		Long: `
builds the word vocabulary and embedding matrix

	$ ./relex vocab -tc <train json> -g <glove txt> -v <out vocab> [options]

`,
		Flag: *flag.NewFlagSet("vocab", flag.ExitOnError),
	}
	cmd.Flag.StringVar(&input, "tc", "", "Train Dataset File (json)")
	cmd.Flag.StringVar(&devInput, "dev", "", "Optional - Dev Dataset File (json)")
	cmd.Flag.StringVar(&gloveFile, "g", "", "GloVe Embeddings File (text format)")
	cmd.Flag.StringVar(&outFile, "v", "vocab.gob", "Output Vocabulary File")
	cmd.Flag.IntVar(&embDim, "dim", 300, "Embedding Dimension")
	cmd.Flag.IntVar(&minFreq, "minfreq", 2, "Keep out-of-embedding words at or above this count")
	cmd.Flag.BoolVar(&lower, "lower", false, "Lowercase tokens")
	cmd.Flag.StringVar(&nerFile, "ner", "", "Optional - NER tagset file")
	cmd.Flag.Int64Var(&seed, "seed", 1234, "Random seed for embedding init")
	return cmd
}

// ReadVocabArtifact loads a vocab artifact written by the vocab command.
func ReadVocabArtifact(file string) (*VocabArtifact, error) {
	artifact := &VocabArtifact{}
	if err := ReadGob(file, artifact); err != nil {
		return nil, err
	}
	if artifact.Words == nil || artifact.Words.Len() < 2 {
		return nil, fmt.Errorf("vocab artifact %s has no word enumeration", file)
	}
	if id, _ := artifact.Words.IndexOf(types.PAD_TOKEN); id != types.PAD_ID {
		return nil, fmt.Errorf("vocab artifact %s has a non-zero padding id", file)
	}
	return artifact, nil
}
