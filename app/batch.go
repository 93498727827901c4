package app

import (
	"fmt"
	"log"

	"relex/nlp/relex"
	"relex/util"

	"github.com/gonuts/commander"
	"github.com/gonuts/flag"
)

func BatchConfigOut() {
	log.Println("Configuration")
	log.Printf("Dataset file:\t\t%s", input)
	log.Printf("Vocabulary file:\t%s", vocabFile)
	log.Printf("Batch size:\t\t%d", batchSize)
	log.Printf("Evaluation mode:\t%v", evalMode)
	log.Printf("Lowercase:\t\t%v", lower)
	log.Printf("Word dropout:\t\t%v", wordDropout)
	if binWidth > 0 {
		log.Printf("Position bin width:\t%d", binWidth)
	}
	log.Printf("Seed:\t\t\t%d", seed)
	log.Printf("Out batches file:\t%s", outFile)
	if len(posFile) > 0 {
		log.Printf("POS tags file:\t%s", posFile)
	}
	if len(nerFile) > 0 {
		log.Printf("NER tags file:\t%s", nerFile)
	}
	if len(deprelFile) > 0 {
		log.Printf("Deprels file:\t\t%s", deprelFile)
	}
	if len(labelsFile) > 0 {
		log.Printf("Labels file:\t\t%s", labelsFile)
	}
	log.Println()
}

func BatchCorpus(cmd *commander.Command, args []string) error {
	REQUIRED_FLAGS := []string{"in", "v", "o"}
	VerifyFlags(cmd, REQUIRED_FLAGS)
	if allOut {
		BatchConfigOut()
	}
	if !VerifyExists(input) || !VerifyExists(vocabFile) {
		return fmt.Errorf("missing input file")
	}

	checksum, err := util.MD5File(input)
	if err != nil {
		return err
	}
	if allOut {
		log.Println("Dataset checksum (md5):", checksum)
	}

	if err := SetupTagSets(); err != nil {
		return err
	}
	artifact, err := ReadVocabArtifact(vocabFile)
	if err != nil {
		return err
	}
	if allOut {
		log.Println("Loaded vocabulary of", artifact.Words.Len(), "words")
	}

	config := relex.Config{
		BatchSize: batchSize,
		Eval:      evalMode,
		Seed:      seed,
		Options: relex.Options{
			Lower:       lower,
			WordDropout: wordDropout,
			BinWidth:    binWidth,
		},
	}
	loader, err := relex.NewLoader(input, artifact.Words, TagSets, config)
	if err != nil {
		return err
	}

	batches := loader.Batches()
	out := &BatchArtifact{
		Batches:     batches,
		Gold:        loader.Gold(),
		NumExamples: loader.NumExamples(),
		Checksum:    checksum,
	}
	if allOut {
		log.Println("Writing", len(batches), "batches (", loader.NumExamples(), "examples ) to", outFile)
	}
	if err := WriteGob(outFile, out); err != nil {
		return err
	}
	if allOut {
		log.Println("Done")
	}
	return nil
}

func BatchCmd() *commander.Command {
	cmd := &commander.Command{
		Run:       BatchCorpus,
		UsageLine: "batch <file options> [arguments]",
		Short:     "preprocesses and batches a dataset split",
		Long: `
preprocesses and batches a dataset split

	$ ./relex batch -in <dataset json> -v <vocab> -o <out batches> [-eval] [options]

`,
		Flag: *flag.NewFlagSet("batch", flag.ExitOnError),
	}
	cmd.Flag.StringVar(&input, "in", "", "Dataset File (json)")
	cmd.Flag.StringVar(&vocabFile, "v", "", "Vocabulary File (from the vocab command)")
	cmd.Flag.StringVar(&outFile, "o", "", "Output Batches File")
	cmd.Flag.IntVar(&batchSize, "b", 50, "Batch Size")
	cmd.Flag.BoolVar(&evalMode, "eval", false, "Evaluation mode (no shuffle, no word dropout)")
	cmd.Flag.BoolVar(&lower, "lower", false, "Lowercase tokens")
	cmd.Flag.Float64Var(&wordDropout, "worddropout", 0.04, "Train-mode word dropout probability")
	cmd.Flag.IntVar(&binWidth, "binwidth", 0, "Optional - bin compressed positions into windows of this width")
	cmd.Flag.Int64Var(&seed, "seed", 1234, "Random seed for shuffling and dropout")
	cmd.Flag.StringVar(&posFile, "pos", "", "Optional - POS tagset override file")
	cmd.Flag.StringVar(&nerFile, "ner", "", "Optional - NER tagset override file")
	cmd.Flag.StringVar(&deprelFile, "dep", "", "Optional - dependency relation override file")
	cmd.Flag.StringVar(&labelsFile, "l", "", "Optional - relation labels override file")
	return cmd
}
