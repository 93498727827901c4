package app

import (
	"fmt"
	"log"
	"sort"

	"relex/nlp/format/tacred"
	"relex/nlp/types"
	"relex/util"

	"github.com/gonuts/commander"
	"github.com/gonuts/flag"
	"gonum.org/v1/gonum/stat"
)

var statsTopN int

func DatasetStats(cmd *commander.Command, args []string) error {
	VerifyFlags(cmd, []string{"in"})
	if !VerifyExists(input) {
		return fmt.Errorf("missing input file")
	}

	sents, err := tacred.ReadFile(input)
	if err != nil {
		return err
	}
	log.Println("Read", len(sents), "sentences from", input)
	if len(sents) == 0 {
		return nil
	}

	lengths := make([]float64, len(sents))
	for i, sent := range sents {
		lengths[i] = float64(sent.Len())
	}
	sort.Float64s(lengths)
	labelCounts, negatives := labelDistribution(sents)

	log.Println()
	log.Println("Sentence length")
	log.Printf("Mean:\t%.2f", stat.Mean(lengths, nil))
	log.Printf("Std:\t%.2f", stat.StdDev(lengths, nil))
	log.Printf("Median:\t%.1f", stat.Quantile(0.5, stat.Empirical, lengths, nil))
	log.Printf("P95:\t%.1f", stat.Quantile(0.95, stat.Empirical, lengths, nil))
	log.Printf("Max:\t%.0f", lengths[len(lengths)-1])

	log.Println()
	log.Println("Relation labels")
	log.Printf("Distinct:\t%d", len(labelCounts))
	log.Printf("Negative:\t%d (%.2f%%)", negatives,
		100*float64(negatives)/float64(len(sents)))
	for _, datum := range util.GetTopNStrInt(labelCounts, statsTopN) {
		log.Printf("%6d\t%s", datum.N, datum.S)
	}
	return nil
}

func labelDistribution(sents []types.Sentence) (map[string]int, int) {
	counts := make(map[string]int)
	var negatives int
	for _, sent := range sents {
		counts[sent.Relation]++
		if sent.Relation == types.NO_RELATION {
			negatives++
		}
	}
	return counts, negatives
}

func StatsCmd() *commander.Command {
	cmd := &commander.Command{
		Run:       DatasetStats,
		UsageLine: "stats <file options> [arguments]",
		Short:     "reports label and length statistics for a dataset split",
		Long: `
reports label and length statistics for a dataset split

	$ ./relex stats -in <dataset json> [-top <n>]

`,
		Flag: *flag.NewFlagSet("stats", flag.ExitOnError),
	}
	cmd.Flag.StringVar(&input, "in", "", "Dataset File (json)")
	cmd.Flag.IntVar(&statsTopN, "top", 10, "Number of labels to list")
	return cmd
}
