package app

import (
	"encoding/gob"
	"log"
	"os"

	"relex/nlp/relex"
	"relex/util"
	"relex/util/conf"

	"github.com/gonuts/commander"
)

func init() {
	gob.Register(&VocabArtifact{})
	gob.Register(&BatchArtifact{})
}

var (
	allOut bool = true

	// global annotation enumerations
	TagSets *relex.TagSets

	// file names
	input      string
	devInput   string
	outFile    string
	vocabFile  string
	gloveFile  string
	posFile    string
	nerFile    string
	deprelFile string
	labelsFile string

	// processing options
	batchSize   int
	embDim      int
	minFreq     int
	binWidth    int
	lower       bool
	evalMode    bool
	wordDropout float64
	seed        int64
)

// A VocabArtifact is the serialized output of the vocab command: the word
// id space and its embedding matrix stored row-major.
type VocabArtifact struct {
	Words      *util.EnumSet
	Dim        int
	Embeddings []float64
}

// A BatchArtifact is the serialized output of the batch command.
type BatchArtifact struct {
	Batches     []*relex.Batch
	Gold        []string
	NumExamples int
	Checksum    string
}

func WriteGob(file string, data interface{}) error {
	fObj, err := os.Create(file)
	if err != nil {
		return err
	}
	defer fObj.Close()
	writer := gob.NewEncoder(fObj)
	return writer.Encode(data)
}

func ReadGob(file string, data interface{}) error {
	fObj, err := os.Open(file)
	if err != nil {
		return err
	}
	defer fObj.Close()
	reader := gob.NewDecoder(fObj)
	return reader.Decode(data)
}

// SetupTagSets instantiates the global annotation enumerations, overriding
// any default inventory for which a conf file was given.
func SetupTagSets() error {
	if TagSets != nil {
		return nil
	}
	pos, err := tagValues(posFile, relex.DefaultPOS)
	if err != nil {
		return err
	}
	ner, err := tagValues(nerFile, relex.DefaultNER)
	if err != nil {
		return err
	}
	deprel, err := tagValues(deprelFile, relex.DefaultDepRel)
	if err != nil {
		return err
	}
	labels, err := tagValues(labelsFile, relex.DefaultLabels)
	if err != nil {
		return err
	}
	TagSets = &relex.TagSets{
		POS:    relex.NewTagEnum(pos),
		NER:    relex.NewTagEnum(ner),
		DepRel: relex.NewTagEnum(deprel),
		Label:  relex.NewLabelEnum(labels),
	}
	return nil
}

func tagValues(filename string, defaults []string) ([]string, error) {
	if filename == "" {
		return defaults, nil
	}
	values, err := conf.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	log.Println("Read", len(values.Values), "values from", filename)
	return values.Values, nil
}

func VerifyExists(filename string) bool {
	_, err := os.Stat(filename)
	if err != nil {
		log.Println("Error accessing file", filename)
		log.Println(err)
		return false
	}
	return true
}

func VerifyFlags(cmd *commander.Command, required []string) {
	for _, flag := range required {
		f := cmd.Flag.Lookup(flag)
		if f.Value.String() == "" {
			log.Printf("Required flag %s not set", f.Name)
			cmd.Usage()
			os.Exit(1)
		}
	}
}
