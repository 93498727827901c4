package tacred

// Package tacred reads TACRED-style relation extraction datasets: a JSON
// array of records, each carrying a tokenized sentence with POS, NER and
// dependency annotation layers plus subject/object entity spans.

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"relex/nlp/types"

	"github.com/unixpickle/essentials"
)

// A Record is the raw JSON form of one example.
type Record struct {
	ID        string   `json:"id"`
	Relation  string   `json:"relation"`
	Token     []string `json:"token"`
	SubjStart int      `json:"subj_start"`
	SubjEnd   int      `json:"subj_end"`
	ObjStart  int      `json:"obj_start"`
	ObjEnd    int      `json:"obj_end"`
	SubjType  string   `json:"subj_type"`
	ObjType   string   `json:"obj_type"`
	POS       []string `json:"stanford_pos"`
	NER       []string `json:"stanford_ner"`
	Head      []int    `json:"stanford_head"`
	DepRel    []string `json:"stanford_deprel"`
}

// ParseRecord validates a raw record and converts it to the internal
// sentence form.
func ParseRecord(record Record) (types.Sentence, error) {
	var sent types.Sentence
	n := len(record.Token)
	if n == 0 {
		return sent, fmt.Errorf("empty token field")
	}
	if len(record.POS) != n {
		return sent, fmt.Errorf("stanford_pos length %d does not match %d tokens", len(record.POS), n)
	}
	if len(record.NER) != n {
		return sent, fmt.Errorf("stanford_ner length %d does not match %d tokens", len(record.NER), n)
	}
	if len(record.DepRel) != n {
		return sent, fmt.Errorf("stanford_deprel length %d does not match %d tokens", len(record.DepRel), n)
	}
	if len(record.Head) != 0 && len(record.Head) != n {
		return sent, fmt.Errorf("stanford_head length %d does not match %d tokens", len(record.Head), n)
	}
	if err := checkSpan("subj", record.SubjStart, record.SubjEnd, n); err != nil {
		return sent, err
	}
	if err := checkSpan("obj", record.ObjStart, record.ObjEnd, n); err != nil {
		return sent, err
	}
	if record.Relation == "" {
		return sent, fmt.Errorf("empty relation field")
	}
	if record.SubjType == "" {
		return sent, fmt.Errorf("empty subj_type field")
	}
	if record.ObjType == "" {
		return sent, fmt.Errorf("empty obj_type field")
	}

	sent = types.Sentence{
		ID:       record.ID,
		Tokens:   record.Token,
		POS:      record.POS,
		NER:      record.NER,
		DepRel:   record.DepRel,
		Head:     record.Head,
		Subj:     types.Span{Start: record.SubjStart, End: record.SubjEnd},
		Obj:      types.Span{Start: record.ObjStart, End: record.ObjEnd},
		SubjType: record.SubjType,
		ObjType:  record.ObjType,
		Relation: record.Relation,
	}
	return sent, nil
}

func checkSpan(field string, start, end, length int) error {
	if start < 0 || end >= length {
		return fmt.Errorf("%s span [%d,%d] out of range for %d tokens", field, start, end, length)
	}
	if end < start {
		return fmt.Errorf("%s span [%d,%d] is inverted", field, start, end)
	}
	return nil
}

func Read(reader io.Reader) ([]types.Sentence, error) {
	var records []Record
	if err := json.NewDecoder(reader).Decode(&records); err != nil {
		return nil, fmt.Errorf("failure decoding dataset: %s", err.Error())
	}
	sentences := make([]types.Sentence, len(records))
	for i, record := range records {
		sent, err := ParseRecord(record)
		if err != nil {
			return nil, fmt.Errorf("error processing record %d (%s): %s", i, record.ID, err.Error())
		}
		sentences[i] = sent
	}
	return sentences, nil
}

func ReadFile(filename string) (sents []types.Sentence, err error) {
	defer essentials.AddCtxTo("read "+filename, &err)
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return Read(file)
}

func Write(writer io.Writer, sents []types.Sentence) error {
	records := make([]Record, len(sents))
	for i, sent := range sents {
		records[i] = Record{
			ID:        sent.ID,
			Relation:  sent.Relation,
			Token:     sent.Tokens,
			SubjStart: sent.Subj.Start,
			SubjEnd:   sent.Subj.End,
			ObjStart:  sent.Obj.Start,
			ObjEnd:    sent.Obj.End,
			SubjType:  sent.SubjType,
			ObjType:   sent.ObjType,
			POS:       sent.POS,
			NER:       sent.NER,
			Head:      sent.Head,
			DepRel:    sent.DepRel,
		}
	}
	encoder := json.NewEncoder(writer)
	return encoder.Encode(records)
}

func WriteFile(filename string, sents []types.Sentence) (err error) {
	defer essentials.AddCtxTo("write "+filename, &err)
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()
	return Write(file, sents)
}
