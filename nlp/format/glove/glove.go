package glove

// Package glove reads GloVe text-format embedding files: one word per line
// followed by its vector components, space separated.

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/unixpickle/essentials"
)

// Embedding files can have long lines (the word field may contain any
// non-space bytes); give the scanner room.
const maxLineSize = 1 << 20

// ReadVocab collects the set of words present in an embedding file without
// keeping any vectors.
func ReadVocab(reader io.Reader) (map[string]bool, error) {
	vocab := make(map[string]bool)
	scanner := bufio.NewScanner(reader)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	var lineno int
	for scanner.Scan() {
		lineno++
		line := scanner.Text()
		if len(line) == 0 {
			continue
		}
		sep := strings.IndexByte(line, ' ')
		if sep <= 0 {
			return nil, fmt.Errorf("line %d: no vector components", lineno)
		}
		vocab[line[:sep]] = true
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return vocab, nil
}

// ReadFiltered extracts the vectors of the wanted words only. Every kept
// vector must have exactly dim components.
func ReadFiltered(reader io.Reader, dim int, wanted map[string]bool) (map[string][]float64, error) {
	vectors := make(map[string][]float64, len(wanted))
	scanner := bufio.NewScanner(reader)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	var lineno int
	for scanner.Scan() {
		lineno++
		line := scanner.Text()
		if len(line) == 0 {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 2 {
			return nil, fmt.Errorf("line %d: no vector components", lineno)
		}
		word := fields[0]
		if !wanted[word] {
			continue
		}
		if len(fields)-1 != dim {
			return nil, fmt.Errorf("line %d: expected %d components, got %d", lineno, dim, len(fields)-1)
		}
		vector := make([]float64, dim)
		for i, field := range fields[1:] {
			value, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, fmt.Errorf("line %d: bad component %q: %s", lineno, field, err.Error())
			}
			vector[i] = value
		}
		vectors[word] = vector
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return vectors, nil
}

func ReadVocabFile(filename string) (vocab map[string]bool, err error) {
	defer essentials.AddCtxTo("read embedding vocab "+filename, &err)
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	return ReadVocab(file)
}

func ReadFilteredFile(filename string, dim int, wanted map[string]bool) (vectors map[string][]float64, err error) {
	defer essentials.AddCtxTo("read embeddings "+filename, &err)
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	return ReadFiltered(file, dim, wanted)
}
