package relex

import (
	"math"

	"relex/nlp/types"
	"relex/util"
)

// EntityPositions returns each token's signed distance to the [start,end]
// entity span: negative before the span, zero inside it, positive after.
func EntityPositions(start, end, length int) []int {
	positions := make([]int, 0, length)
	for i := -start; i < 0; i++ {
		positions = append(positions, i)
	}
	for i := start; i <= end; i++ {
		positions = append(positions, 0)
	}
	for i := 1; i < length-end; i++ {
		positions = append(positions, i)
	}
	return positions
}

// CompressPositions recodes distances logarithmically so that tokens far
// from the entity share position ids: magnitude ceil(log2(|x|+1)), with the
// prefix strictly before the span negated to keep its direction. Output
// length always equals input length.
func CompressPositions(positions []int) []int {
	magnitudes := make([]int, len(positions))
	for i, x := range positions {
		magnitudes[i] = int(math.Ceil(math.Log2(float64(util.AbsInt(x) + 1))))
	}
	compressed := make([]int, 0, len(positions))
	for i, m := range magnitudes {
		if m == 0 {
			compressed = append(compressed, magnitudes[i:]...)
			break
		}
		compressed = append(compressed, -m)
	}
	return compressed
}

// BinPositions groups distances into bins of the given width, keeping sign.
func BinPositions(positions []int, width int) []int {
	binned := make([]int, len(positions))
	for i, x := range positions {
		switch {
		case x > 0:
			binned[i] = (x + width - 1) / width
		case x < 0:
			binned[i] = (x - width + 1) / width
		}
	}
	return binned
}

// SentencePositions returns 1-based token position ids, with 0 reserved for
// padding cells.
func SentencePositions(words []int) []int {
	positions := make([]int, len(words))
	for i, w := range words {
		if w != types.PAD_ID {
			positions[i] = i + 1
		}
	}
	return positions
}
