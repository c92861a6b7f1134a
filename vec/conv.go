package vec

import (
	"gonum.org/v1/gonum/floats"
)

// SentenceToVector averages the center-word embeddings of the sentence.
// Indices outside the vocabulary are skipped; if nothing is left the zero vector is returned.
func SentenceToVector(p *Parameters, sentence []int) []float64 {
	vocab, dim := p.Dims()
	avgVector := make([]float64, dim)
	wordsCount := 0
	for _, word := range sentence {
		if word < 0 || word >= vocab {
			continue
		}
		floats.Add(avgVector, p.Input.RawRowView(word))
		wordsCount++
	}
	if wordsCount > 0 {
		floats.Scale(1/float64(wordsCount), avgVector)
	}
	return avgVector
}
