package vec

import (
	"gonum.org/v1/gonum/floats"
)

// CosineSimilarity of two equal-length vectors. Zero vectors give 0.
func CosineSimilarity(vec1, vec2 []float64) float64 {
	if len(vec1) != len(vec2) {
		panic("Vectors must have the same len")
	}
	normA, normB := floats.Norm(vec1, 2), floats.Norm(vec2, 2)
	if normA == 0 || normB == 0 {
		return 0
	}
	return floats.Dot(vec1, vec2) / (normA * normB)
}

// Similarity compares the center-word embeddings of words i and j.
func (p *Parameters) Similarity(i, j int) (float64, error) {
	vocab, _, err := p.dims()
	if err != nil {
		return 0, err
	}
	if err := p.checkIndex("word", i, vocab); err != nil {
		return 0, err
	}
	if err := p.checkIndex("word", j, vocab); err != nil {
		return 0, err
	}
	return CosineSimilarity(p.Input.RawRowView(i), p.Input.RawRowView(j)), nil
}
