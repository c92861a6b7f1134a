package vec

import (
	"errors"
	"fmt"
	"math/rand"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

var (
	// ErrShape reports input and output matrices (or a gradient) of different shapes.
	ErrShape = errors.New("vec: parameter shape mismatch")
	// ErrIndex reports a word index outside [0, vocabulary size).
	ErrIndex = errors.New("vec: word index out of range")
)

// Parameters holds the two embedding tables of a skip-gram model.
// Row i of Input is word i as a center word, row i of Output is word i as a
// predicted context word. Gradients use the same type and shape.
type Parameters struct {
	Input  *mat.Dense
	Output *mat.Dense
}

// NewParameters returns all-zero tables of vocab rows and dim columns.
// It panics, like mat.NewDense, when vocab or dim is not positive.
func NewParameters(vocab, dim int) *Parameters {
	return &Parameters{
		Input:  mat.NewDense(vocab, dim, nil),
		Output: mat.NewDense(vocab, dim, nil),
	}
}

// FromMatrices pairs existing tables, which must have the same shape.
func FromMatrices(input, output *mat.Dense) (*Parameters, error) {
	p := &Parameters{Input: input, Output: output}
	if _, _, err := p.dims(); err != nil {
		return nil, err
	}
	return p, nil
}

// RandomParameters draws input rows uniformly from [-0.5/dim, 0.5/dim) and
// leaves the output table at zero.
func RandomParameters(vocab, dim int, rng *rand.Rand) *Parameters {
	p := NewParameters(vocab, dim)
	for i := 0; i < vocab; i++ {
		row := p.Input.RawRowView(i)
		for j := range row {
			row[j] = (rng.Float64() - 0.5) / float64(dim)
		}
	}
	return p
}

// Dims returns the vocabulary size and the embedding dimension.
func (p *Parameters) Dims() (vocab, dim int) {
	vocab, dim, _ = p.dims()
	return vocab, dim
}

func (p *Parameters) dims() (int, int, error) {
	if p == nil || p.Input == nil || p.Output == nil {
		return 0, 0, fmt.Errorf("%w: missing input or output table", ErrShape)
	}
	ir, ic := p.Input.Dims()
	or, oc := p.Output.Dims()
	if ir != or || ic != oc {
		return 0, 0, fmt.Errorf("%w: input %dx%d, output %dx%d", ErrShape, ir, ic, or, oc)
	}
	return ir, ic, nil
}

func (p *Parameters) checkIndex(name string, i, vocab int) error {
	if i < 0 || i >= vocab {
		return fmt.Errorf("%w: %s %d, vocabulary size %d", ErrIndex, name, i, vocab)
	}
	return nil
}

// zeros returns an all-zero gradient shaped like p.
func (p *Parameters) zeros() *Parameters {
	vocab, dim := p.Dims()
	return NewParameters(vocab, dim)
}

// Add accumulates g into p element-wise.
func (p *Parameters) Add(g *Parameters) error {
	return p.AddScaled(1, g)
}

// AddScaled sets p to p + alpha*g.
func (p *Parameters) AddScaled(alpha float64, g *Parameters) error {
	pv, pd, err := p.dims()
	if err != nil {
		return err
	}
	gv, gd, err := g.dims()
	if err != nil {
		return err
	}
	if pv != gv || pd != gd {
		return fmt.Errorf("%w: parameters %dx%d, gradient %dx%d", ErrShape, pv, pd, gv, gd)
	}
	addScaledRows(p.Input, alpha, g.Input)
	addScaledRows(p.Output, alpha, g.Output)
	return nil
}

func addScaledRows(dst *mat.Dense, alpha float64, src *mat.Dense) {
	r, _ := dst.Dims()
	for i := 0; i < r; i++ {
		floats.AddScaled(dst.RawRowView(i), alpha, src.RawRowView(i))
	}
}

// Clone returns a deep copy of p.
func (p *Parameters) Clone() *Parameters {
	return &Parameters{
		Input:  mat.DenseCopyOf(p.Input),
		Output: mat.DenseCopyOf(p.Output),
	}
}
