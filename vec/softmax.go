package vec

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/wavelets/dl4nlp/utilities"
)

// SoftmaxCostGradient is the cross-entropy cost of predicting word output
// from center word input under a softmax over the whole vocabulary, with its
// gradient.
//
// With v = Input[input] and e = softmax(Output·v) - onehot(output), the
// gradient's Input row `input` is Outputᵀ·e (every other Input row is zero)
// and its Output table is the outer product e ⊗ v. p is only read.
func SoftmaxCostGradient(p *Parameters, input, output int) (float64, *Parameters, error) {
	vocab, _, err := p.dims()
	if err != nil {
		return 0, nil, err
	}
	if err := p.checkIndex("input", input, vocab); err != nil {
		return 0, nil, err
	}
	if err := p.checkIndex("output", output, vocab); err != nil {
		return 0, nil, err
	}

	v := p.Input.RowView(input)
	var scores mat.VecDense
	scores.MulVec(p.Output, v)
	prediction := utilities.Softmax(scores.RawVector().Data)
	cost := -math.Log(prediction[output])

	// prediction is reused as the error vector
	delta := mat.NewVecDense(vocab, prediction)
	delta.SetVec(output, delta.AtVec(output)-1)

	grad := p.zeros()
	var gradInput mat.VecDense
	gradInput.MulVec(p.Output.T(), delta)
	grad.Input.SetRow(input, gradInput.RawVector().Data)
	grad.Output.Outer(1, delta, v)
	return cost, grad, nil
}
