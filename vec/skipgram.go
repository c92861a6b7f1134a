package vec

// CostGradientFunc is the objective a training driver minimises: cost and
// gradient of one sentence under p. The third argument is a label slot kept
// for drivers that pass (parameters, data, labels); word2vec ignores it.
type CostGradientFunc func(p *Parameters, sentence []int, label interface{}) (float64, *Parameters, error)

// SkipGramCostGradient sums SoftmaxCostGradient over outputs for a fixed
// center word. No outputs gives a zero cost and an all-zero gradient.
func SkipGramCostGradient(p *Parameters, input int, outputs []int) (float64, *Parameters, error) {
	inputs := make([]int, len(outputs))
	for k := range inputs {
		inputs[k] = input
	}
	return sumPairs(p, inputs, outputs)
}

// NewWord2VecCostGradient binds contextSize and returns the sentence
// objective: the summed pair cost and gradient over CreateContext(sentence, contextSize).
func NewWord2VecCostGradient(contextSize int) CostGradientFunc {
	return func(p *Parameters, sentence []int, _ interface{}) (float64, *Parameters, error) {
		inputs, outputs := CreateContext(sentence, contextSize)
		return sumPairs(p, inputs, outputs)
	}
}

func sumPairs(p *Parameters, inputs, outputs []int) (float64, *Parameters, error) {
	if _, _, err := p.dims(); err != nil {
		return 0, nil, err
	}
	total := p.zeros()
	totalCost := 0.0
	for k := range inputs {
		cost, grad, err := SoftmaxCostGradient(p, inputs[k], outputs[k])
		if err != nil {
			return 0, nil, err
		}
		totalCost += cost
		if err := total.Add(grad); err != nil {
			return 0, nil, err
		}
	}
	return totalCost, total, nil
}
