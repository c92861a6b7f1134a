package vec

import (
	"fmt"
	"sync"

	"github.com/wavelets/dl4nlp/gopool"
)

type partialSum struct {
	cost float64
	grad *Parameters
	err  error
}

// NewParallelWord2VecCostGradient is NewWord2VecCostGradient with the
// context pairs of a sentence split into at most shards contiguous chunks,
// each summed by its own pool task. Chunk sums are added up in chunk order
// on the calling goroutine, so no accumulator is shared between tasks.
// A nil pool means gopool.Default().
func NewParallelWord2VecCostGradient(contextSize, shards int, pool gopool.Pool) CostGradientFunc {
	if shards < 1 {
		shards = 1
	}
	if pool == nil {
		pool = gopool.Default()
	}
	return func(p *Parameters, sentence []int, _ interface{}) (float64, *Parameters, error) {
		inputs, outputs := CreateContext(sentence, contextSize)
		chunks := min(shards, len(inputs))
		if chunks <= 1 {
			return sumPairs(p, inputs, outputs)
		}
		if _, _, err := p.dims(); err != nil {
			return 0, nil, err
		}

		results := make([]partialSum, chunks)
		var wg sync.WaitGroup
		for c := 0; c < chunks; c++ {
			c := c
			lo, hi := c*len(inputs)/chunks, (c+1)*len(inputs)/chunks
			wg.Add(1)
			pool.Go(func() {
				defer wg.Done()
				defer func() {
					if r := recover(); r != nil {
						results[c].err = fmt.Errorf("vec: context chunk %d panicked: %v", c, r)
					}
				}()
				res := &results[c]
				res.cost, res.grad, res.err = sumPairs(p, inputs[lo:hi], outputs[lo:hi])
			})
		}
		wg.Wait()

		total := p.zeros()
		totalCost := 0.0
		for _, res := range results {
			if res.err != nil {
				return 0, nil, res.err
			}
			totalCost += res.cost
			if err := total.Add(res.grad); err != nil {
				return 0, nil, err
			}
		}
		return totalCost, total, nil
	}
}
