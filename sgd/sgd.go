// Package sgd trains word2vec parameters with plain stochastic gradient
// descent, one sentence per update.
package sgd

import (
	"context"
	"errors"
	"fmt"
	"math/rand"

	"github.com/wavelets/dl4nlp/log"
	"github.com/wavelets/dl4nlp/vec"
)

var ErrNoData = errors.New("sgd: no sentences to train on")

// Run updates p in place for cfg.Iterations steps. Each step draws a sentence
// uniformly at random, evaluates f on it and moves p by -step*gradient.
// It returns the exponentially smoothed cost (0.95 old + 0.05 new).
func Run(ctx context.Context, p *vec.Parameters, f vec.CostGradientFunc, sentences [][]int, cfg *Config) (float64, error) {
	if cfg == nil {
		cfg = NewConfig()
	}
	if len(sentences) == 0 {
		return 0, ErrNoData
	}
	logger := cfg.Logger
	if logger == nil {
		logger = log.Default()
	}

	runID := cfg.RunID
	if runID == "" {
		runID = NewRunID()
	}
	costMetric := costGauge.WithLabelValues(runID)
	iterMetric := iterationsCounter.WithLabelValues(runID)
	stepMetric := stepSizeGauge.WithLabelValues(runID)
	logger.Info("run %s: %d iterations over %d sentences, step %g", runID, cfg.Iterations, len(sentences), cfg.Step)

	rng := rand.New(rand.NewSource(cfg.Seed))
	step := cfg.Step
	stepMetric.Set(step)

	var expCost float64
	for iter := 1; iter <= cfg.Iterations; iter++ {
		if err := ctx.Err(); err != nil {
			return expCost, err
		}

		sentence := sentences[rng.Intn(len(sentences))]
		cost, grad, err := f(p, sentence, nil)
		if err != nil {
			return expCost, fmt.Errorf("sgd: iteration %d: %w", iter, err)
		}
		if err := p.AddScaled(-step, grad); err != nil {
			return expCost, fmt.Errorf("sgd: iteration %d: %w", iter, err)
		}
		if cfg.Postprocess != nil {
			cfg.Postprocess(p)
		}

		if iter == 1 {
			expCost = cost
		} else {
			expCost = 0.95*expCost + 0.05*cost
		}
		iterMetric.Inc()
		costMetric.Set(expCost)

		if cfg.PrintEvery > 0 && iter%cfg.PrintEvery == 0 {
			logger.Info("run %s iter %d: %f", runID, iter, expCost)
		}
		if cfg.AnnealEvery > 0 && iter%cfg.AnnealEvery == 0 {
			step *= 0.5
			stepMetric.Set(step)
			logger.Debug("run %s iter %d: step size annealed to %g", runID, iter, step)
		}
	}
	return expCost, nil
}
