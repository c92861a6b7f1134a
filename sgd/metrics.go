package sgd

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	costGauge = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "word2vec_sgd_cost",
			Help: "exponentially smoothed training cost",
		},
		[]string{"run"},
	)
	iterationsCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "word2vec_sgd_iterations_total",
			Help: "completed sgd updates",
		},
		[]string{"run"},
	)
	stepSizeGauge = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "word2vec_sgd_step_size",
			Help: "current learning rate after annealing",
		},
		[]string{"run"},
	)
)

func init() {
	prometheus.MustRegister(costGauge, iterationsCounter, stepSizeGauge)
}
