package sgd

import (
	uuid "github.com/satori/go.uuid"

	"github.com/wavelets/dl4nlp/log"
	"github.com/wavelets/dl4nlp/vec"
)

const (
	defaultStep        = 0.3
	defaultIterations  = 40000
	defaultAnnealEvery = 20000
	defaultPrintEvery  = 10
	defaultSeed        = 31415
)

type Config struct {
	// Step is the initial learning rate.
	Step       float64
	Iterations int
	// AnnealEvery halves Step after every AnnealEvery iterations; 0 disables annealing.
	AnnealEvery int
	// PrintEvery logs the smoothed cost every PrintEvery iterations; 0 disables it.
	PrintEvery int
	// Seed drives sentence sampling.
	Seed int64
	// Postprocess, if set, runs on the parameters after every update.
	Postprocess func(p *vec.Parameters)
	// Logger defaults to log.Default().
	Logger log.Logger
	// RunID labels the progress log lines and metric series of one run.
	// Run fills in NewRunID() when it is empty.
	RunID string
}

// NewRunID returns a random v4 UUID string.
func NewRunID() string {
	return uuid.NewV4().String()
}

func NewConfig() *Config {
	return &Config{
		Step:        defaultStep,
		Iterations:  defaultIterations,
		AnnealEvery: defaultAnnealEvery,
		PrintEvery:  defaultPrintEvery,
		Seed:        defaultSeed,
	}
}
