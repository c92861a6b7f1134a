package gopool

const defaultScaleThreshold = 1

// Config tunes when a pool starts another worker.
type Config struct {
	// ScaleThreshold is the queued task count at which a new worker is
	// started, as long as the pool is under its capacity.
	ScaleThreshold int32
}

func NewConfig() *Config {
	return &Config{ScaleThreshold: defaultScaleThreshold}
}
