package gopool

import (
	"context"
	"runtime"
)

var defaultPool Pool

func init() {
	defaultPool = NewPool("default", int32(runtime.GOMAXPROCS(0)), NewConfig())
}

// Default returns the shared pool sized to GOMAXPROCS.
func Default() Pool {
	return defaultPool
}

func Go(f func()) {
	CtxGo(context.Background(), f)
}

func CtxGo(ctx context.Context, f func()) {
	defaultPool.CtxGo(ctx, f)
}

// SetCap changes the shared pool's capacity, which affects every caller of Default.
func SetCap(cap int32) {
	defaultPool.SetCap(cap)
}

// SetPanicHandler sets the panic handler for the shared pool.
func SetPanicHandler(f func(context.Context, interface{})) {
	defaultPool.SetPanicHandler(f)
}

// WorkerCount returns the number of running workers of the shared pool.
func WorkerCount() int32 {
	return defaultPool.WorkerCount()
}
