package gopool

import (
	"context"
	"runtime/debug"
	"sync"

	"github.com/wavelets/dl4nlp/log"
)

var workerPool = sync.Pool{
	New: func() interface{} { return &worker{} },
}

type worker struct {
	pool *pool
}

func (w *worker) run() {
	go func() {
		for {
			t := w.pool.pop()
			if t == nil {
				w.Recycle()
				return
			}
			w.exec(t.ctx, t.f)
			t.Recycle()
		}
	}()
}

func (w *worker) exec(ctx context.Context, f func()) {
	defer func() {
		if r := recover(); r != nil {
			if !w.pool.handlePanic(ctx, r) {
				log.Default().Error("gopool %s: recovered panic: %v: %s", w.pool.name, r, debug.Stack())
			}
		}
	}()
	f()
}

func (w *worker) Recycle() {
	w.pool = nil
	workerPool.Put(w)
}
