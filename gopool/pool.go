package gopool

import (
	"context"
	"sync"
	"sync/atomic"
)

// Pool runs functions on a bounded set of reusable goroutines.
// Tasks are queued in submission order; a task that panics is recovered
// and handed to the panic handler, the worker keeps running.
type Pool interface {
	Name() string
	Go(func())
	CtxGo(context.Context, func())
	SetPanicHandler(func(context.Context, interface{}))
	WorkerCount() int32
	SetCap(cap int32)
}

var taskPool = sync.Pool{
	New: func() interface{} { return &task{} },
}

type task struct {
	ctx context.Context
	f   func()

	next *task
}

func (t *task) Recycle() {
	t.ctx = nil
	t.f = nil
	t.next = nil
	taskPool.Put(t)
}

type pool struct {
	name   string
	cap    int32
	config *Config

	taskLock  sync.Mutex
	taskHead  *task
	taskTail  *task
	taskCount int32

	workerCount int32

	panicHandler atomic.Value
}

func NewPool(name string, cap int32, config *Config) Pool {
	if config == nil {
		config = NewConfig()
	}
	if cap < 1 {
		cap = 1
	}
	return &pool{
		name:   name,
		cap:    cap,
		config: config,
	}
}

func (p *pool) Name() string {
	return p.name
}

func (p *pool) Go(f func()) {
	p.CtxGo(context.Background(), f)
}

func (p *pool) CtxGo(ctx context.Context, f func()) {
	t := taskPool.Get().(*task)
	t.ctx = ctx
	t.f = f

	p.taskLock.Lock()
	if p.taskHead == nil {
		p.taskHead = t
		p.taskTail = t
	} else {
		p.taskTail.next = t
		p.taskTail = t
	}
	p.taskLock.Unlock()
	queued := atomic.AddInt32(&p.taskCount, 1)

	workers := p.WorkerCount()
	if (queued >= p.config.ScaleThreshold && workers < atomic.LoadInt32(&p.cap)) || workers == 0 {
		atomic.AddInt32(&p.workerCount, 1)
		w := workerPool.Get().(*worker)
		w.pool = p
		w.run()
	}
}

// pop removes the head task, or returns nil when the queue is empty.
// A nil result also retires the calling worker under the same lock, so a
// concurrent CtxGo either sees the worker or starts a new one.
func (p *pool) pop() *task {
	p.taskLock.Lock()
	defer p.taskLock.Unlock()
	t := p.taskHead
	if t == nil {
		atomic.AddInt32(&p.workerCount, -1)
		return nil
	}
	p.taskHead = t.next
	if p.taskHead == nil {
		p.taskTail = nil
	}
	atomic.AddInt32(&p.taskCount, -1)
	return t
}

func (p *pool) SetPanicHandler(f func(context.Context, interface{})) {
	p.panicHandler.Store(f)
}

func (p *pool) handlePanic(ctx context.Context, r interface{}) bool {
	f, _ := p.panicHandler.Load().(func(context.Context, interface{}))
	if f == nil {
		return false
	}
	f(ctx, r)
	return true
}

func (p *pool) WorkerCount() int32 {
	return atomic.LoadInt32(&p.workerCount)
}

func (p *pool) SetCap(cap int32) {
	atomic.StoreInt32(&p.cap, cap)
}
