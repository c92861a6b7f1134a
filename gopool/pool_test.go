package gopool

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func TestPool(t *testing.T) {
	p := NewPool("test", 100, NewConfig())
	wg := sync.WaitGroup{}
	var n int32
	for i := 0; i < 2000; i++ {
		wg.Add(1)
		p.Go(func() {
			defer wg.Done()
			atomic.AddInt32(&n, 1)
		})
	}
	wg.Wait()
	if n != 2000 {
		t.Error(n)
	}
}

func TestPoolPanicHandler(t *testing.T) {
	p := NewPool("test", 4, NewConfig())
	got := make(chan interface{}, 1)
	p.SetPanicHandler(func(_ context.Context, r interface{}) {
		got <- r
	})
	p.Go(func() { panic("boom") })

	select {
	case r := <-got:
		if r != "boom" {
			t.Fatalf("unexpected panic value %v", r)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("panic handler was not called")
	}

	// the pool keeps serving after a panic
	done := make(chan struct{})
	p.Go(func() { close(done) })
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("task after panic did not run")
	}
}

func TestPoolPanicWithoutHandler(t *testing.T) {
	p := NewPool("test", 1, NewConfig())
	var wg sync.WaitGroup
	wg.Add(1)
	p.Go(func() {
		defer wg.Done()
		panic("logged")
	})
	wg.Wait()
}

func TestPoolWorkersRetire(t *testing.T) {
	p := NewPool("test", 8, NewConfig())
	var wg sync.WaitGroup
	for i := 0; i < 64; i++ {
		wg.Add(1)
		p.Go(wg.Done)
	}
	wg.Wait()
	waitIdle(t, p)
}

func TestDefaultPool(t *testing.T) {
	var wg sync.WaitGroup
	var n int32
	for i := 0; i < 10; i++ {
		wg.Add(1)
		Go(func() {
			defer wg.Done()
			atomic.AddInt32(&n, 1)
		})
	}
	wg.Wait()
	if n != 10 {
		t.Fatalf("expected 10 tasks, ran %d", n)
	}
	if Default().Name() != "default" {
		t.Fatalf("unexpected default pool name %q", Default().Name())
	}
}

type ctxKey struct{}

func TestDefaultPanicHandler(t *testing.T) {
	got := make(chan interface{}, 1)
	SetPanicHandler(func(ctx context.Context, r interface{}) {
		got <- ctx.Value(ctxKey{})
	})
	defer SetPanicHandler(nil)

	ctx := context.WithValue(context.Background(), ctxKey{}, "chunk-3")
	CtxGo(ctx, func() { panic("boom") })

	select {
	case v := <-got:
		if v != "chunk-3" {
			t.Fatalf("handler saw context value %v", v)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("panic handler on the default pool was not called")
	}
}

func TestSetCap(t *testing.T) {
	p := NewPool("test", 8, NewConfig())
	p.SetCap(2)

	release := make(chan struct{})
	defer close(release)
	for i := 0; i < 20; i++ {
		p.Go(func() { <-release })
		if n := p.WorkerCount(); n > 2 {
			t.Fatalf("%d workers running with capacity 2", n)
		}
	}
}

func TestDefaultSetCap(t *testing.T) {
	waitIdle(t, Default())
	old := atomic.LoadInt32(&Default().(*pool).cap)
	SetCap(1)
	defer SetCap(old)

	release := make(chan struct{})
	defer close(release)
	for i := 0; i < 10; i++ {
		Go(func() { <-release })
		if n := WorkerCount(); n > 1 {
			t.Fatalf("%d workers running on the default pool with capacity 1", n)
		}
	}
}

func waitIdle(t *testing.T, p Pool) {
	deadline := time.Now().Add(5 * time.Second)
	for p.WorkerCount() != 0 {
		if time.Now().After(deadline) {
			t.Fatalf("workers still running: %d", p.WorkerCount())
		}
		time.Sleep(time.Millisecond)
	}
}
