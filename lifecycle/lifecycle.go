package lifecycle

import (
	"context"
	"sync"
)

// Lifecycle owns the goroutines started on behalf of a running picker.
type Lifecycle struct {
	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
	mu     sync.Mutex
	onStop []func()
}

func New() *Lifecycle {
	ctx, cancel := context.WithCancel(context.Background())
	return &Lifecycle{ctx: ctx, cancel: cancel}
}

// Go runs f on its own goroutine; Stop waits for it to return.
func (lc *Lifecycle) Go(f func(ctx context.Context)) {
	lc.wg.Add(1)
	go func() {
		defer lc.wg.Done()
		f(lc.ctx)
	}()
}

func (lc *Lifecycle) Context() context.Context {
	return lc.ctx
}

func (lc *Lifecycle) ShouldStop() bool {
	select {
	case <-lc.ctx.Done():
		return true
	default:
		return false
	}
}

// OnStop registers f to run when Stop is called, before it starts waiting.
// Use it to unblock goroutines stuck outside of ctx.
func (lc *Lifecycle) OnStop(f func()) {
	lc.mu.Lock()
	lc.onStop = append(lc.onStop, f)
	lc.mu.Unlock()
}

func (lc *Lifecycle) Stop() {
	lc.cancel()
	lc.mu.Lock()
	onStop := lc.onStop
	lc.onStop = nil
	lc.mu.Unlock()
	for _, f := range onStop {
		f()
	}
	lc.wg.Wait()
}
