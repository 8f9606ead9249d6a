package mdsite

import (
	"context"
	"runtime"
	"sync"
)

// Pool sizing constants.
const (
	// MinPoolSize ensures at least one renderer is available.
	MinPoolSize = 1

	// MaxPoolSize caps renderer instances for batch builds.
	MaxPoolSize = 8

	// cpuDivisor leaves headroom for template execution and file I/O.
	cpuDivisor = 2
)

// RendererPool manages a pool of identically configured Renderer instances
// for parallel batch rendering. Renderers are created and initialized lazily
// on first acquire.
type RendererPool struct {
	size    int
	opts    []Option
	sem     chan *Renderer
	mu      sync.Mutex
	created int
	closed  bool
}

// NewRendererPool creates a pool with capacity for n Renderer instances,
// each built with the given options. Renderers are created lazily when
// acquired, not at pool creation.
func NewRendererPool(n int, opts ...Option) *RendererPool {
	if n < 1 {
		n = 1
	}

	return &RendererPool{
		size: n,
		opts: opts,
		sem:  make(chan *Renderer, n),
	}
}

// Acquire gets an initialized renderer from the pool, creating one if
// needed. Blocks if all renderers are in use. The context bounds renderer
// initialization and the wait for a free renderer.
func (p *RendererPool) Acquire(ctx context.Context) (*Renderer, error) {
	// Try to get an existing renderer (non-blocking)
	select {
	case r := <-p.sem:
		return r, nil
	default:
	}

	// Check if we can create a new renderer
	p.mu.Lock()
	if p.created < p.size {
		p.created++
		p.mu.Unlock()

		// Create and initialize outside the lock
		r, err := New(p.opts...)
		if err == nil {
			err = r.Init(ctx)
		}
		if err != nil {
			p.mu.Lock()
			p.created--
			p.mu.Unlock()
			return nil, err
		}

		return r, nil
	}
	p.mu.Unlock()

	// All renderers created, wait for one to be released
	select {
	case r := <-p.sem:
		return r, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// Release returns a renderer to the pool. Releases after Close are dropped.
// The closed check and the send stay in one critical section so a concurrent
// Close cannot close the channel between them. The send cannot block: the
// channel capacity equals the pool size, and at most size renderers exist.
func (p *RendererPool) Release(r *Renderer) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return
	}
	p.sem <- r
}

// Close marks the pool closed. Subsequent releases are dropped.
func (p *RendererPool) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return
	}
	p.closed = true
	close(p.sem)
}

// Size returns the pool capacity.
func (p *RendererPool) Size() int {
	return p.size
}

// ResolvePoolSize determines the pool size for batch builds.
// Priority: explicit workers > GOMAXPROCS-based calculation.
func ResolvePoolSize(workers int) int {
	// Explicit value takes priority
	if workers > 0 {
		return workers
	}

	// Auto-calculate based on GOMAXPROCS (adjusted by automaxprocs in main)
	available := runtime.GOMAXPROCS(0)
	n := available / cpuDivisor

	if n < MinPoolSize {
		return MinPoolSize
	}
	if n > MaxPoolSize {
		return MaxPoolSize
	}
	return n
}
