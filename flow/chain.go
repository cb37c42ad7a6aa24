package flow

import (
	"log/slog"
	"sync"
	"sync/atomic"
)

// Chain is a declarative pipeline of steps. A chain bound to a source cell
// runs from its first step on every emission of the source. Every cell the
// chain forwards into with To is also an entry point: when that cell emits,
// the chain resumes from the step after the hop.
//
// Walks are synchronous. Each emission of the source, each Trigger and each
// outside write to a hop target starts a new generation; a walk that finds a
// newer generation running after one of its callbacks returns stops where it
// is, including when it would continue through a hop target's notification.
type Chain struct {
	mu     sync.Mutex
	source Cell
	steps  []step
	value  any

	gen    atomic.Uint64
	logger *slog.Logger
}

type Option func(*Chain)

// WithLogger sets the logger used for debug tracing of walks. Nested spread
// chains inherit it.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Chain) {
		if logger != nil {
			c.logger = logger
		}
	}
}

func newChain(opts []Option) *Chain {
	c := &Chain{logger: slog.Default()}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// NewChain binds a chain to src. The first step appended is step 0.
func NewChain(src Cell, opts ...Option) *Chain {
	c := newChain(opts)
	c.source = src
	src.subscribeAny(func(v any) {
		c.start(0, v)
	})
	return c
}

// ChainFromData creates an unbound chain holding value until Trigger.
func ChainFromData(value any, opts ...Option) *Chain {
	c := newChain(opts)
	c.value = value
	return c
}

// Source returns the cell the chain is bound to, or nil for a chain created
// with ChainFromData.
func (c *Chain) Source() Cell {
	return c.source
}

// UpdateData replaces the value used by the next Trigger.
func (c *Chain) UpdateData(value any) *Chain {
	c.mu.Lock()
	c.value = value
	c.mu.Unlock()
	return c
}

// Trigger runs the chain from its first step with the stored value. A nil
// value does nothing.
func (c *Chain) Trigger() {
	c.mu.Lock()
	v := c.value
	c.mu.Unlock()
	if v == nil {
		return
	}
	c.start(0, v)
}

// To appends one hop per cell. Each hop writes the flowing value into its
// cell; the walk continues past the hop only through the cell's own
// notification.
func (c *Chain) To(cells ...Cell) *Chain {
	for _, cell := range cells {
		hop := &hopStep{target: cell}
		c.mu.Lock()
		c.steps = append(c.steps, hop)
		next := len(c.steps)
		c.mu.Unlock()

		cell.subscribeAny(func(v any) {
			c.resume(hop, next, v)
		})
	}
	return c
}

func (c *Chain) Transform(fn TransformFunc, deps ...Cell) *Chain {
	return c.push(&transformStep{fn: fn, deps: deps})
}

func (c *Chain) Validate(fn ValidateFunc, deps ...Cell) *Chain {
	return c.push(&validateStep{fn: fn, deps: deps})
}

// Spread fans the value out into nested chains. fn classifies the value into
// branch payloads; for each key that is also in scheme, the nested chain for
// that key receives its payload and is triggered, in sorted key order. Keys
// missing from either side are ignored. If a branch re-triggers this chain,
// the remaining branches of the older walk are skipped; the newer walk
// dispatches its own.
func (c *Chain) Spread(fn SpreadFunc, scheme Scheme) *Chain {
	return c.push(newSpreadStep(fn, scheme))
}

func (c *Chain) push(s step) *Chain {
	c.mu.Lock()
	c.steps = append(c.steps, s)
	c.mu.Unlock()
	return c
}

func (c *Chain) stepAt(i int) (step, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if i >= len(c.steps) {
		return nil, false
	}
	return c.steps[i], true
}

// start begins a new generation at index.
func (c *Chain) start(index int, value any) {
	c.walk(c.gen.Add(1), index, value)
}

// resume continues past hop after its target emitted. An emission caused by
// the chain's own write continues that walk if it is still the newest; any
// other write starts a new generation.
func (c *Chain) resume(hop *hopStep, index int, value any) {
	gen, own := hop.origin()
	if !own {
		c.start(index, value)
		return
	}
	if c.stale(gen, index) {
		return
	}
	c.walk(gen, index, value)
}

func (c *Chain) stale(gen uint64, index int) bool {
	if c.gen.Load() == gen {
		return false
	}
	c.logger.Debug("chain walk superseded", "generation", gen, "step", index)
	return true
}

func (c *Chain) walk(gen uint64, index int, value any) {
	for {
		st, ok := c.stepAt(index)
		if !ok {
			return
		}

		switch s := st.(type) {
		case *hopStep:
			s.write(gen, value)
			return

		case *transformStep:
			value = s.fn(value, readDeps(s.deps)...)

		case *validateStep:
			if !s.fn(value, readDeps(s.deps)...) {
				c.logger.Debug("chain value dropped", "step", index)
				return
			}

		case *spreadStep:
			branches, ok := s.fn(value)
			if ok {
				c.spread(gen, index, s, branches)
				return
			}
		}

		if c.stale(gen, index) {
			return
		}
		index++
	}
}

func (c *Chain) spread(gen uint64, index int, s *spreadStep, branches map[string]any) {
	keys := s.active(branches)
	c.logger.Debug("chain spread", "step", index, "branches", keys)
	for i, key := range keys {
		if i > 0 && c.stale(gen, index) {
			return
		}
		s.branch(c, key, branches[key]).Trigger()
	}
}
