package flow

import (
	"slices"
	"sync"

	mapset "github.com/deckarep/golang-set/v2"
)

// TransformFunc maps the flowing value, given the current state of the
// step's dependencies in declaration order.
type TransformFunc func(value any, deps ...any) any

// ValidateFunc decides whether the flowing value continues down the chain.
type ValidateFunc func(value any, deps ...any) bool

// SpreadFunc classifies a value into named branch payloads. Returning
// ok == false means no branch applies and the value passes through.
type SpreadFunc func(value any) (branches map[string]any, ok bool)

// Scheme maps a branch key to the builder that declares the nested chain for
// that key. Each builder runs once per key.
type Scheme map[string]func(*Chain) *Chain

type step interface {
	isStep()
}

type hopStep struct {
	target Cell

	// gen is the generation of the innermost walk currently writing through
	// this hop; depth counts those writes still on the stack.
	mu    sync.Mutex
	gen   uint64
	depth int
}

// write forwards value into the target on behalf of generation gen.
func (s *hopStep) write(gen uint64, value any) {
	s.mu.Lock()
	prev := s.gen
	s.gen = gen
	s.depth++
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		s.gen = prev
		s.depth--
		s.mu.Unlock()
	}()
	s.target.setAny(value)
}

// origin reports the generation of the walk whose write is being notified,
// or own == false when the target was written by someone else.
func (s *hopStep) origin() (gen uint64, own bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.gen, s.depth > 0
}

type transformStep struct {
	fn   TransformFunc
	deps []Cell
}

type validateStep struct {
	fn   ValidateFunc
	deps []Cell
}

type spreadStep struct {
	fn     SpreadFunc
	scheme Scheme
	keys   mapset.Set[string]

	mu    sync.Mutex
	inner map[string]*Chain
}

func (*hopStep) isStep()       {}
func (*transformStep) isStep() {}
func (*validateStep) isStep()  {}
func (*spreadStep) isStep()    {}

func newSpreadStep(fn SpreadFunc, scheme Scheme) *spreadStep {
	keys := mapset.NewThreadUnsafeSet[string]()
	for k := range scheme {
		keys.Add(k)
	}
	return &spreadStep{
		fn:     fn,
		scheme: scheme,
		keys:   keys,
		inner:  map[string]*Chain{},
	}
}

// active returns the keys present both in the classifier result and in the
// scheme, sorted.
func (s *spreadStep) active(branches map[string]any) []string {
	got := mapset.NewThreadUnsafeSet[string]()
	for k := range branches {
		got.Add(k)
	}
	keys := got.Intersect(s.keys).ToSlice()
	slices.Sort(keys)
	return keys
}

// branch returns the memoized nested chain for key, building it on first
// use, with its scratch value set to payload.
func (s *spreadStep) branch(parent *Chain, key string, payload any) *Chain {
	s.mu.Lock()
	defer s.mu.Unlock()

	if c, ok := s.inner[key]; ok {
		return c.UpdateData(payload)
	}
	fresh := ChainFromData(payload, WithLogger(parent.logger))
	c := s.scheme[key](fresh)
	if c == nil {
		c = fresh
	}
	s.inner[key] = c
	return c.UpdateData(payload)
}

func readDeps(deps []Cell) []any {
	if len(deps) == 0 {
		return nil
	}
	vals := make([]any, len(deps))
	for i, dep := range deps {
		vals[i] = dep.stateAny()
	}
	return vals
}
