package flow

import (
	"reflect"
	"sync"
	"sync/atomic"
)

// Subscription identifies one registration made with Subscribe.
type Subscription uint64

var lastSubscription atomic.Uint64

func nextSubscription() Subscription {
	return Subscription(lastSubscription.Add(1))
}

// Cell is the type-erased view of a unit that chains read from and write to.
// It is implemented by *Unit, *Store, *Event and *Thunk.
type Cell interface {
	subscribeAny(fn func(any)) Subscription
	unsubscribe(id Subscription)
	setAny(v any)
	stateAny() any
}

type subscriber[T any] struct {
	id Subscription
	fn func(T)
}

// Unit is a plain observable cell. Every SetState notifies every subscriber,
// even when the value did not change.
type Unit[T any] struct {
	mu      sync.Mutex
	value   T
	present bool
	def     T
	hasDef  bool
	subs    []subscriber[T]

	// equal is set by Store; nil means every write notifies.
	equal func(a, b T) bool
}

func CreateUnit[T any](def ...T) *Unit[T] {
	u := &Unit[T]{}
	u.init(def)
	return u
}

func (u *Unit[T]) init(def []T) {
	if len(def) > 0 {
		u.def, u.hasDef = def[0], true
		u.value, u.present = def[0], true
	}
}

func (u *Unit[T]) Subscribe(fn func(T)) Subscription {
	id := nextSubscription()
	u.mu.Lock()
	u.subs = append(u.subs, subscriber[T]{id: id, fn: fn})
	u.mu.Unlock()
	return id
}

func (u *Unit[T]) Unsubscribe(id Subscription) {
	u.mu.Lock()
	defer u.mu.Unlock()
	for i, sub := range u.subs {
		if sub.id == id {
			u.subs = append(u.subs[:i], u.subs[i+1:]...)
			return
		}
	}
}

// GetState returns the current value, or the zero value if the unit was
// never set and has no default.
func (u *Unit[T]) GetState() T {
	v, _ := u.Lookup()
	return v
}

// Lookup reports the current value and whether one is present.
func (u *Unit[T]) Lookup() (T, bool) {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.value, u.present
}

func (u *Unit[T]) SetState(v T) {
	u.mu.Lock()
	if u.equal != nil && u.present && u.equal(u.value, v) {
		u.mu.Unlock()
		return
	}
	u.value, u.present = v, true
	subs := make([]subscriber[T], len(u.subs))
	copy(subs, u.subs)
	u.mu.Unlock()

	for _, sub := range subs {
		sub.fn(v)
	}
}

func (u *Unit[T]) subscribeAny(fn func(any)) Subscription {
	return u.Subscribe(func(v T) { fn(v) })
}

func (u *Unit[T]) unsubscribe(id Subscription) {
	u.Unsubscribe(id)
}

func (u *Unit[T]) setAny(v any) {
	u.SetState(cast[T](v))
}

func (u *Unit[T]) stateAny() any {
	v, ok := u.Lookup()
	if !ok {
		return nil
	}
	return v
}

// cast converts a chain value into T. nil becomes the zero value, any other
// mismatch panics with a *TypeError.
func cast[T any](v any) T {
	var zero T
	if v == nil {
		return zero
	}
	t, ok := v.(T)
	if !ok {
		panic(&TypeError{Value: v, Want: reflect.TypeFor[T]()})
	}
	return t
}
