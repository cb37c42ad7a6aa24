package flow

// Store is a deduplicating cell: writing a value equal (==) to the current
// one is a no-op and notifies nobody.
type Store[T comparable] struct {
	Unit[T]
}

func CreateStore[T comparable](def ...T) *Store[T] {
	s := &Store[T]{}
	s.init(def)
	s.equal = func(a, b T) bool { return a == b }
	return s
}

// Reset restores the default value without notifying subscribers. A store
// created without a default becomes absent again.
func (s *Store[T]) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.value, s.present = s.def, s.hasDef
}
