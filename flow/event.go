package flow

// Event is a callable trigger. Calling it is the same as SetState; repeated
// identical values are delivered every time.
type Event[T any] struct {
	Unit[T]
}

func CreateEvent[T any]() *Event[T] {
	return &Event[T]{}
}

func (e *Event[T]) Call(v T) {
	e.SetState(v)
}

// Func returns Call as a plain function value.
func (e *Event[T]) Func() func(T) {
	return e.Call
}
