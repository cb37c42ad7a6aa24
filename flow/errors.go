package flow

import (
	"fmt"
	"reflect"
	"runtime"
)

// TypeError is raised (as a panic) when a chain writes a value into a cell
// of a different type, or a typed adapter receives an argument it cannot
// convert.
type TypeError struct {
	Value any
	Want  reflect.Type
}

func (e *TypeError) Error() string {
	return fmt.Sprintf("flow: cannot use %v (%T) as %v", e.Value, e.Value, e.Want)
}

// PanicError wraps a value recovered from a panicking thunk operation
// together with the stack trace captured at the point of the panic.
type PanicError struct {
	Value any
	Stack string
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("flow: thunk panicked: %v\n\n%s", e.Value, e.Stack)
}

// Unwrap returns the recovered value when it is itself an error.
func (e *PanicError) Unwrap() error {
	err, _ := e.Value.(error)
	return err
}

func newPanicError(v any) *PanicError {
	buf := make([]byte, 8192)
	n := runtime.Stack(buf, false)
	return &PanicError{Value: v, Stack: string(buf[:n])}
}
