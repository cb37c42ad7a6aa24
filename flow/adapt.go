package flow

//go:generate go run ../cmd/codegen --out adapters.go

// dep returns the i-th dependency value, or nil when the step declared fewer
// dependencies than the adapter reads.
func dep(deps []any, i int) any {
	if i >= len(deps) {
		return nil
	}
	return deps[i]
}

// SpreadOf adapts a typed classifier.
func SpreadOf[T any](fn func(T) (map[string]any, bool)) SpreadFunc {
	return func(value any) (map[string]any, bool) {
		return fn(cast[T](value))
	}
}
