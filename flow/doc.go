// Package flow provides observable state cells and a chain builder that wires
// them together.
//
// Cells:
//   - Unit notifies subscribers on every SetState.
//   - Store skips writes equal to the current value.
//   - Event is a Unit that can be called.
//   - Thunk runs an operation on SetState and publishes the result, with
//     Pending and Error events reporting its lifecycle.
//
// A Chain declares what happens when a cell emits:
//
//	store := flow.CreateStore(1)
//	inc := flow.CreateEvent[int]()
//	flow.NewChain(inc).
//		Transform(flow.Transform1(func(n, s int) int { return s + n }), store).
//		To(store)
//	inc.Call(1) // store.GetState() == 2
//
// All propagation is synchronous on the caller's goroutine except the
// operation of a Thunk, which runs on its scheduler.
package flow
