package flow_test

import (
	"strconv"
	"testing"

	"github.com/delaneyj/signalchain/flow"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSpreadRoutesToBranch(t *testing.T) {
	store := flow.CreateStore(0)
	store2 := flow.CreateStore("")
	event := flow.CreateEvent[int]()

	flow.NewChain(event).Spread(flow.SpreadOf(func(v int) (map[string]any, bool) {
		if v > 0 {
			return map[string]any{"done": v}, true
		}
		return map[string]any{"none": "warning"}, true
	}), flow.Scheme{
		"done": func(c *flow.Chain) *flow.Chain { return c.To(store) },
		"none": func(c *flow.Chain) *flow.Chain { return c.To(store2) },
	})

	event.Call(5)
	assert.Equal(t, 5, store.GetState())
	assert.Equal(t, "", store2.GetState())

	event.Call(0)
	assert.Equal(t, "warning", store2.GetState())
	assert.Equal(t, 5, store.GetState())
}

type signal struct {
	kind string
	data string
}

func TestSpreadFiresEveryMatchingBranch(t *testing.T) {
	count := flow.CreateStore(0)
	setSignal := flow.CreateEvent[signal]()
	lastX := flow.CreateStore("")
	lastY := flow.CreateStore(0)

	flow.NewChain(setSignal).Spread(flow.SpreadOf(func(s signal) (map[string]any, bool) {
		out := map[string]any{"signal": true}
		switch s.kind {
		case "x":
			out["x"] = s.data
		case "y":
			n, _ := strconv.Atoi(s.data)
			out["y"] = n
		}
		return out, true
	}), flow.Scheme{
		"x": func(c *flow.Chain) *flow.Chain { return c.To(lastX) },
		"y": func(c *flow.Chain) *flow.Chain { return c.To(lastY) },
		"signal": func(c *flow.Chain) *flow.Chain {
			return c.Transform(flow.Transform1(func(_ bool, n int) int {
				return n + 1
			}), count).To(count)
		},
	})

	setSignal.Call(signal{kind: "x", data: "1234"})
	assert.Equal(t, "1234", lastX.GetState())
	assert.Equal(t, 0, lastY.GetState())
	assert.Equal(t, 1, count.GetState())

	setSignal.Call(signal{kind: "y", data: "7"})
	assert.Equal(t, 7, lastY.GetState())
	assert.Equal(t, 2, count.GetState())
}

func TestSpreadIgnoresUnknownKeys(t *testing.T) {
	e := flow.CreateEvent[int]()
	hit := flow.CreateUnit[int]()
	callCount := 0
	hit.Subscribe(func(int) {
		callCount++
	})

	flow.NewChain(e).Spread(func(v any) (map[string]any, bool) {
		return map[string]any{"elsewhere": v}, true
	}, flow.Scheme{
		"known": func(c *flow.Chain) *flow.Chain { return c.To(hit) },
	})

	assert.NotPanics(t, func() {
		e.Call(1)
	})
	assert.Equal(t, 0, callCount)
}

func TestSpreadPassesThroughWhenNoBranch(t *testing.T) {
	e := flow.CreateEvent[int]()
	out := flow.CreateStore[int]()
	branch := flow.CreateStore[int]()

	flow.NewChain(e).Spread(flow.SpreadOf(func(v int) (map[string]any, bool) {
		if v%2 == 0 {
			return map[string]any{"even": v}, true
		}
		return nil, false
	}), flow.Scheme{
		"even": func(c *flow.Chain) *flow.Chain { return c.To(branch) },
	}).To(out)

	e.Call(3)
	assert.Equal(t, 3, out.GetState())
	_, ok := branch.Lookup()
	assert.False(t, ok)

	e.Call(4)
	assert.Equal(t, 4, branch.GetState())
	assert.Equal(t, 3, out.GetState(), "a dispatched spread ends the walk")
}

func TestSpreadReusesNestedChain(t *testing.T) {
	e := flow.CreateEvent[int]()
	target := flow.CreateUnit[int]()
	var got []int
	target.Subscribe(func(v int) {
		got = append(got, v)
	})

	builds := 0
	var nested []*flow.Chain
	flow.NewChain(e).Spread(flow.SpreadOf(func(v int) (map[string]any, bool) {
		return map[string]any{"k": v * 2}, true
	}), flow.Scheme{
		"k": func(c *flow.Chain) *flow.Chain {
			builds++
			nested = append(nested, c)
			return c.To(target)
		},
	})

	e.Call(1)
	e.Call(2)
	e.Call(3)
	require.Equal(t, 1, builds)
	assert.Equal(t, []int{2, 4, 6}, got, "one hop per payload, never re-appended")
	assert.Nil(t, nested[0].Source())
}

func TestSpreadBranchOrder(t *testing.T) {
	e := flow.CreateEvent[int]()
	order := flow.CreateUnit[string]()
	var got []string
	order.Subscribe(func(v string) {
		got = append(got, v)
	})

	scheme := flow.Scheme{}
	for _, k := range []string{"b", "c", "a"} {
		scheme[k] = func(c *flow.Chain) *flow.Chain { return c.To(order) }
	}
	flow.NewChain(e).Spread(func(any) (map[string]any, bool) {
		return map[string]any{"c": "c", "a": "a", "b": "b"}, true
	}, scheme)

	e.Call(1)
	assert.Equal(t, []string{"a", "b", "c"}, got)
}

func TestSpreadNilPayloadSkipsBranch(t *testing.T) {
	e := flow.CreateEvent[int]()
	target := flow.CreateUnit[int]()
	callCount := 0
	target.Subscribe(func(int) {
		callCount++
	})

	flow.NewChain(e).Spread(func(any) (map[string]any, bool) {
		return map[string]any{"k": nil}, true
	}, flow.Scheme{
		"k": func(c *flow.Chain) *flow.Chain { return c.To(target) },
	})

	e.Call(1)
	assert.Equal(t, 0, callCount)
}

// a branch that re-triggers the parent chain supersedes the remaining
// branches of the older walk
func TestSpreadReentrantBranchSupersedesOlderWalk(t *testing.T) {
	e := flow.CreateEvent[int]()
	a := flow.CreateUnit[int]()
	b := flow.CreateUnit[int]()

	var gotA, gotB []int
	a.Subscribe(func(v int) {
		gotA = append(gotA, v)
		if v == 1 {
			e.Call(2)
		}
	})
	b.Subscribe(func(v int) {
		gotB = append(gotB, v)
	})

	flow.NewChain(e).Spread(func(v any) (map[string]any, bool) {
		return map[string]any{"a": v, "b": v}, true
	}, flow.Scheme{
		"a": func(c *flow.Chain) *flow.Chain { return c.To(a) },
		"b": func(c *flow.Chain) *flow.Chain { return c.To(b) },
	})

	e.Call(1)
	assert.Equal(t, []int{1, 2}, gotA)
	assert.Equal(t, []int{2}, gotB)
}
