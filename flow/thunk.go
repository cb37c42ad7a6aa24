package flow

import (
	"log/slog"
	"sync"
)

// ThunkFunc is the asynchronous operation behind a Thunk.
type ThunkFunc[T, D any] func(v T) (D, error)

// Thunk is a cell whose SetState runs an operation instead of storing its
// argument. The operation's result becomes the cell value; failures are
// published on Error and leave the value untouched. Pending reports true
// when a call starts and false once it settles.
//
// Overlapping calls are not serialized: the value reflects whichever call
// resolved last.
type Thunk[T, D any] struct {
	Unit[D]

	Pending *Event[bool]
	Error   *Event[error]

	fn       ThunkFunc[T, D]
	schedule func(task func())
	logger   *slog.Logger
	inflight sync.WaitGroup
}

type ThunkOption func(*thunkConfig)

type thunkConfig struct {
	schedule func(task func())
	logger   *slog.Logger
}

// WithScheduler runs thunk tasks on the given executor instead of a new
// goroutine per call.
func WithScheduler(schedule func(task func())) ThunkOption {
	return func(c *thunkConfig) {
		c.schedule = schedule
	}
}

func WithThunkLogger(logger *slog.Logger) ThunkOption {
	return func(c *thunkConfig) {
		c.logger = logger
	}
}

func CreateThunk[T, D any](fn ThunkFunc[T, D], opts ...ThunkOption) *Thunk[T, D] {
	cfg := &thunkConfig{
		schedule: func(task func()) { go task() },
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(cfg)
	}
	return &Thunk[T, D]{
		Pending:  CreateEvent[bool](),
		Error:    CreateEvent[error](),
		fn:       fn,
		schedule: cfg.schedule,
		logger:   cfg.logger,
	}
}

// SetState starts the operation for v and returns immediately.
func (t *Thunk[T, D]) SetState(v T) {
	t.inflight.Add(1)
	t.Pending.Call(true)
	t.schedule(func() {
		defer t.inflight.Done()
		t.run(v)
	})
}

// Wait blocks until every call started so far has settled.
func (t *Thunk[T, D]) Wait() {
	t.inflight.Wait()
}

func (t *Thunk[T, D]) run(v T) {
	defer t.Pending.Call(false)

	res, err := t.call(v)
	if err != nil {
		t.logger.Debug("thunk rejected", "error", err)
		t.Error.Call(err)
	} else {
		t.Unit.SetState(res)
	}
}

func (t *Thunk[T, D]) call(v T) (res D, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = newPanicError(r)
		}
	}()
	return t.fn(v)
}

func (t *Thunk[T, D]) setAny(v any) {
	t.SetState(cast[T](v))
}
