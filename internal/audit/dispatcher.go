package audit

import (
	"context"

	"github.com/MrEthical07/goPortalAuth/internal/queue"
)

// Config controls dispatcher buffering behavior. DropIfFull trades audit
// completeness for never stalling a login, recovery, or registration flow.
type Config struct {
	Enabled    bool
	BufferSize int
	DropIfFull bool
}

// Dispatcher forwards audit events to a sink from a dedicated goroutine so
// the flows never wait on sink latency. Close drains whatever is buffered.
type Dispatcher struct {
	dropIfFull bool
	sink       Sink
	events     *queue.Queue[Event]
}

// NewDispatcher returns nil when auditing is disabled; a nil Dispatcher
// swallows every Emit. A nil sink falls back to [NoOpSink].
func NewDispatcher(cfg Config, sink Sink) *Dispatcher {
	if !cfg.Enabled {
		return nil
	}
	if sink == nil {
		sink = NoOpSink{}
	}

	d := &Dispatcher{
		dropIfFull: cfg.DropIfFull,
		sink:       sink,
	}
	d.events = queue.New(cfg.BufferSize, func(event Event) {
		d.sink.Emit(context.Background(), event)
	})

	return d
}

// Emit hands event to the dispatcher goroutine. With DropIfFull set a full
// buffer discards the event and counts it; otherwise Emit blocks until the
// event is buffered, ctx is cancelled, or the dispatcher closes.
func (d *Dispatcher) Emit(ctx context.Context, event Event) {
	if d == nil {
		return
	}

	if d.dropIfFull {
		d.events.TryPush(event)
		return
	}

	var cancel <-chan struct{}
	if ctx != nil {
		cancel = ctx.Done()
	}
	d.events.Push(event, cancel)
}

// Close drains buffered events through the sink and stops the dispatcher
// goroutine. Emit calls after Close are no-ops.
func (d *Dispatcher) Close() {
	if d == nil {
		return
	}
	d.events.Close()
}

// Dropped reports how many events were discarded because the buffer was full.
func (d *Dispatcher) Dropped() uint64 {
	if d == nil {
		return 0
	}
	return d.events.Dropped()
}
