package notify

import (
	"context"

	"github.com/MrEthical07/goPortalAuth/internal/queue"
	"github.com/google/uuid"
)

// CompletionFunc observes the outcome of one asynchronous dispatch. It runs
// on the dispatcher goroutine and must not block.
type CompletionFunc func(msg Message, err error)

// AsyncDispatcher decouples flows from delivery: Dispatch enqueues and
// returns, a single goroutine drains the queue through the wrapped
// [Dispatcher], and completions are observed via callback only.
type AsyncDispatcher struct {
	sink     Dispatcher
	onDone   CompletionFunc
	messages *queue.Queue[Message]
}

// NewAsyncDispatcher wraps sink with a buffered asynchronous queue. A nil
// sink falls back to [NoOpDispatcher]; onDone may be nil.
func NewAsyncDispatcher(sink Dispatcher, buffer int, onDone CompletionFunc) *AsyncDispatcher {
	if sink == nil {
		sink = NoOpDispatcher{}
	}

	d := &AsyncDispatcher{
		sink:   sink,
		onDone: onDone,
	}
	d.messages = queue.New(buffer, d.deliver)

	return d
}

func (d *AsyncDispatcher) deliver(msg Message) {
	err := d.sink.Send(context.Background(), msg)
	if d.onDone != nil {
		d.onDone(msg, err)
	}
}

// Dispatch enqueues msg and returns immediately. When the queue is full the
// message is dropped and counted; delivery is best-effort. An empty msg.ID
// is assigned a fresh UUID, returned for correlation; a dropped or
// post-Close dispatch returns "".
func (d *AsyncDispatcher) Dispatch(msg Message) string {
	if d == nil {
		return ""
	}
	if msg.ID == "" {
		msg.ID = uuid.NewString()
	}

	if !d.messages.TryPush(msg) {
		return ""
	}
	return msg.ID
}

// Dropped reports how many messages were discarded because the queue was full.
func (d *AsyncDispatcher) Dropped() uint64 {
	if d == nil {
		return 0
	}
	return d.messages.Dropped()
}

// Close drains queued messages and stops the dispatcher goroutine. Dispatch
// calls after Close are no-ops.
func (d *AsyncDispatcher) Close() {
	if d == nil {
		return
	}
	d.messages.Close()
}
