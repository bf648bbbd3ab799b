package queue

import (
	"sync"
	"testing"
)

func TestCloseDrainsInOrder(t *testing.T) {
	var mu sync.Mutex
	var got []int
	q := New(16, func(v int) {
		mu.Lock()
		got = append(got, v)
		mu.Unlock()
	})

	for i := 0; i < 10; i++ {
		if !q.TryPush(i) {
			t.Fatalf("TryPush(%d) reported full", i)
		}
	}
	q.Close()

	if len(got) != 10 {
		t.Fatalf("expected 10 consumed items, got %d", len(got))
	}
	for i, v := range got {
		if v != i {
			t.Fatalf("expected item %d at position %d, got %d", i, i, v)
		}
	}
}

func TestTryPushCountsDrops(t *testing.T) {
	started := make(chan struct{}, 4)
	gate := make(chan struct{})
	q := New(1, func(int) {
		started <- struct{}{}
		<-gate
	})

	q.TryPush(1)
	<-started // consumer holds item 1, buffer empty

	if !q.TryPush(2) {
		t.Fatal("expected item 2 to buffer")
	}
	if q.TryPush(3) {
		t.Fatal("expected item 3 to be dropped")
	}
	if q.Dropped() != 1 {
		t.Fatalf("expected 1 drop, got %d", q.Dropped())
	}

	close(gate)
	q.Close()
}

func TestPushHonorsCancel(t *testing.T) {
	started := make(chan struct{}, 4)
	gate := make(chan struct{})
	q := New(1, func(int) {
		started <- struct{}{}
		<-gate
	})

	q.TryPush(1)
	<-started
	q.TryPush(2) // buffer now full

	cancel := make(chan struct{})
	close(cancel)
	q.Push(3, cancel) // must return instead of blocking

	close(gate)
	q.Close()

	if q.Dropped() != 0 {
		t.Fatalf("cancelled Push must not count as a drop, got %d", q.Dropped())
	}
}

func TestPushAfterClose(t *testing.T) {
	var mu sync.Mutex
	count := 0
	q := New(1, func(int) {
		mu.Lock()
		count++
		mu.Unlock()
	})
	q.Close()
	q.Close() // idempotent

	if q.TryPush(1) {
		t.Fatal("expected TryPush to refuse after Close")
	}
	q.Push(2, nil)

	if count != 0 {
		t.Fatalf("expected nothing consumed after Close, got %d", count)
	}
}
