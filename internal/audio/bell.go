// Package audio turns bounce notifications into sound.
//
// A terminal has one sound: the bell. Bell rings it from a background
// goroutine so the frame loop never waits on the terminal.
package audio

import (
	"io"
	"sync"
)

// DefaultBuffer is how many pending rings a Bell queues before dropping.
const DefaultBuffer = 4

var bel = []byte{'\a'}

// Bell writes BEL to a terminal for every bounce.
type Bell struct {
	w    io.Writer
	ch   chan struct{}
	done chan struct{}

	mu     sync.Mutex
	closed bool
}

// NewBell starts a bell writing to w. buffer bounds the queue of pending
// rings; values below 1 use DefaultBuffer.
func NewBell(w io.Writer, buffer int) *Bell {
	if buffer < 1 {
		buffer = DefaultBuffer
	}
	b := &Bell{
		w:    w,
		ch:   make(chan struct{}, buffer),
		done: make(chan struct{}),
	}
	go b.run()
	return b
}

func (b *Bell) run() {
	defer close(b.done)
	for range b.ch {
		b.w.Write(bel) //nolint:errcheck // best-effort
	}
}

// PlayBounce queues a ring. It never blocks: when the queue is full the
// ring is dropped, and rings after Close are ignored.
func (b *Bell) PlayBounce() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return
	}
	select {
	case b.ch <- struct{}{}:
	default:
	}
}

// Close stops the worker after it drains queued rings.
func (b *Bell) Close() error {
	b.mu.Lock()
	if !b.closed {
		b.closed = true
		close(b.ch)
	}
	b.mu.Unlock()
	<-b.done
	return nil
}

// Nop is a silent sink.
type Nop struct{}

// PlayBounce does nothing.
func (Nop) PlayBounce() {}
