// Package rotator publishes fresh fractal parameters from a background
// goroutine and decides when the render loop adopts them.
package rotator

import (
	"sync"
	"sync/atomic"
)

// Mailbox is a single-slot handoff. Push overwrites any unconsumed value;
// Take consumes the value if one is ready.
type Mailbox[T any] struct {
	mu    sync.Mutex
	value T
	ready atomic.Bool

	pushes     atomic.Int64
	overwrites atomic.Int64
}

// Push stores v, replacing a pending value if the consumer has not taken it.
func (m *Mailbox[T]) Push(v T) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.ready.Load() {
		m.overwrites.Add(1)
	}
	m.value = v
	m.ready.Store(true)
	m.pushes.Add(1)
}

// Ready reports whether a value is waiting. It never blocks.
func (m *Mailbox[T]) Ready() bool {
	return m.ready.Load()
}

// Take returns the pending value and clears the slot.
func (m *Mailbox[T]) Take() (T, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var zero T
	if !m.ready.Load() {
		return zero, false
	}
	v := m.value
	m.value = zero
	m.ready.Store(false)
	return v, true
}

// Pushes returns the number of values ever pushed.
func (m *Mailbox[T]) Pushes() int64 {
	return m.pushes.Load()
}

// Overwrites returns how many pushed values were replaced before being taken.
func (m *Mailbox[T]) Overwrites() int64 {
	return m.overwrites.Load()
}
