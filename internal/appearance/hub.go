// Package appearance provides OS dark-mode signal sources for theme.Signal.
package appearance

import "sync"

type subscription struct {
	id uint64
	fn func(bool)
}

// hub fans a boolean out to subscribers in subscription order and only
// when the value actually changes.
type hub struct {
	mu     sync.Mutex
	nextID uint64
	subs   []subscription
	last   bool
	primed bool
}

// add registers fn and reports whether it is the only subscriber.
func (h *hub) add(fn func(bool)) (uint64, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.nextID++
	h.subs = append(h.subs, subscription{id: h.nextID, fn: fn})
	return h.nextID, len(h.subs) == 1
}

// remove drops id and reports whether no subscribers remain.
func (h *hub) remove(id uint64) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	for i, sub := range h.subs {
		if sub.id == id {
			h.subs = append(h.subs[:i], h.subs[i+1:]...)
			break
		}
	}
	return len(h.subs) == 0
}

func (h *hub) size() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.subs)
}

// prime records value as the baseline without notifying.
func (h *hub) prime(value bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.last = value
	h.primed = true
}

// publish notifies subscribers when value differs from the last one seen.
// Callbacks run without the lock held.
func (h *hub) publish(value bool) bool {
	h.mu.Lock()
	if h.primed && h.last == value {
		h.mu.Unlock()
		return false
	}
	h.last = value
	h.primed = true
	fns := make([]func(bool), len(h.subs))
	for i, sub := range h.subs {
		fns[i] = sub.fn
	}
	h.mu.Unlock()

	for _, fn := range fns {
		fn(value)
	}
	return true
}
