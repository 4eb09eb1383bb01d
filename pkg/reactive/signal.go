package reactive

import (
	"reflect"
	"sync"
)

// node provides type-erased subscriber management. It is embedded in
// Signal[T] and Memo[T] to share subscription logic.
type node struct {
	id uint64

	// subs are the listeners subscribed to this node.
	subs []Listener

	// subMu protects subs.
	subMu sync.RWMutex
}

// subscribe adds a listener, deduplicating by listener ID.
func (n *node) subscribe(l Listener) {
	if l == nil {
		return
	}

	n.subMu.Lock()
	defer n.subMu.Unlock()

	lid := l.ID()
	for _, existing := range n.subs {
		if existing.ID() == lid {
			return
		}
	}
	n.subs = append(n.subs, l)
}

// unsubscribe removes a listener. Order of subs is not significant.
func (n *node) unsubscribe(l Listener) {
	if l == nil {
		return
	}

	n.subMu.Lock()
	defer n.subMu.Unlock()

	lid := l.ID()
	for i, existing := range n.subs {
		if existing.ID() == lid {
			n.subs[i] = n.subs[len(n.subs)-1]
			n.subs = n.subs[:len(n.subs)-1]
			return
		}
	}
}

// notify marks all subscribers dirty. Subscribers are copied before
// notification so no lock is held during MarkDirty. Inside a batch the
// notifications queue until the outermost batch completes.
func (n *node) notify() {
	n.subMu.RLock()
	subs := make([]Listener, len(n.subs))
	copy(subs, n.subs)
	n.subMu.RUnlock()

	if batchDepth() > 0 {
		for _, sub := range subs {
			queuePending(sub)
		}
		return
	}
	for _, sub := range subs {
		sub.MarkDirty()
	}
}

// track subscribes the current listener, if any, and records this node as
// one of its sources when the listener resubscribes dynamically (memos).
func (n *node) track() {
	l := currentListener()
	if l == nil {
		return
	}
	n.subscribe(l)
	if t, ok := l.(tracker); ok {
		t.addSource(n)
	}
}

// tracker is implemented by listeners that record their sources so they can
// resubscribe from scratch on each run (memos).
type tracker interface {
	Listener
	addSource(*node)
}

// Signal is a reactive value container. Reading a Signal during a tracked
// context subscribes the current listener to changes.
type Signal[T any] struct {
	node node

	// value is the current value; mu protects it.
	value T
	mu    sync.RWMutex

	// equal decides whether a write changed the value.
	// nil means default equality.
	equal func(T, T) bool
}

// NewSignal creates a signal holding initial.
func NewSignal[T any](initial T) *Signal[T] {
	return &Signal[T]{
		node:  node{id: nextID()},
		value: initial,
	}
}

// Get returns the current value and subscribes the current listener.
func (s *Signal[T]) Get() T {
	s.mu.RLock()
	value := s.value
	s.mu.RUnlock()

	// Track after releasing the value lock to avoid lock-order inversion
	// with subscriber notification.
	s.node.track()

	return value
}

// Peek returns the current value without subscribing.
func (s *Signal[T]) Peek() T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.value
}

// Set stores value and notifies subscribers if it differs from the current
// value under the signal's equality function.
func (s *Signal[T]) Set(value T) {
	s.mu.Lock()
	changed := !s.equals(s.value, value)
	if changed {
		s.value = value
	}
	s.mu.Unlock()

	if changed {
		s.node.notify()
	}
}

// Update atomically transforms the value with fn and notifies on change.
func (s *Signal[T]) Update(fn func(T) T) {
	s.mu.Lock()
	next := fn(s.value)
	changed := !s.equals(s.value, next)
	if changed {
		s.value = next
	}
	s.mu.Unlock()

	if changed {
		s.node.notify()
	}
}

// WithEquals configures a custom equality function and returns the signal.
func (s *Signal[T]) WithEquals(fn func(T, T) bool) *Signal[T] {
	s.equal = fn
	return s
}

// ID returns the unique identifier for this signal.
func (s *Signal[T]) ID() uint64 {
	return s.node.id
}

func (s *Signal[T]) equals(a, b T) bool {
	if s.equal != nil {
		return s.equal(a, b)
	}
	return defaultEquals(a, b)
}

// defaultEquals uses == for the value kinds the models actually store and
// falls back to reflect.DeepEqual for composite results.
func defaultEquals[T any](a, b T) bool {
	switch av := any(a).(type) {
	case int:
		return av == any(b).(int)
	case int64:
		return av == any(b).(int64)
	case uint64:
		return av == any(b).(uint64)
	case float64:
		return av == any(b).(float64)
	case string:
		return av == any(b).(string)
	case bool:
		return av == any(b).(bool)
	default:
		return reflect.DeepEqual(a, b)
	}
}
