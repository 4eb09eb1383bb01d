package reactive

import (
	"sync"
	"sync/atomic"
)

// Memo is a cached derivation that tracks its dependencies automatically.
// When any dependency changes the memo is invalidated and recomputes on the
// next read.
//
// Memos are lazy: nothing runs until Get or Peek. Between input changes,
// every consumer observes the same cached value and the computation runs at
// most once, which is what lets several chart views share one expensive
// derivation.
//
// Memos can themselves be read inside other memos, forming chains.
type Memo[T any] struct {
	node node

	// compute produces the memo's value.
	compute func() T

	// value is the cached result; valueMu protects it.
	value   T
	valueMu sync.RWMutex

	// valid reports whether the cached value is current.
	valid atomic.Bool

	// runs counts completed computations. Exposed for tests and metrics.
	runs atomic.Uint64

	// sources are the nodes this memo currently depends on.
	sources   []*node
	sourcesMu sync.Mutex

	// computing guards against self-referential computations.
	computing atomic.Bool
}

// NewMemo creates a memo over compute. The computation runs lazily on the
// first Get.
func NewMemo[T any](compute func() T) *Memo[T] {
	return &Memo[T]{
		node:    node{id: nextID()},
		compute: compute,
	}
}

// Get returns the memo's value, recomputing if a dependency changed since
// the last run, and subscribes the current listener.
func (m *Memo[T]) Get() T {
	m.node.track()

	if !m.valid.Load() {
		m.recompute()
	}

	m.valueMu.RLock()
	value := m.value
	m.valueMu.RUnlock()
	return value
}

// Peek returns the memo's value without subscribing. It still recomputes if
// the cached value is stale.
func (m *Memo[T]) Peek() T {
	if !m.valid.Load() {
		m.recompute()
	}
	m.valueMu.RLock()
	value := m.value
	m.valueMu.RUnlock()
	return value
}

// Computations reports how many times the computation has run. Two reads
// with no intervening dependency write observe the same count.
func (m *Memo[T]) Computations() uint64 {
	return m.runs.Load()
}

// MarkDirty invalidates the cache and propagates to subscribers.
// Implements Listener. Marking is idempotent: a burst of dependency writes
// between reads produces a single invalidation wave.
func (m *Memo[T]) MarkDirty() {
	if m.valid.CompareAndSwap(true, false) {
		m.node.notify()
	}
}

// ID returns the unique identifier for this memo. Implements Listener.
func (m *Memo[T]) ID() uint64 {
	return m.node.id
}

// addSource records a dependency for resubscription. Implements tracker.
func (m *Memo[T]) addSource(src *node) {
	m.sourcesMu.Lock()
	defer m.sourcesMu.Unlock()

	for _, s := range m.sources {
		if s == src {
			return
		}
	}
	m.sources = append(m.sources, src)
}

// recompute runs the computation under tracking and stores the result.
func (m *Memo[T]) recompute() {
	if m.computing.Swap(true) {
		// Circular dependency; keep the stale value rather than recurse.
		return
	}
	defer m.computing.Store(false)

	// Dependencies can differ between runs (branches), so unsubscribe
	// from the previous set and re-track from scratch.
	m.sourcesMu.Lock()
	for _, src := range m.sources {
		src.unsubscribe(m)
	}
	m.sources = m.sources[:0]
	m.sourcesMu.Unlock()

	old := swapListener(m)
	next := m.compute()
	swapListener(old)

	m.valueMu.Lock()
	m.value = next
	m.valueMu.Unlock()

	m.runs.Add(1)
	m.valid.Store(true)
}

// Ensure Memo participates in dynamic source tracking.
var _ tracker = (*Memo[int])(nil)
