package reactive

// Listener is anything that can be notified when a dependency changes.
// Memos implement it to invalidate their cache; view schedulers implement
// it to mark a chart for redraw.
type Listener interface {
	// MarkDirty notifies the listener that one of its dependencies changed.
	MarkDirty()

	// ID returns a unique identifier for this listener.
	// Used for deduplication during batch processing.
	ID() uint64
}
