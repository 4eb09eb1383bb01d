package reactive

import (
	"runtime"
	"sync"
)

// trackingContext holds the reactive state for one goroutine. Keeping the
// context per goroutine lets concurrent sessions compute memos in parallel
// without observing each other's listeners.
type trackingContext struct {
	// listener is what is currently tracking dependencies.
	// nil means reads do not create subscriptions.
	listener Listener

	// batchDepth tracks nested Batch() calls. When > 0, change
	// notifications queue instead of firing immediately.
	batchDepth int

	// pending accumulates listeners to notify when the outermost
	// batch completes. Deduplicated by ID before notification.
	pending []Listener
}

// trackingContexts stores per-goroutine tracking contexts.
var trackingContexts sync.Map

// goroutineID extracts the current goroutine's ID from the runtime stack.
// Implementation detail; never exposed.
func goroutineID() uint64 {
	var buf [64]byte
	n := runtime.Stack(buf[:], false)

	// The stack header is "goroutine <id> ...".
	var id uint64
	for i := len("goroutine "); i < n; i++ {
		if buf[i] == ' ' {
			break
		}
		id = id*10 + uint64(buf[i]-'0')
	}
	return id
}

// currentContext returns the tracking context for the current goroutine,
// creating one on first use.
func currentContext() *trackingContext {
	gid := goroutineID()
	if ctx, ok := trackingContexts.Load(gid); ok {
		return ctx.(*trackingContext)
	}
	ctx := &trackingContext{}
	trackingContexts.Store(gid, ctx)
	return ctx
}

// ReleaseContext discards the current goroutine's tracking context.
// Goroutine IDs are never reused, so a program that reads reactive values
// from short-lived goroutines must call this (deferred) before each
// goroutine exits, or the registry grows without bound.
func ReleaseContext() {
	trackingContexts.Delete(goroutineID())
}

// currentListener returns the listener being tracked, or nil.
func currentListener() Listener {
	return currentContext().listener
}

// swapListener installs l as the current listener and returns the previous
// one so it can be restored.
func swapListener(l Listener) Listener {
	ctx := currentContext()
	old := ctx.listener
	ctx.listener = l
	return old
}

// WithListener runs fn with l installed as the tracking listener. Every
// signal or memo read inside fn subscribes l.
func WithListener(l Listener, fn func()) {
	old := swapListener(l)
	defer swapListener(old)
	fn()
}

// Untracked runs fn without tracking signal reads as dependencies. For a
// single read, Peek is clearer.
func Untracked(fn func()) {
	old := swapListener(nil)
	defer swapListener(old)
	fn()
}

func batchDepth() int {
	return currentContext().batchDepth
}

func queuePending(l Listener) {
	ctx := currentContext()
	ctx.pending = append(ctx.pending, l)
}

func drainPending() []Listener {
	ctx := currentContext()
	pending := ctx.pending
	ctx.pending = nil
	return pending
}
