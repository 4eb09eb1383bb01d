package reactive

// Batch groups multiple signal writes into a single notification phase.
// Notifications collected inside the batch are deduplicated by listener ID
// and fired once when the outermost batch completes.
//
// Example:
//
//	Batch(func() {
//	    moneySupply.Set(650)
//	    priceLevel.Set(1.1)
//	})
//	// The equilibrium memo is marked dirty once.
func Batch(fn func()) {
	ctx := currentContext()
	ctx.batchDepth++

	defer func() {
		ctx.batchDepth--
		if ctx.batchDepth == 0 {
			flushPending()
		}
	}()

	fn()
}

// flushPending deduplicates and notifies all queued listeners.
func flushPending() {
	pending := drainPending()
	if len(pending) == 0 {
		return
	}

	seen := make(map[uint64]bool, len(pending))
	for _, l := range pending {
		if seen[l.ID()] {
			continue
		}
		seen[l.ID()] = true
		l.MarkDirty()
	}
}
