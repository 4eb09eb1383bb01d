// Package reactive provides the dependency-tracked computation core for
// ecolab's interactive models.
//
// The design follows fine-grained reactivity: reading a signal during a
// tracked context (a memo computation or an explicit WithListener block)
// automatically subscribes the current listener to that signal's changes.
//
// # Core Types
//
// Signal[T] is a reactive value container:
//
//	income := NewSignal(600.0)
//	value := income.Get()  // Read (subscribes current listener)
//	income.Set(650.0)      // Write (notifies subscribers on change)
//
// Memo[T] is a lazy, cached derivation:
//
//	eq := NewMemo(func() Equilibrium { return solve(income.Get()) })
//	eq.Get()  // Computes once; cached until a dependency changes
//
// Memos are the unit of sharing: several chart views reading the same memo
// between input changes observe one cached value and trigger at most one
// computation.
//
// # Batching
//
// Batch groups several signal writes into a single notification phase:
//
//	Batch(func() {
//	    m.Set(600)
//	    p.Set(1.2)
//	})  // Dependents are marked dirty once
//
// # Thread Safety
//
// All primitives are safe for concurrent readers overlapping with a writer.
// The tracking context is per-goroutine; computations that spawn goroutines
// must not rely on implicit tracking across the boundary.
package reactive
