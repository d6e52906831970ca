// Package inventory implements the demo's data model and algorithms:
// item generation with unique random IDs, linear search by name,
// lazy ID ordering with binary search, Fisher-Yates shuffling, and an
// in-place quicksort by value.
//
// ARCHITECTURE:
//
// Explicit Order State:
// The Store tracks how its sequence is currently arranged via an Order
// tag (Unordered, ByID, ByValue). Every mutating operation updates the
// tag, so the lazy-sort contract behind binary search is an explicit,
// testable state machine rather than a hidden dirty flag.
//
// Injected Randomness:
// Generation and shuffling take a *rand.Rand supplied by the caller.
// The same seed reproduces the same store and the same permutation,
// which keeps the demo transcript and the tests deterministic.
//
// Single Owner:
// A Store is not safe for concurrent use. The demo driver owns its
// store exclusively for the duration of a run; every operation runs to
// completion before the next begins.
package inventory
