package inventory

import (
	"fmt"
	"math/rand"
)

// retryFactor bounds the total number of random ID draws during one
// generation. The worst case (filling the entire ID space) needs on
// the order of space*ln(space) draws; 64x the space clears that with
// a wide margin while still terminating promptly if something is off
// with the random source.
const retryFactor = 64

// Generate produces a store of exactly n items.
//
// IDs are drawn uniformly from [IDMin, IDMax) and are pairwise
// distinct; collisions are retried under a fixed budget. Names are
// sequential ("Item_0" .. "Item_{n-1}") and values are uniform in
// [ValueMin, ValueMax]. The resulting store is Unordered.
//
// Returns a GenError with code INVALID_COUNT when n is negative or
// exceeds the ID space, and ID_SPACE_EXHAUSTED if the retry budget
// runs out. The generator never loops indefinitely.
func Generate(rng *rand.Rand, n int) (*Store, error) {
	space := IDMax - IDMin
	if n < 0 {
		return nil, newInvalidCountError(n, "item count must be non-negative")
	}
	if n > space {
		return nil, newInvalidCountError(n,
			fmt.Sprintf("item count exceeds ID space of %d", space))
	}

	items := make([]Item, 0, n)
	seen := make(map[int]struct{}, n)
	budget := retryFactor * space

	for i := 0; i < n; i++ {
		id := -1
		for budget > 0 {
			budget--
			candidate := IDMin + rng.Intn(space)
			if _, dup := seen[candidate]; !dup {
				id = candidate
				break
			}
		}
		if id < 0 {
			return nil, newExhaustedError(n)
		}
		seen[id] = struct{}{}

		items = append(items, Item{
			ID:    id,
			Name:  fmt.Sprintf("Item_%d", i),
			Value: ValueMin + rng.Intn(ValueMax-ValueMin+1),
		})
	}

	return NewStore(items), nil
}
