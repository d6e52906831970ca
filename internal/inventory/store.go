package inventory

// Order records how a store's sequence is currently arranged.
//
// Every mutating operation updates the tag:
//   - Generate and Shuffle leave the store Unordered
//   - EnsureSortedByID leaves it ByID
//   - QuicksortByValue leaves it ByValue
type Order int

const (
	// Unordered means no ordering guarantee holds.
	Unordered Order = iota

	// ByID means the sequence is ascending by item ID.
	ByID

	// ByValue means the sequence is ascending by item value.
	ByValue
)

// String returns the tag name for logging.
func (o Order) String() string {
	switch o {
	case ByID:
		return "by_id"
	case ByValue:
		return "by_value"
	default:
		return "unordered"
	}
}

// Store is an ordered, mutable sequence of Items.
//
// After generation the sequence only ever gets reordered in place; no
// item is added or removed. All IDs are pairwise distinct within one
// generation.
//
// Store is not safe for concurrent use. The demo driver owns its store
// exclusively for the duration of a run.
type Store struct {
	items []Item
	order Order
}

// NewStore wraps the given items in a store with no ordering
// guarantee. The slice is owned by the store afterwards.
func NewStore(items []Item) *Store {
	return &Store{items: items, order: Unordered}
}

// Len returns the number of items.
func (s *Store) Len() int {
	return len(s.items)
}

// Order returns the current ordering tag.
func (s *Store) Order() Order {
	return s.order
}

// At returns the item at position i in current order.
func (s *Store) At(i int) Item {
	return s.items[i]
}

// Items returns a copy of the sequence in current order.
// The copy keeps callers from bypassing the ordering tag.
func (s *Store) Items() []Item {
	out := make([]Item, len(s.items))
	copy(out, s.items)
	return out
}

func (s *Store) swap(i, j int) {
	s.items[i], s.items[j] = s.items[j], s.items[i]
}
