package inventory

import (
	"cmp"
	"slices"
)

// LinearSearchByName scans the sequence in current order and returns
// the first item whose name equals name. Read-only; no precondition on
// ordering. Returns ErrNotFound when no item matches.
func (s *Store) LinearSearchByName(name string) (Item, error) {
	for _, it := range s.items {
		if it.Name == name {
			return it, nil
		}
	}
	return Item{}, ErrNotFound
}

// EnsureSortedByID makes the sequence ascending by ID.
//
// No-op when the store is already ByID, so repeated calls are cheap
// and idempotent. Binary search calls this internally; callers never
// have to.
func (s *Store) EnsureSortedByID() {
	if s.order == ByID {
		return
	}
	slices.SortFunc(s.items, func(a, b Item) int {
		return cmp.Compare(a.ID, b.ID)
	})
	s.order = ByID
}

// BinarySearchByID returns the unique item with the given ID, or
// ErrNotFound if no item carries it. The ID-sort precondition is
// enforced internally via EnsureSortedByID, so the call is correct
// regardless of prior order.
func (s *Store) BinarySearchByID(id int) (Item, error) {
	s.EnsureSortedByID()

	left, right := 0, len(s.items)-1
	for left <= right {
		mid := left + (right-left)/2
		switch {
		case s.items[mid].ID < id:
			left = mid + 1
		case s.items[mid].ID > id:
			right = mid - 1
		default:
			return s.items[mid], nil
		}
	}
	return Item{}, ErrNotFound
}

// Mismatch records a failed self-resolution discovered by Validate.
type Mismatch struct {
	// Want is the item whose ID was searched for.
	Want Item

	// Got is the item binary search returned, if any.
	Got Item

	// Err is set when the search returned no item at all.
	Err error
}

// Validate binary-searches every item's own ID and checks that the
// search resolves to that item. A correct store yields no mismatches.
//
// Mismatches are soft defects: the caller decides how to report them,
// and the run continues either way.
func (s *Store) Validate() []Mismatch {
	// Snapshot first: BinarySearchByID may reorder the sequence on its
	// first call, and the check must cover every item exactly once.
	snapshot := s.Items()

	var mismatches []Mismatch
	for _, want := range snapshot {
		got, err := s.BinarySearchByID(want.ID)
		if err != nil {
			mismatches = append(mismatches, Mismatch{Want: want, Err: err})
			continue
		}
		if got.ID != want.ID {
			mismatches = append(mismatches, Mismatch{Want: want, Got: got})
		}
	}
	return mismatches
}
