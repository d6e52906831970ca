package inventory

import "math/rand"

// Shuffle permutes the sequence uniformly at random (Fisher-Yates:
// iterate from the last index down to 1, swap with a uniform draw in
// [0, i]). ID ordering is destroyed, so the store becomes Unordered.
func (s *Store) Shuffle(rng *rand.Rand) {
	for i := len(s.items) - 1; i >= 1; i-- {
		j := rng.Intn(i + 1)
		s.swap(i, j)
	}
	s.order = Unordered
}

// QuicksortByValue sorts the sequence ascending by value in place
// using recursive quicksort with Lomuto partitioning.
//
// Order among equal values is not guaranteed: Lomuto groups equals
// before the pivot without preserving their relative order across
// partitions. ID ordering is destroyed, so the tag moves to ByValue.
func (s *Store) QuicksortByValue() {
	if len(s.items) > 1 {
		s.quicksort(0, len(s.items)-1)
	}
	s.order = ByValue
}

func (s *Store) quicksort(low, high int) {
	if low >= high {
		return
	}
	p := s.partition(low, high)
	s.quicksort(low, p-1)
	s.quicksort(p+1, high)
}

// partition applies the Lomuto scheme on [low, high]: the last element
// is the pivot, i trails the region of values <= pivot, and the pivot
// lands at i+1.
func (s *Store) partition(low, high int) int {
	pivot := s.items[high].Value
	i := low - 1
	for j := low; j < high; j++ {
		if s.items[j].Value <= pivot {
			i++
			s.swap(i, j)
		}
	}
	s.swap(i+1, high)
	return i + 1
}
