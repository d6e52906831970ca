package inventory

import "fmt"

// Bounds for generated item IDs. The upper bound is exclusive, giving
// an ID space of IDMax-IDMin distinct values.
const (
	IDMin = 1000
	IDMax = 9999
)

// Bounds for generated item values, inclusive.
const (
	ValueMin = 1
	ValueMax = 100
)

// Item is a single inventory record.
//
// Fields are fixed at generation time. Sorting and shuffling reorder
// items within the store but never rewrite an item's fields.
type Item struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Value int    `json:"value"`
}

// String formats the item the way the demo transcript prints it.
func (it Item) String() string {
	return fmt.Sprintf("%s (ID:%d, Value:%d)", it.Name, it.ID, it.Value)
}
