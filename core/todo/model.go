package todo

import "github.com/google/uuid"

// Item represents a single to-do entry. Externally an item is addressed only
// by its position within its owning list; the ID is a stable opaque
// identifier assigned when the item enters the store, kept so that consumers
// can track an entry across positional reshuffles.
type Item struct {
	ID          uuid.UUID `json:"id"`
	Description string    `json:"description"`
	Done        bool      `json:"done"`
}

// List represents a named collection of items. Names are not required to be
// unique; a list is addressed only by its position in the store, which shifts
// when a preceding list is deleted. The ID plays the same stable-identifier
// role as Item.ID.
type List struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Items []Item    `json:"items"`
}

// clone returns a deep copy of the list. Item is a pure value type, so
// copying the backing slice is enough to sever all aliasing with the store.
func (l List) clone() List {
	items := make([]Item, len(l.Items))
	copy(items, l.Items)
	l.Items = items
	return l
}
