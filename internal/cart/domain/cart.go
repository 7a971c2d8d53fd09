package domain

import (
	"encoding/json"
	"sort"
)

// Cart maps product ids to quantities. No entry ever holds a quantity <= 0.
//
// It serializes as the bare mapping, e.g. {"p1":1,"p2":2}.
type Cart struct {
	items map[string]int
}

func NewCart() Cart {
	return Cart{items: map[string]int{}}
}

// FromItems builds a cart from a raw mapping, dropping non-positive entries.
func FromItems(items map[string]int) Cart {
	c := NewCart()
	for id, qty := range items {
		if qty > 0 {
			c.items[id] = qty
		}
	}
	return c
}

// Add increments the quantity for productID by one.
func (c *Cart) Add(productID string) {
	c.ChangeQuantity(productID, 1)
}

// Remove deletes the entry regardless of its quantity.
func (c *Cart) Remove(productID string) {
	delete(c.items, productID)
}

// ChangeQuantity adds delta to the current quantity. A result <= 0 removes the entry.
func (c *Cart) ChangeQuantity(productID string, delta int) {
	if c.items == nil {
		c.items = map[string]int{}
	}
	next := c.items[productID] + delta
	if next <= 0 {
		delete(c.items, productID)
		return
	}
	c.items[productID] = next
}

func (c Cart) Quantity(productID string) int {
	return c.items[productID]
}

// Count is the number of units in the cart.
func (c Cart) Count() int {
	n := 0
	for _, qty := range c.items {
		n += qty
	}
	return n
}

func (c Cart) Len() int {
	return len(c.items)
}

func (c Cart) IsEmpty() bool {
	return len(c.items) == 0
}

// ProductIDs returns the ids in the cart, sorted.
func (c Cart) ProductIDs() []string {
	ids := make([]string, 0, len(c.items))
	for id := range c.items {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Items returns a copy of the underlying mapping.
func (c Cart) Items() map[string]int {
	out := make(map[string]int, len(c.items))
	for id, qty := range c.items {
		out[id] = qty
	}
	return out
}

func (c Cart) Equal(other Cart) bool {
	if len(c.items) != len(other.items) {
		return false
	}
	for id, qty := range c.items {
		if other.items[id] != qty {
			return false
		}
	}
	return true
}

func (c Cart) MarshalJSON() ([]byte, error) {
	if c.items == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(c.items)
}

func (c *Cart) UnmarshalJSON(data []byte) error {
	var raw map[string]int
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*c = FromItems(raw)
	return nil
}
