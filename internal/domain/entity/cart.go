package entity

import (
	"sort"
	"strconv"
)

// Cart maps a product id (in string form, as it travels through the
// session) to a desired quantity. Quantities are always >= 1; an entry
// that would reach zero is removed instead of kept.
type Cart map[string]int

// Add increments the quantity for a product, inserting it at 1 when absent.
func (c Cart) Add(productID int64) {
	key := strconv.FormatInt(productID, 10)
	c[key]++
}

// Remove decrements the quantity for a product and deletes the entry
// when it reaches zero. Removing an absent product is a no-op.
func (c Cart) Remove(productID int64) {
	key := strconv.FormatInt(productID, 10)
	q, ok := c[key]
	if !ok {
		return
	}
	if q > 1 {
		c[key] = q - 1
		return
	}
	delete(c, key)
}

// Quantity returns the current quantity for a product, 0 when absent.
func (c Cart) Quantity(productID int64) int {
	return c[strconv.FormatInt(productID, 10)]
}

// ProductIDs returns the distinct product ids present in the cart,
// sorted ascending. Keys that are not valid ids are skipped.
func (c Cart) ProductIDs() []int64 {
	ids := make([]int64, 0, len(c))
	for k := range c {
		id, err := strconv.ParseInt(k, 10, 64)
		if err != nil {
			continue
		}
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// TotalItems sums the quantities across all entries.
func (c Cart) TotalItems() int {
	total := 0
	for _, q := range c {
		total += q
	}
	return total
}
