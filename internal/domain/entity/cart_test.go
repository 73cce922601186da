package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCartAddAccumulates(t *testing.T) {
	c := Cart{}
	for i := 0; i < 5; i++ {
		c.Add(3)
	}
	c.Add(7)

	assert.Equal(t, 5, c.Quantity(3))
	assert.Equal(t, 1, c.Quantity(7))
	assert.Equal(t, 6, c.TotalItems())
}

func TestCartRemoveDecrements(t *testing.T) {
	c := Cart{"3": 2}
	c.Remove(3)
	assert.Equal(t, 1, c.Quantity(3))
}

func TestCartRemoveLastDeletesEntry(t *testing.T) {
	c := Cart{"3": 1}
	c.Remove(3)

	_, present := c["3"]
	assert.False(t, present, "entry must be deleted, not kept at zero")
	assert.Equal(t, 0, c.Quantity(3))
}

func TestCartRemoveAbsentIsNoop(t *testing.T) {
	c := Cart{"3": 2}
	c.Remove(99)

	assert.Equal(t, Cart{"3": 2}, c)
}

func TestCartNeverHoldsNonPositiveQuantity(t *testing.T) {
	c := Cart{}
	c.Add(1)
	c.Remove(1)
	c.Remove(1)

	for k, q := range c {
		assert.Greaterf(t, q, 0, "key %s has non-positive quantity", k)
	}
	assert.Empty(t, c)
}

func TestCartProductIDs(t *testing.T) {
	c := Cart{"5": 1, "3": 2, "10": 4}
	assert.Equal(t, []int64{3, 5, 10}, c.ProductIDs())
}

func TestCartProductIDsSkipsMalformedKeys(t *testing.T) {
	c := Cart{"3": 1, "not-an-id": 2}
	assert.Equal(t, []int64{3}, c.ProductIDs())
}
