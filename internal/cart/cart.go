// Package cart models the shopper's session cart. Mutations are pure state
// transitions: quantities never go negative and zero-quantity entries are
// pruned immediately.
package cart

// Item is one product line in a cart.
type Item struct {
	ProductID int    `json:"product_id"`
	Name      string `json:"name"`
	Price     int    `json:"price"`
	Qty       int    `json:"qty"`
}

// Cart holds the items of one browser session. It is never persisted beyond
// the session store's TTL.
type Cart struct {
	Items []Item `json:"items"`
}

// Add merges the item into the cart, summing quantities for an existing
// product line. Non-positive quantities are treated as 1.
func (c *Cart) Add(item Item) {
	if item.Qty <= 0 {
		item.Qty = 1
	}
	for i, it := range c.Items {
		if it.ProductID == item.ProductID {
			c.Items[i].Qty += item.Qty
			return
		}
	}
	c.Items = append(c.Items, item)
}

// Increment raises the quantity of a product line by one. Unknown products
// are ignored.
func (c *Cart) Increment(productID int) {
	for i, it := range c.Items {
		if it.ProductID == productID {
			c.Items[i].Qty++
			return
		}
	}
}

// Decrement lowers the quantity of a product line by one; a line reaching
// zero is removed entirely.
func (c *Cart) Decrement(productID int) {
	for i, it := range c.Items {
		if it.ProductID == productID {
			c.Items[i].Qty--
			if c.Items[i].Qty <= 0 {
				c.Items = append(c.Items[:i], c.Items[i+1:]...)
			}
			return
		}
	}
}

// Remove drops a product line regardless of quantity.
func (c *Cart) Remove(productID int) {
	for i, it := range c.Items {
		if it.ProductID == productID {
			c.Items = append(c.Items[:i], c.Items[i+1:]...)
			return
		}
	}
}

// Clear empties the cart.
func (c *Cart) Clear() {
	c.Items = nil
}

// Total is the checkout sum in the catalog's currency unit.
func (c *Cart) Total() int {
	total := 0
	for _, it := range c.Items {
		total += it.Price * it.Qty
	}
	return total
}

// Count is the total number of units across all lines.
func (c *Cart) Count() int {
	count := 0
	for _, it := range c.Items {
		count += it.Qty
	}
	return count
}
