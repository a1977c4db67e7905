package cart

import "testing"

func TestAddMergesExistingLine(t *testing.T) {
	var c Cart
	c.Add(Item{ProductID: 1, Name: "Gula", Price: 15000, Qty: 2})
	c.Add(Item{ProductID: 1, Name: "Gula", Price: 15000, Qty: 3})

	if len(c.Items) != 1 {
		t.Fatalf("expected 1 line, got %d", len(c.Items))
	}
	if c.Items[0].Qty != 5 {
		t.Errorf("expected qty 5, got %d", c.Items[0].Qty)
	}
}

func TestAddTreatsNonPositiveQtyAsOne(t *testing.T) {
	var c Cart
	c.Add(Item{ProductID: 1, Qty: 0})
	c.Add(Item{ProductID: 2, Qty: -4})

	for _, it := range c.Items {
		if it.Qty != 1 {
			t.Errorf("product %d: expected qty 1, got %d", it.ProductID, it.Qty)
		}
	}
}

func TestDecrementPrunesLineAtZero(t *testing.T) {
	var c Cart
	c.Add(Item{ProductID: 1, Qty: 1})
	c.Decrement(1)

	if len(c.Items) != 0 {
		t.Errorf("expected empty cart, got %+v", c.Items)
	}

	// Decrementing a missing line stays a no-op, never a negative quantity.
	c.Decrement(1)
	if len(c.Items) != 0 {
		t.Errorf("expected empty cart, got %+v", c.Items)
	}
}

func TestIncrementUnknownProductIsNoOp(t *testing.T) {
	var c Cart
	c.Increment(99)
	if len(c.Items) != 0 {
		t.Errorf("expected empty cart, got %+v", c.Items)
	}
}

func TestRemoveDropsWholeLine(t *testing.T) {
	var c Cart
	c.Add(Item{ProductID: 1, Qty: 7})
	c.Add(Item{ProductID: 2, Qty: 1})
	c.Remove(1)

	if len(c.Items) != 1 || c.Items[0].ProductID != 2 {
		t.Errorf("unexpected cart after remove: %+v", c.Items)
	}
}

func TestTotalAndCount(t *testing.T) {
	var c Cart
	c.Add(Item{ProductID: 1, Price: 5000, Qty: 2})
	c.Add(Item{ProductID: 2, Price: 12000, Qty: 1})

	if got := c.Total(); got != 22000 {
		t.Errorf("Total = %d, want 22000", got)
	}
	if got := c.Count(); got != 3 {
		t.Errorf("Count = %d, want 3", got)
	}

	c.Clear()
	if c.Total() != 0 || c.Count() != 0 {
		t.Error("cleared cart should total zero")
	}
}
