package domain

import (
	"encoding/json"
	"math/rand"
	"testing"
)

func TestCartMutations(t *testing.T) {
	c := NewCart()

	c.Add("p1")
	c.Add("p1")
	c.Add("p2")
	if c.Quantity("p1") != 2 || c.Quantity("p2") != 1 {
		t.Fatalf("unexpected quantities: %v", c.Items())
	}
	if c.Count() != 3 {
		t.Fatalf("expected count 3, got %d", c.Count())
	}

	c.ChangeQuantity("p1", -1)
	if c.Quantity("p1") != 1 {
		t.Fatalf("expected p1=1, got %d", c.Quantity("p1"))
	}

	c.ChangeQuantity("p1", -5)
	if c.Quantity("p1") != 0 || c.Len() != 1 {
		t.Fatalf("expected p1 removed, got %v", c.Items())
	}

	c.ChangeQuantity("p3", 0)
	if c.Len() != 1 {
		t.Fatalf("zero delta on absent id must not create an entry: %v", c.Items())
	}

	c.Remove("p2")
	if !c.IsEmpty() {
		t.Fatalf("expected empty cart, got %v", c.Items())
	}
}

func TestZeroValueCartIsUsable(t *testing.T) {
	var c Cart
	c.Add("p1")
	if c.Quantity("p1") != 1 {
		t.Fatalf("expected p1=1, got %v", c.Items())
	}
}

func TestChangeQuantityByNegativeCurrentEqualsRemove(t *testing.T) {
	a := FromItems(map[string]int{"p1": 3, "p2": 2})
	b := FromItems(map[string]int{"p1": 3, "p2": 2})

	a.ChangeQuantity("p1", -a.Quantity("p1"))
	b.Remove("p1")

	if !a.Equal(b) {
		t.Fatalf("got %v and %v", a.Items(), b.Items())
	}
}

func TestRandomSequencesKeepQuantitiesPositive(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	ids := []string{"p1", "p2", "p3", "ghost"}

	for run := 0; run < 200; run++ {
		c := NewCart()
		for step := 0; step < 50; step++ {
			id := ids[rng.Intn(len(ids))]
			switch rng.Intn(3) {
			case 0:
				c.Add(id)
			case 1:
				c.Remove(id)
			case 2:
				c.ChangeQuantity(id, rng.Intn(7)-3)
			}
			for pid, qty := range c.Items() {
				if qty <= 0 {
					t.Fatalf("run %d step %d: %s has quantity %d", run, step, pid, qty)
				}
			}
		}
	}
}

func TestCartJSON(t *testing.T) {
	c := FromItems(map[string]int{"p1": 1, "p2": 2})

	data, err := json.Marshal(c)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(data) != `{"p1":1,"p2":2}` {
		t.Fatalf("unexpected layout %s", data)
	}

	var back Cart
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !back.Equal(c) {
		t.Fatalf("round trip mismatch: %v vs %v", back.Items(), c.Items())
	}

	empty, _ := json.Marshal(Cart{})
	if string(empty) != "{}" {
		t.Fatalf("zero cart should encode as {}, got %s", empty)
	}
}

func TestUnmarshalDropsNonPositive(t *testing.T) {
	var c Cart
	if err := json.Unmarshal([]byte(`{"p1":0,"p2":-4,"p3":2}`), &c); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if c.Len() != 1 || c.Quantity("p3") != 2 {
		t.Fatalf("unexpected cart %v", c.Items())
	}
}

func TestProductIDsSorted(t *testing.T) {
	c := FromItems(map[string]int{"p5": 1, "p1": 1, "p3": 1})
	got := c.ProductIDs()
	want := []string{"p1", "p3", "p5"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}
