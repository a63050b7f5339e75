package cart

import (
	"testing"

	"github.com/campuscanteen/canteen-api/models"
)

func menuItem(id uint, name string, price int) models.MenuItem {
	item := models.MenuItem{Name: name, Price: price}
	item.ID = id
	return item
}

func TestAddMergesQuantity(t *testing.T) {
	store := NewStore()
	tea := menuItem(1, "Tea", 15)

	store.Add(7, tea, 2)
	store.Add(7, tea, 3)

	cart := store.Get(7)
	if len(cart.Lines) != 1 {
		t.Fatalf("lines = %d, want 1", len(cart.Lines))
	}
	if cart.Lines[0].Qty != 5 {
		t.Errorf("qty = %d, want 5", cart.Lines[0].Qty)
	}
}

func TestTotalDerivation(t *testing.T) {
	store := NewStore()
	store.Add(7, menuItem(1, "Tea", 15), 2)
	store.Add(7, menuItem(2, "Samosa", 25), 3)

	cart := store.Get(7)
	if want := 15*2 + 25*3; cart.Total != want {
		t.Errorf("total = %d, want %d", cart.Total, want)
	}
}

func TestSetQty(t *testing.T) {
	store := NewStore()
	store.Add(7, menuItem(1, "Tea", 15), 2)

	if !store.SetQty(7, 1, 4) {
		t.Fatal("SetQty returned false for present item")
	}
	if got := store.Get(7).Lines[0].Qty; got != 4 {
		t.Errorf("qty = %d, want 4", got)
	}

	// Zero removes the line.
	store.SetQty(7, 1, 0)
	if lines := store.Get(7).Lines; len(lines) != 0 {
		t.Errorf("lines = %d after zero qty, want 0", len(lines))
	}

	if store.SetQty(7, 99, 1) {
		t.Error("SetQty returned true for absent item")
	}
}

func TestRemove(t *testing.T) {
	store := NewStore()
	store.Add(7, menuItem(1, "Tea", 15), 1)

	if !store.Remove(7, 1) {
		t.Fatal("Remove returned false for present item")
	}
	if store.Remove(7, 1) {
		t.Error("Remove returned true for absent item")
	}
}

func TestCartsAreScopedPerUser(t *testing.T) {
	store := NewStore()
	store.Add(7, menuItem(1, "Tea", 15), 1)
	store.Add(8, menuItem(2, "Samosa", 25), 1)

	if got := store.Get(7); len(got.Lines) != 1 || got.Lines[0].Item.ID != 1 {
		t.Errorf("user 7 cart = %+v", got)
	}
	if got := store.Get(8); len(got.Lines) != 1 || got.Lines[0].Item.ID != 2 {
		t.Errorf("user 8 cart = %+v", got)
	}

	store.Clear(7)
	if len(store.Get(7).Lines) != 0 {
		t.Error("user 7 cart not cleared")
	}
	if len(store.Get(8).Lines) != 1 {
		t.Error("clearing user 7 touched user 8")
	}
}
