package restaurant

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

func demoMenus(t *testing.T) []*Menu {
	t.Helper()

	appetizers := NewMenu(CategoryAppetizer, zap.NewNop())
	entrees := NewMenu(CategoryEntree, zap.NewNop())
	desserts := NewMenu(CategoryDessert, zap.NewNop())

	dishes := []struct {
		menu    *Menu
		newDish func() (*Dish, error)
	}{
		{appetizers, func() (*Dish, error) { return NewAppetizer("Bruschetta", decimal.NewFromFloat(8.99)) }},
		{appetizers, func() (*Dish, error) { return NewAppetizer("Spring Rolls", decimal.NewFromFloat(7.50)) }},
		{entrees, func() (*Dish, error) { return NewEntree("Grilled Salmon", decimal.NewFromFloat(24.99), 20) }},
		{entrees, func() (*Dish, error) { return NewEntree("Ribeye Steak", decimal.NewFromFloat(29.99), 25) }},
		{desserts, func() (*Dish, error) { return NewDessert("Chocolate Cake", decimal.NewFromFloat(9.99)) }},
		{desserts, func() (*Dish, error) { return NewDessert("Tiramisu", decimal.NewFromFloat(10.50)) }},
	}
	for _, spec := range dishes {
		d, err := spec.newDish()
		if err != nil {
			t.Fatalf("dish construction error: %v", err)
		}
		if err := spec.menu.AddDish(d); err != nil {
			t.Fatalf("AddDish error: %v", err)
		}
	}

	return []*Menu{appetizers, entrees, desserts}
}

func mustCustomer(t *testing.T, name, contact string) *Customer {
	t.Helper()
	c, err := NewCustomer(name, contact)
	if err != nil {
		t.Fatalf("NewCustomer(%q, %q) error: %v", name, contact, err)
	}
	return c
}

func TestOrderTotal(t *testing.T) {
	menus := demoMenus(t)
	o := NewOrder(mustCustomer(t, "John Doe", "john@example.com"))

	for _, name := range []string{"Bruschetta", "Grilled Salmon", "Chocolate Cake"} {
		if err := o.AddDish(name, menus, 1); err != nil {
			t.Fatalf("AddDish(%q) error: %v", name, err)
		}
	}

	if !o.Total().Equal(decimal.NewFromFloat(43.97)) {
		t.Fatalf("Total = %s, want 43.97", o.Total())
	}
}

func TestOrderAddDish_AccumulatesQuantity(t *testing.T) {
	menus := demoMenus(t)
	o := NewOrder(mustCustomer(t, "Jane Smith", "5551234567"))

	if err := o.AddDish("Spring Rolls", menus, 2); err != nil {
		t.Fatalf("AddDish error: %v", err)
	}
	if err := o.AddDish("spring rolls", menus, 3); err != nil {
		t.Fatalf("AddDish error: %v", err)
	}

	s := o.Summary()
	if len(s.Items) != 1 {
		t.Fatalf("repeated dish must stay a single item, got %d", len(s.Items))
	}
	if s.Items[0].Quantity != 5 {
		t.Fatalf("Quantity = %d, want 5", s.Items[0].Quantity)
	}
}

func TestOrderAddDish_Validation(t *testing.T) {
	menus := demoMenus(t)
	o := NewOrder(mustCustomer(t, "John Doe", "john@example.com"))

	if err := o.AddDish("Bruschetta", menus, 0); !errors.Is(err, ErrInvalidOrder) {
		t.Fatalf("expected ErrInvalidOrder for zero quantity, got %v", err)
	}
	if err := o.AddDish("Bruschetta", menus, -1); !errors.Is(err, ErrInvalidOrder) {
		t.Fatalf("expected ErrInvalidOrder for negative quantity, got %v", err)
	}
	if err := o.AddDish("Lobster Thermidor", menus, 1); !errors.Is(err, ErrDishNotFound) {
		t.Fatalf("expected ErrDishNotFound for unknown dish, got %v", err)
	}
}

func TestOrderAddDish_FirstMenuWins(t *testing.T) {
	cheap := NewMenu(CategoryEntree, zap.NewNop())
	pricey := NewMenu(CategoryEntree, zap.NewNop())

	cheapDish, err := NewEntree("Grilled Salmon", decimal.NewFromFloat(19.99), 20)
	if err != nil {
		t.Fatalf("NewEntree error: %v", err)
	}
	priceyDish, err := NewEntree("Grilled Salmon", decimal.NewFromFloat(24.99), 20)
	if err != nil {
		t.Fatalf("NewEntree error: %v", err)
	}
	if err := cheap.AddDish(cheapDish); err != nil {
		t.Fatalf("AddDish error: %v", err)
	}
	if err := pricey.AddDish(priceyDish); err != nil {
		t.Fatalf("AddDish error: %v", err)
	}

	o := NewOrder(mustCustomer(t, "John Doe", "john@example.com"))
	if err := o.AddDish("Grilled Salmon", []*Menu{pricey, cheap}, 1); err != nil {
		t.Fatalf("AddDish error: %v", err)
	}

	// Побеждает первое меню из списка, а не меньшая цена.
	if !o.Total().Equal(decimal.NewFromFloat(24.99)) {
		t.Fatalf("Total = %s, want 24.99 from the first menu", o.Total())
	}
}

func TestOrderSummary_SubtotalsMatchTotal(t *testing.T) {
	menus := demoMenus(t)
	o := NewOrder(mustCustomer(t, "Jane Smith", "5551234567"))

	if err := o.AddDish("Spring Rolls", menus, 2); err != nil {
		t.Fatalf("AddDish error: %v", err)
	}
	if err := o.AddDish("Ribeye Steak", menus, 1); err != nil {
		t.Fatalf("AddDish error: %v", err)
	}
	if err := o.AddDish("Tiramisu", menus, 2); err != nil {
		t.Fatalf("AddDish error: %v", err)
	}

	s := o.Summary()
	sum := decimal.Zero
	for _, item := range s.Items {
		if !item.Subtotal.Equal(item.Price.Mul(decimal.NewFromInt(int64(item.Quantity)))) {
			t.Fatalf("subtotal mismatch for %q: %s", item.Name, item.Subtotal)
		}
		sum = sum.Add(item.Subtotal)
	}
	if !sum.Round(2).Equal(s.Total) {
		t.Fatalf("sum of subtotals %s != total %s", sum.Round(2), s.Total)
	}
	if s.CreatedAt.IsZero() {
		t.Fatalf("summary must carry the order creation time")
	}
	if s.Customer != "Jane Smith" {
		t.Fatalf("Customer = %q, want Jane Smith", s.Customer)
	}
}

func TestPlaceOrder(t *testing.T) {
	rest := NewRestaurant("Gourmet Palace", zap.NewNop())
	for _, m := range demoMenus(t) {
		for _, info := range m.View() {
			d, err := m.GetDish(info.Name)
			if err != nil {
				t.Fatalf("GetDish error: %v", err)
			}
			if err := rest.AddDishToMenu(d); err != nil {
				t.Fatalf("AddDishToMenu error: %v", err)
			}
		}
	}

	c := mustCustomer(t, "John Doe", "john@example.com")
	o := rest.CreateOrder(c)
	if err := o.AddDish("Bruschetta", rest.Menus(), 1); err != nil {
		t.Fatalf("AddDish error: %v", err)
	}

	if err := rest.PlaceOrder(o); err != nil {
		t.Fatalf("PlaceOrder error: %v", err)
	}

	history := c.OrderHistory()
	if len(history) != 1 {
		t.Fatalf("customer history must hold the order, got %d", len(history))
	}
	all := rest.AllOrders()
	if len(all) != 1 {
		t.Fatalf("restaurant log must hold the order, got %d", len(all))
	}

	byName := rest.OrdersByCustomer("john doe")
	if len(byName) != 1 {
		t.Fatalf("OrdersByCustomer must match case-insensitively, got %d", len(byName))
	}

	if err := rest.PlaceOrder(nil); !errors.Is(err, ErrInvalidOrder) {
		t.Fatalf("expected ErrInvalidOrder for nil order, got %v", err)
	}
}

func TestCustomerPlaceOrder_NilOrder(t *testing.T) {
	c := mustCustomer(t, "John Doe", "john@example.com")
	if err := c.PlaceOrder(nil); !errors.Is(err, ErrInvalidOrder) {
		t.Fatalf("expected ErrInvalidOrder, got %v", err)
	}
	if len(c.OrderHistory()) != 0 {
		t.Fatalf("failed place must not touch the history")
	}
}
