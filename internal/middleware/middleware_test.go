package middleware

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/mmeshcher/ledger-system/internal/oplog"
	"github.com/mmeshcher/ledger-system/internal/restaurant"
)

func demoOrder(t *testing.T, quantity int) *restaurant.Order {
	t.Helper()

	menu := restaurant.NewMenu(restaurant.CategoryEntree, zap.NewNop())
	d, err := restaurant.NewEntree("Ribeye Steak", decimal.NewFromFloat(29.99), 25)
	if err != nil {
		t.Fatalf("NewEntree error: %v", err)
	}
	if err := menu.AddDish(d); err != nil {
		t.Fatalf("AddDish error: %v", err)
	}

	c, err := restaurant.NewCustomer("Jane Smith", "5551234567")
	if err != nil {
		t.Fatalf("NewCustomer error: %v", err)
	}

	o := restaurant.NewOrder(c)
	if err := o.AddDish("Ribeye Steak", []*restaurant.Menu{menu}, quantity); err != nil {
		t.Fatalf("AddDish error: %v", err)
	}
	return o
}

func TestChain_OuterFirst(t *testing.T) {
	var calls []string

	base := func(o *restaurant.Order) error {
		calls = append(calls, "base")
		return nil
	}
	outer := func(next PlaceOrderFunc) PlaceOrderFunc {
		return func(o *restaurant.Order) error {
			calls = append(calls, "outer")
			return next(o)
		}
	}
	inner := func(next PlaceOrderFunc) PlaceOrderFunc {
		return func(o *restaurant.Order) error {
			calls = append(calls, "inner")
			return next(o)
		}
	}

	if err := Chain(base, outer, inner)(nil); err != nil {
		t.Fatalf("Chain error: %v", err)
	}
	if strings.Join(calls, ",") != "outer,inner,base" {
		t.Fatalf("call order = %v, want outer,inner,base", calls)
	}
}

func TestPlaceLogging_WritesToBuffer(t *testing.T) {
	buf := oplog.NewBuffer()
	logger := oplog.NewLogger(buf)

	o := demoOrder(t, 1)
	place := Chain(
		func(o *restaurant.Order) error { return o.Place(nil) },
		PlaceLogging(logger),
	)

	if err := place(o); err != nil {
		t.Fatalf("place error: %v", err)
	}

	lines := buf.Lines()
	if len(lines) != 1 {
		t.Fatalf("expected one log line, got %d: %v", len(lines), lines)
	}
	line := lines[0]
	if !strings.Contains(line, "placeOrder") || !strings.Contains(line, "Jane Smith") || !strings.Contains(line, "29.99") {
		t.Fatalf("line must carry operation, customer and total: %q", line)
	}

	if len(o.Customer().OrderHistory()) != 1 {
		t.Fatalf("logging stage must delegate to the base operation")
	}
}

func TestBulkDiscount_DisplayOnly(t *testing.T) {
	buf := oplog.NewBuffer()
	logger := oplog.NewLogger(buf)

	// Две позиции по 29.99: сумма 59.98 превышает верхний порог.
	o := demoOrder(t, 2)
	totalBefore := o.Total()

	place := Chain(
		func(o *restaurant.Order) error { return o.Place(nil) },
		BulkDiscount(DefaultDiscountPolicy(), logger),
	)
	if err := place(o); err != nil {
		t.Fatalf("place error: %v", err)
	}

	lines := buf.Lines()
	if len(lines) != 1 {
		t.Fatalf("expected one discount line, got %d: %v", len(lines), lines)
	}
	if !strings.Contains(lines[0], "discount") || !strings.Contains(lines[0], "10") {
		t.Fatalf("discount line must carry the percent: %q", lines[0])
	}

	// Скидка только отображается: итог и сохранённая сводка не меняются.
	if !o.Total().Equal(totalBefore) {
		t.Fatalf("Total changed from %s to %s", totalBefore, o.Total())
	}
	history := o.Customer().OrderHistory()
	if len(history) != 1 || !history[0].Total.Equal(totalBefore) {
		t.Fatalf("stored summary total must stay %s, got %+v", totalBefore, history)
	}
}

func TestBulkDiscount_BelowThresholdsSilent(t *testing.T) {
	buf := oplog.NewBuffer()
	logger := oplog.NewLogger(buf)

	// Одна позиция 29.99: ниже обоих порогов, клиент не постоянный.
	o := demoOrder(t, 1)

	place := Chain(
		func(o *restaurant.Order) error { return o.Place(nil) },
		BulkDiscount(DefaultDiscountPolicy(), logger),
	)
	if err := place(o); err != nil {
		t.Fatalf("place error: %v", err)
	}

	if buf.Len() != 0 {
		t.Fatalf("no discount line expected, got %v", buf.Lines())
	}
}

func TestBulkDiscount_LoyaltyBonus(t *testing.T) {
	buf := oplog.NewBuffer()
	logger := oplog.NewLogger(buf)

	o := demoOrder(t, 1)
	// Три прежних заказа делают клиента постоянным.
	for i := 0; i < 3; i++ {
		prev := restaurant.NewOrder(o.Customer())
		if err := prev.Place(nil); err != nil {
			t.Fatalf("Place error: %v", err)
		}
	}

	place := Chain(
		func(o *restaurant.Order) error { return o.Place(nil) },
		BulkDiscount(DefaultDiscountPolicy(), logger),
	)
	if err := place(o); err != nil {
		t.Fatalf("place error: %v", err)
	}

	lines := buf.Lines()
	if len(lines) != 1 {
		t.Fatalf("expected one discount line, got %d: %v", len(lines), lines)
	}
	// 29.99 ниже порогов по сумме, остаётся только бонус постоянного клиента 5%.
	if !strings.Contains(lines[0], "1.50") {
		t.Fatalf("discount amount must be 1.50 (5%% of 29.99), got %q", lines[0])
	}
}
