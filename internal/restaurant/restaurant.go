package restaurant

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
)

// Restaurant объединяет меню трёх разделов и общий журнал оформленных заказов.
type Restaurant struct {
	name       string
	appetizers *Menu
	entrees    *Menu
	desserts   *Menu
	orders     []*Order
	logger     *zap.Logger
}

// NewRestaurant создаёт ресторан с тремя пустыми меню.
func NewRestaurant(name string, logger *zap.Logger) *Restaurant {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Restaurant{
		name:       name,
		appetizers: NewMenu(CategoryAppetizer, logger),
		entrees:    NewMenu(CategoryEntree, logger),
		desserts:   NewMenu(CategoryDessert, logger),
		logger:     logger,
	}
}

// Name возвращает название ресторана.
func (r *Restaurant) Name() string {
	return r.name
}

// Menu возвращает меню указанного раздела; для неизвестного раздела — nil.
func (r *Restaurant) Menu(category Category) *Menu {
	switch category {
	case CategoryAppetizer:
		return r.appetizers
	case CategoryEntree:
		return r.entrees
	case CategoryDessert:
		return r.desserts
	default:
		return nil
	}
}

// Menus возвращает все меню ресторана в порядке подачи.
func (r *Restaurant) Menus() []*Menu {
	return []*Menu{r.appetizers, r.entrees, r.desserts}
}

// AddDishToMenu помещает блюдо в меню его раздела.
func (r *Restaurant) AddDishToMenu(d *Dish) error {
	if d == nil {
		return fmt.Errorf("%w: item must be a dish", ErrInvalidOrder)
	}
	m := r.Menu(d.Category())
	if m == nil {
		return fmt.Errorf("%w: unknown menu category %q", ErrValidation, d.Category())
	}
	return m.AddDish(d)
}

// CreateOrder создаёт пустой заказ указанного клиента.
func (r *Restaurant) CreateOrder(c *Customer) *Order {
	return NewOrder(c)
}

// PlaceOrder фиксирует заказ в истории клиента и журнале ресторана
// и пишет его сводку в лог.
func (r *Restaurant) PlaceOrder(o *Order) error {
	if o == nil {
		return fmt.Errorf("%w: must be a valid order", ErrInvalidOrder)
	}
	if err := o.Place(r); err != nil {
		return err
	}

	s := o.Summary()
	items := make([]string, 0, len(s.Items))
	for _, it := range s.Items {
		items = append(items, fmt.Sprintf("%s x%d", it.Name, it.Quantity))
	}
	r.logger.Info("order placed",
		zap.String("customer", s.Customer),
		zap.String("items", strings.Join(items, ", ")),
		zap.String("total", s.Total.StringFixed(2)),
	)
	return nil
}

func (r *Restaurant) recordOrder(o *Order) {
	r.orders = append(r.orders, o)
}

// AllMenus возвращает снимки всех меню по разделам.
func (r *Restaurant) AllMenus() map[Category][]DishInfo {
	return map[Category][]DishInfo{
		CategoryAppetizer: r.appetizers.View(),
		CategoryEntree:    r.entrees.View(),
		CategoryDessert:   r.desserts.View(),
	}
}

// AllOrders возвращает сводки всех заказов ресторана в порядке оформления.
func (r *Restaurant) AllOrders() []Summary {
	out := make([]Summary, 0, len(r.orders))
	for _, o := range r.orders {
		out = append(out, o.Summary())
	}
	return out
}

// OrdersByCustomer возвращает сводки заказов клиента с указанным именем
// без учёта регистра.
func (r *Restaurant) OrdersByCustomer(name string) []Summary {
	var out []Summary
	for _, o := range r.orders {
		if o.Customer() != nil && strings.EqualFold(o.Customer().Name(), name) {
			out = append(out, o.Summary())
		}
	}
	return out
}
