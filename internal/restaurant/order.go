package restaurant

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Order представляет заказ клиента: список различных блюд в порядке
// добавления и количество каждого. Повторное добавление блюда накапливает
// количество, а не создаёт вторую позицию.
type Order struct {
	id         uuid.UUID
	customer   *Customer
	dishes     []*Dish
	quantities map[string]int
	createdAt  time.Time
}

// NewOrder создаёт пустой заказ указанного клиента.
func NewOrder(customer *Customer) *Order {
	return &Order{
		id:         uuid.New(),
		customer:   customer,
		quantities: make(map[string]int),
		createdAt:  time.Now(),
	}
}

// ID возвращает идентификатор заказа.
func (o *Order) ID() uuid.UUID {
	return o.id
}

// Customer возвращает клиента, которому принадлежит заказ.
func (o *Order) Customer() *Customer {
	return o.customer
}

// CreatedAt возвращает время создания заказа.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// AddDish добавляет блюдо в заказ. Блюдо ищется в переданных меню по
// порядку, используется первое меню, где оно есть.
func (o *Order) AddDish(name string, menus []*Menu, quantity int) error {
	if quantity <= 0 {
		return fmt.Errorf("%w: quantity must be a positive integer", ErrInvalidOrder)
	}

	var dish *Dish
	for _, m := range menus {
		if d, err := m.GetDish(name); err == nil {
			dish = d
			break
		}
	}
	if dish == nil {
		return fmt.Errorf("%w: dish %q not found in any menu", ErrDishNotFound, name)
	}

	key := strings.ToLower(dish.Name())
	if _, ok := o.quantities[key]; ok {
		o.quantities[key] += quantity
		return nil
	}
	o.dishes = append(o.dishes, dish)
	o.quantities[key] = quantity
	return nil
}

// Total возвращает сумму заказа по текущим ценам блюд, округлённую до двух знаков.
func (o *Order) Total() decimal.Decimal {
	total := decimal.Zero
	for _, d := range o.dishes {
		qty := o.quantities[strings.ToLower(d.Name())]
		total = total.Add(d.Price().Mul(decimal.NewFromInt(int64(qty))))
	}
	return total.Round(2)
}

// SummaryItem содержит позицию заказа в снимке Summary.
type SummaryItem struct {
	Name     string
	Price    decimal.Decimal
	Quantity int
	Subtotal decimal.Decimal
}

// Summary содержит неизменяемый снимок заказа.
type Summary struct {
	Customer  string
	Items     []SummaryItem
	Total     decimal.Decimal
	CreatedAt time.Time
}

// Summary возвращает снимок заказа: позиции, их стоимость и итог.
func (o *Order) Summary() Summary {
	items := make([]SummaryItem, 0, len(o.dishes))
	for _, d := range o.dishes {
		qty := o.quantities[strings.ToLower(d.Name())]
		items = append(items, SummaryItem{
			Name:     d.Name(),
			Price:    d.Price(),
			Quantity: qty,
			Subtotal: d.Price().Mul(decimal.NewFromInt(int64(qty))),
		})
	}

	var customer string
	if o.customer != nil {
		customer = o.customer.Name()
	}

	return Summary{
		Customer:  customer,
		Items:     items,
		Total:     o.Total(),
		CreatedAt: o.createdAt,
	}
}

// Place фиксирует заказ: записывает его в историю клиента и, если передан
// ресторан, в его журнал заказов.
func (o *Order) Place(r *Restaurant) error {
	if o.customer == nil {
		return fmt.Errorf("%w: order has no customer", ErrInvalidOrder)
	}
	if err := o.customer.PlaceOrder(o); err != nil {
		return err
	}
	if r != nil {
		r.recordOrder(o)
	}
	return nil
}
