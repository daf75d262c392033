// Package restaurant содержит доменную модель ресторана: блюда, меню,
// заказы и клиентов.
package restaurant

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Category описывает раздел меню, к которому относится блюдо.
type Category string

const (
	CategoryAppetizer Category = "appetizer"
	CategoryEntree    Category = "entree"
	CategoryDessert   Category = "dessert"
)

// dessertPriceCeiling ограничивает цену десерта при создании.
var dessertPriceCeiling = decimal.NewFromInt(15)

// Dish представляет блюдо меню. Имя и цена проходят валидацию при каждом
// изменении, а не только при создании.
type Dish struct {
	name        string
	price       decimal.Decimal
	category    Category
	prepMinutes int
}

// DishInfo содержит снимок данных блюда для отображения меню.
type DishInfo struct {
	Name        string
	Price       decimal.Decimal
	Category    Category
	PrepMinutes int
}

func newDish(name string, price decimal.Decimal, category Category, prepMinutes int) (*Dish, error) {
	d := &Dish{category: category, prepMinutes: prepMinutes}
	if err := d.SetName(name); err != nil {
		return nil, err
	}
	if err := d.SetPrice(price); err != nil {
		return nil, err
	}
	return d, nil
}

// NewAppetizer создаёт закуску.
func NewAppetizer(name string, price decimal.Decimal) (*Dish, error) {
	return newDish(name, price, CategoryAppetizer, 0)
}

// NewEntree создаёт горячее блюдо с указанным временем приготовления в минутах.
func NewEntree(name string, price decimal.Decimal, prepMinutes int) (*Dish, error) {
	return newDish(name, price, CategoryEntree, prepMinutes)
}

// NewDessert создаёт десерт; цена десерта при создании не может превышать 15.
func NewDessert(name string, price decimal.Decimal) (*Dish, error) {
	if price.GreaterThan(dessertPriceCeiling) {
		return nil, fmt.Errorf("%w: dessert price cannot exceed %s", ErrValidation, dessertPriceCeiling)
	}
	return newDish(name, price, CategoryDessert, 0)
}

// Name возвращает имя блюда.
func (d *Dish) Name() string {
	return d.name
}

// Price возвращает текущую цену блюда.
func (d *Dish) Price() decimal.Decimal {
	return d.price
}

// Category возвращает раздел меню блюда.
func (d *Dish) Category() Category {
	return d.category
}

// PrepMinutes возвращает время приготовления блюда в минутах.
func (d *Dish) PrepMinutes() int {
	return d.prepMinutes
}

// SetName обновляет имя блюда; имя должно быть непустой строкой.
func (d *Dish) SetName(name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("%w: dish name must be a non-empty string", ErrValidation)
	}
	d.name = name
	return nil
}

// SetPrice обновляет цену блюда; цена должна быть строго положительной.
// Потолок цены десерта действует только при создании.
func (d *Dish) SetPrice(price decimal.Decimal) error {
	if price.LessThanOrEqual(decimal.Zero) {
		return fmt.Errorf("%w: price must be a positive number", ErrValidation)
	}
	d.price = price
	return nil
}

// Info возвращает снимок данных блюда; время приготовления включается
// только для горячих блюд.
func (d *Dish) Info() DishInfo {
	info := DishInfo{
		Name:     d.name,
		Price:    d.price,
		Category: d.category,
	}
	if d.category == CategoryEntree {
		info.PrepMinutes = d.prepMinutes
	}
	return info
}
