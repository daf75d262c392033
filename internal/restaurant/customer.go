package restaurant

import (
	"fmt"
	"strings"

	"github.com/mmeshcher/ledger-system/internal/validation"
)

// Customer представляет клиента ресторана с историей заказов.
// Имя и контакт проходят валидацию при каждом изменении.
type Customer struct {
	name         string
	contact      string
	orderHistory []*Order
}

// NewCustomer создаёт клиента; контакт — корректный e-mail либо номер
// телефона из десяти цифр.
func NewCustomer(name, contact string) (*Customer, error) {
	c := &Customer{}
	if err := c.SetName(name); err != nil {
		return nil, err
	}
	if err := c.SetContact(contact); err != nil {
		return nil, err
	}
	return c, nil
}

// Name возвращает имя клиента.
func (c *Customer) Name() string {
	return c.name
}

// Contact возвращает контакт клиента.
func (c *Customer) Contact() string {
	return c.contact
}

// SetName обновляет имя клиента; имя должно быть непустой строкой.
func (c *Customer) SetName(name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("%w: name must be a non-empty string", ErrValidation)
	}
	c.name = name
	return nil
}

// SetContact обновляет контакт клиента с повторной проверкой формата.
func (c *Customer) SetContact(contact string) error {
	if !validation.IsValidContact(contact) {
		return fmt.Errorf("%w: contact info must be a valid email or 10-digit phone number", ErrValidation)
	}
	c.contact = contact
	return nil
}

// PlaceOrder добавляет заказ в историю клиента.
func (c *Customer) PlaceOrder(o *Order) error {
	if o == nil {
		return fmt.Errorf("%w: must be a valid order", ErrInvalidOrder)
	}
	c.orderHistory = append(c.orderHistory, o)
	return nil
}

// OrderHistory возвращает сводки всех заказов клиента в порядке оформления.
func (c *Customer) OrderHistory() []Summary {
	out := make([]Summary, 0, len(c.orderHistory))
	for _, o := range c.orderHistory {
		out = append(out, o.Summary())
	}
	return out
}

// IsLoyal сообщает, оформил ли клиент не меньше threshold заказов.
func (c *Customer) IsLoyal(threshold int) bool {
	return len(c.orderHistory) >= threshold
}
