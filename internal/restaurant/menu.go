package restaurant

import (
	"fmt"
	"sort"
	"strings"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// Menu хранит блюда одного раздела; ключом служит имя блюда в нижнем
// регистре, поэтому поиск не зависит от регистра.
type Menu struct {
	category Category
	dishes   map[string]*Dish
	logger   *zap.Logger
}

// NewMenu создаёт пустое меню указанного раздела.
func NewMenu(category Category, logger *zap.Logger) *Menu {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Menu{
		category: category,
		dishes:   make(map[string]*Dish),
		logger:   logger,
	}
}

// Category возвращает раздел меню.
func (m *Menu) Category() Category {
	return m.category
}

// AddDish добавляет блюдо в меню. Блюдо с тем же именем заменяется:
// последняя запись выигрывает.
func (m *Menu) AddDish(d *Dish) error {
	if d == nil {
		return fmt.Errorf("%w: item must be a dish", ErrInvalidOrder)
	}
	m.dishes[strings.ToLower(d.Name())] = d
	return nil
}

// RemoveDish удаляет блюдо по имени без учёта регистра.
func (m *Menu) RemoveDish(name string) error {
	key := strings.ToLower(name)
	if _, ok := m.dishes[key]; !ok {
		return fmt.Errorf("%w: dish %q not found in %s menu", ErrDishNotFound, name, m.category)
	}
	delete(m.dishes, key)
	return nil
}

// GetDish возвращает блюдо по имени без учёта регистра.
func (m *Menu) GetDish(name string) (*Dish, error) {
	d, ok := m.dishes[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("%w: dish %q not found in %s menu", ErrDishNotFound, name, m.category)
	}
	return d, nil
}

// HasDish сообщает, есть ли блюдо с указанным именем в меню.
func (m *Menu) HasDish(name string) bool {
	_, ok := m.dishes[strings.ToLower(name)]
	return ok
}

// View возвращает снимки всех блюд меню, упорядоченные по имени.
func (m *Menu) View() []DishInfo {
	out := make([]DishInfo, 0, len(m.dishes))
	for _, d := range m.dishes {
		out = append(out, d.Info())
	}
	sort.Slice(out, func(i, j int) bool {
		return strings.ToLower(out[i].Name) < strings.ToLower(out[j].Name)
	})
	return out
}

// IncreasePrice повышает цену блюда на указанный процент; результат
// округляется до двух знаков. Верхняя граница цены не проверяется.
func (m *Menu) IncreasePrice(name string, percent float64) error {
	d, err := m.GetDish(name)
	if err != nil {
		return err
	}
	increase := d.Price().Mul(percentFactor(percent))
	return d.SetPrice(d.Price().Add(increase).Round(2))
}

// DecreasePrice снижает цену блюда на указанный процент; нулевая или
// отрицательная итоговая цена отклоняется, и цена не меняется.
func (m *Menu) DecreasePrice(name string, percent float64) error {
	d, err := m.GetDish(name)
	if err != nil {
		return err
	}
	decrease := d.Price().Mul(percentFactor(percent))
	newPrice := d.Price().Sub(decrease).Round(2)
	if newPrice.LessThanOrEqual(decimal.Zero) {
		return fmt.Errorf("%w: price cannot be zero or negative", ErrValidation)
	}
	return d.SetPrice(newPrice)
}

// ApplyDemandPricing повышает цену каждого из перечисленных блюд.
// Ошибка по отдельному имени логируется и не прерывает обработку остальных.
func (m *Menu) ApplyDemandPricing(names []string, percent float64) {
	for _, name := range names {
		if err := m.IncreasePrice(name, percent); err != nil {
			m.logger.Warn("could not apply demand pricing",
				zap.String("dish", name),
				zap.Error(err),
			)
		}
	}
}

func percentFactor(percent float64) decimal.Decimal {
	return decimal.NewFromFloat(percent).Div(decimal.NewFromInt(100))
}
