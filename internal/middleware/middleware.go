// Package middleware содержит сквозные обёртки над операцией оформления
// заказа. Обёртки выбираются при сборке конвейера, базовая операция о них
// ничего не знает.
package middleware

import (
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/mmeshcher/ledger-system/internal/restaurant"
)

// PlaceOrderFunc выполняет оформление заказа.
type PlaceOrderFunc func(o *restaurant.Order) error

// Middleware оборачивает операцию оформления заказа дополнительным этапом.
type Middleware func(next PlaceOrderFunc) PlaceOrderFunc

// Chain применяет обёртки к базовой операции; первая в списке оказывается
// внешней.
func Chain(base PlaceOrderFunc, mws ...Middleware) PlaceOrderFunc {
	out := base
	for i := len(mws) - 1; i >= 0; i-- {
		out = mws[i](out)
	}
	return out
}

// PlaceLogging пишет строку журнала перед выполнением операции: имя
// операции, клиента и сумму заказа.
func PlaceLogging(logger *zap.Logger) Middleware {
	if logger == nil {
		logger = zap.NewNop()
	}
	return func(next PlaceOrderFunc) PlaceOrderFunc {
		return func(o *restaurant.Order) error {
			customer := "N/A"
			total := "N/A"
			if o != nil {
				total = o.Total().StringFixed(2)
				if o.Customer() != nil {
					customer = o.Customer().Name()
				}
			}
			logger.Info("operation",
				zap.String("operation", "placeOrder"),
				zap.String("customer", customer),
				zap.String("total", total),
			)
			return next(o)
		}
	}
}

// DiscountPolicy задаёт пороги сумм и проценты скидки.
type DiscountPolicy struct {
	HighTotal        decimal.Decimal
	LowTotal         decimal.Decimal
	HighPercent      int64
	LowPercent       int64
	LoyaltyBonus     int64
	LoyaltyThreshold int
}

// DefaultDiscountPolicy возвращает политику скидок по умолчанию:
// 10% при сумме выше 50, 5% при сумме выше 30, плюс 5% постоянным клиентам.
func DefaultDiscountPolicy() DiscountPolicy {
	return DiscountPolicy{
		HighTotal:        decimal.NewFromInt(50),
		LowTotal:         decimal.NewFromInt(30),
		HighPercent:      10,
		LowPercent:       5,
		LoyaltyBonus:     5,
		LoyaltyThreshold: 3,
	}
}

// BulkDiscount вычисляет и логирует скидку по сумме заказа и лояльности
// клиента. Скидка только отображается: итог заказа и сохранённые сводки
// не меняются.
func BulkDiscount(policy DiscountPolicy, logger *zap.Logger) Middleware {
	if logger == nil {
		logger = zap.NewNop()
	}
	return func(next PlaceOrderFunc) PlaceOrderFunc {
		return func(o *restaurant.Order) error {
			if o == nil {
				return next(o)
			}

			total := o.Total()
			var percent int64
			switch {
			case total.GreaterThan(policy.HighTotal):
				percent = policy.HighPercent
			case total.GreaterThan(policy.LowTotal):
				percent = policy.LowPercent
			}
			if c := o.Customer(); c != nil && c.IsLoyal(policy.LoyaltyThreshold) {
				percent += policy.LoyaltyBonus
			}

			if percent > 0 {
				amount := total.Mul(decimal.NewFromInt(percent)).Div(decimal.NewFromInt(100)).Round(2)
				logger.Info("loyalty/bulk discount applied",
					zap.String("discount", amount.StringFixed(2)),
					zap.Int64("percent", percent),
				)
			}
			return next(o)
		}
	}
}
