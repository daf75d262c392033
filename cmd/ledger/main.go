// Package main запускает демонстрацию банковского и ресторанного доменов.
package main

import (
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/mmeshcher/ledger-system/internal/bank"
	"github.com/mmeshcher/ledger-system/internal/config"
	"github.com/mmeshcher/ledger-system/internal/middleware"
	"github.com/mmeshcher/ledger-system/internal/oplog"
	"github.com/mmeshcher/ledger-system/internal/restaurant"
)

func main() {
	logger, _ := zap.NewProduction()
	defer logger.Sync()

	sugar := logger.Sugar()

	cfg, err := config.Parse()
	if err != nil {
		sugar.Fatalw("configuration error", "error", err.Error())
	}

	if err := runBankDemo(sugar); err != nil {
		sugar.Fatalw("bank demo error", "error", err.Error())
	}

	if err := runRestaurantDemo(logger, cfg); err != nil {
		sugar.Fatalw("restaurant demo error", "error", err.Error())
	}
}

func runBankDemo(sugar *zap.SugaredLogger) error {
	customer := bank.NewCustomer("John Doe", "john@example.com", "5551234567")

	src, err := bank.NewIndividualAccount("IND0000001A", decimal.NewFromInt(1000))
	if err != nil {
		return err
	}
	dst, err := bank.NewIndividualAccount("IND0000002B", decimal.NewFromInt(300))
	if err != nil {
		return err
	}

	if err := customer.AddAccount(src); err != nil {
		return err
	}
	if err := customer.AddAccount(dst); err != nil {
		return err
	}

	if err := src.TransferFunds(dst, decimal.NewFromInt(100)); err != nil {
		return err
	}

	sugar.Infow("balances after transfer",
		"from_account", src.Number(),
		"from_balance", src.Balance().StringFixed(2),
		"to_account", dst.Number(),
		"to_balance", dst.Balance().StringFixed(2),
	)

	for _, number := range []string{src.Number(), dst.Number()} {
		history, err := customer.TransactionHistory(number)
		if err != nil {
			return err
		}
		for _, tx := range history {
			sugar.Infow("transaction",
				"account", tx.AccountNumber,
				"type", tx.Type,
				"amount", tx.Amount.StringFixed(2),
				"from", tx.FromAccount,
				"to", tx.ToAccount,
			)
		}
	}

	return nil
}

func runRestaurantDemo(logger *zap.Logger, cfg *config.Config) error {
	sugar := logger.Sugar()

	rest := restaurant.NewRestaurant("Gourmet Palace", logger)
	if err := fillMenus(rest); err != nil {
		return err
	}

	for category, dishes := range rest.AllMenus() {
		for _, info := range dishes {
			sugar.Infow("menu item",
				"category", category,
				"name", info.Name,
				"price", info.Price.StringFixed(2),
			)
		}
	}

	buf := oplog.NewBuffer()
	opLogger := oplog.NewLogger(buf)
	defer opLogger.Sync()

	policy := middleware.DefaultDiscountPolicy()
	policy.LoyaltyThreshold = cfg.LoyaltyThreshold

	place := middleware.Chain(
		rest.PlaceOrder,
		middleware.PlaceLogging(opLogger),
		middleware.BulkDiscount(policy, opLogger),
	)

	john, err := restaurant.NewCustomer("John Doe", "john@example.com")
	if err != nil {
		return err
	}
	jane, err := restaurant.NewCustomer("Jane Smith", "5551234567")
	if err != nil {
		return err
	}

	order1 := rest.CreateOrder(john)
	for _, name := range []string{"Bruschetta", "Grilled Salmon", "Chocolate Cake"} {
		if err := order1.AddDish(name, rest.Menus(), 1); err != nil {
			return err
		}
	}
	if err := place(order1); err != nil {
		return err
	}

	order2 := rest.CreateOrder(jane)
	if err := order2.AddDish("Spring Rolls", rest.Menus(), 2); err != nil {
		return err
	}
	if err := order2.AddDish("Ribeye Steak", rest.Menus(), 1); err != nil {
		return err
	}
	if err := order2.AddDish("Tiramisu", rest.Menus(), 2); err != nil {
		return err
	}
	if err := place(order2); err != nil {
		return err
	}

	entrees := rest.Menu(restaurant.CategoryEntree)
	if err := entrees.IncreasePrice("Grilled Salmon", 15); err != nil {
		return err
	}
	if err := rest.Menu(restaurant.CategoryDessert).DecreasePrice("Tiramisu", 10); err != nil {
		return err
	}

	// Одно имя заведомо отсутствует: сбой по нему логируется и не
	// прерывает переоценку остальных блюд.
	entrees.ApplyDemandPricing([]string{"Grilled Salmon", "Lobster Thermidor"}, cfg.DemandPricingPercent)

	for _, summary := range rest.AllOrders() {
		sugar.Infow("order summary",
			"customer", summary.Customer,
			"total", summary.Total.StringFixed(2),
			"items", len(summary.Items),
		)
	}

	for _, line := range buf.Lines() {
		sugar.Infow("operation log", "line", line)
	}

	return nil
}

func fillMenus(rest *restaurant.Restaurant) error {
	dishes := []func() (*restaurant.Dish, error){
		func() (*restaurant.Dish, error) {
			return restaurant.NewAppetizer("Bruschetta", decimal.NewFromFloat(8.99))
		},
		func() (*restaurant.Dish, error) {
			return restaurant.NewAppetizer("Spring Rolls", decimal.NewFromFloat(7.50))
		},
		func() (*restaurant.Dish, error) {
			return restaurant.NewEntree("Grilled Salmon", decimal.NewFromFloat(24.99), 20)
		},
		func() (*restaurant.Dish, error) {
			return restaurant.NewEntree("Ribeye Steak", decimal.NewFromFloat(29.99), 25)
		},
		func() (*restaurant.Dish, error) {
			return restaurant.NewDessert("Chocolate Cake", decimal.NewFromFloat(9.99))
		},
		func() (*restaurant.Dish, error) {
			return restaurant.NewDessert("Tiramisu", decimal.NewFromFloat(10.50))
		},
	}

	for _, newDish := range dishes {
		d, err := newDish()
		if err != nil {
			return err
		}
		if err := rest.AddDishToMenu(d); err != nil {
			return err
		}
	}
	return nil
}
