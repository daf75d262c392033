// Package bank содержит доменную модель банковского учёта: счета, клиентов
// и журнал операций.
package bank

import (
	"fmt"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/mmeshcher/ledger-system/internal/validation"
)

// Kind описывает вид банковского счёта.
type Kind string

const (
	KindIndividual Kind = "INDIVIDUAL"
	KindJoint      Kind = "JOINT"
)

// Account представляет банковский счёт с журналом операций.
// Все изменения состояния сериализуются мьютексом счёта, поэтому баланс
// и журнал всегда меняются согласованно.
type Account struct {
	mu           sync.Mutex
	number       string
	kind         Kind
	owners       []string
	balance      decimal.Decimal
	transactions []Transaction
}

func newAccount(number string, initial decimal.Decimal, kind Kind, owners []string) (*Account, error) {
	if !validation.IsValidAccountNumber(number) {
		return nil, fmt.Errorf("%w: account number must be at least 10 characters", ErrValidation)
	}
	if initial.IsNegative() {
		return nil, fmt.Errorf("%w: initial balance must be non-negative", ErrValidation)
	}

	return &Account{
		number:  number,
		kind:    kind,
		owners:  owners,
		balance: initial,
	}, nil
}

// NewIndividualAccount создаёт личный счёт с указанным номером и начальным балансом.
func NewIndividualAccount(number string, initial decimal.Decimal) (*Account, error) {
	return newAccount(number, initial, KindIndividual, nil)
}

// NewJointAccount создаёт совместный счёт; требуется хотя бы один владелец.
func NewJointAccount(number string, initial decimal.Decimal, owners []string) (*Account, error) {
	if len(owners) == 0 {
		return nil, fmt.Errorf("%w: joint account requires at least one owner", ErrValidation)
	}
	return newAccount(number, initial, KindJoint, append([]string(nil), owners...))
}

// Number возвращает номер счёта.
func (a *Account) Number() string {
	return a.number
}

// Kind возвращает вид счёта.
func (a *Account) Kind() Kind {
	return a.kind
}

// Owners возвращает копию списка владельцев совместного счёта.
func (a *Account) Owners() []string {
	out := make([]string, len(a.owners))
	copy(out, a.owners)
	return out
}

// Balance возвращает текущий баланс счёта.
func (a *Account) Balance() decimal.Decimal {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.balance
}

// Transactions возвращает копию журнала операций счёта.
func (a *Account) Transactions() []Transaction {
	a.mu.Lock()
	defer a.mu.Unlock()
	out := make([]Transaction, len(a.transactions))
	copy(out, a.transactions)
	return out
}

// Deposit увеличивает баланс на указанную сумму и добавляет запись DEPOSIT
// в журнал операций.
func (a *Account) Deposit(amount decimal.Decimal) error {
	if amount.LessThanOrEqual(decimal.Zero) {
		return fmt.Errorf("%w: deposit amount must be positive", ErrValidation)
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	return a.credit(amount, TransactionDeposit, "", a.number)
}

// Withdraw уменьшает баланс на указанную сумму и добавляет запись WITHDRAW
// в журнал операций. Баланс не может стать отрицательным.
func (a *Account) Withdraw(amount decimal.Decimal) error {
	if amount.LessThanOrEqual(decimal.Zero) {
		return fmt.Errorf("%w: withdrawal amount must be positive", ErrValidation)
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	return a.debit(amount, TransactionWithdraw, a.number, "")
}

// TransferFunds переводит сумму на целевой счёт. Операция атомарна для
// вызывающего: либо меняются балансы и журналы обоих счетов, либо ни одного.
// Источник получает запись TRANSFER_OUT, целевой счёт — TRANSFER_IN.
func (a *Account) TransferFunds(target *Account, amount decimal.Decimal) error {
	if target == nil {
		return fmt.Errorf("%w: transfer target is not a valid account", ErrInvalidTransaction)
	}
	if target == a {
		return fmt.Errorf("%w: transfer target must be a different account", ErrInvalidTransaction)
	}
	if amount.LessThanOrEqual(decimal.Zero) {
		return fmt.Errorf("%w: transfer amount must be positive", ErrValidation)
	}

	// Блокировка обоих счетов в детерминированном порядке исключает
	// взаимную блокировку встречных переводов.
	first, second := a, target
	if first.number > second.number {
		first, second = second, first
	}
	first.mu.Lock()
	defer first.mu.Unlock()
	second.mu.Lock()
	defer second.mu.Unlock()

	if err := a.debit(amount, TransactionTransferOut, a.number, target.number); err != nil {
		return err
	}
	return target.credit(amount, TransactionTransferIn, a.number, target.number)
}

// credit применяет зачисление под уже взятым мьютексом счёта.
func (a *Account) credit(amount decimal.Decimal, txType TransactionType, from, to string) error {
	tx, err := newTransaction(a.number, amount, txType, from, to)
	if err != nil {
		return err
	}
	a.balance = a.balance.Add(amount)
	a.transactions = append(a.transactions, tx)
	return nil
}

// debit применяет списание под уже взятым мьютексом счёта; при нехватке
// средств состояние счёта не меняется.
func (a *Account) debit(amount decimal.Decimal, txType TransactionType, from, to string) error {
	if a.balance.LessThan(amount) {
		return fmt.Errorf("%w: balance %s is less than %s", ErrInsufficientFunds, a.balance, amount)
	}
	tx, err := newTransaction(a.number, amount, txType, from, to)
	if err != nil {
		return err
	}
	a.balance = a.balance.Sub(amount)
	a.transactions = append(a.transactions, tx)
	return nil
}
