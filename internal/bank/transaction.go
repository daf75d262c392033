package bank

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionType описывает тип операции по счёту.
type TransactionType string

const (
	TransactionDeposit     TransactionType = "DEPOSIT"
	TransactionWithdraw    TransactionType = "WITHDRAW"
	TransactionTransferOut TransactionType = "TRANSFER_OUT"
	TransactionTransferIn  TransactionType = "TRANSFER_IN"
)

// Transaction описывает запись журнала операций по счёту.
// Запись создаётся вместе с изменением баланса и после этого не меняется.
type Transaction struct {
	ID            uuid.UUID
	AccountNumber string
	Amount        decimal.Decimal
	Type          TransactionType
	FromAccount   string
	ToAccount     string
	CreatedAt     time.Time
}

// newTransaction создаёт запись журнала; сумма должна быть строго положительной.
func newTransaction(accountNumber string, amount decimal.Decimal, txType TransactionType, from, to string) (Transaction, error) {
	if amount.LessThanOrEqual(decimal.Zero) {
		return Transaction{}, fmt.Errorf("%w: transaction amount must be positive", ErrValidation)
	}

	return Transaction{
		ID:            uuid.New(),
		AccountNumber: accountNumber,
		Amount:        amount,
		Type:          txType,
		FromAccount:   from,
		ToAccount:     to,
		CreatedAt:     time.Now(),
	}, nil
}
