package bank

import "errors"

// ErrValidation возвращается при некорректных входных данных операции.
var (
	ErrValidation = errors.New("validation error")
	// ErrInsufficientFunds возвращается при попытке списания суммы, превышающей баланс счёта.
	ErrInsufficientFunds = errors.New("insufficient funds")
	// ErrInvalidTransaction возвращается, если целевой счёт перевода некорректен.
	ErrInvalidTransaction = errors.New("invalid transaction")
)
