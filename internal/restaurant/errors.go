package restaurant

import "errors"

// ErrValidation возвращается при некорректных входных данных операции.
var (
	ErrValidation = errors.New("validation error")
	// ErrDishNotFound возвращается, если блюдо с указанным именем отсутствует в меню.
	ErrDishNotFound = errors.New("dish not found")
	// ErrInvalidOrder возвращается при некорректных данных заказа.
	ErrInvalidOrder = errors.New("invalid order")
)
