// Package validation содержит функции валидации входных данных.
package validation

import (
	"unicode"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// minAccountNumberLen задаёт минимальную длину номера счёта.
const minAccountNumberLen = 10

// IsValidAccountNumber проверяет номер счёта: не короче десяти символов.
func IsValidAccountNumber(number string) bool {
	return len(number) >= minAccountNumberLen
}

// IsValidContact проверяет контакт клиента: корректный e-mail либо
// номер телефона ровно из десяти цифр.
func IsValidContact(contact string) bool {
	if contact == "" {
		return false
	}
	if validate.Var(contact, "email") == nil {
		return true
	}
	return isTenDigitPhone(contact)
}

func isTenDigitPhone(s string) bool {
	if len(s) != 10 {
		return false
	}
	for _, ch := range s {
		if !unicode.IsDigit(ch) {
			return false
		}
	}
	return true
}
