package bank

import "fmt"

// Customer представляет клиента банка со списком принадлежащих ему счетов.
// Счета хранятся по ссылке и разделяются с другими держателями.
type Customer struct {
	Name     string
	Email    string
	Phone    string
	accounts []*Account
}

// NewCustomer создаёт клиента банка без счетов.
func NewCustomer(name, email, phone string) *Customer {
	return &Customer{
		Name:  name,
		Email: email,
		Phone: phone,
	}
}

// AddAccount регистрирует счёт за клиентом.
func (c *Customer) AddAccount(a *Account) error {
	if a == nil {
		return fmt.Errorf("%w: account must be a valid bank account", ErrValidation)
	}
	c.accounts = append(c.accounts, a)
	return nil
}

// Accounts возвращает счета клиента в порядке добавления.
func (c *Customer) Accounts() []*Account {
	out := make([]*Account, len(c.accounts))
	copy(out, c.accounts)
	return out
}

// TransactionHistory возвращает журнал операций счёта клиента с указанным номером.
func (c *Customer) TransactionHistory(number string) ([]Transaction, error) {
	for _, a := range c.accounts {
		if a.Number() == number {
			return a.Transactions(), nil
		}
	}
	return nil, fmt.Errorf("%w: account %s not found", ErrValidation, number)
}
