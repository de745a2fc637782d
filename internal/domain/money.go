package domain

import (
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
)

type Money struct {
	Amount   decimal.Decimal
	Currency currency.Unit
}

// MustMoney parses a decimal string and an ISO currency code.
// It panics on invalid input and is intended for presets and fixtures.
func MustMoney(amount, code string) Money {
	parsedCurrency, err := currency.ParseISO(code)
	if err != nil {
		panic(fmt.Sprintf("currency[%s] is not valid: %v", code, err))
	}

	return Money{
		Amount:   decimal.RequireFromString(amount),
		Currency: parsedCurrency,
	}
}

func (m Money) IsZero() bool {
	return m.Amount.IsZero()
}

func (m Money) Add(other Money) Money {
	return Money{Amount: m.Amount.Add(other.Amount), Currency: m.Currency}
}

func (m Money) MulInt(n int64) Money {
	return Money{Amount: m.Amount.Mul(decimal.NewFromInt(n)), Currency: m.Currency}
}

func (m Money) Equal(other Money) bool {
	return m.Amount.Equal(other.Amount) && m.Currency.String() == other.Currency.String()
}

// moneyJSON is the wire form: currency.Unit has no native JSON representation,
// so the amount and ISO code travel as strings.
type moneyJSON struct {
	Amount   string `json:"amount"`
	Currency string `json:"currency"`
}

func (m Money) MarshalJSON() ([]byte, error) {
	return json.Marshal(moneyJSON{
		Amount:   m.Amount.String(),
		Currency: m.Currency.String(),
	})
}

func (m *Money) UnmarshalJSON(data []byte) error {
	var raw moneyJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("json.Unmarshal: %w", err)
	}

	amount, err := decimal.NewFromString(raw.Amount)
	if err != nil {
		return fmt.Errorf("amount[%s] is not valid: %w", raw.Amount, err)
	}

	parsedCurrency, err := currency.ParseISO(raw.Currency)
	if err != nil {
		return fmt.Errorf("currency[%s] is not valid: %w", raw.Currency, err)
	}

	m.Amount = amount
	m.Currency = parsedCurrency
	return nil
}
