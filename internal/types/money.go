// README: Common money value object used across modules.
package types

import "fmt"

// CurrencyINR is the only currency the planner quotes in.
const CurrencyINR = "INR"

type Money struct {
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
}

// INR returns an amount in Indian rupees.
func INR(amount int64) Money {
	return Money{Amount: amount, Currency: CurrencyINR}
}

func (m Money) String() string {
	return fmt.Sprintf("%s %d", m.Currency, m.Amount)
}
