// Package domain provides defenitions of all entities.
package domain

import (
	"errors"

	"github.com/shopspring/decimal"
)

func init() {
	// Money fields are plain JSON numbers on the wire.
	decimal.MarshalJSONWithoutQuotes = true
}

var (
	// ErrAccountNotFound indicates that the account is not found.
	// The message is the exact detail string clients receive.
	ErrAccountNotFound = errors.New("Account not found!")
	// ErrInsufficientFunds indicates that the balance does not cover the transfer.
	ErrInsufficientFunds = errors.New("Account does not have funds.")
	// ErrInsufficientSavings indicates that the savings do not cover the transfer.
	ErrInsufficientSavings = errors.New("Account savings does not have funds.")
)

// Account holds the checking and savings balances of a single client.
type Account struct {
	ID      int64           `json:"account_id"`
	Balance decimal.Decimal `json:"account_balance"`
	Savings decimal.Decimal `json:"account_saving"`
}
