package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Descriptions attached to the two transfer directions.
const (
	DescriptionToSavings = "Moving from balance to savings"
	DescriptionToBalance = "Moving from savings to balance"
)

// Movement holds a single recorded transfer between the two balances
// of an account. Movements are immutable once created.
type Movement struct {
	ID          int64           `json:"movement_id"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
	Date        time.Time       `json:"date"`
}

// CreateMovementParams is the input data for recording a transfer.
type CreateMovementParams struct {
	AccountID int64
	Amount    decimal.Decimal
}

// MonthStatement is the result of the month movements query.
type MonthStatement struct {
	Account   Account    `json:"account"`
	Movements []Movement `json:"movements"`
}
