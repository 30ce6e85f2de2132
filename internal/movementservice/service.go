// Package movementservice manages business logic layer of movements.
package movementservice

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/gustavoschneider/simple-code-challenge/internal/accountdelivery"
	"github.com/gustavoschneider/simple-code-challenge/internal/domain"
)

// Repo provides data access layer interface needed by movement service layer.
//
//go:generate mockgen -source service.go -destination service_mock.go -package movementservice
type Repo interface {
	DepositToSavings(ctx context.Context, arg domain.CreateMovementParams) (domain.Movement, error)
	WithdrawFromSavings(ctx context.Context, arg domain.CreateMovementParams) (domain.Movement, error)
	ListByAccount(ctx context.Context, accountID int64) ([]domain.Movement, error)
}

// Service facilitates movement service layer logic.
type Service struct {
	repo           Repo
	accountService accountdelivery.Service
	now            func() time.Time
}

// New returns movement service struct to manage movement bussines logic.
// The now func resolves the default month of the statement query.
func New(mr Repo, as accountdelivery.Service, now func() time.Time) *Service {
	return &Service{
		repo:           mr,
		accountService: as,
		now:            now,
	}
}

// DepositToSavings moves the amount from the account balance to its savings.
func (s *Service) DepositToSavings(ctx context.Context, accountID int64, amount decimal.Decimal) (domain.Movement, error) {
	arg := domain.CreateMovementParams{
		AccountID: accountID,
		Amount:    amount,
	}

	movement, err := s.repo.DepositToSavings(ctx, arg)
	if err != nil {
		return movement, err
	}

	return movement, nil
}

// WithdrawFromSavings moves the amount from the account savings back to its balance.
func (s *Service) WithdrawFromSavings(ctx context.Context, accountID int64, amount decimal.Decimal) (domain.Movement, error) {
	arg := domain.CreateMovementParams{
		AccountID: accountID,
		Amount:    amount,
	}

	movement, err := s.repo.WithdrawFromSavings(ctx, arg)
	if err != nil {
		return movement, err
	}

	return movement, nil
}

// ListForMonth returns the account snapshot together with its movements
// dated within the given month of the current year. A month of 0 means
// the current month.
func (s *Service) ListForMonth(ctx context.Context, accountID int64, month int) (domain.MonthStatement, error) {
	account, err := s.accountService.Get(ctx, accountID)
	if err != nil {
		return domain.MonthStatement{}, err
	}

	if month == 0 {
		month = int(s.now().Month())
	}

	firstDate, lastDate := monthRange(s.now().Year(), time.Month(month))

	all, err := s.repo.ListByAccount(ctx, accountID)
	if err != nil {
		return domain.MonthStatement{}, err
	}

	movements := []domain.Movement{}

	for _, m := range all {
		if m.Date.Before(firstDate) || m.Date.After(lastDate) {
			continue
		}

		movements = append(movements, m)
	}

	return domain.MonthStatement{
		Account:   account,
		Movements: movements,
	}, nil
}

// monthRange returns the inclusive bounds of the month: the first instant
// of its first day and the last instant of its last day. December rolls
// the upper bound into January of the next year.
func monthRange(year int, month time.Month) (time.Time, time.Time) {
	firstDate := time.Date(year, month, 1, 0, 0, 0, 0, time.Local)
	lastDate := firstDate.AddDate(0, 1, 0).Add(-time.Nanosecond)

	return firstDate, lastDate
}
