// Package movementrepo manages repository layer of movements.
package movementrepo

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/gustavoschneider/simple-code-challenge/internal/domain"
	"github.com/gustavoschneider/simple-code-challenge/internal/membank"
)

// RepoMem facilitates movement repository layer logic over the
// process-memory database. It is the sole mutator of account balances:
// every balance change happens together with a movement append inside
// one critical section.
type RepoMem struct {
	db *membank.DB
}

// NewRepoMem returns movement RepoMem.
func NewRepoMem(db *membank.DB) *RepoMem {
	return &RepoMem{
		db: db,
	}
}

// DepositToSavings moves the amount from the account balance into savings
// and records the movement.
func (r *RepoMem) DepositToSavings(ctx context.Context, arg domain.CreateMovementParams) (domain.Movement, error) {
	return r.transfer(ctx, arg, true)
}

// WithdrawFromSavings moves the amount from the account savings back into
// the balance and records the movement.
func (r *RepoMem) WithdrawFromSavings(ctx context.Context, arg domain.CreateMovementParams) (domain.Movement, error) {
	return r.transfer(ctx, arg, false)
}

// transfer performs lookup, funds check, balance mutation and movement
// append as a single critical section. Nothing is mutated on failure.
func (r *RepoMem) transfer(ctx context.Context, arg domain.CreateMovementParams, toSavings bool) (domain.Movement, error) {
	l := zerolog.Ctx(ctx)

	r.db.Mu.Lock()
	defer r.db.Mu.Unlock()

	var account *domain.Account

	for i := range r.db.Accounts {
		if r.db.Accounts[i].ID == arg.AccountID {
			account = &r.db.Accounts[i]
			break
		}
	}

	if account == nil {
		l.Info().Int64("account_id", arg.AccountID).Msg("account not found")
		return domain.Movement{}, domain.ErrAccountNotFound
	}

	// The source bucket must strictly exceed the amount; transferring
	// the exact balance is rejected.
	if toSavings {
		if account.Balance.LessThanOrEqual(arg.Amount) {
			l.Info().Err(domain.ErrInsufficientFunds).Send()
			return domain.Movement{}, domain.ErrInsufficientFunds
		}
	} else {
		if account.Savings.LessThanOrEqual(arg.Amount) {
			l.Info().Err(domain.ErrInsufficientSavings).Send()
			return domain.Movement{}, domain.ErrInsufficientSavings
		}
	}

	movements := r.db.Movements[arg.AccountID]

	var maxID int64
	for _, m := range movements {
		if m.ID > maxID {
			maxID = m.ID
		}
	}

	movement := domain.Movement{
		ID:     maxID + 1,
		Amount: arg.Amount,
		Date:   r.db.Now(),
	}

	if toSavings {
		account.Balance = account.Balance.Sub(arg.Amount)
		account.Savings = account.Savings.Add(arg.Amount)
		movement.Description = domain.DescriptionToSavings
	} else {
		account.Savings = account.Savings.Sub(arg.Amount)
		account.Balance = account.Balance.Add(arg.Amount)
		movement.Description = domain.DescriptionToBalance
	}

	r.db.Movements[arg.AccountID] = append(movements, movement)

	return movement, nil
}

// ListByAccount returns a copy of the account's movements in insertion order.
func (r *RepoMem) ListByAccount(ctx context.Context, accountID int64) ([]domain.Movement, error) {
	r.db.Mu.Lock()
	defer r.db.Mu.Unlock()

	movements := make([]domain.Movement, len(r.db.Movements[accountID]))
	copy(movements, r.db.Movements[accountID])

	return movements, nil
}
