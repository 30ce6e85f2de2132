// Package accountrepo manages repository layer of accounts.
package accountrepo

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/gustavoschneider/simple-code-challenge/internal/domain"
	"github.com/gustavoschneider/simple-code-challenge/internal/membank"
)

// RepoMem facilitates account repository layer logic over the
// process-memory database.
type RepoMem struct {
	db *membank.DB
}

// NewRepoMem returns account RepoMem.
func NewRepoMem(db *membank.DB) *RepoMem {
	return &RepoMem{
		db: db,
	}
}

// Get returns a snapshot of the account with the given id.
func (r *RepoMem) Get(ctx context.Context, id int64) (domain.Account, error) {
	l := zerolog.Ctx(ctx)

	r.db.Mu.Lock()
	defer r.db.Mu.Unlock()

	for i := range r.db.Accounts {
		if r.db.Accounts[i].ID == id {
			return r.db.Accounts[i], nil
		}
	}

	l.Info().Int64("account_id", id).Msg("account not found")

	return domain.Account{}, domain.ErrAccountNotFound
}
