// Package membank provides the process-memory database shared by the
// repository layers. All state lives here and is reset on restart.
package membank

import (
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/gustavoschneider/simple-code-challenge/internal/domain"
)

// DB holds every account record and every per-account movement list.
//
// Mu serializes all access: the funds check, the balance mutation and the
// movement append of a transfer must form one critical section, and reads
// must never observe a transfer halfway through. Repositories lock Mu and
// hand out copies only, never interior pointers.
type DB struct {
	Mu        sync.Mutex
	Accounts  []domain.Account
	Movements map[int64][]domain.Movement

	// Now stamps new movements. Tests swap it for a fixed clock.
	Now func() time.Time
}

// Setup returns a DB seeded with the single client account.
func Setup() *DB {
	return &DB{
		Accounts: []domain.Account{
			{
				ID:      1,
				Balance: decimal.NewFromFloat(1000.00),
				Savings: decimal.NewFromFloat(1.00),
			},
		},
		Movements: make(map[int64][]domain.Movement),
		Now:       time.Now,
	}
}
