// Package accountservice manages business logic layer of accounts.
package accountservice

import (
	"context"

	"github.com/gustavoschneider/simple-code-challenge/internal/domain"
)

// Repo provides data access layer interface needed by account service layer.
type Repo interface {
	Get(ctx context.Context, id int64) (domain.Account, error)
}

// Service facilitates account service layer logic.
type Service struct {
	repo Repo
}

// New returns account service struct to manage account bussines logic.
func New(ar Repo) *Service {
	return &Service{repo: ar}
}

// Get returns account for the given account ID.
func (s *Service) Get(ctx context.Context, id int64) (domain.Account, error) {
	account, err := s.repo.Get(ctx, id)
	if err != nil {
		return account, err
	}

	return account, nil
}
