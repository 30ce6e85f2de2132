package accountservice

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gustavoschneider/simple-code-challenge/internal/accountrepo"
	"github.com/gustavoschneider/simple-code-challenge/internal/domain"
	"github.com/gustavoschneider/simple-code-challenge/internal/membank"
)

func TestGet(t *testing.T) {
	db := membank.Setup()
	service := New(accountrepo.NewRepoMem(db))

	account, err := service.Get(context.Background(), 1)
	require.NoError(t, err)
	require.Equal(t, db.Accounts[0], account)

	_, err = service.Get(context.Background(), 42)
	require.ErrorIs(t, err, domain.ErrAccountNotFound)
}
