package ledger

import (
	"errors"
	"testing"

	"fjacquet/homefinance/internal/finerror"
	"fjacquet/homefinance/internal/models"
	"fjacquet/homefinance/internal/store"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	dir := t.TempDir()
	return NewService(store.NewWalletStore(dir), store.NewCategoryStore(dir))
}

func testUser(name string) *models.User {
	return &models.User{Username: name, Password: "secret1"}
}

func dec(v int64) decimal.Decimal {
	return decimal.NewFromInt(v)
}

func walletBalance(t *testing.T, s *Service, user *models.User, name string) decimal.Decimal {
	t.Helper()
	wallets, err := s.ListWallets(user)
	require.NoError(t, err)
	for _, w := range wallets {
		if w.Name == name {
			return w.Balance
		}
	}
	t.Fatalf("wallet %s not found", name)
	return decimal.Zero
}

func TestAddWallet(t *testing.T) {
	s := newTestService(t)
	alice := testUser("alice")

	require.NoError(t, s.AddWallet(alice, "Cash", dec(100)))

	wallets, err := s.ListWallets(alice)
	require.NoError(t, err)
	require.Len(t, wallets, 1)
	assert.Equal(t, "Cash", wallets[0].Name)
	assert.Equal(t, "alice", wallets[0].OwnerID)
	assert.True(t, wallets[0].Balance.Equal(dec(100)))
}

func TestAddWallet_Validation(t *testing.T) {
	s := newTestService(t)
	alice := testUser("alice")

	var verr *finerror.ValidationError

	err := s.AddWallet(alice, "", dec(10))
	require.Error(t, err)
	assert.True(t, errors.As(err, &verr))

	err = s.AddWallet(alice, "Cash", dec(-1))
	require.Error(t, err)
	assert.True(t, errors.As(err, &verr))

	err = s.AddWallet(alice, "Cash", decimal.New(2, 8))
	require.Error(t, err)
	assert.True(t, errors.As(err, &verr))
}

func TestAddWallet_DuplicateLeavesStoreUnchanged(t *testing.T) {
	s := newTestService(t)
	alice := testUser("alice")
	require.NoError(t, s.AddWallet(alice, "Cash", dec(100)))

	err := s.AddWallet(alice, "Cash", dec(5))
	var cerr *finerror.ConflictError
	require.Error(t, err)
	assert.True(t, errors.As(err, &cerr))

	wallets, err := s.ListWallets(alice)
	require.NoError(t, err)
	require.Len(t, wallets, 1)
	assert.True(t, wallets[0].Balance.Equal(dec(100)))
}

func TestRemoveWallet(t *testing.T) {
	s := newTestService(t)
	alice := testUser("alice")
	require.NoError(t, s.AddWallet(alice, "Cash", dec(100)))
	require.NoError(t, s.AddWallet(alice, "Card", dec(50)))

	require.NoError(t, s.RemoveWallet(alice, "Cash"))

	wallets, err := s.ListWallets(alice)
	require.NoError(t, err)
	require.Len(t, wallets, 1)
	assert.Equal(t, "Card", wallets[0].Name)

	var nerr *finerror.NotFoundError
	err = s.RemoveWallet(alice, "Cash")
	require.Error(t, err)
	assert.True(t, errors.As(err, &nerr))
}

func TestRenameWallet(t *testing.T) {
	s := newTestService(t)
	alice := testUser("alice")
	require.NoError(t, s.AddWallet(alice, "Cash", dec(100)))
	require.NoError(t, s.AddWallet(alice, "Card", dec(50)))

	require.NoError(t, s.RenameWallet(alice, "Cash", "Pocket"))
	assert.True(t, walletBalance(t, s, alice, "Pocket").Equal(dec(100)))

	// Renaming onto an existing name conflicts.
	var cerr *finerror.ConflictError
	err := s.RenameWallet(alice, "Pocket", "Card")
	require.Error(t, err)
	assert.True(t, errors.As(err, &cerr))
}

func TestSetWalletBalance(t *testing.T) {
	s := newTestService(t)
	alice := testUser("alice")
	require.NoError(t, s.AddWallet(alice, "Cash", dec(100)))

	require.NoError(t, s.SetWalletBalance(alice, "Cash", dec(75)))
	assert.True(t, walletBalance(t, s, alice, "Cash").Equal(dec(75)))

	var nerr *finerror.NotFoundError
	err := s.SetWalletBalance(alice, "Nope", dec(10))
	require.Error(t, err)
	assert.True(t, errors.As(err, &nerr))
}

func TestTransfer(t *testing.T) {
	s := newTestService(t)
	alice := testUser("alice")
	bob := testUser("bob_42")
	require.NoError(t, s.AddWallet(alice, "Cash", dec(100)))
	require.NoError(t, s.AddWallet(bob, "Card", dec(10)))

	require.NoError(t, s.Transfer(alice, "Cash", bob, "Card", dec(40)))

	assert.True(t, walletBalance(t, s, alice, "Cash").Equal(dec(60)))
	assert.True(t, walletBalance(t, s, bob, "Card").Equal(dec(50)))
}

func TestTransfer_SameOwner(t *testing.T) {
	s := newTestService(t)
	alice := testUser("alice")
	require.NoError(t, s.AddWallet(alice, "Cash", dec(100)))
	require.NoError(t, s.AddWallet(alice, "Savings", dec(0)))

	require.NoError(t, s.Transfer(alice, "Cash", alice, "Savings", dec(25)))

	assert.True(t, walletBalance(t, s, alice, "Cash").Equal(dec(75)))
	assert.True(t, walletBalance(t, s, alice, "Savings").Equal(dec(25)))
}

func TestTransfer_InsufficientFunds(t *testing.T) {
	s := newTestService(t)
	alice := testUser("alice")
	bob := testUser("bob_42")
	require.NoError(t, s.AddWallet(alice, "Cash", dec(30)))
	require.NoError(t, s.AddWallet(bob, "Card", dec(10)))

	err := s.Transfer(alice, "Cash", bob, "Card", dec(40))
	var ferr *finerror.InsufficientFundsError
	require.Error(t, err)
	assert.True(t, errors.As(err, &ferr))

	// Neither balance changed.
	assert.True(t, walletBalance(t, s, alice, "Cash").Equal(dec(30)))
	assert.True(t, walletBalance(t, s, bob, "Card").Equal(dec(10)))
}

func TestTransfer_Validation(t *testing.T) {
	s := newTestService(t)
	alice := testUser("alice")
	require.NoError(t, s.AddWallet(alice, "Cash", dec(30)))

	var verr *finerror.ValidationError
	err := s.Transfer(alice, "Cash", alice, "Cash", dec(0))
	require.Error(t, err)
	assert.True(t, errors.As(err, &verr))

	var nerr *finerror.NotFoundError
	err = s.Transfer(alice, "Nope", alice, "Cash", dec(5))
	require.Error(t, err)
	assert.True(t, errors.As(err, &nerr))

	// Transfer onto itself is rejected.
	err = s.Transfer(alice, "Cash", alice, "Cash", dec(5))
	require.Error(t, err)
	assert.True(t, errors.As(err, &nerr))
}
