package account

import (
	"errors"
	"path/filepath"
	"testing"

	"fjacquet/homefinance/internal/finerror"
	"fjacquet/homefinance/internal/models"
	"fjacquet/homefinance/internal/store"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T) (*Service, *store.WalletStore, *store.CategoryStore) {
	t.Helper()
	dir := t.TempDir()
	wallets := store.NewWalletStore(dir)
	categories := store.NewCategoryStore(dir)
	return NewService(store.NewUserStore(dir), wallets, categories), wallets, categories
}

func TestRegisterAndAuthenticate(t *testing.T) {
	s, _, _ := newTestService(t)

	require.NoError(t, s.Register("alice", "secret1"))

	user, err := s.Authenticate("alice", "secret1")
	require.NoError(t, err)
	assert.Equal(t, "alice", user.Username)
}

func TestRegister_Validation(t *testing.T) {
	s, _, _ := newTestService(t)

	tests := []struct {
		name     string
		username string
		password string
	}{
		{"too short username", "al", "secret1"},
		{"bad characters", "alice!", "secret1"},
		{"too long username", "a123456789012345678901", "secret1"},
		{"short password", "alice", "12345"},
		{"empty password", "alice", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := s.Register(tt.username, tt.password)
			var verr *finerror.ValidationError
			require.Error(t, err)
			assert.True(t, errors.As(err, &verr))
		})
	}
}

func TestRegister_Duplicate(t *testing.T) {
	s, _, _ := newTestService(t)
	require.NoError(t, s.Register("alice", "secret1"))

	err := s.Register("alice", "another1")
	var cerr *finerror.ConflictError
	require.Error(t, err)
	assert.True(t, errors.As(err, &cerr))
}

func TestAuthenticate_BadCredentials(t *testing.T) {
	s, _, _ := newTestService(t)
	require.NoError(t, s.Register("alice", "secret1"))

	_, err := s.Authenticate("alice", "wrong12")
	var berr *finerror.BadCredentialError
	require.Error(t, err)
	assert.True(t, errors.As(err, &berr))

	_, err = s.Authenticate("nobody", "secret1")
	var nerr *finerror.NotFoundError
	require.Error(t, err)
	assert.True(t, errors.As(err, &nerr))
}

func TestChangePassword(t *testing.T) {
	s, _, _ := newTestService(t)
	require.NoError(t, s.Register("alice", "secret1"))

	user, err := s.Authenticate("alice", "secret1")
	require.NoError(t, err)

	require.NoError(t, s.ChangePassword(user, "secret1", "newpass1"))
	assert.Equal(t, "newpass1", user.Password)

	// Old password no longer works, new one does.
	_, err = s.Authenticate("alice", "secret1")
	require.Error(t, err)
	_, err = s.Authenticate("alice", "newpass1")
	require.NoError(t, err)
}

func TestChangePassword_WrongOldPassword(t *testing.T) {
	s, _, _ := newTestService(t)
	require.NoError(t, s.Register("alice", "secret1"))
	user, err := s.Authenticate("alice", "secret1")
	require.NoError(t, err)

	err = s.ChangePassword(user, "wrong12", "newpass1")
	var berr *finerror.BadCredentialError
	require.Error(t, err)
	assert.True(t, errors.As(err, &berr))
	assert.Equal(t, "secret1", user.Password)
}

func TestChangeUsername_Cascades(t *testing.T) {
	s, wallets, categories := newTestService(t)
	require.NoError(t, s.Register("alice", "secret1"))
	user, err := s.Authenticate("alice", "secret1")
	require.NoError(t, err)

	w := models.NewWallet("alice", "Cash", decimal.NewFromInt(100))
	require.NoError(t, wallets.SaveForOwner("alice", []models.Wallet{w}))
	require.NoError(t, categories.ReplaceForOwner("alice", []models.Category{
		{OwnerID: "alice", Name: "Food", BudgetLimit: decimal.NewFromInt(50)},
	}))

	require.NoError(t, s.ChangeUsername(user, "alice_2"))
	assert.Equal(t, "alice_2", user.Username)

	// Old name is gone, credentials carry over.
	_, err = s.FindUser("alice")
	require.Error(t, err)
	_, err = s.Authenticate("alice_2", "secret1")
	require.NoError(t, err)

	// Wallet file moved and its records point at the new owner.
	moved, err := wallets.LoadByOwner("alice_2")
	require.NoError(t, err)
	require.Len(t, moved, 1)
	assert.Equal(t, "alice_2", moved[0].OwnerID)
	assert.Equal(t, "Cash", moved[0].Name)

	old, err := wallets.LoadByOwner("alice")
	require.NoError(t, err)
	assert.Empty(t, old)

	cats, err := categories.LoadByOwner("alice_2")
	require.NoError(t, err)
	require.Len(t, cats, 1)
	assert.Equal(t, "Food", cats[0].Name)
}

func TestChangeUsername_Taken(t *testing.T) {
	s, _, _ := newTestService(t)
	require.NoError(t, s.Register("alice", "secret1"))
	require.NoError(t, s.Register("bob_42", "secret1"))
	user, err := s.Authenticate("alice", "secret1")
	require.NoError(t, err)

	err = s.ChangeUsername(user, "bob_42")
	var cerr *finerror.ConflictError
	require.Error(t, err)
	assert.True(t, errors.As(err, &cerr))
	assert.Equal(t, "alice", user.Username)
}

func TestFindUser(t *testing.T) {
	s, _, _ := newTestService(t)
	require.NoError(t, s.Register("alice", "secret1"))

	user, err := s.FindUser("alice")
	require.NoError(t, err)
	assert.Equal(t, "alice", user.Username)

	_, err = s.FindUser("ghost")
	var nerr *finerror.NotFoundError
	require.Error(t, err)
	assert.True(t, errors.As(err, &nerr))
}

func TestUserFileName(t *testing.T) {
	dir := t.TempDir()
	s := NewService(store.NewUserStore(dir), store.NewWalletStore(dir), store.NewCategoryStore(dir))
	require.NoError(t, s.Register("alice", "secret1"))
	assert.FileExists(t, filepath.Join(dir, "users.json"))
}
