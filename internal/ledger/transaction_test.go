package ledger

import (
	"errors"
	"math/rand"
	"testing"

	"fjacquet/homefinance/internal/finerror"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddTransaction(t *testing.T) {
	s := newTestService(t)
	alice := testUser("alice")
	require.NoError(t, s.AddWallet(alice, "Cash", dec(100)))

	require.NoError(t, s.AddTransaction(alice, "Cash", dec(20), "Food", false))
	require.NoError(t, s.AddTransaction(alice, "Cash", dec(50), "Salary", true))

	assert.True(t, walletBalance(t, s, alice, "Cash").Equal(dec(130)))

	txs, err := s.ListTransactions(alice, "Cash")
	require.NoError(t, err)
	require.Len(t, txs, 2)
	assert.True(t, txs[0].Amount.Equal(dec(-20)), "expense is stored negative")
	assert.True(t, txs[1].Amount.Equal(dec(50)))
}

func TestAddTransaction_MissingCategoryTolerated(t *testing.T) {
	s := newTestService(t)
	alice := testUser("alice")
	require.NoError(t, s.AddWallet(alice, "Cash", dec(100)))

	// No category record named "Mystery" exists; the name is kept as-is.
	require.NoError(t, s.AddTransaction(alice, "Cash", dec(10), "Mystery", false))

	txs, err := s.ListTransactions(alice, "Cash")
	require.NoError(t, err)
	require.Len(t, txs, 1)
	assert.Equal(t, "Mystery", txs[0].Category.Name)
}

func TestAddTransaction_CopiesCategoryLimit(t *testing.T) {
	s := newTestService(t)
	alice := testUser("alice")
	require.NoError(t, s.AddWallet(alice, "Cash", dec(100)))
	require.NoError(t, s.AddCategory(alice, "Food", dec(200)))

	require.NoError(t, s.AddTransaction(alice, "Cash", dec(10), "Food", false))

	txs, err := s.ListTransactions(alice, "Cash")
	require.NoError(t, err)
	require.Len(t, txs, 1)
	assert.True(t, txs[0].Category.BudgetLimit.Equal(dec(200)))
}

func TestAddTransaction_Errors(t *testing.T) {
	s := newTestService(t)
	alice := testUser("alice")
	require.NoError(t, s.AddWallet(alice, "Cash", dec(100)))

	var verr *finerror.ValidationError
	err := s.AddTransaction(alice, "Cash", dec(0), "Food", false)
	require.Error(t, err)
	assert.True(t, errors.As(err, &verr))

	err = s.AddTransaction(alice, "Cash", dec(-5), "Food", false)
	require.Error(t, err)
	assert.True(t, errors.As(err, &verr))

	var nerr *finerror.NotFoundError
	err = s.AddTransaction(alice, "Nope", dec(5), "Food", false)
	require.Error(t, err)
	assert.True(t, errors.As(err, &nerr))
}

func TestDeleteTransaction(t *testing.T) {
	s := newTestService(t)
	alice := testUser("alice")
	require.NoError(t, s.AddWallet(alice, "Cash", dec(100)))
	require.NoError(t, s.AddTransaction(alice, "Cash", dec(20), "Food", false))

	txs, err := s.ListTransactions(alice, "Cash")
	require.NoError(t, err)
	require.Len(t, txs, 1)

	require.NoError(t, s.DeleteTransaction(alice, "Cash", txs[0].ID))
	assert.True(t, walletBalance(t, s, alice, "Cash").Equal(dec(100)))

	var nerr *finerror.NotFoundError
	err = s.DeleteTransaction(alice, "Cash", txs[0].ID)
	require.Error(t, err)
	assert.True(t, errors.As(err, &nerr))
}

func TestEditTransaction_AdjustsBalance(t *testing.T) {
	s := newTestService(t)
	alice := testUser("alice")
	require.NoError(t, s.AddWallet(alice, "Cash", dec(100)))
	require.NoError(t, s.AddTransaction(alice, "Cash", dec(20), "Food", false))
	require.True(t, walletBalance(t, s, alice, "Cash").Equal(dec(80)))

	txs, err := s.ListTransactions(alice, "Cash")
	require.NoError(t, err)

	// Growing the expense from -20 to -50 must move the balance 80 -> 50.
	require.NoError(t, s.EditTransaction(alice, "Cash", txs[0].ID, dec(-50), "Food", "2025-01-15"))
	assert.True(t, walletBalance(t, s, alice, "Cash").Equal(dec(50)))

	txs, err = s.ListTransactions(alice, "Cash")
	require.NoError(t, err)
	assert.True(t, txs[0].Amount.Equal(dec(-50)))
	assert.Equal(t, "2025-01-15", txs[0].Date)
}

func TestEditTransaction_Errors(t *testing.T) {
	s := newTestService(t)
	alice := testUser("alice")
	require.NoError(t, s.AddWallet(alice, "Cash", dec(100)))
	require.NoError(t, s.AddTransaction(alice, "Cash", dec(20), "Food", false))

	txs, err := s.ListTransactions(alice, "Cash")
	require.NoError(t, err)
	id := txs[0].ID

	var verr *finerror.ValidationError
	err = s.EditTransaction(alice, "Cash", id, dec(-50), "Food", "15.01.2025")
	require.Error(t, err)
	assert.True(t, errors.As(err, &verr))

	err = s.EditTransaction(alice, "Cash", id, dec(0), "Food", "2025-01-15")
	require.Error(t, err)
	assert.True(t, errors.As(err, &verr))

	var nerr *finerror.NotFoundError
	err = s.EditTransaction(alice, "Cash", "missing", dec(-50), "Food", "2025-01-15")
	require.Error(t, err)
	assert.True(t, errors.As(err, &nerr))

	// Failed edits leave the balance untouched.
	assert.True(t, walletBalance(t, s, alice, "Cash").Equal(dec(80)))
}

// TestBalanceInvariant_RandomSequence drives a random add/edit/delete
// sequence and checks after every step that the balance equals the
// initial balance plus the sum of the surviving transaction amounts.
func TestBalanceInvariant_RandomSequence(t *testing.T) {
	s := newTestService(t)
	alice := testUser("alice")
	initial := dec(1000)
	require.NoError(t, s.AddWallet(alice, "Cash", initial))

	rng := rand.New(rand.NewSource(1))

	checkInvariant := func() {
		txs, err := s.ListTransactions(alice, "Cash")
		require.NoError(t, err)
		sum := decimal.Zero
		for _, tx := range txs {
			sum = sum.Add(tx.Amount)
		}
		assert.True(t, walletBalance(t, s, alice, "Cash").Equal(initial.Add(sum)))
	}

	var ids []string
	for i := 0; i < 60; i++ {
		txs, err := s.ListTransactions(alice, "Cash")
		require.NoError(t, err)
		ids = ids[:0]
		for _, tx := range txs {
			ids = append(ids, tx.ID)
		}

		switch op := rng.Intn(3); {
		case op == 0 || len(ids) == 0:
			amount := dec(int64(rng.Intn(500) + 1))
			require.NoError(t, s.AddTransaction(alice, "Cash", amount, "Misc", rng.Intn(2) == 0))
		case op == 1:
			id := ids[rng.Intn(len(ids))]
			newAmount := dec(int64(rng.Intn(999) - 499))
			if newAmount.IsZero() {
				newAmount = dec(1)
			}
			require.NoError(t, s.EditTransaction(alice, "Cash", id, newAmount, "Misc", "2025-06-01"))
		default:
			id := ids[rng.Intn(len(ids))]
			require.NoError(t, s.DeleteTransaction(alice, "Cash", id))
		}

		checkInvariant()
	}
}
