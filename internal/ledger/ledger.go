// Package ledger implements wallet, transaction and category management
// plus the budget aggregations. Every operation is a full read-modify-write
// cycle against the backing stores: load the collection, build the new
// value in memory, save, and only then report success.
package ledger

import (
	"fjacquet/homefinance/internal/config"
	"fjacquet/homefinance/internal/finerror"
	"fjacquet/homefinance/internal/store"
	"fjacquet/homefinance/internal/validation"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

// Use the centralized logger from config package
var log = config.Logger

// SetLogger allows setting a custom logger
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logger
	}
}

const maxNameLength = 50

// maxAmount bounds wallet balances and budget limits.
var maxAmount = decimal.New(1, 8) // 100,000,000

// Service provides the ledger operations over the wallet and category
// stores.
type Service struct {
	wallets    *store.WalletStore
	categories *store.CategoryStore
}

// NewService creates a ledger service over the given stores.
func NewService(wallets *store.WalletStore, categories *store.CategoryStore) *Service {
	return &Service{wallets: wallets, categories: categories}
}

func validateName(field, name string) error {
	if !validation.LengthAtMost(name, maxNameLength) {
		return &finerror.ValidationError{
			Field:  field,
			Value:  name,
			Reason: "must be non-empty and at most 50 characters",
		}
	}
	return nil
}

func validateAmountRange(field string, amount decimal.Decimal) error {
	if !validation.InRange(amount, decimal.Zero, maxAmount) {
		return &finerror.ValidationError{
			Field:  field,
			Value:  amount.String(),
			Reason: "must be between 0 and 100000000",
		}
	}
	return nil
}
