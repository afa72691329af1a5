package ledger

import (
	"fjacquet/homefinance/internal/finerror"
	"fjacquet/homefinance/internal/models"
	"fjacquet/homefinance/internal/validation"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

// AddTransaction records an income or expense on the named wallet. The
// amount is entered as a positive number and the sign is applied from
// isIncome. A category record is not required to exist; the name is
// recorded as given, with the limit copied in when the record does exist.
func (s *Service) AddTransaction(user *models.User, walletName string, amount decimal.Decimal, categoryName string, isIncome bool) error {
	if !amount.IsPositive() {
		return &finerror.ValidationError{
			Field:  "amount",
			Value:  amount.String(),
			Reason: "must be a positive number",
		}
	}
	if !validation.NonEmpty(categoryName) {
		return &finerror.ValidationError{Field: "category", Reason: "must not be empty"}
	}

	wallets, err := s.wallets.LoadByOwner(user.Username)
	if err != nil {
		return err
	}
	wallet := findWallet(wallets, walletName)
	if wallet == nil {
		return &finerror.NotFoundError{Kind: "wallet", Name: walletName}
	}

	signed := amount
	if !isIncome {
		signed = amount.Neg()
	}

	tx := models.NewTransaction(signed, categoryName)
	if category, err := s.findCategory(user.Username, categoryName); err != nil {
		return err
	} else if category != nil {
		tx.Category.BudgetLimit = category.BudgetLimit
	}

	wallet.AddTransaction(tx)
	if err := s.wallets.SaveForOwner(user.Username, wallets); err != nil {
		return err
	}

	log.WithFields(logrus.Fields{
		"owner":    user.Username,
		"wallet":   walletName,
		"amount":   signed.StringFixed(2),
		"category": categoryName,
	}).Info("Transaction added")
	return nil
}

// DeleteTransaction removes the transaction with the given id and backs
// its amount out of the wallet balance.
func (s *Service) DeleteTransaction(user *models.User, walletName, id string) error {
	wallets, err := s.wallets.LoadByOwner(user.Username)
	if err != nil {
		return err
	}
	wallet := findWallet(wallets, walletName)
	if wallet == nil {
		return &finerror.NotFoundError{Kind: "wallet", Name: walletName}
	}

	if !wallet.RemoveTransaction(id) {
		return &finerror.NotFoundError{Kind: "transaction", Name: id}
	}

	if err := s.wallets.SaveForOwner(user.Username, wallets); err != nil {
		return err
	}

	log.WithFields(logrus.Fields{
		"owner":  user.Username,
		"wallet": walletName,
		"id":     id,
	}).Info("Transaction deleted")
	return nil
}

// EditTransaction replaces a transaction's amount, category and date. The
// wallet balance is adjusted by the difference between the new and old
// amounts so the balance invariant holds after the edit.
func (s *Service) EditTransaction(user *models.User, walletName, id string, newAmount decimal.Decimal, newCategoryName, newDate string) error {
	if newAmount.IsZero() {
		return &finerror.ValidationError{Field: "amount", Reason: "must not be zero"}
	}
	if !validation.ValidDate(newDate, models.DateLayout) {
		return &finerror.ValidationError{
			Field:  "date",
			Value:  newDate,
			Reason: "expected format " + models.DateLayout,
		}
	}
	if !validation.NonEmpty(newCategoryName) {
		return &finerror.ValidationError{Field: "category", Reason: "must not be empty"}
	}

	wallets, err := s.wallets.LoadByOwner(user.Username)
	if err != nil {
		return err
	}
	wallet := findWallet(wallets, walletName)
	if wallet == nil {
		return &finerror.NotFoundError{Kind: "wallet", Name: walletName}
	}

	tx := wallet.FindTransaction(id)
	if tx == nil {
		return &finerror.NotFoundError{Kind: "transaction", Name: id}
	}

	delta := newAmount.Sub(tx.Amount)
	tx.Amount = newAmount
	tx.Category = models.TransactionCategory{Name: newCategoryName, BudgetLimit: decimal.Zero}
	if category, err := s.findCategory(user.Username, newCategoryName); err != nil {
		return err
	} else if category != nil {
		tx.Category.BudgetLimit = category.BudgetLimit
	}
	tx.Date = newDate
	wallet.Balance = wallet.Balance.Add(delta)

	if err := s.wallets.SaveForOwner(user.Username, wallets); err != nil {
		return err
	}

	log.WithFields(logrus.Fields{
		"owner":  user.Username,
		"wallet": walletName,
		"id":     id,
		"delta":  delta.StringFixed(2),
	}).Info("Transaction edited")
	return nil
}

// ListTransactions returns the transactions of the named wallet in
// insertion order.
func (s *Service) ListTransactions(user *models.User, walletName string) ([]models.Transaction, error) {
	wallets, err := s.wallets.LoadByOwner(user.Username)
	if err != nil {
		return nil, err
	}
	wallet := findWallet(wallets, walletName)
	if wallet == nil {
		return nil, &finerror.NotFoundError{Kind: "wallet", Name: walletName}
	}
	return wallet.Transactions, nil
}
