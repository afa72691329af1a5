package ledger

import (
	"fjacquet/homefinance/internal/finerror"
	"fjacquet/homefinance/internal/models"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

// AddWallet creates a wallet for the user with the given initial balance.
func (s *Service) AddWallet(user *models.User, name string, initialBalance decimal.Decimal) error {
	if err := validateName("wallet name", name); err != nil {
		return err
	}
	if err := validateAmountRange("balance", initialBalance); err != nil {
		return err
	}

	wallets, err := s.wallets.LoadByOwner(user.Username)
	if err != nil {
		return err
	}

	for _, w := range wallets {
		if w.Name == name {
			return &finerror.ConflictError{Kind: "wallet", Name: name}
		}
	}

	wallets = append(wallets, models.NewWallet(user.Username, name, initialBalance))
	if err := s.wallets.SaveForOwner(user.Username, wallets); err != nil {
		return err
	}

	log.WithFields(logrus.Fields{
		"owner":  user.Username,
		"wallet": name,
	}).Info("Wallet added")
	return nil
}

// RemoveWallet deletes the named wallet and all its transactions.
func (s *Service) RemoveWallet(user *models.User, name string) error {
	wallets, err := s.wallets.LoadByOwner(user.Username)
	if err != nil {
		return err
	}

	remaining := wallets[:0]
	found := false
	for _, w := range wallets {
		if w.Name == name {
			found = true
			continue
		}
		remaining = append(remaining, w)
	}
	if !found {
		return &finerror.NotFoundError{Kind: "wallet", Name: name}
	}

	if err := s.wallets.SaveForOwner(user.Username, remaining); err != nil {
		return err
	}

	log.WithFields(logrus.Fields{
		"owner":  user.Username,
		"wallet": name,
	}).Info("Wallet removed")
	return nil
}

// RenameWallet changes a wallet's name. The new name must be unused within
// the owner's scope.
func (s *Service) RenameWallet(user *models.User, currentName, newName string) error {
	if err := validateName("wallet name", newName); err != nil {
		return err
	}

	wallets, err := s.wallets.LoadByOwner(user.Username)
	if err != nil {
		return err
	}

	target := -1
	for i, w := range wallets {
		if w.Name == newName {
			return &finerror.ConflictError{Kind: "wallet", Name: newName}
		}
		if w.Name == currentName {
			target = i
		}
	}
	if target < 0 {
		return &finerror.NotFoundError{Kind: "wallet", Name: currentName}
	}

	wallets[target].Name = newName
	return s.wallets.SaveForOwner(user.Username, wallets)
}

// SetWalletBalance overwrites a wallet's balance. The transactions are
// left as they are, so this effectively resets the initial balance.
func (s *Service) SetWalletBalance(user *models.User, name string, balance decimal.Decimal) error {
	if err := validateAmountRange("balance", balance); err != nil {
		return err
	}

	wallets, err := s.wallets.LoadByOwner(user.Username)
	if err != nil {
		return err
	}

	for i := range wallets {
		if wallets[i].Name == name {
			wallets[i].Balance = balance
			return s.wallets.SaveForOwner(user.Username, wallets)
		}
	}
	return &finerror.NotFoundError{Kind: "wallet", Name: name}
}

// ListWallets returns every wallet owned by the user.
func (s *Service) ListWallets(user *models.User) ([]models.Wallet, error) {
	return s.wallets.LoadByOwner(user.Username)
}

// Transfer moves amount from one wallet to another, possibly across users.
// The two owner files are saved one after the other; there is no cross-file
// transaction, so a crash between the saves leaves the pair inconsistent.
func (s *Service) Transfer(fromUser *models.User, fromWallet string, toUser *models.User, toWallet string, amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return &finerror.ValidationError{
			Field:  "amount",
			Value:  amount.String(),
			Reason: "transfer amount must be positive",
		}
	}

	senderWallets, err := s.wallets.LoadByOwner(fromUser.Username)
	if err != nil {
		return err
	}
	sender := findWallet(senderWallets, fromWallet)
	if sender == nil {
		return &finerror.NotFoundError{Kind: "wallet", Name: fromWallet}
	}

	sameOwner := fromUser.Username == toUser.Username
	receiverWallets := senderWallets
	if !sameOwner {
		receiverWallets, err = s.wallets.LoadByOwner(toUser.Username)
		if err != nil {
			return err
		}
	}
	receiver := findWallet(receiverWallets, toWallet)
	if receiver == nil || (sameOwner && fromWallet == toWallet) {
		return &finerror.NotFoundError{Kind: "wallet", Name: toWallet}
	}

	if sender.Balance.LessThan(amount) {
		return &finerror.InsufficientFundsError{
			Wallet:  fromWallet,
			Balance: sender.Balance.StringFixed(2),
			Amount:  amount.StringFixed(2),
		}
	}

	sender.Balance = sender.Balance.Sub(amount)
	receiver.Balance = receiver.Balance.Add(amount)

	if err := s.wallets.SaveForOwner(fromUser.Username, senderWallets); err != nil {
		return err
	}
	if !sameOwner {
		if err := s.wallets.SaveForOwner(toUser.Username, receiverWallets); err != nil {
			return err
		}
	}

	log.WithFields(logrus.Fields{
		"from":   fromUser.Username + "/" + fromWallet,
		"to":     toUser.Username + "/" + toWallet,
		"amount": amount.StringFixed(2),
	}).Info("Transfer completed")
	return nil
}

func findWallet(wallets []models.Wallet, name string) *models.Wallet {
	for i := range wallets {
		if wallets[i].Name == name {
			return &wallets[i]
		}
	}
	return nil
}
