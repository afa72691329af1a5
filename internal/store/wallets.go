package store

import (
	"fmt"
	"os"
	"path/filepath"

	"fjacquet/homefinance/internal/finerror"
	"fjacquet/homefinance/internal/models"
)

// WalletStore manages one wallet collection file per owner.
type WalletStore struct {
	dir string
}

// NewWalletStore creates a store rooted at the given data directory.
func NewWalletStore(dir string) *WalletStore {
	return &WalletStore{dir: dir}
}

func (s *WalletStore) pathFor(ownerID string) string {
	return filepath.Join(s.dir, "wallets", fmt.Sprintf("wallets_%s.json", ownerID))
}

// LoadByOwner returns every wallet owned by ownerID. A missing file yields
// an empty slice, never nil.
func (s *WalletStore) LoadByOwner(ownerID string) ([]models.Wallet, error) {
	return loadCollection[models.Wallet](s.pathFor(ownerID))
}

// SaveForOwner rewrites the owner's wallet collection.
func (s *WalletStore) SaveForOwner(ownerID string, wallets []models.Wallet) error {
	return saveCollection(s.pathFor(ownerID), wallets)
}

// Rename moves the owner's wallet file to a new owner id, rewriting the
// ownerId field on every wallet. Used by the username-change cascade.
func (s *WalletStore) Rename(oldOwnerID, newOwnerID string) error {
	wallets, err := s.LoadByOwner(oldOwnerID)
	if err != nil {
		return err
	}

	for i := range wallets {
		wallets[i].OwnerID = newOwnerID
	}

	if err := s.SaveForOwner(newOwnerID, wallets); err != nil {
		return err
	}

	oldPath := s.pathFor(oldOwnerID)
	if err := os.Remove(oldPath); err != nil && !os.IsNotExist(err) {
		return &finerror.PersistenceError{Op: "remove", Path: oldPath, Err: err}
	}
	return nil
}
