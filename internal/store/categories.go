package store

import (
	"path/filepath"

	"fjacquet/homefinance/internal/models"
)

// CategoryStore manages the global category collection file. Categories
// of all users live in one file; per-owner views are filtered on load.
type CategoryStore struct {
	dir string
}

// NewCategoryStore creates a store rooted at the given data directory.
func NewCategoryStore(dir string) *CategoryStore {
	return &CategoryStore{dir: dir}
}

func (s *CategoryStore) path() string {
	return filepath.Join(s.dir, "categories.json")
}

// LoadAll returns every category of every user.
func (s *CategoryStore) LoadAll() ([]models.Category, error) {
	return loadCollection[models.Category](s.path())
}

// LoadByOwner returns the categories owned by ownerID.
func (s *CategoryStore) LoadByOwner(ownerID string) ([]models.Category, error) {
	all, err := s.LoadAll()
	if err != nil {
		return nil, err
	}
	owned := []models.Category{}
	for _, c := range all {
		if c.OwnerID == ownerID {
			owned = append(owned, c)
		}
	}
	return owned, nil
}

// SaveAll rewrites the whole category collection.
func (s *CategoryStore) SaveAll(categories []models.Category) error {
	return saveCollection(s.path(), categories)
}

// ReplaceForOwner swaps out the owner's categories inside the global file,
// leaving other users' records untouched.
func (s *CategoryStore) ReplaceForOwner(ownerID string, categories []models.Category) error {
	all, err := s.LoadAll()
	if err != nil {
		return err
	}

	merged := []models.Category{}
	for _, c := range all {
		if c.OwnerID != ownerID {
			merged = append(merged, c)
		}
	}
	merged = append(merged, categories...)

	return s.SaveAll(merged)
}
