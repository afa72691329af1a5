package store

import (
	"path/filepath"

	"fjacquet/homefinance/internal/models"
)

// UserStore manages the global user collection file.
type UserStore struct {
	dir string
}

// NewUserStore creates a store rooted at the given data directory.
func NewUserStore(dir string) *UserStore {
	return &UserStore{dir: dir}
}

func (s *UserStore) path() string {
	return filepath.Join(s.dir, "users.json")
}

// LoadAll returns every registered user. A missing file yields an empty
// slice, never nil.
func (s *UserStore) LoadAll() ([]models.User, error) {
	return loadCollection[models.User](s.path())
}

// SaveAll rewrites the user collection.
func (s *UserStore) SaveAll(users []models.User) error {
	return saveCollection(s.path(), users)
}

// FindByUsername returns the user with the given username, or nil.
func (s *UserStore) FindByUsername(username string) (*models.User, error) {
	users, err := s.LoadAll()
	if err != nil {
		return nil, err
	}
	for i := range users {
		if users[i].Username == username {
			return &users[i], nil
		}
	}
	return nil, nil
}
