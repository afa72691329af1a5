// Package account implements registration, authentication and credential
// management. There is no hidden session state: Authenticate returns the
// user and callers pass it into every later call.
package account

import (
	"fjacquet/homefinance/internal/config"
	"fjacquet/homefinance/internal/finerror"
	"fjacquet/homefinance/internal/models"
	"fjacquet/homefinance/internal/store"
	"fjacquet/homefinance/internal/validation"

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

// Service provides the account operations over the user store, with the
// wallet and category stores needed for the username-change cascade.
type Service struct {
	users      *store.UserStore
	wallets    *store.WalletStore
	categories *store.CategoryStore
}

// NewService creates an account service over the given stores.
func NewService(users *store.UserStore, wallets *store.WalletStore, categories *store.CategoryStore) *Service {
	return &Service{users: users, wallets: wallets, categories: categories}
}

func validateUsername(username string) error {
	if !validation.ValidLogin(username) {
		return &finerror.ValidationError{
			Field:  "username",
			Value:  username,
			Reason: "must be 4-20 letters, digits or underscores",
		}
	}
	return nil
}

func validatePassword(password string) error {
	if !validation.ValidPassword(password) {
		return &finerror.ValidationError{
			Field:  "password",
			Reason: "must be at least 6 characters",
		}
	}
	return nil
}

// Register creates a new user. The collection is only rewritten after the
// new record is appended in memory, so a failed save commits nothing.
func (s *Service) Register(username, password string) error {
	if err := validateUsername(username); err != nil {
		return err
	}
	if err := validatePassword(password); err != nil {
		return err
	}

	users, err := s.users.LoadAll()
	if err != nil {
		return err
	}

	for _, u := range users {
		if u.Username == username {
			return &finerror.ConflictError{Kind: "user", Name: username}
		}
	}

	users = append(users, models.User{Username: username, Password: password})
	if err := s.users.SaveAll(users); err != nil {
		return err
	}

	log.WithField("username", username).Info("User registered")
	return nil
}

// FindUser returns the user with the given username.
func (s *Service) FindUser(username string) (*models.User, error) {
	user, err := s.users.FindByUsername(username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, &finerror.NotFoundError{Kind: "user", Name: username}
	}
	return user, nil
}

// Authenticate checks the credentials and returns the matching user.
func (s *Service) Authenticate(username, password string) (*models.User, error) {
	if err := validateUsername(username); err != nil {
		return nil, err
	}
	if err := validatePassword(password); err != nil {
		return nil, err
	}

	user, err := s.users.FindByUsername(username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, &finerror.NotFoundError{Kind: "user", Name: username}
	}
	if user.Password != password {
		return nil, &finerror.BadCredentialError{Username: username}
	}

	log.WithField("username", username).Info("User authenticated")
	return user, nil
}

// ChangePassword replaces the password of the authenticated user. The
// in-memory session copy is updated only after the save succeeds.
func (s *Service) ChangePassword(user *models.User, oldPassword, newPassword string) error {
	if user.Password != oldPassword {
		return &finerror.BadCredentialError{Username: user.Username}
	}
	if err := validatePassword(newPassword); err != nil {
		return err
	}

	users, err := s.users.LoadAll()
	if err != nil {
		return err
	}

	found := false
	for i := range users {
		if users[i].Username == user.Username {
			users[i].Password = newPassword
			found = true
			break
		}
	}
	if !found {
		return &finerror.NotFoundError{Kind: "user", Name: user.Username}
	}

	if err := s.users.SaveAll(users); err != nil {
		return err
	}

	user.Password = newPassword
	log.WithField("username", user.Username).Info("Password changed")
	return nil
}

// ChangeUsername renames the authenticated user and cascades the new owner
// id into the wallet and category stores. The three files are rewritten in
// sequence without a cross-file transaction; a crash in between leaves a
// partially renamed state.
func (s *Service) ChangeUsername(user *models.User, newUsername string) error {
	if err := validateUsername(newUsername); err != nil {
		return err
	}

	existing, err := s.users.FindByUsername(newUsername)
	if err != nil {
		return err
	}
	if existing != nil {
		return &finerror.ConflictError{Kind: "user", Name: newUsername}
	}

	users, err := s.users.LoadAll()
	if err != nil {
		return err
	}

	found := false
	for i := range users {
		if users[i].Username == user.Username {
			users[i].Username = newUsername
			found = true
			break
		}
	}
	if !found {
		return &finerror.NotFoundError{Kind: "user", Name: user.Username}
	}

	if err := s.users.SaveAll(users); err != nil {
		return err
	}

	oldUsername := user.Username
	if err := s.wallets.Rename(oldUsername, newUsername); err != nil {
		return err
	}

	categories, err := s.categories.LoadAll()
	if err != nil {
		return err
	}
	for i := range categories {
		if categories[i].OwnerID == oldUsername {
			categories[i].OwnerID = newUsername
		}
	}
	if err := s.categories.SaveAll(categories); err != nil {
		return err
	}

	user.Username = newUsername
	log.WithFields(logrus.Fields{
		"old": oldUsername,
		"new": newUsername,
	}).Info("Username changed")
	return nil
}
