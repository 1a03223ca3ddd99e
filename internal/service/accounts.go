package service

import (
	"context"
	"database/sql"
	"errors"
	"log"
	"unicode/utf8"

	"github.com/npezzotti/go-social/internal/database"
)

const minPasswordLength = 4

type AccountService struct {
	log  *log.Logger
	repo database.SocialRepository
}

func NewAccountService(logger *log.Logger, repo database.SocialRepository) *AccountService {
	return &AccountService{
		log:  logger,
		repo: repo,
	}
}

func (s *AccountService) storageErr(op string, err error) error {
	s.log.Printf("%s: %v", op, err)
	return &StorageError{Op: op, Err: err}
}

// CreateAccount registers candidate. The username check is advisory: two
// concurrent registrations of the same name can both pass it.
func (s *AccountService) CreateAccount(ctx context.Context, candidate database.Account) (database.Account, error) {
	if candidate.Username == "" || utf8.RuneCountInString(candidate.Password) < minPasswordLength {
		return database.Account{}, ErrInvalidAccount
	}

	exists, err := s.repo.AccountExists(ctx, candidate.Username)
	if err != nil {
		return database.Account{}, s.storageErr("account exists", err)
	}
	if exists {
		return database.Account{}, ErrUsernameTaken
	}

	account, err := s.repo.CreateAccount(ctx, database.CreateAccountParams{
		Username: candidate.Username,
		Password: candidate.Password,
	})
	if err != nil {
		return database.Account{}, s.storageErr("create account", err)
	}

	return account, nil
}

// AccountExists reports whether username is registered. Storage failures
// are logged and reported as false.
func (s *AccountService) AccountExists(ctx context.Context, username string) bool {
	exists, err := s.repo.AccountExists(ctx, username)
	if err != nil {
		s.storageErr("account exists", err)
		return false
	}

	return exists
}

// AuthenticateAccount compares password against the stored plaintext
// password and returns the account on a match.
func (s *AccountService) AuthenticateAccount(ctx context.Context, username, password string) (database.Account, error) {
	account, err := s.GetAccountByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, ErrAccountNotFound) {
			return database.Account{}, ErrInvalidCredentials
		}
		return database.Account{}, err
	}

	if account.Password != password {
		return database.Account{}, ErrInvalidCredentials
	}

	return account, nil
}

func (s *AccountService) GetAccountByUsername(ctx context.Context, username string) (database.Account, error) {
	account, err := s.repo.GetAccountByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return database.Account{}, ErrAccountNotFound
		}
		return database.Account{}, s.storageErr("get account by username", err)
	}

	return account, nil
}

func (s *AccountService) AccountIdExists(ctx context.Context, accountId int) bool {
	exists, err := s.repo.AccountIdExists(ctx, accountId)
	if err != nil {
		s.storageErr("account id exists", err)
		return false
	}

	return exists
}
