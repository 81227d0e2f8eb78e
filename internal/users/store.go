package users

import (
	"context"
	stderrors "errors"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	"motocat-backend/internal/model"
)

var (
	ErrNotFound = stderrors.New("user not found")
	ErrTaken    = stderrors.New("username or email already registered")
)

// Store persists user accounts.
type Store struct {
	db *gorm.DB
}

func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

// Create inserts a new account; duplicate username/email maps to ErrTaken.
func (s *Store) Create(ctx context.Context, u *model.User) error {
	err := s.db.WithContext(ctx).Create(u).Error
	if err != nil {
		if stderrors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrTaken
		}
		return errors.Wrap(err, "create user")
	}
	return nil
}

// ByUsername looks up an account for login.
func (s *Store) ByUsername(ctx context.Context, username string) (*model.User, error) {
	var u model.User
	err := s.db.WithContext(ctx).Where("username = ?", username).First(&u).Error
	if stderrors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "get user")
	}
	return &u, nil
}
