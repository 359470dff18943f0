package service

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"gorm.io/gorm"

	"blogapi/internal/auth"
	apperr "blogapi/internal/errors"
	"blogapi/internal/model"
	"blogapi/internal/repository"
	"blogapi/internal/validation"
)

// LogoutMessage acknowledges a logout. Basic auth keeps no session, so
// nothing is invalidated server side.
const LogoutMessage = "Logout successfully"

// ErrInvalidCredentials is returned when username or password is incorrect.
var ErrInvalidCredentials = apperr.NewUnauthorized("invalid username or password")

// Credentials is the registration payload.
type Credentials struct {
	Username string `validate:"required"`
	Password string `validate:"required"`
}

// AuthService handles registration and credential checks.
type AuthService interface {
	Register(ctx context.Context, username, password string) (*model.User, error)
	Verify(ctx context.Context, username, password string) bool
	Authenticate(ctx context.Context, username, password string) (*model.User, error)
	Logout(ctx context.Context, principal auth.Principal) string
}

type authService struct {
	userRepo   repository.UserRepository
	bcryptCost int

	// dummyHash has the same cost as stored hashes so an unknown username
	// takes as long to reject as a wrong password.
	dummyOnce sync.Once
	dummyHash string
}

var _ auth.Authenticator = (AuthService)(nil)

// NewAuthService creates a new authentication service.
func NewAuthService(userRepo repository.UserRepository, bcryptCost int) AuthService {
	return &authService{
		userRepo:   userRepo,
		bcryptCost: bcryptCost,
	}
}

// Register creates a new user with a hashed password.
func (s *authService) Register(ctx context.Context, username, password string) (*model.User, error) {
	if err := validation.Struct(Credentials{Username: username, Password: password}); err != nil {
		return nil, err
	}

	existing, err := s.userRepo.FindByUsername(ctx, username)
	if err == nil && existing != nil {
		return nil, conflictUsername(username)
	}
	// If error is not "record not found", return it (could be a database error)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.NewInternal("check user existence", err)
	}

	hashed, err := auth.HashPassword(password, s.bcryptCost)
	if err != nil {
		return nil, apperr.NewInternal("register user", err)
	}

	user := &model.User{
		Username:     username,
		PasswordHash: hashed,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		// Lost a race with a concurrent registration of the same name.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, conflictUsername(username)
		}
		return nil, apperr.NewInternal("create user", err)
	}
	return user, nil
}

// Verify reports whether the credentials belong to a registered user.
func (s *authService) Verify(ctx context.Context, username, password string) bool {
	_, err := s.Authenticate(ctx, username, password)
	return err == nil
}

// Authenticate returns the user owning the credentials.
func (s *authService) Authenticate(ctx context.Context, username, password string) (*model.User, error) {
	user, err := s.userRepo.FindByUsername(ctx, username)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NewInternal("find user", err)
		}
		auth.CheckPassword(s.unknownUserHash(), password)
		return nil, ErrInvalidCredentials
	}
	if !auth.CheckPassword(user.PasswordHash, password) {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}

// Logout is stateless under basic auth.
func (s *authService) Logout(_ context.Context, _ auth.Principal) string {
	return LogoutMessage
}

func (s *authService) unknownUserHash() string {
	s.dummyOnce.Do(func() {
		s.dummyHash, _ = auth.HashPassword("not-a-real-password", s.bcryptCost)
	})
	return s.dummyHash
}

func conflictUsername(username string) error {
	return apperr.NewConflict(fmt.Sprintf("User %s is already registered.", username))
}
