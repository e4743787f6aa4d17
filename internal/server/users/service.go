// Package users implements backend account storage and the signup/login
// service, including bcrypt password hashing and access token issuance.
package users

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/skillbridge/skillbridge/internal/common"
	"github.com/skillbridge/skillbridge/internal/server/auth"
	"github.com/skillbridge/skillbridge/internal/server/config"
)

// bcryptCost matches the original deployment's setting.
const bcryptCost = 10

// LoginResult is what a successful login hands back to the transport layer.
type LoginResult struct {
	AccessToken string
	Role        string
}

type Service struct {
	repo                Repository
	jwtSecret           []byte
	accessTokenValidity time.Duration
}

func NewService(repo Repository, cfg *config.Config) *Service {
	return &Service{
		repo:                repo,
		jwtSecret:           []byte(cfg.SecretKey),
		accessTokenValidity: cfg.AccessTokenValidity,
	}
}

// Register creates a new account. Uniqueness is scoped to the email alone;
// one email cannot hold both a seeker and a recruiter account on the
// backend.
func (s *Service) Register(ctx context.Context, name, email, password, role string) (*User, error) {
	name = strings.TrimSpace(name)
	email = strings.ToLower(strings.TrimSpace(email))

	if name == "" || email == "" || password == "" || role == "" {
		return nil, fmt.Errorf("%w: all fields are required", common.ErrValidation)
	}

	_, err := s.repo.GetUserByEmail(ctx, email)
	if err == nil {
		return nil, common.ErrDuplicateAccount
	}
	if !errors.Is(err, common.ErrNotFound) {
		return nil, common.ErrInternal
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return nil, common.ErrInternal
	}

	user := &User{
		Name:         name,
		Email:        email,
		Role:         role,
		PasswordHash: string(hash),
	}

	user, err = s.repo.Create(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("error creating user: %w", err)
	}

	return user, nil
}

// Login verifies the password and issues an access token. Unknown email and
// wrong password both return common.ErrInvalidCredentials.
func (s *Service) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	user, err := s.repo.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.ErrInvalidCredentials
		}
		return nil, common.ErrInternal
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, common.ErrInvalidCredentials
	}

	token, err := auth.GenerateToken(user.Email, user.Role, s.jwtSecret, s.accessTokenValidity)
	if err != nil {
		return nil, common.ErrInternal
	}

	return &LoginResult{AccessToken: token, Role: user.Role}, nil
}

// ParseToken exposes token verification to the transport middleware.
func (s *Service) ParseToken(tokenString string) (*auth.Claims, error) {
	return auth.ParseToken(tokenString, s.jwtSecret)
}
