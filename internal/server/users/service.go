// Package users orchestrates the credential lifecycle: signup, signin, and
// identity management on top of the hasher, the token issuer, and the store.
package users

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/kyraymege/bookmarkd/internal/common"
	"github.com/kyraymege/bookmarkd/internal/server/auth"
	"github.com/kyraymege/bookmarkd/internal/server/config"
	"github.com/kyraymege/bookmarkd/internal/server/models"
	userrepo "github.com/kyraymege/bookmarkd/internal/server/repositories/users"
)

type Service struct {
	repo                        userrepo.Repository
	jwtSecret                   []byte
	accessTokenValidityDuration time.Duration
}

func NewService(repo userrepo.Repository, cfg *config.Config) *Service {
	return &Service{
		repo:                        repo,
		jwtSecret:                   []byte(cfg.SecretKey),
		accessTokenValidityDuration: cfg.AccessTokenValidityDuration,
	}
}

// Signup registers a new identity and immediately authenticates it: a
// successful signup ends in the same token-issuance step as signin.
// A duplicate email surfaces as common.ErrorEmailTaken; the store's unique
// index decides the winner of concurrent signups, not this layer.
func (s *Service) Signup(ctx context.Context, email, password string) (string, error) {

	hash, err := auth.HashPassword(password)
	if err != nil {
		return "", fmt.Errorf("error hashing password: %w", err)
	}

	user := &models.User{
		ID:           uuid.NewString(),
		Email:        email,
		PasswordHash: hash,
	}

	user, err = s.repo.Create(ctx, user)
	if err != nil {
		if errors.Is(err, common.ErrorAlreadyExists) {
			return "", common.ErrorEmailTaken
		}
		return "", fmt.Errorf("error creating user: %w", err)
	}

	return s.generateAccessToken(user)
}

// Signin authenticates an existing identity. Unknown email and wrong
// password both return common.ErrorInvalidCredentials so a caller can not
// probe which emails are registered.
func (s *Service) Signin(ctx context.Context, email, password string) (string, error) {

	user, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return "", common.ErrorInvalidCredentials
		}
		return "", fmt.Errorf("error finding user: %w", err)
	}

	if !auth.VerifyPassword(user.PasswordHash, password) {
		return "", common.ErrorInvalidCredentials
	}

	return s.generateAccessToken(user)
}

// Get returns the identity record for id.
func (s *Service) Get(ctx context.Context, id string) (*models.User, error) {
	return s.repo.GetByID(ctx, id)
}

// UpdateParams carries the optional profile fields of an update; nil means
// "leave unchanged".
type UpdateParams struct {
	Email     *string
	FirstName *string
	LastName  *string
}

// Update patches the caller's own identity record. Changing the email races
// against the same uniqueness constraint as signup and surfaces as
// common.ErrorEmailTaken when lost.
func (s *Service) Update(ctx context.Context, id string, params UpdateParams) (*models.User, error) {

	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if params.Email != nil {
		user.Email = *params.Email
	}
	if params.FirstName != nil {
		user.FirstName = *params.FirstName
	}
	if params.LastName != nil {
		user.LastName = *params.LastName
	}

	user, err = s.repo.Update(ctx, user)
	if err != nil {
		if errors.Is(err, common.ErrorAlreadyExists) {
			return nil, common.ErrorEmailTaken
		}
		return nil, err
	}

	return user, nil
}

func (s *Service) generateAccessToken(user *models.User) (string, error) {
	token, err := auth.GenerateToken(user.ID, user.Email, s.jwtSecret, s.accessTokenValidityDuration)
	if err != nil {
		return "", err
	}
	return token, nil
}
