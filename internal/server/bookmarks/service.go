// Package bookmarks enforces per-record ownership over the bookmark store.
// The transport resolves the caller's identity; this service decides what
// that identity may touch.
package bookmarks

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/kyraymege/bookmarkd/internal/common"
	"github.com/kyraymege/bookmarkd/internal/server/models"
	bookmarkrepo "github.com/kyraymege/bookmarkd/internal/server/repositories/bookmarks"
)

type Service struct {
	repo bookmarkrepo.Repository
}

func NewService(repo bookmarkrepo.Repository) *Service {
	return &Service{repo: repo}
}

// CreateParams are the caller-supplied fields of a new bookmark.
type CreateParams struct {
	Title       string
	Link        string
	Description string
}

// UpdateParams carries the optional fields of an update; nil means
// "leave unchanged".
type UpdateParams struct {
	Title       *string
	Link        *string
	Description *string
}

// Create stores a new bookmark owned by userID.
func (s *Service) Create(ctx context.Context, userID string, params CreateParams) (*models.Bookmark, error) {
	bookmark := &models.Bookmark{
		ID:          uuid.NewString(),
		UserID:      userID,
		Title:       params.Title,
		Link:        params.Link,
		Description: params.Description,
	}

	return s.repo.Create(ctx, bookmark)
}

// List returns every bookmark owned by userID.
func (s *Service) List(ctx context.Context, userID string) ([]*models.Bookmark, error) {
	return s.repo.ListByUser(ctx, userID)
}

// Get returns the bookmark only if userID owns it. An absent bookmark and a
// foreign one are both common.ErrorAccessDenied: existence is not disclosed.
func (s *Service) Get(ctx context.Context, userID, bookmarkID string) (*models.Bookmark, error) {
	return s.getOwned(ctx, userID, bookmarkID)
}

// Update patches the bookmark after the ownership check.
func (s *Service) Update(ctx context.Context, userID, bookmarkID string, params UpdateParams) (*models.Bookmark, error) {
	bookmark, err := s.getOwned(ctx, userID, bookmarkID)
	if err != nil {
		return nil, err
	}

	if params.Title != nil {
		bookmark.Title = *params.Title
	}
	if params.Link != nil {
		bookmark.Link = *params.Link
	}
	if params.Description != nil {
		bookmark.Description = *params.Description
	}

	return s.repo.Update(ctx, bookmark)
}

// Delete removes the bookmark after the ownership check.
func (s *Service) Delete(ctx context.Context, userID, bookmarkID string) error {
	if _, err := s.getOwned(ctx, userID, bookmarkID); err != nil {
		return err
	}

	return s.repo.Delete(ctx, bookmarkID)
}

func (s *Service) getOwned(ctx context.Context, userID, bookmarkID string) (*models.Bookmark, error) {
	bookmark, err := s.repo.GetByID(ctx, bookmarkID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorAccessDenied
		}
		return nil, err
	}

	if bookmark.UserID != userID {
		return nil, common.ErrorAccessDenied
	}

	return bookmark, nil
}
