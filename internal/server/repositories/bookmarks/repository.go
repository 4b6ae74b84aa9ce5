package bookmarks

import (
	"context"

	"github.com/kyraymege/bookmarkd/internal/server/models"
)

// Repository is the bookmark store consumed by the bookmark service.
// All queries are keyed by the owning user where ownership matters.
type Repository interface {
	Create(ctx context.Context, bookmark *models.Bookmark) (*models.Bookmark, error)
	ListByUser(ctx context.Context, userID string) ([]*models.Bookmark, error)
	GetByID(ctx context.Context, id string) (*models.Bookmark, error)
	Update(ctx context.Context, bookmark *models.Bookmark) (*models.Bookmark, error)
	Delete(ctx context.Context, id string) error
}
