package users

import (
	"context"

	"github.com/kyraymege/bookmarkd/internal/server/models"
)

// Repository is the identity store consumed by the authentication service.
type Repository interface {
	Create(ctx context.Context, user *models.User) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByID(ctx context.Context, id string) (*models.User, error)
	Update(ctx context.Context, user *models.User) (*models.User, error)
}
