// Package users declares the repository contract for user accounts.
package users

import (
	"context"

	"github.com/questionboard/questionboard/internal/server/models"
)

// Repository defines persistence operations for user accounts.
type Repository interface {
	// Create stores a new user and returns it with its assigned id.
	Create(ctx context.Context, user *models.User) (*models.User, error)

	// GetByUsername looks up a user by username. Implementations return
	// common.ErrorNotFound when the user is absent.
	GetByUsername(ctx context.Context, username string) (*models.User, error)

	// GetByID looks up a user by id. Implementations return
	// common.ErrorNotFound when the user is absent.
	GetByID(ctx context.Context, id int64) (*models.User, error)
}
