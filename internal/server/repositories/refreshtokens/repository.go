// Package refreshtokens declares the server-side repository contract for the
// single stored refresh token of each user.
package refreshtokens

import (
	"context"
	"time"

	"github.com/questionboard/questionboard/internal/server/models"
)

// Repository defines operations for rotating and retrieving refresh tokens.
type Repository interface {
	// Rotate stores token as the user's refresh token with an expiry of
	// now+validity, replacing any previously stored value. The operation is
	// a single atomic upsert keyed by user id, so concurrent rotations for
	// the same user serialize at the storage layer and the last write wins.
	Rotate(ctx context.Context, userID int64, token string, validity time.Duration) error

	// GetByUserID returns the stored refresh token row for the user.
	// Implementations return common.ErrorNotFound when no row exists.
	GetByUserID(ctx context.Context, userID int64) (*models.RefreshToken, error)
}
