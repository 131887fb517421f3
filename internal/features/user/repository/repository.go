package repository

import (
	"context"
	"errors"

	"tweet-feed-backend/internal/features/user/models"
)

var ErrUserNotFound = errors.New("user not found")

type UserRepository interface {
	// Create stores the user unless one with the same username already
	// exists. It reports whether a new record was written.
	Create(ctx context.Context, user *models.User) (bool, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	// GetAvatars resolves avatars for the given usernames in one batch.
	// Usernames with no matching user are simply absent from the result.
	GetAvatars(ctx context.Context, usernames []string) (map[string]string, error)
}
