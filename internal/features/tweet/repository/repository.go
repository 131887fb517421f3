package repository

import (
	"context"
	"errors"

	"tweet-feed-backend/internal/features/tweet/models"
)

var ErrTweetNotFound = errors.New("tweet not found")

type TweetRepository interface {
	// Create stores a new tweet under a fresh identifier and returns the
	// stored document.
	Create(ctx context.Context, username, text string) (*models.Tweet, error)
	// ListNewestFirst returns every tweet ordered by identifier descending.
	ListNewestFirst(ctx context.Context) ([]*models.Tweet, error)
	// Update replaces both fields of the tweet with the given identifier.
	// Returns ErrTweetNotFound when no tweet matched, including when the
	// identifier is not a valid store key.
	Update(ctx context.Context, id, username, text string) error
	// Delete removes the tweet with the given identifier. Returns
	// ErrTweetNotFound when no tweet matched.
	Delete(ctx context.Context, id string) error
}
