package service

import (
	"context"
	"errors"

	"tweet-feed-backend/internal/common/logger"
	"tweet-feed-backend/internal/common/validation"
	"tweet-feed-backend/internal/features/tweet/models"
	"tweet-feed-backend/internal/features/tweet/repository"
	userrepo "tweet-feed-backend/internal/features/user/repository"
)

var (
	ErrAuthorNotFound = errors.New("author not found")
	ErrTweetNotFound  = errors.New("tweet not found")
)

type TweetService interface {
	Feed(ctx context.Context) ([]*models.FeedEntry, error)
	Create(ctx context.Context, username, text string) (*models.Tweet, error)
	Update(ctx context.Context, id, username, text string) error
	Delete(ctx context.Context, id string) error
}

type tweetService struct {
	tweets repository.TweetRepository
	users  userrepo.UserRepository
}

func NewTweetService(tweets repository.TweetRepository, users userrepo.UserRepository) TweetService {
	return &tweetService{
		tweets: tweets,
		users:  users,
	}
}

// Feed returns every tweet newest-first, each enriched with its author's
// avatar. The avatar join is batched: one listing plus one avatar lookup
// over the distinct usernames. A tweet whose author does not exist renders
// with a null avatar; only a failure of the listing itself aborts.
func (s *tweetService) Feed(ctx context.Context) ([]*models.FeedEntry, error) {
	tweets, err := s.tweets.ListNewestFirst(ctx)
	if err != nil {
		return nil, err
	}

	avatars, err := s.users.GetAvatars(ctx, distinctUsernames(tweets))
	if err != nil {
		logger.Warn().Err(err).Msg("Avatar lookup failed, serving feed without avatars")
		avatars = nil
	}

	entries := make([]*models.FeedEntry, 0, len(tweets))
	for _, tweet := range tweets {
		entry := &models.FeedEntry{
			ID:       tweet.ID,
			Username: tweet.Username,
			Tweet:    tweet.Tweet,
		}
		if avatar, ok := avatars[tweet.Username]; ok {
			entry.Avatar = &avatar
		}
		entries = append(entries, entry)
	}

	return entries, nil
}

func (s *tweetService) Create(ctx context.Context, username, text string) (*models.Tweet, error) {
	if errs := validation.ValidateTweet(username, text); len(errs) > 0 {
		return nil, errs
	}

	if _, err := s.users.GetByUsername(ctx, username); err != nil {
		if errors.Is(err, userrepo.ErrUserNotFound) {
			return nil, ErrAuthorNotFound
		}
		return nil, err
	}

	return s.tweets.Create(ctx, username, text)
}

// Update replaces both fields of the tweet. Unlike Create it does not check
// that the new username belongs to an existing user; the feed tolerates
// authorless tweets by rendering a null avatar.
func (s *tweetService) Update(ctx context.Context, id, username, text string) error {
	if errs := validation.ValidateTweet(username, text); len(errs) > 0 {
		return errs
	}

	if err := s.tweets.Update(ctx, id, username, text); err != nil {
		if errors.Is(err, repository.ErrTweetNotFound) {
			return ErrTweetNotFound
		}
		return err
	}

	return nil
}

func (s *tweetService) Delete(ctx context.Context, id string) error {
	if err := s.tweets.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrTweetNotFound) {
			return ErrTweetNotFound
		}
		return err
	}

	return nil
}

func distinctUsernames(tweets []*models.Tweet) []string {
	seen := make(map[string]struct{}, len(tweets))
	usernames := make([]string, 0, len(tweets))
	for _, tweet := range tweets {
		if _, ok := seen[tweet.Username]; ok {
			continue
		}
		seen[tweet.Username] = struct{}{}
		usernames = append(usernames, tweet.Username)
	}
	return usernames
}
