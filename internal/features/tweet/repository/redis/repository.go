package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"tweet-feed-backend/internal/features/tweet/models"
	"tweet-feed-backend/internal/features/tweet/repository"

	"github.com/redis/go-redis/v9"
)

const (
	keyPrefixTweet = "tweet:"
	keyTweetSeq    = "tweets:seq"
	keyTweetIndex  = "tweets:index"
)

type tweetRepository struct {
	client *redis.Client
}

func NewTweetRepository(client *redis.Client) repository.TweetRepository {
	return &tweetRepository{client: client}
}

func makeTweetKey(id string) string {
	return keyPrefixTweet + id
}

func (r *tweetRepository) Create(ctx context.Context, username, text string) (*models.Tweet, error) {
	seq, err := r.client.Incr(ctx, keyTweetSeq).Result()
	if err != nil {
		return nil, err
	}

	tweet := &models.Tweet{
		ID:       strconv.FormatInt(seq, 10),
		Username: username,
		Tweet:    text,
	}

	data, err := json.Marshal(tweet)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal tweet: %w", err)
	}

	pipe := r.client.Pipeline()
	pipe.Set(ctx, makeTweetKey(tweet.ID), data, 0)
	pipe.ZAdd(ctx, keyTweetIndex, redis.Z{Score: float64(seq), Member: tweet.ID})
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, err
	}

	return tweet, nil
}

func (r *tweetRepository) ListNewestFirst(ctx context.Context) ([]*models.Tweet, error) {
	ids, err := r.client.ZRevRange(ctx, keyTweetIndex, 0, -1).Result()
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return nil, nil
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = makeTweetKey(id)
	}

	values, err := r.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, err
	}

	tweets := make([]*models.Tweet, 0, len(values))
	for _, value := range values {
		raw, ok := value.(string)
		if !ok {
			// document deleted between index read and fetch
			continue
		}

		var tweet models.Tweet
		if err := json.Unmarshal([]byte(raw), &tweet); err != nil {
			continue
		}

		tweets = append(tweets, &tweet)
	}

	return tweets, nil
}

func (r *tweetRepository) Update(ctx context.Context, id, username, text string) error {
	if _, err := strconv.ParseInt(id, 10, 64); err != nil {
		// not a valid store key, so nothing can match it
		return repository.ErrTweetNotFound
	}

	data, err := json.Marshal(&models.Tweet{
		ID:       id,
		Username: username,
		Tweet:    text,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal tweet: %w", err)
	}

	// SET XX keeps the matched-count semantics of a document update: the
	// write happens only if the tweet still exists.
	ok, err := r.client.SetXX(ctx, makeTweetKey(id), data, 0).Result()
	if err != nil {
		return err
	}
	if !ok {
		return repository.ErrTweetNotFound
	}

	return nil
}

func (r *tweetRepository) Delete(ctx context.Context, id string) error {
	if _, err := strconv.ParseInt(id, 10, 64); err != nil {
		// not a valid store key, so nothing can match it; this also keeps
		// non-document keys out of reach of the tweet:<id> namespace
		return repository.ErrTweetNotFound
	}

	deleted, err := r.client.Del(ctx, makeTweetKey(id)).Result()
	if err != nil {
		return err
	}
	if deleted == 0 {
		return repository.ErrTweetNotFound
	}

	return r.client.ZRem(ctx, keyTweetIndex, id).Err()
}
