package redis

import (
	"context"
	"encoding/json"
	"fmt"

	"tweet-feed-backend/internal/features/user/models"
	"tweet-feed-backend/internal/features/user/repository"

	"github.com/redis/go-redis/v9"
)

const keyPrefixUser = "user:"

type userRepository struct {
	client *redis.Client
}

func NewUserRepository(client *redis.Client) repository.UserRepository {
	return &userRepository{client: client}
}

func makeUserKey(username string) string {
	return keyPrefixUser + username
}

func (r *userRepository) Create(ctx context.Context, user *models.User) (bool, error) {
	data, err := json.Marshal(user)
	if err != nil {
		return false, fmt.Errorf("failed to marshal user: %w", err)
	}

	// SetNX doubles as the uniqueness constraint: concurrent sign-ups for
	// the same username cannot both win, and an existing user is never
	// overwritten.
	return r.client.SetNX(ctx, makeUserKey(user.Username), data, 0).Result()
}

func (r *userRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	data, err := r.client.Get(ctx, makeUserKey(username)).Bytes()
	if err == redis.Nil {
		return nil, repository.ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}

	var user models.User
	if err := json.Unmarshal(data, &user); err != nil {
		return nil, err
	}

	return &user, nil
}

func (r *userRepository) GetAvatars(ctx context.Context, usernames []string) (map[string]string, error) {
	if len(usernames) == 0 {
		return map[string]string{}, nil
	}

	keys := make([]string, len(usernames))
	for i, username := range usernames {
		keys[i] = makeUserKey(username)
	}

	values, err := r.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, err
	}

	avatars := make(map[string]string, len(usernames))
	for _, value := range values {
		raw, ok := value.(string)
		if !ok {
			// nil entry: no user under that key
			continue
		}

		var user models.User
		if err := json.Unmarshal([]byte(raw), &user); err != nil {
			continue
		}

		avatars[user.Username] = user.Avatar
	}

	return avatars, nil
}
