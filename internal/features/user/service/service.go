package service

import (
	"context"

	"tweet-feed-backend/internal/common/validation"
	"tweet-feed-backend/internal/features/user/models"
	"tweet-feed-backend/internal/features/user/repository"
)

type UserService interface {
	// SignUp registers the user and reports whether a new record was
	// created. Registering an existing username is a success with
	// created=false and never mutates the stored user.
	SignUp(ctx context.Context, username, avatar string) (bool, error)
}

type userService struct {
	repo repository.UserRepository
}

func NewUserService(repo repository.UserRepository) UserService {
	return &userService{
		repo: repo,
	}
}

func (s *userService) SignUp(ctx context.Context, username, avatar string) (bool, error) {
	if errs := validation.ValidateSignUp(username, avatar); len(errs) > 0 {
		return false, errs
	}

	return s.repo.Create(ctx, &models.User{
		Username: username,
		Avatar:   avatar,
	})
}
