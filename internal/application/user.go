package app

import (
	"context"

	"skin-vision/internal/domain/entity"
	"skin-vision/internal/domain/port"
)

type UserService struct {
	repo port.UserRepository
}

func NewUserService(repo port.UserRepository) *UserService {
	return &UserService{repo: repo}
}

func (s *UserService) Get(ctx context.Context, userID, chatID int64) (*entity.User, error) {
	return s.repo.Get(ctx, userID, chatID)
}

func (s *UserService) SetState(ctx context.Context, userID, chatID int64, state entity.UserState) (*entity.User, error) {
	user, err := s.repo.Get(ctx, userID, chatID)
	if err != nil {
		return nil, err
	}

	user.SetState(state)
	if err := s.repo.Save(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

func (s *UserService) BeginClassify(ctx context.Context, userID, chatID int64) (*entity.User, error) {
	return s.SetState(ctx, userID, chatID, entity.StateAwaitingClassify)
}

func (s *UserService) BeginNormalize(ctx context.Context, userID, chatID int64) (*entity.User, error) {
	return s.SetState(ctx, userID, chatID, entity.StateAwaitingNormalize)
}

// StartProcessing переводит пользователя в обработку и возвращает режим, в котором пришло фото.
func (s *UserService) StartProcessing(ctx context.Context, userID, chatID int64) (entity.UserState, error) {
	user, err := s.repo.Get(ctx, userID, chatID)
	if err != nil {
		return "", err
	}
	mode := user.State
	if err := s.repo.UpdateState(ctx, userID, entity.StateProcessing); err != nil {
		return "", err
	}
	return mode, nil
}

func (s *UserService) Cancel(ctx context.Context, userID, chatID int64) (*entity.User, error) {
	return s.SetState(ctx, userID, chatID, entity.StateMainMenu)
}
