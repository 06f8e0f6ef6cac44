package storage

import (
	"context"
	"errors"
	"sync"

	"skin-vision/internal/domain/entity"
	"skin-vision/internal/domain/port"
)

// ErrUnknownUser возвращается при смене состояния пользователя, которого нет в хранилище.
var ErrUnknownUser = errors.New("unknown user")

// MemoryUserRepository in-memory хранилище пользователей бота
type MemoryUserRepository struct {
	mu    sync.RWMutex
	users map[int64]*entity.User
}

// NewMemoryUserRepository создаёт новое in-memory хранилище
func NewMemoryUserRepository() *MemoryUserRepository {
	return &MemoryUserRepository{
		users: make(map[int64]*entity.User),
	}
}

// Get возвращает пользователя по ID, создаёт нового если не найден
func (r *MemoryUserRepository) Get(ctx context.Context, userID, chatID int64) (*entity.User, error) {
	r.mu.RLock()
	user, exists := r.users[userID]
	r.mu.RUnlock()
	if exists {
		return user, nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	// Пока ждали блокировку, пользователя мог создать другой обработчик.
	if user, exists := r.users[userID]; exists {
		return user, nil
	}
	user = entity.NewUser(userID, chatID)
	r.users[userID] = user
	return user, nil
}

// Save сохраняет состояние пользователя
func (r *MemoryUserRepository) Save(ctx context.Context, user *entity.User) error {
	r.mu.Lock()
	r.users[user.ID] = user
	r.mu.Unlock()

	return nil
}

// UpdateState обновляет состояние существующего пользователя
func (r *MemoryUserRepository) UpdateState(ctx context.Context, userID int64, state entity.UserState) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, exists := r.users[userID]
	if !exists {
		return ErrUnknownUser
	}
	user.SetState(state)
	return nil
}

// Проверка реализации интерфейса
var _ port.UserRepository = (*MemoryUserRepository)(nil)
