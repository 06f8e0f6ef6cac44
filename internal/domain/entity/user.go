package entity

// UserState состояние пользователя в диалоге
type UserState string

const (
	StateMainMenu          UserState = "main_menu"          // В главном меню
	StateAwaitingClassify  UserState = "awaiting_classify"  // Ожидание фото для классификации
	StateAwaitingNormalize UserState = "awaiting_normalize" // Ожидание фото для нормализации
	StateProcessing        UserState = "processing"         // Обработка изображения
)

// User представляет пользователя бота
type User struct {
	ID     int64     // Telegram User ID
	ChatID int64     // Telegram Chat ID
	State  UserState // Текущее состояние пользователя
}

// NewUser создаёт нового пользователя с начальным состоянием
func NewUser(userID, chatID int64) *User {
	return &User{
		ID:     userID,
		ChatID: chatID,
		State:  StateMainMenu,
	}
}

// SetState обновляет состояние пользователя
func (u *User) SetState(state UserState) {
	u.State = state
}

// AwaitingPhoto сообщает, ждёт ли бот фото от пользователя.
func (u *User) AwaitingPhoto() bool {
	return u.State == StateAwaitingClassify || u.State == StateAwaitingNormalize
}
