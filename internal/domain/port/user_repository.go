package port

import (
	"context"

	"table-finder/internal/domain/entity"
)

// UserRepository хранит состояние диалога с пользователями бота.
// Переходы между состояниями проверяет app.UserService, репозиторий их не валидирует.
type UserRepository interface {
	// Get возвращает пользователя, создавая его в главном меню при первом обращении.
	// Ненулевой chatID заменяет сохранённый.
	Get(ctx context.Context, userID, chatID int64) (*entity.User, error)

	// Save записывает пользователя целиком.
	Save(ctx context.Context, user *entity.User) error
}
