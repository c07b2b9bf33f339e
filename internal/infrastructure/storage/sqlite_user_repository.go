package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"table-finder/internal/domain/entity"
	"table-finder/internal/domain/port"
)

// SQLiteUserRepository хранит состояние пользователей в sqlite
type SQLiteUserRepository struct {
	db *sql.DB
}

func NewSQLiteUserRepository(db *sql.DB) *SQLiteUserRepository {
	return &SQLiteUserRepository{db: db}
}

// Get возвращает пользователя по ID, создаёт нового если не найден.
// Если пользователь написал из другого чата, ChatID обновляется.
func (r *SQLiteUserRepository) Get(ctx context.Context, userID, chatID int64) (*entity.User, error) {
	row := r.db.QueryRowContext(ctx, `SELECT id, chat_id, state FROM users WHERE id = ?`, userID)

	var (
		u     entity.User
		state string
	)
	err := row.Scan(&u.ID, &u.ChatID, &state)
	switch {
	case err == nil:
		u.State = entity.UserState(state)
		if !u.State.Valid() {
			u.State = entity.StateMainMenu
		}
		if chatID != 0 && chatID != u.ChatID {
			u.ChatID = chatID
			if err := r.Save(ctx, &u); err != nil {
				return nil, err
			}
		}
		return &u, nil
	case !errors.Is(err, sql.ErrNoRows):
		return nil, fmt.Errorf("get user %d: %w", userID, err)
	}

	newUser := entity.NewUser(userID, chatID)
	if err := r.Save(ctx, newUser); err != nil {
		return nil, err
	}
	return newUser, nil
}

// Save сохраняет состояние пользователя
func (r *SQLiteUserRepository) Save(ctx context.Context, user *entity.User) error {
	_, err := r.db.ExecContext(ctx, `
        INSERT INTO users (id, chat_id, state) VALUES (?, ?, ?)
        ON CONFLICT(id) DO UPDATE SET chat_id = excluded.chat_id, state = excluded.state
    `, user.ID, user.ChatID, string(user.State))
	if err != nil {
		return fmt.Errorf("save user %d: %w", user.ID, err)
	}
	return nil
}

var _ port.UserRepository = (*SQLiteUserRepository)(nil)
