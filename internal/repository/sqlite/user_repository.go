package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/tijeane/quran-learning/internal/logger"
	"github.com/tijeane/quran-learning/internal/models"
	"github.com/tijeane/quran-learning/internal/repository"
)

type userRepository struct {
	db *sql.DB
}

// NewUserRepository creates a new UserRepository implementation
func NewUserRepository(db *sql.DB) repository.UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Get(ctx context.Context, id int64) (*models.User, error) {
	log := logger.FromContext(ctx).WithPrefix("user_repo")

	var u models.User
	err := r.db.QueryRowContext(ctx, `
SELECT id, email, password_hash, created_at FROM users WHERE id = ?
`, id).Scan(&u.ID, &u.Email, &u.PasswordHash, &u.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		log.Error("failed to get user: %v", err)
		return nil, err
	}
	return &u, nil
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	log := logger.FromContext(ctx).WithPrefix("user_repo")

	var u models.User
	err := r.db.QueryRowContext(ctx, `
SELECT id, email, password_hash, created_at FROM users WHERE email = ?
`, strings.ToLower(email)).Scan(&u.ID, &u.Email, &u.PasswordHash, &u.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		log.Error("failed to get user by email: %v", err)
		return nil, err
	}
	return &u, nil
}

func (r *userRepository) Insert(ctx context.Context, u models.User) (int64, error) {
	log := logger.FromContext(ctx).WithPrefix("user_repo")
	log.Debug("inserting user: email=%s", u.Email)

	res, err := r.db.ExecContext(ctx, `
INSERT INTO users (email, password_hash) VALUES (?, ?)
`, strings.ToLower(u.Email), u.PasswordHash)
	if err != nil {
		log.Error("failed to insert user: %v", err)
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		log.Error("failed to get user id: %v", err)
		return 0, err
	}
	log.Debug("user inserted: id=%d", id)
	return id, nil
}
