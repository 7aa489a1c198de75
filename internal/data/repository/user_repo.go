package repository

import (
	"context"
	"fmt"

	"filmestop/internal/data/entity"
	"filmestop/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	FindByID(ctx context.Context, id int64) (*entity.User, error)
	FindAll(ctx context.Context) ([]*entity.User, error)
	Update(ctx context.Context, user *entity.User) error
	Delete(ctx context.Context, id int64) error
}

type userRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewUserRepository(db database.PgxIface, log *zap.Logger) UserRepository {
	return &userRepository{
		db:  db,
		log: log.With(zap.String("repository", "user")),
	}
}

func (r *userRepository) Create(ctx context.Context, user *entity.User) error {
	query := `
		INSERT INTO users (name, email, phone)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`

	err := r.db.QueryRow(ctx, query,
		user.Name,
		user.Email,
		user.Phone,
	).Scan(&user.ID, &user.CreatedAt)

	if err != nil {
		r.log.Error("Failed to create user",
			zap.Error(err),
			zap.String("name", user.Name),
		)
		return fmt.Errorf("create user: %w", err)
	}

	return nil
}

func (r *userRepository) FindByID(ctx context.Context, id int64) (*entity.User, error) {
	query := `SELECT id, name, email, phone, created_at FROM users WHERE id = $1`

	var user entity.User
	err := r.db.QueryRow(ctx, query, id).Scan(
		&user.ID,
		&user.Name,
		&user.Email,
		&user.Phone,
		&user.CreatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find user by ID",
			zap.Error(err),
			zap.Int64("user_id", id),
		)
		return nil, fmt.Errorf("find user by id %d: %w", id, err)
	}

	return &user, nil
}

func (r *userRepository) FindAll(ctx context.Context) ([]*entity.User, error) {
	query := `SELECT id, name, email, phone, created_at FROM users ORDER BY id`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to find all users", zap.Error(err))
		return nil, fmt.Errorf("find all users: %w", err)
	}
	defer rows.Close()

	var users []*entity.User
	for rows.Next() {
		var user entity.User
		err := rows.Scan(
			&user.ID,
			&user.Name,
			&user.Email,
			&user.Phone,
			&user.CreatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan user row", zap.Error(err))
			return nil, fmt.Errorf("scan user row: %w", err)
		}
		users = append(users, &user)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate user rows: %w", err)
	}

	return users, nil
}

func (r *userRepository) Update(ctx context.Context, user *entity.User) error {
	query := `UPDATE users SET name = $2, email = $3, phone = $4 WHERE id = $1`

	result, err := r.db.Exec(ctx, query,
		user.ID,
		user.Name,
		user.Email,
		user.Phone,
	)

	if err != nil {
		r.log.Error("Failed to update user",
			zap.Error(err),
			zap.Int64("user_id", user.ID),
		)
		return fmt.Errorf("update user %d: %w", user.ID, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("user %d not found", user.ID)
	}

	return nil
}

func (r *userRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM users WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete user",
			zap.Error(err),
			zap.Int64("user_id", id),
		)
		return fmt.Errorf("delete user %d: %w", id, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("user %d not found", id)
	}

	r.log.Info("User deleted", zap.Int64("user_id", id))
	return nil
}
