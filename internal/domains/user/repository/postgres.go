package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"blogicum-backend/internal/domains/user/model"
)

const uniqueViolation = "23505"

type postgresUserRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresUserRepository(pool *pgxpool.Pool) UserRepository {
	return &postgresUserRepository{pool: pool}
}

const selectUser = `
	SELECT id, username, email, first_name, last_name, password_hash, created_at
	FROM users
`

func (r *postgresUserRepository) FindByID(ctx context.Context, id int64) (*model.User, error) {
	return r.findOne(ctx, selectUser+` WHERE id = $1`, id)
}

func (r *postgresUserRepository) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	return r.findOne(ctx, selectUser+` WHERE username = $1`, username)
}

func (r *postgresUserRepository) findOne(ctx context.Context, query string, arg interface{}) (*model.User, error) {
	u := &model.User{}
	err := r.pool.QueryRow(ctx, query, arg).Scan(
		&u.ID,
		&u.Username,
		&u.Email,
		&u.FirstName,
		&u.LastName,
		&u.PasswordHash,
		&u.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return u, nil
}

func (r *postgresUserRepository) Create(ctx context.Context, u *model.User) error {
	query := `
		INSERT INTO users (username, email, first_name, last_name, password_hash)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`

	err := r.pool.QueryRow(ctx, query,
		u.Username,
		u.Email,
		u.FirstName,
		u.LastName,
		u.PasswordHash,
	).Scan(&u.ID, &u.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return model.ErrUsernameTaken
		}
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

func (r *postgresUserRepository) Update(ctx context.Context, u *model.User) error {
	query := `
		UPDATE users
		SET username = $2, email = $3, first_name = $4, last_name = $5
		WHERE id = $1
	`

	tag, err := r.pool.Exec(ctx, query,
		u.ID,
		u.Username,
		u.Email,
		u.FirstName,
		u.LastName,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return model.ErrUsernameTaken
		}
		return fmt.Errorf("failed to update user: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrUserNotFound
	}
	return nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}
