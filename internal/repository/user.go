package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"

	"fintrack/internal/model"
)

//go:generate mockery --name=Users

type Users interface {
	Create(ctx context.Context, user *model.User) (int64, error)
	Get(ctx context.Context, id int64) (*model.User, error)
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	UpdateProfile(ctx context.Context, id int64, username, email string) error
	UpdatePassword(ctx context.Context, id int64, passwordHash string) error
}

type Postgres struct {
	conn *pgxpool.Pool
}

func NewPostgres(conn *pgxpool.Pool) *Postgres {
	return &Postgres{
		conn: conn,
	}
}

func (u *Postgres) Create(ctx context.Context, user *model.User) (int64, error) {
	query := `INSERT INTO fintrack.users (username, email, password) VALUES ($1, $2, $3)
		ON CONFLICT DO NOTHING RETURNING id`
	err := u.conn.QueryRow(ctx, query, user.Username, user.Email, user.PasswordHash).Scan(&user.ID)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, fmt.Errorf("%w: user with this username or email already exists", model.ErrConflict)
	}
	if err != nil {
		return 0, fmt.Errorf("repository.Users, create user error: %v", err)
	}
	return user.ID, nil
}

func (u *Postgres) Get(ctx context.Context, id int64) (*model.User, error) {
	query := `SELECT id, username, email, password FROM fintrack.users WHERE id=$1`
	return u.scanUser(u.conn.QueryRow(ctx, query, id))
}

func (u *Postgres) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	query := `SELECT id, username, email, password FROM fintrack.users WHERE email=$1`
	return u.scanUser(u.conn.QueryRow(ctx, query, email))
}

func (u *Postgres) UpdateProfile(ctx context.Context, id int64, username, email string) error {
	query := `UPDATE fintrack.users SET username=$2, email=$3 WHERE id=$1`
	commandTag, err := u.conn.Exec(ctx, query, id, username, email)
	if err != nil {
		return fmt.Errorf("repository.Users, update profile error: %v", err)
	}
	if commandTag.RowsAffected() != 1 {
		return fmt.Errorf("%w: user %d", model.ErrNotFound, id)
	}
	return nil
}

func (u *Postgres) UpdatePassword(ctx context.Context, id int64, passwordHash string) error {
	query := `UPDATE fintrack.users SET password=$2 WHERE id=$1`
	commandTag, err := u.conn.Exec(ctx, query, id, passwordHash)
	if err != nil {
		return fmt.Errorf("repository.Users, update password error: %v", err)
	}
	if commandTag.RowsAffected() != 1 {
		return fmt.Errorf("%w: user %d", model.ErrNotFound, id)
	}
	return nil
}

func (u *Postgres) scanUser(row pgx.Row) (*model.User, error) {
	var user model.User
	err := row.Scan(&user.ID, &user.Username, &user.Email, &user.PasswordHash)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("%w: user", model.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("repository.Users, get user error: %v", err)
	}
	return &user, nil
}
