package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/sectionconnection/users-api/internal/model"
)

const (
	listUsersQuery = `
		SELECT user_id, username, email, created_at
		FROM users
		ORDER BY created_at DESC, user_id DESC
	`

	createUserQuery = `
		INSERT INTO users (username, email)
		VALUES ($1, $2)
		RETURNING user_id, username, email, created_at
	`
)

// ListUsers returns every user, most recently created first.
// The returned slice is never nil.
func (r *Repository) ListUsers(ctx context.Context) ([]*model.User, error) {
	users := make([]*model.User, 0)

	err := r.withConn(ctx, func(conn *pgxpool.Conn) error {
		rows, err := conn.Query(ctx, listUsersQuery)
		if err != nil {
			return fmt.Errorf("failed to list users: %w", err)
		}
		defer rows.Close()

		for rows.Next() {
			user, err := scanUser(rows)
			if err != nil {
				return fmt.Errorf("failed to scan user: %w", err)
			}
			users = append(users, user)
		}

		if err := rows.Err(); err != nil {
			return fmt.Errorf("failed to iterate users: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return users, nil
}

// CreateUser inserts a user and returns the stored row including generated columns.
func (r *Repository) CreateUser(ctx context.Context, username, email string) (*model.User, error) {
	var user *model.User

	err := r.withConn(ctx, func(conn *pgxpool.Conn) error {
		created, err := scanUser(conn.QueryRow(ctx, createUserQuery, username, email))
		if err != nil {
			return fmt.Errorf("failed to create user: %w", err)
		}
		user = created
		return nil
	})
	if err != nil {
		return nil, err
	}

	return user, nil
}

func scanUser(row pgx.Row) (*model.User, error) {
	var user model.User
	if err := row.Scan(
		&user.UserID,
		&user.Username,
		&user.Email,
		&user.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &user, nil
}
