package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/hongminglow/devcamper-be/internal/models"
)

const userColumns = `id, name, email, role, created_at`

// CreateUser inserts a new user row.
func (s *Store) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	const query = `
		INSERT INTO users (name, email, role, password_hash)
		VALUES ($1, $2, $3, $4)
		RETURNING ` + userColumns
	row := s.db.QueryRow(ctx, query, user.Name, strings.ToLower(user.Email), string(user.Role), user.PasswordHash)
	created, err := scanUser(row)
	if err != nil {
		return models.User{}, fmt.Errorf("create user: %w", translate(err))
	}
	return created, nil
}

// FindUserByID fetches a user without its password hash.
func (s *Store) FindUserByID(ctx context.Context, id int64) (models.User, error) {
	const query = `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	user, err := scanUser(s.db.QueryRow(ctx, query, id))
	if err != nil {
		return models.User{}, translate(err)
	}
	return user, nil
}

// FindUserByEmail fetches a user together with its password hash.
func (s *Store) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	const query = `SELECT ` + userColumns + `, password_hash FROM users WHERE email = $1`
	var (
		user models.User
		role string
	)
	err := s.db.QueryRow(ctx, query, strings.ToLower(email)).
		Scan(&user.ID, &user.Name, &user.Email, &role, &user.CreatedAt, &user.PasswordHash)
	if err != nil {
		return models.User{}, translate(err)
	}
	user.Role = models.Role(role)
	return user, nil
}

// ListUsers returns every user ordered by id.
func (s *Store) ListUsers(ctx context.Context) ([]models.User, error) {
	const query = `SELECT ` + userColumns + ` FROM users ORDER BY id`
	rows, err := s.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()

	users := make([]models.User, 0)
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("list users: %w", err)
		}
		users = append(users, user)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

// DeleteUser removes a user; owned bootcamps and courses cascade.
func (s *Store) DeleteUser(ctx context.Context, id int64) error {
	return execAffecting(ctx, s.db, `DELETE FROM users WHERE id = $1`, id)
}

func scanUser(row pgx.Row) (models.User, error) {
	var (
		user models.User
		role string
	)
	if err := row.Scan(&user.ID, &user.Name, &user.Email, &role, &user.CreatedAt); err != nil {
		return models.User{}, err
	}
	user.Role = models.Role(role)
	return user, nil
}
