// internal/store/postgres/user.go
package postgres

import (
	"context"
	"database/sql"
	"strconv"

	"github.com/lib/pq"

	"github.com/calebfernandez/levelup/internal/models"
	"github.com/calebfernandez/levelup/internal/store"
)

type UserStore struct {
	db *sql.DB
}

func NewUserStore(db *sql.DB) *UserStore {
	return &UserStore{db: db}
}

func (s *UserStore) CreateUser(ctx context.Context, user *models.User) error {
	err := s.db.QueryRowContext(ctx, `
		INSERT INTO users (name, email, phone, password_hash)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at
	`, user.Name, user.Email, user.Phone, user.PasswordHash).Scan(
		&user.ID, &user.CreatedAt, &user.UpdatedAt,
	)

	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code.Name() == "unique_violation" {
			return store.ErrDuplicateEmail
		}
		return err
	}

	return nil
}

func (s *UserStore) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.getUser(ctx, "email = $1", email)
}

func (s *UserStore) GetUserByID(ctx context.Context, id int) (*models.User, error) {
	return s.getUser(ctx, "id = $1", id)
}

func (s *UserStore) getUser(ctx context.Context, where string, arg interface{}) (*models.User, error) {
	var user models.User
	var age, height sql.NullInt64
	var weight sql.NullFloat64
	var bodyType, sessionToken sql.NullString
	var lastLogin sql.NullTime

	err := s.db.QueryRowContext(ctx, `
		SELECT id, name, email, phone, password_hash, age, height, weight, body_type,
		last_login, session_token, created_at, updated_at
		FROM users WHERE `+where, arg).Scan(
		&user.ID, &user.Name, &user.Email, &user.Phone, &user.PasswordHash,
		&age, &height, &weight, &bodyType,
		&lastLogin, &sessionToken, &user.CreatedAt, &user.UpdatedAt,
	)

	if err != nil {
		if err == sql.ErrNoRows {
			return nil, store.ErrNotFound
		}
		return nil, err
	}

	if age.Valid {
		v := int(age.Int64)
		user.Age = &v
	}
	if height.Valid {
		v := int(height.Int64)
		user.Height = &v
	}
	if weight.Valid {
		user.Weight = &weight.Float64
	}
	if bodyType.Valid {
		user.BodyType = &bodyType.String
	}
	if sessionToken.Valid {
		user.SessionToken = &sessionToken.String
	}
	if lastLogin.Valid {
		user.LastLogin = &lastLogin.Time
	}

	return &user, nil
}

func (s *UserStore) UpdateDetails(ctx context.Context, id int, req models.UpdateDetailsRequest) error {
	query := "UPDATE users SET updated_at = NOW()"
	args := []interface{}{}
	argPos := 1

	if req.Age != nil {
		query += ", age = $" + strconv.Itoa(argPos)
		args = append(args, *req.Age)
		argPos++
	}

	if req.Height != nil {
		query += ", height = $" + strconv.Itoa(argPos)
		args = append(args, *req.Height)
		argPos++
	}

	if req.Weight != nil {
		query += ", weight = $" + strconv.Itoa(argPos)
		args = append(args, *req.Weight)
		argPos++
	}

	if req.BodyType != nil {
		query += ", body_type = $" + strconv.Itoa(argPos)
		args = append(args, *req.BodyType)
		argPos++
	}

	query += " WHERE id = $" + strconv.Itoa(argPos)
	args = append(args, id)

	result, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		return err
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return store.ErrNotFound
	}

	return nil
}

func (s *UserStore) UpdatePassword(ctx context.Context, id int, passwordHash string) error {
	result, err := s.db.ExecContext(ctx, `
		UPDATE users
		SET password_hash = $1, updated_at = NOW()
		WHERE id = $2
	`, passwordHash, id)
	if err != nil {
		return err
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return store.ErrNotFound
	}

	return nil
}

func (s *UserStore) UpdateSessionToken(ctx context.Context, id int, token *string) error {
	if token == nil {
		_, err := s.db.ExecContext(ctx, "UPDATE users SET session_token = NULL WHERE id = $1", id)
		return err
	}

	_, err := s.db.ExecContext(ctx, `
		UPDATE users
		SET session_token = $1, last_login = NOW()
		WHERE id = $2
	`, *token, id)
	return err
}

func (s *UserStore) DeleteUser(ctx context.Context, id int) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM users WHERE id = $1", id)
	if err != nil {
		return err
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return store.ErrNotFound
	}

	return nil
}
