package db

import (
	"context"
	"database/sql"
	"errors"

	"meus-podcasts/internal/models"
)

// CreateUser inserts a new user and returns the stored row. The senha
// argument must already be hashed. A taken email yields ErrDuplicate.
func (s *Store) CreateUser(ctx context.Context, nome, email, senha string) (*models.User, error) {
	query := `
		INSERT INTO usuario (nome, email, senha)
		VALUES ($1, $2, $3)
		RETURNING id, nome, email, senha
	`
	user := &models.User{}
	err := s.db.GetContext(ctx, user, query, nome, email, senha)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrDuplicate
		}
		return nil, err
	}
	return user, nil
}

// GetUserByEmail looks a user up by exact email match. Email uniqueness
// is case-sensitive.
func (s *Store) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	user := &models.User{}
	err := s.db.GetContext(ctx, user, "SELECT id, nome, email, senha FROM usuario WHERE email = $1", email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return user, nil
}

// GetUserByID fetches a user by primary key.
func (s *Store) GetUserByID(ctx context.Context, id int64) (*models.User, error) {
	user := &models.User{}
	err := s.db.GetContext(ctx, user, "SELECT id, nome, email, senha FROM usuario WHERE id = $1", id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return user, nil
}
