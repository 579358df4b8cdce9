// Package postgres provides the PostgreSQL implementation of the
// identity repository.
package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/bkuzmin/participant-registry/internal/domain"
	"github.com/bkuzmin/participant-registry/internal/identity"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repository implements identity.Repository using PostgreSQL.
type Repository struct {
	db *pgxpool.Pool
}

// NewRepository creates a new PostgreSQL repository.
func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

// GetAdminByUsername retrieves one admin credential row.
func (r *Repository) GetAdminByUsername(ctx context.Context, username string) (*domain.Admin, error) {
	query := `
		SELECT id, username, password
		FROM admins
		WHERE username = $1
	`
	var admin domain.Admin
	err := r.db.QueryRow(ctx, query, username).Scan(&admin.ID, &admin.Username, &admin.Password)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, identity.ErrAdminNotFound
		}
		return nil, fmt.Errorf("get admin by username: %w", err)
	}
	return &admin, nil
}
