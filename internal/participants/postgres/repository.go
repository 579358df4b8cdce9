// Package postgres provides the PostgreSQL implementation of the
// participants repository.
package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/bkuzmin/participant-registry/internal/domain"
	"github.com/bkuzmin/participant-registry/internal/participants"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const uniqueViolationCode = "23505"

const dobFormat = "2006-01-02"

// Repository implements participants.Repository using PostgreSQL.
type Repository struct {
	db *pgxpool.Pool
}

// NewRepository creates a new PostgreSQL repository.
func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

// Create inserts a participant row. A unique constraint violation on
// email maps to participants.ErrDuplicateEmail.
func (r *Repository) Create(ctx context.Context, p *domain.Participant) error {
	dob, err := time.Parse(dobFormat, p.Dob)
	if err != nil {
		return fmt.Errorf("parse dob: %w", err)
	}

	query := `
		INSERT INTO participants (email, firstname, lastname, dob, companyname, salary, currency, country, city)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`
	_, err = r.db.Exec(ctx, query,
		p.Email,
		p.Firstname,
		p.Lastname,
		dob,
		p.CompanyName,
		p.Salary,
		p.Currency,
		p.Country,
		p.City,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return participants.ErrDuplicateEmail
		}
		return fmt.Errorf("create participant: %w", err)
	}
	return nil
}

// List retrieves all participants with every column.
func (r *Repository) List(ctx context.Context) ([]domain.Participant, error) {
	query := `
		SELECT email, firstname, lastname, dob, companyname, salary, currency, country, city
		FROM participants
		ORDER BY email
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list participants: %w", err)
	}
	defer rows.Close()

	result := make([]domain.Participant, 0)
	for rows.Next() {
		var p domain.Participant
		var dob time.Time
		err := rows.Scan(
			&p.Email,
			&p.Firstname,
			&p.Lastname,
			&dob,
			&p.CompanyName,
			&p.Salary,
			&p.Currency,
			&p.Country,
			&p.City,
		)
		if err != nil {
			return nil, fmt.Errorf("scan participant: %w", err)
		}
		p.Dob = dob.Format(dobFormat)
		result = append(result, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate participants: %w", err)
	}
	return result, nil
}

// ListSummaries retrieves the firstname/lastname/email projection of
// all participants.
func (r *Repository) ListSummaries(ctx context.Context) ([]domain.ParticipantSummary, error) {
	query := `
		SELECT firstname, lastname, email
		FROM participants
		ORDER BY email
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list participant summaries: %w", err)
	}
	defer rows.Close()

	result := make([]domain.ParticipantSummary, 0)
	for rows.Next() {
		var s domain.ParticipantSummary
		if err := rows.Scan(&s.Firstname, &s.Lastname, &s.Email); err != nil {
			return nil, fmt.Errorf("scan participant summary: %w", err)
		}
		result = append(result, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate participant summaries: %w", err)
	}
	return result, nil
}

// GetDetails retrieves the personal facet of one participant.
func (r *Repository) GetDetails(ctx context.Context, email string) (*domain.ParticipantDetails, error) {
	query := `
		SELECT firstname, lastname, dob
		FROM participants
		WHERE email = $1
	`
	var d domain.ParticipantDetails
	var dob time.Time
	err := r.db.QueryRow(ctx, query, email).Scan(&d.Firstname, &d.Lastname, &dob)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, participants.ErrParticipantNotFound
		}
		return nil, fmt.Errorf("get participant details: %w", err)
	}
	d.Dob = dob.Format(dobFormat)
	return &d, nil
}

// GetWork retrieves the work facet of one participant.
func (r *Repository) GetWork(ctx context.Context, email string) (*domain.WorkDetails, error) {
	query := `
		SELECT companyname, salary, currency
		FROM participants
		WHERE email = $1
	`
	var w domain.WorkDetails
	err := r.db.QueryRow(ctx, query, email).Scan(&w.CompanyName, &w.Salary, &w.Currency)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, participants.ErrParticipantNotFound
		}
		return nil, fmt.Errorf("get participant work: %w", err)
	}
	return &w, nil
}

// GetHome retrieves the home facet of one participant.
func (r *Repository) GetHome(ctx context.Context, email string) (*domain.HomeDetails, error) {
	query := `
		SELECT country, city
		FROM participants
		WHERE email = $1
	`
	var h domain.HomeDetails
	err := r.db.QueryRow(ctx, query, email).Scan(&h.Country, &h.City)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, participants.ErrParticipantNotFound
		}
		return nil, fmt.Errorf("get participant home: %w", err)
	}
	return &h, nil
}

// Update replaces all non-key columns of the row matching the email.
// Zero affected rows maps to participants.ErrParticipantNotFound.
func (r *Repository) Update(ctx context.Context, p *domain.Participant) error {
	dob, err := time.Parse(dobFormat, p.Dob)
	if err != nil {
		return fmt.Errorf("parse dob: %w", err)
	}

	query := `
		UPDATE participants
		SET firstname = $2, lastname = $3, dob = $4, companyname = $5,
		    salary = $6, currency = $7, country = $8, city = $9
		WHERE email = $1
	`
	result, err := r.db.Exec(ctx, query,
		p.Email,
		p.Firstname,
		p.Lastname,
		dob,
		p.CompanyName,
		p.Salary,
		p.Currency,
		p.Country,
		p.City,
	)
	if err != nil {
		return fmt.Errorf("update participant: %w", err)
	}
	if result.RowsAffected() == 0 {
		return participants.ErrParticipantNotFound
	}
	return nil
}

// Delete removes the row matching the email. Zero affected rows maps
// to participants.ErrParticipantNotFound.
func (r *Repository) Delete(ctx context.Context, email string) error {
	result, err := r.db.Exec(ctx, `DELETE FROM participants WHERE email = $1`, email)
	if err != nil {
		return fmt.Errorf("delete participant: %w", err)
	}
	if result.RowsAffected() == 0 {
		return participants.ErrParticipantNotFound
	}
	return nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode
}
