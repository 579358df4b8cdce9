// Package identity implements the credential gate. Every request is
// authenticated independently and statelessly against the stored admin
// list; there are no sessions and no token issuance.
package identity

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"github.com/bkuzmin/participant-registry/internal/domain"
	"golang.org/x/crypto/bcrypt"
)

// Comparer decides whether a presented password matches the stored one.
// The comparison strategy is isolated here so a hashed scheme can be
// substituted without touching the gate's control flow.
type Comparer interface {
	Compare(stored, presented string) bool
}

// PlaintextComparer matches passwords by plain equality, which is how
// the admin list stores them.
type PlaintextComparer struct{}

// Compare reports whether the presented password equals the stored one.
func (PlaintextComparer) Compare(stored, presented string) bool {
	return stored == presented
}

// BcryptComparer matches a presented password against a stored bcrypt
// hash. Drop-in replacement for PlaintextComparer once the admin list
// holds hashes.
type BcryptComparer struct{}

// Compare reports whether the presented password matches the stored hash.
func (BcryptComparer) Compare(stored, presented string) bool {
	return bcrypt.CompareHashAndPassword([]byte(stored), []byte(presented)) == nil
}

// Service authenticates Basic credentials against the admin list.
type Service struct {
	repo     Repository
	comparer Comparer
}

// NewService creates a credential gate with plaintext comparison.
func NewService(repo Repository) *Service {
	return NewServiceWithComparer(repo, PlaintextComparer{})
}

// NewServiceWithComparer creates a credential gate with a custom
// password comparison strategy.
func NewServiceWithComparer(repo Repository, comparer Comparer) *Service {
	return &Service{repo: repo, comparer: comparer}
}

// Authenticate checks an Authorization header value of the form
// "Basic base64(username:password)" and returns the matching admin.
// Rejections:
//   - ErrAuthScheme: header missing or scheme is not Basic
//   - ErrAuthFormat: payload not decodable, or username/password empty
//   - ErrInvalidCredentials: no admin matches the pair
//
// Any other error is a lookup infrastructure failure and must not be
// reported to the caller as invalid credentials.
func (s *Service) Authenticate(ctx context.Context, authorization string) (*domain.Admin, error) {
	scheme, payload, found := strings.Cut(authorization, " ")
	if !found || !strings.EqualFold(scheme, "Basic") {
		return nil, ErrAuthScheme
	}

	decoded, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, ErrAuthFormat
	}

	username, password, found := strings.Cut(string(decoded), ":")
	if !found || username == "" || password == "" {
		return nil, ErrAuthFormat
	}

	admin, err := s.repo.GetAdminByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, ErrAdminNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("lookup admin: %w", err)
	}

	if !s.comparer.Compare(admin.Password, password) {
		return nil, ErrInvalidCredentials
	}

	return admin, nil
}
