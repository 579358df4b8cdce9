package participants

import (
	"context"

	"github.com/bkuzmin/participant-registry/internal/domain"
)

// Service implements participant business logic over a Repository.
type Service struct {
	repo Repository
}

// NewService creates a new participant service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Create stores a new participant. The email unique constraint is
// enforced by storage; a conflict surfaces as ErrDuplicateEmail.
func (s *Service) Create(ctx context.Context, p *domain.Participant) error {
	return s.repo.Create(ctx, p)
}

// List returns all participants with every field.
func (s *Service) List(ctx context.Context) ([]domain.Participant, error) {
	return s.repo.List(ctx)
}

// ListSummaries returns the name/email projection of all participants.
func (s *Service) ListSummaries(ctx context.Context) ([]domain.ParticipantSummary, error) {
	return s.repo.ListSummaries(ctx)
}

// GetDetails returns the personal facet of one participant.
func (s *Service) GetDetails(ctx context.Context, email string) (*domain.ParticipantDetails, error) {
	return s.repo.GetDetails(ctx, email)
}

// GetWork returns the work facet of one participant.
func (s *Service) GetWork(ctx context.Context, email string) (*domain.WorkDetails, error) {
	return s.repo.GetWork(ctx, email)
}

// GetHome returns the home facet of one participant.
func (s *Service) GetHome(ctx context.Context, email string) (*domain.HomeDetails, error) {
	return s.repo.GetHome(ctx, email)
}

// Update replaces all non-key fields of the participant identified by
// email. The body email must match; renaming via update is not allowed.
func (s *Service) Update(ctx context.Context, email string, p *domain.Participant) error {
	if p.Email != email {
		return ErrEmailMismatch
	}
	return s.repo.Update(ctx, p)
}

// Delete removes the participant identified by email.
func (s *Service) Delete(ctx context.Context, email string) error {
	return s.repo.Delete(ctx, email)
}
