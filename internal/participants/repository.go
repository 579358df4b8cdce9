package participants

import (
	"context"

	"github.com/bkuzmin/participant-registry/internal/domain"
)

// Repository defines the interface for participant data operations.
// Implementations map their storage engine's conflict signals to
// ErrDuplicateEmail and ErrParticipantNotFound.
type Repository interface {
	Create(ctx context.Context, p *domain.Participant) error
	List(ctx context.Context) ([]domain.Participant, error)
	ListSummaries(ctx context.Context) ([]domain.ParticipantSummary, error)
	GetDetails(ctx context.Context, email string) (*domain.ParticipantDetails, error)
	GetWork(ctx context.Context, email string) (*domain.WorkDetails, error)
	GetHome(ctx context.Context, email string) (*domain.HomeDetails, error)
	Update(ctx context.Context, p *domain.Participant) error
	Delete(ctx context.Context, email string) error
}
