package identity

import (
	"context"

	"github.com/bkuzmin/participant-registry/internal/domain"
)

// Repository defines the interface for admin credential lookups.
// The admin list is read-only from this service's perspective.
type Repository interface {
	GetAdminByUsername(ctx context.Context, username string) (*domain.Admin, error)
}
