package testutil

import (
	"fmt"

	"github.com/google/uuid"
)

// RandomEmail returns a unique participant email for test isolation.
func RandomEmail() string {
	return fmt.Sprintf("p-%s@example.com", uuid.NewString()[:8])
}
