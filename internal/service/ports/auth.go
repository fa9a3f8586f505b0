package ports

import (
	"context"

	"github.com/05ryt31/No-more-FOMO/internal/domain"
)

// Authenticator resolves an opaque signed token into an active user. It is
// the single verification capability consumed by every operation: read paths
// treat its failure as "anonymous", write paths fail closed.
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (*domain.User, error)
}
