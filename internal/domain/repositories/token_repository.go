package repositories

import (
	"context"

	"github.com/google/uuid"
	"token-market.backend/internal/domain/entities"
)

// TokenRepository defines token catalog read operations. Tokens are written
// by administrative sync tooling, not by the marketplace.
type TokenRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Token, error)
	List(ctx context.Context, limit, offset int) ([]*entities.Token, int64, error)
}
