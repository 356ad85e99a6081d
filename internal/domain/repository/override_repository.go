package repository

import (
	"context"

	"chaingen/internal/domain/entity"
)

// OverrideRepository supplies per-chain identifier and block time overrides.
type OverrideRepository interface {
	Load(ctx context.Context) (entity.Overrides, error)
}
