package handler

import (
	"context"

	"github.com/google/uuid"
)

// statusChangeFunc is the shape of the partner status transition operations
type statusChangeFunc func(ctx context.Context, tenantID, id uuid.UUID) error
