package weather

import (
	"context"
)

// Provider abstracts the upstream weather source.
// Implementations return ErrAPIKeyMissing when they cannot authenticate.
type Provider interface {
	Name() string
	Fetch(ctx context.Context, q Query) (Document, error)
}
