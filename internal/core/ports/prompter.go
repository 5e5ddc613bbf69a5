package ports

import (
	"context"

	"go.trai.ch/wodl/internal/core/domain"
)

// Prompter asks the operator for input.
//
//go:generate go run go.uber.org/mock/mockgen -source=prompter.go -destination=mocks/mock_prompter.go -package=mocks
type Prompter interface {
	// Credentials completes the preset with whatever is missing.
	Credentials(ctx context.Context, preset domain.Credentials) (domain.Credentials, error)

	// ConfirmReuse asks whether the persisted cache should be used.
	ConfirmReuse(ctx context.Context, freshness domain.CacheFreshness) (bool, error)
}
