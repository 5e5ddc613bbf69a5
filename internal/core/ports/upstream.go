package ports

import (
	"context"

	"go.trai.ch/wodl/internal/core/domain"
)

// Upstream is the facility-management API.
//
//go:generate go run go.uber.org/mock/mockgen -source=upstream.go -destination=mocks/mock_upstream.go -package=mocks
type Upstream interface {
	// Login exchanges credentials for a session.
	Login(ctx context.Context, baseURL string, creds domain.Credentials) (domain.Session, error)

	// Logout revokes the session token.
	Logout(ctx context.Context, session domain.Session) error

	// ListWorkOrders returns at most limit work orders in upstream order.
	ListWorkOrders(ctx context.Context, session domain.Session, limit int) ([]domain.Record, error)

	// FetchEntity looks up one related entity.
	FetchEntity(ctx context.Context, session domain.Session, entityType domain.EntityType, id string) domain.FetchResult
}
