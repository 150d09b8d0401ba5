package ports

import (
	"context"
	"errors"

	"zyra-views/internal/channels/core/domain"
)

// ErrEntityNotFound is returned by ResolveEntity when the reference does not
// point to a public channel.
var ErrEntityNotFound = errors.New("entity not found")

type ChannelGatewayPort interface {
	ResolveEntity(ctx context.Context, ref string) (*domain.Entity, error)

	// FetchRecentMessages returns at most limit posts, most recent first.
	FetchRecentMessages(ctx context.Context, e *domain.Entity, limit int) ([]domain.PostSample, error)

	// FetchMessageByID:
	//   post != nil, err = nil  -> message exists
	//   post = nil,  err = nil  -> no such message
	//   err != nil              -> gateway failure
	FetchMessageByID(ctx context.Context, e *domain.Entity, id int) (post *domain.PostSample, err error)

	FetchFullChannelInfo(ctx context.Context, e *domain.Entity) (*domain.FullChannelInfo, error)
}

// SessionPort guarantees the shared protocol session is connected and
// authorized before the gateway is used.
type SessionPort interface {
	EnsureReady(ctx context.Context) error
}
