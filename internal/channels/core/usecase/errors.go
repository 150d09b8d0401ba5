package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"zyra-views/internal/channels/core/domain"
	"zyra-views/internal/channels/core/ports"
)

var (
	ErrChannelNotFound  = errors.New("channel not found")
	ErrGatewayTimeout   = errors.New("telegram request timed out")
	ErrInvalidMessageID = errors.New("message_id must be positive")
)

func withCallTimeout(ctx context.Context, d time.Duration) (context.Context, context.CancelFunc) {
	if d <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, d)
}

// gatewayErr converts a failed gateway call into ErrGatewayTimeout when the
// per-call deadline fired, and wraps it otherwise.
func gatewayErr(ctx context.Context, op string, err error) error {
	if ctx.Err() == nil && errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: %s", ErrGatewayTimeout, op)
	}
	return fmt.Errorf("%s: %w", op, err)
}

// resolveChannel resolves a canonical reference. Every failure other than a
// timeout or a cancelled request is reported as ErrChannelNotFound.
func resolveChannel(ctx context.Context, gw ports.ChannelGatewayPort, timeout time.Duration, channel string) (*domain.Entity, error) {
	callCtx, cancel := withCallTimeout(ctx, timeout)
	defer cancel()

	e, err := gw.ResolveEntity(callCtx, channel)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, fmt.Errorf("%w: resolve %s", ErrGatewayTimeout, channel)
		}
		return nil, fmt.Errorf("%w: %s", ErrChannelNotFound, channel)
	}
	if e == nil {
		return nil, fmt.Errorf("%w: %s", ErrChannelNotFound, channel)
	}
	return e, nil
}
