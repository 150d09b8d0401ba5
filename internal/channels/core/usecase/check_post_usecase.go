package usecase

import (
	"context"
	"time"

	"zyra-views/internal/channels/core/domain"
	"zyra-views/internal/channels/core/ports"
)

type CheckPostInput struct {
	Channel   string
	MessageID int
}

type CheckPostUseCase struct {
	session     ports.SessionPort
	gateway     ports.ChannelGatewayPort
	callTimeout time.Duration
}

func NewCheckPostUseCase(session ports.SessionPort, gateway ports.ChannelGatewayPort, callTimeout time.Duration) *CheckPostUseCase {
	return &CheckPostUseCase{
		session:     session,
		gateway:     gateway,
		callTimeout: callTimeout,
	}
}

// Execute reports whether a post exists in the channel. A missing post is a
// normal result, not an error.
func (uc *CheckPostUseCase) Execute(ctx context.Context, in CheckPostInput) (*domain.PostCheckResult, error) {
	if in.MessageID <= 0 {
		return nil, ErrInvalidMessageID
	}

	if err := uc.session.EnsureReady(ctx); err != nil {
		return nil, err
	}

	channel := domain.NormalizeChannel(in.Channel)

	entity, err := resolveChannel(ctx, uc.gateway, uc.callTimeout, channel)
	if err != nil {
		return nil, err
	}

	callCtx, cancel := withCallTimeout(ctx, uc.callTimeout)
	defer cancel()

	post, err := uc.gateway.FetchMessageByID(callCtx, entity, in.MessageID)
	if err != nil {
		return nil, gatewayErr(ctx, "fetch message", err)
	}
	if post == nil {
		return &domain.PostCheckResult{Exists: false}, nil
	}

	res := &domain.PostCheckResult{
		Exists:   true,
		EditedAt: post.EditDate,
	}
	if post.Views != nil && *post.Views >= 0 {
		res.Views = post.Views
	}
	if !post.Date.IsZero() {
		published := post.Date
		res.PublishedAt = &published
	}

	return res, nil
}
