package usecase

import (
	"context"
	"math"
	"time"

	"github.com/rs/zerolog/log"

	"zyra-views/internal/channels/core/domain"
	"zyra-views/internal/channels/core/ports"
)

// RecentPostsLimit is how many of the latest posts are sampled for views.
const RecentPostsLimit = 20

type GetStatsInput struct {
	Channel string // any accepted reference form
}

type GetStatsUseCase struct {
	session     ports.SessionPort
	gateway     ports.ChannelGatewayPort
	callTimeout time.Duration
}

func NewGetStatsUseCase(session ports.SessionPort, gateway ports.ChannelGatewayPort, callTimeout time.Duration) *GetStatsUseCase {
	return &GetStatsUseCase{
		session:     session,
		gateway:     gateway,
		callTimeout: callTimeout,
	}
}

// Execute computes subscriber count and average views of recent posts.
// Missing subscriber counts and channels without view counters are valid,
// partial results.
func (uc *GetStatsUseCase) Execute(ctx context.Context, in GetStatsInput) (*domain.StatsResult, error) {
	if err := uc.session.EnsureReady(ctx); err != nil {
		return nil, err
	}

	channel := domain.NormalizeChannel(in.Channel)

	entity, err := resolveChannel(ctx, uc.gateway, uc.callTimeout, channel)
	if err != nil {
		return nil, err
	}

	info := domain.ChannelInfo{
		Title:       entity.Title,
		Subscribers: uc.subscribers(ctx, channel, entity),
	}
	if entity.Username != nil {
		username := "@" + *entity.Username
		info.Username = &username
	}

	posts, err := uc.recentPosts(ctx, entity)
	if err != nil {
		return nil, err
	}

	avg, n := averageViews(posts)

	return &domain.StatsResult{
		Channel:     channel,
		Subscribers: info.Subscribers,
		AvgViews:    avg,
		RecentPosts: n,
		Info:        info,
	}, nil
}

// subscribers prefers the full channel info and falls back to the count
// attached to the resolved entity. Absent stays absent, never zero.
func (uc *GetStatsUseCase) subscribers(ctx context.Context, channel string, e *domain.Entity) *int64 {
	callCtx, cancel := withCallTimeout(ctx, uc.callTimeout)
	defer cancel()

	full, err := uc.gateway.FetchFullChannelInfo(callCtx, e)
	if err != nil {
		log.Warn().Err(err).Str("channel", channel).Msg("full channel info unavailable, using resolved entity")
		return e.Subscribers
	}
	if full == nil || full.Subscribers == nil {
		return e.Subscribers
	}
	return full.Subscribers
}

func (uc *GetStatsUseCase) recentPosts(ctx context.Context, e *domain.Entity) ([]domain.PostSample, error) {
	callCtx, cancel := withCallTimeout(ctx, uc.callTimeout)
	defer cancel()

	posts, err := uc.gateway.FetchRecentMessages(callCtx, e, RecentPostsLimit)
	if err != nil {
		return nil, gatewayErr(ctx, "fetch recent messages", err)
	}
	if len(posts) > RecentPostsLimit {
		posts = posts[:RecentPostsLimit]
	}
	return posts, nil
}

// averageViews returns the rounded mean over posts with a non-negative view
// count and how many posts qualified. Halves round to even.
func averageViews(posts []domain.PostSample) (*int64, int) {
	var (
		sum int64
		n   int
	)
	for _, p := range posts {
		if p.Views == nil || *p.Views < 0 {
			continue
		}
		sum += *p.Views
		n++
	}
	if n == 0 {
		return nil, 0
	}

	avg := int64(math.RoundToEven(float64(sum) / float64(n)))
	return &avg, n
}
