package usecase_test

import (
	"context"
	"sync/atomic"

	"zyra-views/internal/channels/core/domain"
)

// fakeSession implements ports.SessionPort.
type fakeSession struct {
	Err   error
	calls atomic.Int32
}

func (f *fakeSession) EnsureReady(ctx context.Context) error {
	f.calls.Add(1)
	return f.Err
}

// fakeGateway implements ports.ChannelGatewayPort.
type fakeGateway struct {
	ResolveFn  func(ctx context.Context, ref string) (*domain.Entity, error)
	RecentFn   func(ctx context.Context, e *domain.Entity, limit int) ([]domain.PostSample, error)
	ByIDFn     func(ctx context.Context, e *domain.Entity, id int) (*domain.PostSample, error)
	FullInfoFn func(ctx context.Context, e *domain.Entity) (*domain.FullChannelInfo, error)

	lastRef     string
	lastLimit   int
	lastID      int
	resolveCall int
	fetchCalls  int
}

func (f *fakeGateway) ResolveEntity(ctx context.Context, ref string) (*domain.Entity, error) {
	f.resolveCall++
	f.lastRef = ref
	if f.ResolveFn != nil {
		return f.ResolveFn(ctx, ref)
	}
	return &domain.Entity{ID: 1, AccessHash: 2}, nil
}

func (f *fakeGateway) FetchRecentMessages(ctx context.Context, e *domain.Entity, limit int) ([]domain.PostSample, error) {
	f.fetchCalls++
	f.lastLimit = limit
	if f.RecentFn != nil {
		return f.RecentFn(ctx, e, limit)
	}
	return nil, nil
}

func (f *fakeGateway) FetchMessageByID(ctx context.Context, e *domain.Entity, id int) (*domain.PostSample, error) {
	f.fetchCalls++
	f.lastID = id
	if f.ByIDFn != nil {
		return f.ByIDFn(ctx, e, id)
	}
	return nil, nil
}

func (f *fakeGateway) FetchFullChannelInfo(ctx context.Context, e *domain.Entity) (*domain.FullChannelInfo, error) {
	f.fetchCalls++
	if f.FullInfoFn != nil {
		return f.FullInfoFn(ctx, e)
	}
	return &domain.FullChannelInfo{}, nil
}

func i64(v int64) *int64 { return &v }

func str(v string) *string { return &v }

func samplesWithViews(views ...int64) []domain.PostSample {
	out := make([]domain.PostSample, 0, len(views))
	for i, v := range views {
		out = append(out, domain.PostSample{ID: len(views) - i, Views: i64(v)})
	}
	return out
}
