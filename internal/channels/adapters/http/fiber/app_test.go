package fiber_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	httpadapter "zyra-views/internal/channels/adapters/http/fiber"
	"zyra-views/internal/channels/core/domain"
	"zyra-views/internal/channels/core/ports"
	"zyra-views/internal/channels/core/usecase"
	"zyra-views/internal/session"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubSession struct {
	err   error
	calls int
}

func (s *stubSession) EnsureReady(ctx context.Context) error {
	s.calls++
	return s.err
}

// countingGateway knows a single channel, @news, with a fixed set of posts.
type countingGateway struct {
	posts map[int]domain.PostSample
	calls int
}

func (g *countingGateway) ResolveEntity(ctx context.Context, ref string) (*domain.Entity, error) {
	g.calls++
	if ref != "@news" {
		return nil, ports.ErrEntityNotFound
	}
	title, username := "News", "news"
	return &domain.Entity{ID: 10, AccessHash: 20, Title: &title, Username: &username}, nil
}

func (g *countingGateway) FetchRecentMessages(ctx context.Context, e *domain.Entity, limit int) ([]domain.PostSample, error) {
	g.calls++
	out := make([]domain.PostSample, 0, len(g.posts))
	for _, p := range g.posts {
		out = append(out, p)
	}
	return out, nil
}

func (g *countingGateway) FetchMessageByID(ctx context.Context, e *domain.Entity, id int) (*domain.PostSample, error) {
	g.calls++
	p, ok := g.posts[id]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

func (g *countingGateway) FetchFullChannelInfo(ctx context.Context, e *domain.Entity) (*domain.FullChannelInfo, error) {
	g.calls++
	return &domain.FullChannelInfo{Subscribers: i64(1500)}, nil
}

func setupRealApp(t *testing.T, sess *stubSession, gw *countingGateway) *fiber.App {
	t.Helper()
	statsUC := usecase.NewGetStatsUseCase(sess, gw, time.Second)
	postUC := usecase.NewCheckPostUseCase(sess, gw, time.Second)
	return httpadapter.NewApp(httpadapter.NewChannelHandler(statsUC, postUC), testKey)
}

func newsGateway() *countingGateway {
	return &countingGateway{posts: map[int]domain.PostSample{
		1: {ID: 1, Views: i64(100), Date: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)},
		2: {ID: 2, Views: i64(5), Date: time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC)},
	}}
}

func TestApp_WrongKeyNeverTouchesTelegram(t *testing.T) {
	sess := &stubSession{}
	gw := newsGateway()
	app := setupRealApp(t, sess, gw)

	resp, _ := doJSON(t, app, http.MethodPost, "/stats", "wrong", `{"channel":"@news"}`)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	resp, _ = doJSON(t, app, http.MethodPost, "/post-check", "", `{"channel":"@news","message_id":1}`)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	assert.Zero(t, sess.calls)
	assert.Zero(t, gw.calls)
}

func TestApp_StatsEndToEnd(t *testing.T) {
	gw := newsGateway()
	app := setupRealApp(t, &stubSession{}, gw)

	resp, body := doJSON(t, app, http.MethodPost, "/stats", testKey, `{"channel":"https://t.me/news"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	assert.Equal(t, "@news", body["channel"])
	stats := body["stats"].(map[string]any)
	assert.Equal(t, float64(1500), stats["subscribers"])
	// (100 + 5) / 2 = 52.5, half to even
	assert.Equal(t, float64(52), stats["avg_views"])
	assert.Equal(t, float64(2), stats["recent_posts"])

	info := body["info"].(map[string]any)
	assert.Equal(t, "@news", info["username"])
	assert.Equal(t, "News", info["title"])
}

func TestApp_UnknownChannelIs404(t *testing.T) {
	app := setupRealApp(t, &stubSession{}, newsGateway())

	resp, body := doJSON(t, app, http.MethodPost, "/stats", testKey, `{"channel":"@nope"}`)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "channel_not_found", body["error"])

	resp, _ = doJSON(t, app, http.MethodPost, "/post-check", testKey, `{"channel":"t.me/nope","message_id":1}`)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestApp_PostCheckEndToEnd(t *testing.T) {
	app := setupRealApp(t, &stubSession{}, newsGateway())

	resp, body := doJSON(t, app, http.MethodPost, "/post-check", testKey, `{"channel":"news","message_id":2}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, true, body["exists"])
	assert.Equal(t, float64(5), body["views"])
	assert.Equal(t, "2025-01-02T00:00:00Z", body["date"])
	assert.NotContains(t, body, "edit_date")

	resp, body = doJSON(t, app, http.MethodPost, "/post-check", testKey, `{"channel":"news","message_id":3}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, map[string]any{"ok": true, "exists": false}, body)
}

func TestApp_UnauthorizedSessionIs401(t *testing.T) {
	gw := newsGateway()
	app := setupRealApp(t, &stubSession{err: session.ErrUnauthorizedSession}, gw)

	resp, body := doJSON(t, app, http.MethodPost, "/stats", testKey, `{"channel":"@news"}`)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "session_unauthorized", body["error"])
	assert.Zero(t, gw.calls)
}
