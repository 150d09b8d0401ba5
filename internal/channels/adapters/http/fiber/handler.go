package fiber

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"zyra-views/internal/channels/core/domain"
	"zyra-views/internal/channels/core/usecase"
	"zyra-views/internal/session"
)

type GetStatsUseCase interface {
	Execute(ctx context.Context, in usecase.GetStatsInput) (*domain.StatsResult, error)
}

type CheckPostUseCase interface {
	Execute(ctx context.Context, in usecase.CheckPostInput) (*domain.PostCheckResult, error)
}

type ChannelHandler struct {
	statsUC GetStatsUseCase
	postUC  CheckPostUseCase
}

func NewChannelHandler(statsUC GetStatsUseCase, postUC CheckPostUseCase) *ChannelHandler {
	return &ChannelHandler{statsUC: statsUC, postUC: postUC}
}

// Health godoc
// @Summary Liveness check
// @Tags Service
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /health [get]
func (h *ChannelHandler) Health(c *fiber.Ctx) error {
	return c.Status(http.StatusOK).JSON(HealthResponse{OK: true})
}

// GetStats godoc
// @Summary Channel reach
// @Description Subscribers and average views of the last 20 posts of a public channel
// @Tags Channels
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param request body StatsRequest true "Channel reference"
// @Success 200 {object} StatsResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse "Userbot session is not authorized"
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 504 {object} ErrorResponse
// @Router /stats [post]
func (h *ChannelHandler) GetStats(c *fiber.Ctx) error {
	var req StatsRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Error: "invalid_json",
		})
	}
	if req.Channel == nil {
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Error:   "invalid_request",
			Message: "channel is required",
		})
	}

	res, err := h.statsUC.Execute(c.UserContext(), usecase.GetStatsInput{Channel: *req.Channel})
	if err != nil {
		return writeError(c, err)
	}

	return c.Status(http.StatusOK).JSON(StatsResponse{
		OK:      true,
		Channel: res.Channel,
		Stats: StatsPayload{
			Subscribers: res.Subscribers,
			AvgViews:    res.AvgViews,
			RecentPosts: res.RecentPosts,
		},
		Info: InfoPayload{
			Title:       res.Info.Title,
			Username:    res.Info.Username,
			Subscribers: res.Info.Subscribers,
		},
	})
}

// CheckPost godoc
// @Summary Post existence check
// @Description Confirms that a post is published in a channel. A missing post is a 200 with exists=false.
// @Tags Channels
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param request body PostCheckRequest true "Channel and message id"
// @Success 200 {object} PostCheckResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse "Userbot session is not authorized"
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 504 {object} ErrorResponse
// @Router /post-check [post]
func (h *ChannelHandler) CheckPost(c *fiber.Ctx) error {
	var req PostCheckRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Error: "invalid_json",
		})
	}
	if req.Channel == nil || req.MessageID == nil {
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Error:   "invalid_request",
			Message: "channel and message_id are required",
		})
	}

	res, err := h.postUC.Execute(c.UserContext(), usecase.CheckPostInput{
		Channel:   *req.Channel,
		MessageID: *req.MessageID,
	})
	if err != nil {
		return writeError(c, err)
	}

	resp := PostCheckResponse{OK: true, Exists: res.Exists}
	if res.Exists {
		resp.Views = res.Views
		resp.Date = formatTime(res.PublishedAt)
		resp.EditDate = formatTime(res.EditedAt)
	}

	return c.Status(http.StatusOK).JSON(resp)
}

func formatTime(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.UTC().Format(time.RFC3339)
	return &s
}

func writeError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, usecase.ErrInvalidMessageID):
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Error:   "invalid_request",
			Message: err.Error(),
		})
	case errors.Is(err, session.ErrUnauthorizedSession):
		return c.Status(http.StatusUnauthorized).JSON(ErrorResponse{
			Error:   "session_unauthorized",
			Message: "Userbot session is not authorized",
		})
	case errors.Is(err, usecase.ErrChannelNotFound):
		return c.Status(http.StatusNotFound).JSON(ErrorResponse{
			Error:   "channel_not_found",
			Message: err.Error(),
		})
	case errors.Is(err, session.ErrSessionUnavailable):
		log.Error().Err(err).Str("request_id", requestID(c)).Msg("telegram session unavailable")
		return c.Status(http.StatusServiceUnavailable).JSON(ErrorResponse{
			Error: "session_unavailable",
		})
	case errors.Is(err, usecase.ErrGatewayTimeout), errors.Is(err, session.ErrSessionTimeout):
		return c.Status(http.StatusGatewayTimeout).JSON(ErrorResponse{
			Error:   "gateway_timeout",
			Message: err.Error(),
		})
	default:
		log.Error().Err(err).Str("request_id", requestID(c)).Str("path", c.Path()).Msg("request failed")
		return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
			Error: "internal_server_error",
		})
	}
}
