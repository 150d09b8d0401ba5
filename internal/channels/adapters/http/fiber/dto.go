package fiber

// StatsRequest represents channel stats payload
// @Description Channel reference: @name, name, t.me/name or https://t.me/name
type StatsRequest struct {
	Channel *string `json:"channel" example:"@durov"`
}

type PostCheckRequest struct {
	Channel   *string `json:"channel" example:"t.me/durov"`
	MessageID *int    `json:"message_id" example:"42"`
}

type HealthResponse struct {
	OK bool `json:"ok" example:"true"`
}

type StatsResponse struct {
	OK      bool         `json:"ok"`
	Channel string       `json:"channel" example:"@durov"`
	Stats   StatsPayload `json:"stats"`
	Info    InfoPayload  `json:"info"`
}

// StatsPayload fields are null when Telegram did not provide the data.
type StatsPayload struct {
	Subscribers *int64 `json:"subscribers" example:"1200000"`
	AvgViews    *int64 `json:"avg_views" example:"350000"`
	RecentPosts int    `json:"recent_posts" example:"20"`
}

type InfoPayload struct {
	Title       *string `json:"title" example:"Durov's Channel"`
	Username    *string `json:"username" example:"@durov"`
	Subscribers *int64  `json:"subscribers" example:"1200000"`
}

// PostCheckResponse has only ok and exists when the post is missing.
type PostCheckResponse struct {
	OK       bool    `json:"ok"`
	Exists   bool    `json:"exists"`
	Views    *int64  `json:"views,omitempty" example:"5400"`
	Date     *string `json:"date,omitempty" example:"2025-03-01T12:00:00Z"`
	EditDate *string `json:"edit_date,omitempty" example:"2025-03-01T12:30:00Z"`
}

type ErrorResponse struct {
	Error   string `json:"error" example:"channel_not_found"`
	Message string `json:"message,omitempty" example:"channel not found: @nope"`
}
