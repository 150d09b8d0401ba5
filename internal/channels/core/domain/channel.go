package domain

import "time"

// Entity is a channel resolved by the gateway. ID and AccessHash are only
// meaningful to the gateway that produced them.
type Entity struct {
	ID         int64
	AccessHash int64

	Title       *string
	Username    *string // without "@"
	Subscribers *int64  // coarse count from resolution, often absent
}

type FullChannelInfo struct {
	Subscribers *int64
}

type PostSample struct {
	ID       int
	Views    *int64 // nil when the post carries no view counter
	Date     time.Time
	EditDate *time.Time
}

// ChannelInfo is the best-effort description of a channel.
type ChannelInfo struct {
	Title       *string
	Username    *string // "@name"
	Subscribers *int64
}

type StatsResult struct {
	Channel     string // canonical "@name"
	Subscribers *int64
	AvgViews    *int64 // nil when no sampled post has views
	RecentPosts int    // posts with a usable view count, 0..20
	Info        ChannelInfo
}

type PostCheckResult struct {
	Exists      bool
	Views       *int64
	PublishedAt *time.Time
	EditedAt    *time.Time
}
