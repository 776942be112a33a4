package domain

import (
	"time"

	"github.com/aussiebroadwan/pinboard/pkg/idx"
)

// Follow is a directed edge from follower to followed.
type Follow struct {
	FollowerID idx.ID
	FollowedID idx.ID
	CreatedAt  time.Time
}

// ProfileSummary is the display data shown in follower and following lists.
type ProfileSummary struct {
	Username  string
	AvatarURI string
}

// ProfileCounts are live aggregates for one identity.
type ProfileCounts struct {
	Posts     int
	Followers int
	Following int
}

// Profile is a user page as seen by one viewer.
type Profile struct {
	Username    string
	AvatarURI   string
	IsFollowing bool
	IsSelf      bool
	Counts      ProfileCounts
}
