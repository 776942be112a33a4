package domain

import (
	"time"

	"github.com/aussiebroadwan/pinboard/pkg/idx"
)

// Post is a stored content item.
type Post struct {
	ID        idx.ID
	Title     string
	Body      string
	AuthorID  idx.ID
	CreatedAt time.Time
}

// Author is the public face of a post's author.
type Author struct {
	Username  string
	AvatarURI string
}

// EnrichedPost is a post joined with its author, as seen by one viewer.
// The author's id is deliberately absent.
type EnrichedPost struct {
	ID        idx.ID
	Title     string
	Body      string
	CreatedAt time.Time
	Author    Author
	IsOwner   bool
}

// PostOrder selects the ordering of a post query.
type PostOrder int

const (
	OrderNewest PostOrder = iota
	OrderOldest
	OrderRelevance
)

func (o PostOrder) String() string {
	switch o {
	case OrderOldest:
		return "oldest"
	case OrderRelevance:
		return "relevance"
	default:
		return "newest"
	}
}
