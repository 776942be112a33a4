package http

import (
	"github.com/aussiebroadwan/pinboard/internal/pinboard/domain"
	"github.com/aussiebroadwan/pinboard/pkg/pinsdk"
)

func toUserResponse(identity domain.Identity) pinsdk.UserResponse {
	return pinsdk.UserResponse{
		ID:        identity.ID.String(),
		Username:  identity.Username,
		Avatar:    identity.AvatarURI,
		CreatedAt: identity.CreatedAt,
	}
}

func toPostResponse(post domain.EnrichedPost) pinsdk.PostResponse {
	return pinsdk.PostResponse{
		ID:        post.ID.String(),
		Title:     post.Title,
		Body:      post.Body,
		CreatedAt: post.CreatedAt,
		Author: pinsdk.AuthorResponse{
			Username: post.Author.Username,
			Avatar:   post.Author.AvatarURI,
		},
		IsOwner: post.IsOwner,
	}
}

func toPostResponses(posts []domain.EnrichedPost) []pinsdk.PostResponse {
	out := make([]pinsdk.PostResponse, 0, len(posts))
	for _, p := range posts {
		out = append(out, toPostResponse(p))
	}
	return out
}

func toSummaries(summaries []domain.ProfileSummary) []pinsdk.ProfileSummary {
	out := make([]pinsdk.ProfileSummary, 0, len(summaries))
	for _, s := range summaries {
		out = append(out, pinsdk.ProfileSummary{Username: s.Username, Avatar: s.AvatarURI})
	}
	return out
}

func toProfileResponse(p domain.Profile) pinsdk.ProfileResponse {
	return pinsdk.ProfileResponse{
		Username:    p.Username,
		Avatar:      p.AvatarURI,
		IsFollowing: p.IsFollowing,
		IsSelf:      p.IsSelf,
		Counts: pinsdk.ProfileCounts{
			Posts:     p.Counts.Posts,
			Followers: p.Counts.Followers,
			Following: p.Counts.Following,
		},
	}
}
