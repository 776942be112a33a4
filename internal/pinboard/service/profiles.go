package service

import (
	"context"

	"github.com/aussiebroadwan/pinboard/internal/pinboard/domain"
	"github.com/aussiebroadwan/pinboard/pkg/idx"
	"golang.org/x/sync/errgroup"
)

// ProfileService composes a user page from the credential, post and follow
// components.
type ProfileService struct {
	Credentials *CredentialService
	Posts       *PostService
	Follows     *FollowService
}

// Get returns the profile of username as seen by viewerID. The counts are
// read concurrently.
func (s *ProfileService) Get(ctx context.Context, username string, viewerID idx.ID) (domain.Profile, error) {
	identity, err := s.Credentials.GetByUsername(ctx, username)
	if err != nil {
		return domain.Profile{}, err
	}

	profile := domain.Profile{
		Username:  identity.Username,
		AvatarURI: identity.AvatarURI,
		IsSelf:    !viewerID.IsZero() && viewerID == identity.ID,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		profile.Counts.Posts, err = s.Posts.CountByAuthor(gctx, identity.ID)
		return err
	})
	g.Go(func() (err error) {
		profile.Counts.Followers, err = s.Follows.CountFollowers(gctx, identity.ID)
		return err
	})
	g.Go(func() (err error) {
		profile.Counts.Following, err = s.Follows.CountFollowing(gctx, identity.ID)
		return err
	})
	if !profile.IsSelf {
		g.Go(func() (err error) {
			profile.IsFollowing, err = s.Follows.IsFollowing(gctx, identity.ID, viewerID)
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return domain.Profile{}, err
	}

	return profile, nil
}
