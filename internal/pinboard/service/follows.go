package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/aussiebroadwan/pinboard/internal/pinboard/domain"
	"github.com/aussiebroadwan/pinboard/internal/pinboard/store"
	"github.com/aussiebroadwan/pinboard/pkg/idx"
	"github.com/aussiebroadwan/pinboard/pkg/slogx"
)

// FollowService owns the directed follow graph.
type FollowService struct {
	Store store.Store
}

type followAction int

const (
	actionFollow followAction = iota
	actionUnfollow
)

// Follow makes followerID follow the identity named followedUsername.
func (s *FollowService) Follow(ctx context.Context, followedUsername any, followerID idx.ID) error {
	var target domain.Identity
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		var err error
		target, err = validateFollow(ctx, tx, followedUsername, followerID, actionFollow)
		if err != nil {
			return err
		}

		edge := domain.Follow{FollowerID: followerID, FollowedID: target.ID, CreatedAt: time.Now().UTC()}
		if err := tx.Follows().Create(ctx, edge); err != nil {
			if errors.Is(err, store.ErrAlreadyExists) {
				return domain.Validation(MsgAlreadyFollowing)
			}
			slogx.FromContext(ctx).Error("follow insert failed", slog.Any("error", err))
			return domain.System(MsgFollowUnavailable, err)
		}
		return nil
	})
	if err != nil {
		return txFailure(ctx, err, MsgFollowUnavailable)
	}

	slogx.FromContext(ctx).Info("follow created",
		slog.String("follower_id", followerID.String()),
		slog.String("followed_id", target.ID.String()),
	)
	return nil
}

// Unfollow removes the edge from followerID to followedUsername.
func (s *FollowService) Unfollow(ctx context.Context, followedUsername any, followerID idx.ID) error {
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		target, err := validateFollow(ctx, tx, followedUsername, followerID, actionUnfollow)
		if err != nil {
			return err
		}

		if err := tx.Follows().Delete(ctx, followerID, target.ID); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return domain.Validation(MsgNotFollowing)
			}
			slogx.FromContext(ctx).Error("follow delete failed", slog.Any("error", err))
			return domain.System(MsgFollowUnavailable, err)
		}
		return nil
	})
	return txFailure(ctx, err, MsgFollowUnavailable)
}

// validateFollow resolves the target and collects every rule the action
// breaks. A missing target is reported alone.
func validateFollow(ctx context.Context, st store.Store, username any, followerID idx.ID, action followAction) (domain.Identity, error) {
	if followerID.IsZero() {
		return domain.Identity{}, domain.PermissionDenied(MsgPermissionDenied)
	}

	name, _ := username.(string)
	name = domain.NormalizeHandle(name)

	if name == "" {
		return domain.Identity{}, domain.Validation(MsgFollowMissingUser)
	}
	target, err := st.Users().GetByUsername(ctx, name)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Identity{}, domain.Validation(MsgFollowMissingUser)
		}
		slogx.FromContext(ctx).Error("follow target lookup failed", slog.Any("error", err))
		return domain.Identity{}, domain.System(MsgFollowUnavailable, err)
	}

	var reasons []string

	following, err := st.Follows().Exists(ctx, followerID, target.ID)
	if err != nil {
		slogx.FromContext(ctx).Error("follow lookup failed", slog.Any("error", err))
		return domain.Identity{}, domain.System(MsgFollowUnavailable, err)
	}
	switch {
	case action == actionFollow && following:
		reasons = append(reasons, MsgAlreadyFollowing)
	case action == actionUnfollow && !following:
		reasons = append(reasons, MsgNotFollowing)
	}

	if target.ID == followerID {
		reasons = append(reasons, MsgFollowSelf)
	}

	if err := domain.Validation(reasons...); err != nil {
		return domain.Identity{}, err
	}
	return target, nil
}

// IsFollowing reports whether viewerID follows followedID. Anonymous
// viewers follow nobody.
func (s *FollowService) IsFollowing(ctx context.Context, followedID, viewerID idx.ID) (bool, error) {
	if viewerID.IsZero() {
		return false, nil
	}
	ok, err := s.Store.Follows().Exists(ctx, viewerID, followedID)
	if err != nil {
		slogx.FromContext(ctx).Error("follow lookup failed", slog.Any("error", err))
		return false, domain.System(MsgFollowUnavailable, err)
	}
	return ok, nil
}

// ListFollowers returns who follows id, oldest edge first.
func (s *FollowService) ListFollowers(ctx context.Context, id idx.ID) ([]domain.ProfileSummary, error) {
	entries, err := s.Store.Follows().ListFollowers(ctx, id)
	return summaries(ctx, entries, err)
}

// ListFollowing returns who id follows, oldest edge first.
func (s *FollowService) ListFollowing(ctx context.Context, id idx.ID) ([]domain.ProfileSummary, error) {
	entries, err := s.Store.Follows().ListFollowing(ctx, id)
	return summaries(ctx, entries, err)
}

// CountFollowers returns the live number of edges into id.
func (s *FollowService) CountFollowers(ctx context.Context, id idx.ID) (int, error) {
	return counted(ctx, "Error counting followers")(s.Store.Follows().CountFollowers(ctx, id))
}

// CountFollowing returns the live number of edges out of id.
func (s *FollowService) CountFollowing(ctx context.Context, id idx.ID) (int, error) {
	return counted(ctx, "Error counting following")(s.Store.Follows().CountFollowing(ctx, id))
}

func summaries(ctx context.Context, entries []store.FollowEntry, err error) ([]domain.ProfileSummary, error) {
	if err != nil {
		slogx.FromContext(ctx).Error("follow list failed", slog.Any("error", err))
		return nil, domain.System(MsgFollowUnavailable, err)
	}
	out := make([]domain.ProfileSummary, 0, len(entries))
	for _, e := range entries {
		out = append(out, domain.ProfileSummary{Username: e.Username, AvatarURI: domain.Avatar(e.Email)})
	}
	return out, nil
}

func counted(ctx context.Context, msg string) func(int, error) (int, error) {
	return func(n int, err error) (int, error) {
		if err != nil {
			slogx.FromContext(ctx).Error("follow count failed", slog.Any("error", err))
			return 0, domain.System(msg, err)
		}
		return n, nil
	}
}
