package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/aussiebroadwan/pinboard/internal/pinboard/domain"
	"github.com/aussiebroadwan/pinboard/internal/pinboard/store"
	"github.com/aussiebroadwan/pinboard/pkg/idx"
	"github.com/aussiebroadwan/pinboard/pkg/slogx"
)

// SearchLimit caps the number of posts a search returns.
const SearchLimit = 50

// PostService owns post records. Identities are only read, to enrich posts
// with their author.
type PostService struct {
	Store store.Store
}

// Create validates in (title, body) and stores a post authored by authorID.
func (s *PostService) Create(ctx context.Context, in domain.RawInput, authorID idx.ID) (idx.ID, error) {
	if authorID.IsZero() {
		return idx.Zero, domain.PermissionDenied(MsgLoginToPost)
	}

	title, body, err := postFields(in)
	if err != nil {
		return idx.Zero, err
	}

	now := time.Now().UTC()
	post := domain.Post{
		ID:        idx.NewAt(now),
		Title:     title,
		Body:      body,
		AuthorID:  authorID,
		CreatedAt: now,
	}
	if err := s.Store.Posts().Create(ctx, post); err != nil {
		slogx.FromContext(ctx).Error("post insert failed", slog.Any("error", err))
		return idx.Zero, domain.System(MsgPostUnavailable, err)
	}

	slogx.FromContext(ctx).Info("post created",
		slog.String("post_id", post.ID.String()),
		slog.String("author_id", authorID.String()),
	)
	return post.ID, nil
}

// FindByID returns the post joined with its author. A malformed id fails
// without touching the store.
func (s *PostService) FindByID(ctx context.Context, id string, viewerID idx.ID) (domain.EnrichedPost, error) {
	postID, err := idx.Parse(strings.TrimSpace(id))
	if err != nil {
		return domain.EnrichedPost{}, domain.InvalidID(MsgInvalidID)
	}

	posts, err := s.Query(ctx, store.PostSelector{ID: postID, Limit: 1}, viewerID, domain.OrderNewest)
	if err != nil {
		return domain.EnrichedPost{}, err
	}
	if len(posts) == 0 {
		return domain.EnrichedPost{}, domain.NotFound(MsgPostNotFound)
	}
	return posts[0], nil
}

// Update replaces title and body of a post owned by requesterID. Missing,
// malformed and foreign posts are all reported as a permission failure.
func (s *PostService) Update(ctx context.Context, in domain.RawInput, requesterID idx.ID, targetID string) error {
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		post, err := owned(ctx, tx, targetID, requesterID)
		if err != nil {
			return err
		}

		title, body, err := postFields(in)
		if err != nil {
			return err
		}

		if err := tx.Posts().Update(ctx, post.ID, title, body); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return domain.PermissionDenied(MsgPermissionDenied)
			}
			slogx.FromContext(ctx).Error("post update failed", slog.Any("error", err))
			return domain.System(MsgPostUnavailable, err)
		}
		return nil
	})
	return txFailure(ctx, err, MsgPostUnavailable)
}

// Delete removes a post owned by requesterID.
func (s *PostService) Delete(ctx context.Context, targetID string, requesterID idx.ID) error {
	var post domain.Post
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		var err error
		post, err = owned(ctx, tx, targetID, requesterID)
		if err != nil {
			return err
		}

		if err := tx.Posts().Delete(ctx, post.ID); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return domain.PermissionDenied(MsgPermissionDenied)
			}
			slogx.FromContext(ctx).Error("post delete failed", slog.Any("error", err))
			return domain.System(MsgPostUnavailable, err)
		}
		return nil
	})
	if err != nil {
		return txFailure(ctx, err, MsgPostUnavailable)
	}

	slogx.FromContext(ctx).Info("post deleted", slog.String("post_id", post.ID.String()))
	return nil
}

// Query is the composed read behind every post listing: it selects, orders,
// joins the author and computes ownership for viewerID.
func (s *PostService) Query(ctx context.Context, sel store.PostSelector, viewerID idx.ID, order domain.PostOrder) ([]domain.EnrichedPost, error) {
	rows, err := s.Store.Posts().Query(ctx, sel, order)
	if err != nil {
		slogx.FromContext(ctx).Error("post query failed", slog.Any("error", err))
		return nil, domain.System(MsgPostUnavailable, err)
	}

	out := make([]domain.EnrichedPost, 0, len(rows))
	for _, row := range rows {
		out = append(out, enrich(row, viewerID))
	}
	return out, nil
}

// FindByAuthor lists an author's posts, newest first.
func (s *PostService) FindByAuthor(ctx context.Context, authorID, viewerID idx.ID) ([]domain.EnrichedPost, error) {
	if authorID.IsZero() {
		return []domain.EnrichedPost{}, nil
	}
	return s.Query(ctx, store.PostSelector{AuthorID: authorID}, viewerID, domain.OrderNewest)
}

// Search runs a full-text match ordered by relevance. term comes straight
// from the request: anything but a non-blank string yields no results, and
// store failures are logged and reported as no results.
func (s *PostService) Search(ctx context.Context, term any, viewerID idx.ID) []domain.EnrichedPost {
	text, ok := term.(string)
	if !ok || strings.TrimSpace(text) == "" {
		return []domain.EnrichedPost{}
	}

	posts, err := s.Query(ctx, store.PostSelector{Text: strings.TrimSpace(text), Limit: SearchLimit}, viewerID, domain.OrderRelevance)
	if err != nil {
		slogx.FromContext(ctx).Warn("search failed", slog.Any("error", err))
		return []domain.EnrichedPost{}
	}
	return posts
}

// CountByAuthor returns how many posts authorID has written.
func (s *PostService) CountByAuthor(ctx context.Context, authorID idx.ID) (int, error) {
	n, err := s.Store.Posts().CountByAuthor(ctx, authorID)
	if err != nil {
		slogx.FromContext(ctx).Error("post count failed", slog.Any("error", err))
		return 0, domain.System(MsgPostUnavailable, err)
	}
	return n, nil
}

// owned loads targetID and checks requesterID wrote it. System failures
// pass through; every other failure becomes a permission error so callers
// cannot probe for existence.
func owned(ctx context.Context, st store.Store, targetID string, requesterID idx.ID) (domain.Post, error) {
	if requesterID.IsZero() {
		return domain.Post{}, domain.PermissionDenied(MsgPermissionDenied)
	}

	postID, err := idx.Parse(strings.TrimSpace(targetID))
	if err != nil {
		return domain.Post{}, domain.PermissionDenied(MsgPermissionDenied)
	}

	post, err := st.Posts().Get(ctx, postID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Post{}, domain.PermissionDenied(MsgPermissionDenied)
		}
		slogx.FromContext(ctx).Error("post lookup failed", slog.Any("error", err))
		return domain.Post{}, domain.System(MsgPostUnavailable, err)
	}
	if post.AuthorID != requesterID {
		slogx.FromContext(ctx).Warn("post ownership check failed",
			slog.String("post_id", post.ID.String()),
			slog.String("requester_id", requesterID.String()),
		)
		return domain.Post{}, domain.PermissionDenied(MsgPermissionDenied)
	}
	return post, nil
}

func postFields(in domain.RawInput) (title, body string, err error) {
	title = in.Trimmed("title")
	body = in.Trimmed("body")

	var reasons []string
	if title == "" {
		reasons = append(reasons, MsgTitleRequired)
	}
	if body == "" {
		reasons = append(reasons, MsgBodyRequired)
	}
	return title, body, domain.Validation(reasons...)
}

func enrich(row store.PostRow, viewerID idx.ID) domain.EnrichedPost {
	return domain.EnrichedPost{
		ID:        row.ID,
		Title:     row.Title,
		Body:      row.Body,
		CreatedAt: row.CreatedAt,
		Author: domain.Author{
			Username:  row.AuthorUsername,
			AvatarURI: domain.Avatar(row.AuthorEmail),
		},
		IsOwner: !viewerID.IsZero() && row.AuthorID == viewerID,
	}
}
