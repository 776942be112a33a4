package http

import (
	"net/http"

	"github.com/aussiebroadwan/pinboard/internal/pinboard/authctx"
	"github.com/aussiebroadwan/pinboard/internal/pinboard/domain"
	"github.com/aussiebroadwan/pinboard/internal/pinboard/service"
	"github.com/aussiebroadwan/pinboard/pkg/httpx"
	"github.com/aussiebroadwan/pinboard/pkg/pinsdk"
)

// PostsHandler serves post publishing, reads and search.
type PostsHandler struct {
	Posts *service.PostService
}

// HandleCreate publishes a post authored by the caller.
//
//	@Summary		Create post
//	@Description	Publishes a post. Title and body are trimmed and both required. Requires 'posts:write' scope.
//	@Tags			Posts
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		pinsdk.PostRequest			true	"Title and body"
//	@Success		201		{object}	pinsdk.CreatePostResponse	"The new post id"
//	@Failure		400		{object}	pinsdk.ErrorResponse		"Validation failed"
//	@Failure		401		{object}	pinsdk.ErrorResponse		"Invalid or missing access token"
//	@Failure		403		{object}	pinsdk.ErrorResponse		"Insufficient scope"
//	@Failure		500		{object}	pinsdk.ErrorResponse		"Internal server error"
//	@Router			/v1/posts [post].
func (h *PostsHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var in domain.RawInput
	if err := httpx.DecodeJSON(w, r, &in); err != nil {
		pinsdk.ErrInvalidRequest.WriteError(w)
		return
	}

	ctx := r.Context()
	id, err := h.Posts.Create(ctx, in, authctx.FromContext(ctx).ID())
	if err != nil {
		writeError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, pinsdk.CreatePostResponse{ID: id.String()})
}

// HandleGet returns one post.
//
//	@Summary		Get post
//	@Description	Returns a post joined with its author. With a bearer token, is_owner is computed for the caller.
//	@Tags			Posts
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		string					true	"Post id"
//	@Success		200	{object}	pinsdk.PostResponse		"The post"
//	@Failure		404	{object}	pinsdk.ErrorResponse	"Malformed id or post not found"
//	@Failure		500	{object}	pinsdk.ErrorResponse	"Internal server error"
//	@Router			/v1/posts/{id} [get].
func (h *PostsHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	post, err := h.Posts.FindByID(ctx, r.PathValue("id"), authctx.FromContext(ctx).ID())
	if err != nil {
		writeError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toPostResponse(post))
}

// HandleUpdate replaces the title and body of a post the caller owns.
//
//	@Summary		Update post
//	@Description	Replaces title and body. Missing, malformed and foreign posts are all reported as permission denied. Requires 'posts:write' scope.
//	@Tags			Posts
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path	string				true	"Post id"
//	@Param			request	body	pinsdk.PostRequest	true	"Title and body"
//	@Success		204		"Updated"
//	@Failure		400		{object}	pinsdk.ErrorResponse	"Validation failed"
//	@Failure		401		{object}	pinsdk.ErrorResponse	"Invalid or missing access token"
//	@Failure		403		{object}	pinsdk.ErrorResponse	"Permission denied"
//	@Failure		500		{object}	pinsdk.ErrorResponse	"Internal server error"
//	@Router			/v1/posts/{id} [put].
func (h *PostsHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	var in domain.RawInput
	if err := httpx.DecodeJSON(w, r, &in); err != nil {
		pinsdk.ErrInvalidRequest.WriteError(w)
		return
	}

	ctx := r.Context()
	if err := h.Posts.Update(ctx, in, authctx.FromContext(ctx).ID(), r.PathValue("id")); err != nil {
		writeError(w, r, err)
		return
	}
	httpx.NoCache(w)
	w.WriteHeader(http.StatusNoContent)
}

// HandleDelete removes a post the caller owns.
//
//	@Summary		Delete post
//	@Description	Removes a post. Missing, malformed and foreign posts are all reported as permission denied. Requires 'posts:write' scope.
//	@Tags			Posts
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path	string	true	"Post id"
//	@Success		204	"Deleted"
//	@Failure		401	{object}	pinsdk.ErrorResponse	"Invalid or missing access token"
//	@Failure		403	{object}	pinsdk.ErrorResponse	"Permission denied"
//	@Failure		500	{object}	pinsdk.ErrorResponse	"Internal server error"
//	@Router			/v1/posts/{id} [delete].
func (h *PostsHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if err := h.Posts.Delete(ctx, r.PathValue("id"), authctx.FromContext(ctx).ID()); err != nil {
		writeError(w, r, err)
		return
	}
	httpx.NoCache(w)
	w.WriteHeader(http.StatusNoContent)
}

// HandleSearchQuery runs a full-text search from the q query parameter.
//
//	@Summary		Search posts
//	@Description	Full-text search over titles and bodies, ordered by relevance. Any word may match. Failures yield an empty list.
//	@Tags			Posts
//	@Security		BearerAuth
//	@Produce		json
//	@Param			q	query	string				false	"Search terms"
//	@Success		200	{array}	pinsdk.PostResponse	"Matching posts"
//	@Router			/v1/posts/search [get].
func (h *PostsHandler) HandleSearchQuery(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	posts := h.Posts.Search(ctx, r.URL.Query().Get("q"), authctx.FromContext(ctx).ID())
	httpx.WriteJSON(w, http.StatusOK, toPostResponses(posts))
}

// HandleSearch runs a full-text search from a JSON body.
//
//	@Summary		Search posts
//	@Description	Full-text search over titles and bodies, ordered by relevance. A missing or non-string searchTerm yields an empty list.
//	@Tags			Posts
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		pinsdk.SearchRequest	true	"Search terms"
//	@Success		200		{array}		pinsdk.PostResponse		"Matching posts"
//	@Failure		400		{object}	pinsdk.ErrorResponse	"Malformed body"
//	@Router			/v1/posts/search [post].
func (h *PostsHandler) HandleSearch(w http.ResponseWriter, r *http.Request) {
	var in domain.RawInput
	if err := httpx.DecodeJSON(w, r, &in); err != nil {
		pinsdk.ErrInvalidRequest.WriteError(w)
		return
	}

	ctx := r.Context()
	posts := h.Posts.Search(ctx, in["searchTerm"], authctx.FromContext(ctx).ID())
	httpx.WriteJSON(w, http.StatusOK, toPostResponses(posts))
}
