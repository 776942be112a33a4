package http

import (
	"net/http"

	"github.com/aussiebroadwan/pinboard/internal/pinboard/authctx"
	"github.com/aussiebroadwan/pinboard/internal/pinboard/domain"
	"github.com/aussiebroadwan/pinboard/internal/pinboard/service"
	"github.com/aussiebroadwan/pinboard/pkg/httpx"
	"github.com/aussiebroadwan/pinboard/pkg/pinsdk"
)

// UsersHandler serves registration, profiles and the follow graph.
type UsersHandler struct {
	Credentials *service.CredentialService
	Posts       *service.PostService
	Follows     *service.FollowService
	Profiles    *service.ProfileService
}

// HandleRegister creates an account.
//
//	@Summary		Register
//	@Description	Creates an account. Every broken rule is reported in reasons, in rule order.
//	@Tags			Users
//	@Accept			json
//	@Produce		json
//	@Param			request	body		pinsdk.RegisterRequest	true	"Username, email and password"
//	@Success		201		{object}	pinsdk.RegisterResponse	"The created user"
//	@Failure		400		{object}	pinsdk.ErrorResponse	"Validation failed"
//	@Failure		429		{object}	pinsdk.ErrorResponse	"Rate limit exceeded"
//	@Failure		500		{object}	pinsdk.ErrorResponse	"Internal server error"
//	@Router			/v1/users [post].
func (h *UsersHandler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	var in domain.RawInput
	if err := httpx.DecodeJSON(w, r, &in); err != nil {
		pinsdk.ErrInvalidRequest.WriteError(w)
		return
	}

	identity, err := h.Credentials.Register(r.Context(), in)
	if err != nil {
		writeError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, pinsdk.RegisterResponse{User: toUserResponse(identity)})
}

// HandleProfile returns a user's profile.
//
//	@Summary		Get profile
//	@Description	Returns a profile with live counts. With a bearer token, is_following and is_self are computed for the caller.
//	@Tags			Users
//	@Security		BearerAuth
//	@Produce		json
//	@Param			username	path		string					true	"Username"
//	@Success		200			{object}	pinsdk.ProfileResponse	"The profile"
//	@Failure		401			{object}	pinsdk.ErrorResponse	"Invalid access token"
//	@Failure		404			{object}	pinsdk.ErrorResponse	"User not found"
//	@Failure		500			{object}	pinsdk.ErrorResponse	"Internal server error"
//	@Router			/v1/users/{username} [get].
func (h *UsersHandler) HandleProfile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	profile, err := h.Profiles.Get(ctx, r.PathValue("username"), authctx.FromContext(ctx).ID())
	if err != nil {
		writeError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toProfileResponse(profile))
}

// HandlePosts lists a user's posts.
//
//	@Summary		List a user's posts
//	@Description	Lists the posts written by username, newest first.
//	@Tags			Users
//	@Security		BearerAuth
//	@Produce		json
//	@Param			username	path		string					true	"Username"
//	@Success		200			{array}		pinsdk.PostResponse		"Posts"
//	@Failure		404			{object}	pinsdk.ErrorResponse	"User not found"
//	@Failure		500			{object}	pinsdk.ErrorResponse	"Internal server error"
//	@Router			/v1/users/{username}/posts [get].
func (h *UsersHandler) HandlePosts(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	author, err := h.Credentials.GetByUsername(ctx, r.PathValue("username"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	posts, err := h.Posts.FindByAuthor(ctx, author.ID, authctx.FromContext(ctx).ID())
	if err != nil {
		writeError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toPostResponses(posts))
}

// HandleFollowers lists who follows a user.
//
//	@Summary		List followers
//	@Description	Lists the users following username, oldest follow first.
//	@Tags			Follows
//	@Produce		json
//	@Param			username	path		string					true	"Username"
//	@Success		200			{array}		pinsdk.ProfileSummary	"Followers"
//	@Failure		404			{object}	pinsdk.ErrorResponse	"User not found"
//	@Failure		500			{object}	pinsdk.ErrorResponse	"Internal server error"
//	@Router			/v1/users/{username}/followers [get].
func (h *UsersHandler) HandleFollowers(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	user, err := h.Credentials.GetByUsername(ctx, r.PathValue("username"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	followers, err := h.Follows.ListFollowers(ctx, user.ID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toSummaries(followers))
}

// HandleFollowing lists who a user follows.
//
//	@Summary		List following
//	@Description	Lists the users username follows, oldest follow first.
//	@Tags			Follows
//	@Produce		json
//	@Param			username	path		string					true	"Username"
//	@Success		200			{array}		pinsdk.ProfileSummary	"Followed users"
//	@Failure		404			{object}	pinsdk.ErrorResponse	"User not found"
//	@Failure		500			{object}	pinsdk.ErrorResponse	"Internal server error"
//	@Router			/v1/users/{username}/following [get].
func (h *UsersHandler) HandleFollowing(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	user, err := h.Credentials.GetByUsername(ctx, r.PathValue("username"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	following, err := h.Follows.ListFollowing(ctx, user.ID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toSummaries(following))
}

// HandleFollow makes the caller follow a user.
//
//	@Summary		Follow
//	@Description	Makes the caller follow username. Requires 'follows:write' scope.
//	@Tags			Follows
//	@Security		BearerAuth
//	@Produce		json
//	@Param			username	path	string	true	"Username to follow"
//	@Success		204			"Followed"
//	@Failure		400			{object}	pinsdk.ErrorResponse	"Missing user, already following or self-follow"
//	@Failure		401			{object}	pinsdk.ErrorResponse	"Invalid or missing access token"
//	@Failure		403			{object}	pinsdk.ErrorResponse	"Insufficient scope"
//	@Failure		500			{object}	pinsdk.ErrorResponse	"Internal server error"
//	@Router			/v1/users/{username}/follow [post].
func (h *UsersHandler) HandleFollow(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if err := h.Follows.Follow(ctx, r.PathValue("username"), authctx.FromContext(ctx).ID()); err != nil {
		writeError(w, r, err)
		return
	}
	httpx.NoCache(w)
	w.WriteHeader(http.StatusNoContent)
}

// HandleUnfollow removes the caller's follow of a user.
//
//	@Summary		Unfollow
//	@Description	Removes the caller's follow of username. Requires 'follows:write' scope.
//	@Tags			Follows
//	@Security		BearerAuth
//	@Produce		json
//	@Param			username	path	string	true	"Username to unfollow"
//	@Success		204			"Unfollowed"
//	@Failure		400			{object}	pinsdk.ErrorResponse	"Missing user, not following or self-follow"
//	@Failure		401			{object}	pinsdk.ErrorResponse	"Invalid or missing access token"
//	@Failure		403			{object}	pinsdk.ErrorResponse	"Insufficient scope"
//	@Failure		500			{object}	pinsdk.ErrorResponse	"Internal server error"
//	@Router			/v1/users/{username}/follow [delete].
func (h *UsersHandler) HandleUnfollow(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if err := h.Follows.Unfollow(ctx, r.PathValue("username"), authctx.FromContext(ctx).ID()); err != nil {
		writeError(w, r, err)
		return
	}
	httpx.NoCache(w)
	w.WriteHeader(http.StatusNoContent)
}
