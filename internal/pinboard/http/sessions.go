package http

import (
	"log/slog"
	"net/http"

	"github.com/aussiebroadwan/pinboard/internal/pinboard/domain"
	"github.com/aussiebroadwan/pinboard/internal/pinboard/service"
	"github.com/aussiebroadwan/pinboard/pkg/httpx"
	"github.com/aussiebroadwan/pinboard/pkg/pinsdk"
	"github.com/aussiebroadwan/pinboard/pkg/slogx"
)

// SessionsHandler signs users in.
type SessionsHandler struct {
	Credentials *service.CredentialService
	Tokens      *service.TokenService
}

// ServeHTTP handles login.
//
//	@Summary		Log in
//	@Description	Exchanges a username and password for a bearer access token. Unknown users and wrong passwords fail identically.
//	@Tags			Sessions
//	@Accept			json
//	@Produce		json
//	@Param			request	body		pinsdk.LoginRequest		true	"Credentials"
//	@Success		200		{object}	pinsdk.SessionResponse	"Access token and the signed-in user"
//	@Failure		400		{object}	pinsdk.ErrorResponse	"Malformed body"
//	@Failure		401		{object}	pinsdk.ErrorResponse	"Invalid user or password"
//	@Failure		429		{object}	pinsdk.ErrorResponse	"Rate limit exceeded"
//	@Failure		500		{object}	pinsdk.ErrorResponse	"Internal server error"
//	@Router			/v1/sessions [post].
func (h *SessionsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var in domain.RawInput
	if err := httpx.DecodeJSON(w, r, &in); err != nil {
		pinsdk.ErrInvalidRequest.WriteError(w)
		return
	}

	identity, err := h.Credentials.Login(ctx, in.String("username"), in.String("password"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	token, err := h.Tokens.Issue(identity)
	if err != nil {
		slogx.FromContext(ctx).Error("token signing failed",
			slog.String("user_id", identity.ID.String()),
			slog.Any("error", err),
		)
		pinsdk.ErrServerError.WriteError(w)
		return
	}

	slogx.FromContext(ctx).Info("session issued",
		slog.String("user_id", identity.ID.String()),
		slog.String("sid", token.SessionID),
	)
	httpx.WriteJSON(w, http.StatusOK, pinsdk.SessionResponse{
		AccessToken: token.Token,
		TokenType:   "Bearer",
		ExpiresIn:   int(token.ExpiresIn.Seconds()),
		User:        toUserResponse(identity),
	})
}
