package httpx

import (
	"errors"
	"net/http"
	"strings"

	"github.com/aussiebroadwan/pinboard/pkg/jwtx"
	"github.com/aussiebroadwan/pinboard/pkg/slogx"
)

var errNoBearer = errors.New("missing bearer token")

// AuthnMiddleware rejects requests without a valid bearer token.
func AuthnMiddleware(v jwtx.Verifier) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, err := verifyBearer(r, v)
			if err != nil {
				if !errors.Is(err, errNoBearer) {
					slogx.FromContext(r.Context()).Warn("jwt verify failed", "err", err)
				}
				writeBearerError(w, err)
				return
			}
			next.ServeHTTP(w, r.WithContext(contextWithAuth(r.Context(), claims)))
		})
	}
}

// OptionalAuthnMiddleware attaches claims when a valid bearer token is
// present and lets anonymous requests through. A token that is present but
// invalid is still rejected, so clients learn their session has expired.
func OptionalAuthnMiddleware(v jwtx.Verifier) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, err := verifyBearer(r, v)
			switch {
			case errors.Is(err, errNoBearer):
				next.ServeHTTP(w, r)
			case err != nil:
				slogx.FromContext(r.Context()).Warn("jwt verify failed", "err", err)
				writeBearerError(w, err)
			default:
				next.ServeHTTP(w, r.WithContext(contextWithAuth(r.Context(), claims)))
			}
		})
	}
}

func verifyBearer(r *http.Request, v jwtx.Verifier) (jwtx.Claims, error) {
	authz := r.Header.Get("Authorization")
	if !strings.HasPrefix(authz, "Bearer ") {
		return jwtx.Claims{}, errNoBearer
	}
	raw := strings.TrimSpace(strings.TrimPrefix(authz, "Bearer "))
	if raw == "" {
		return jwtx.Claims{}, errNoBearer
	}
	return v.Verify(raw)
}

// RFC 6750 error response for bearer auth.
func writeBearerError(w http.ResponseWriter, err error) {
	desc := "token verification failed"
	switch {
	case errors.Is(err, errNoBearer):
		desc = "missing bearer token"
	case errors.Is(err, jwtx.ErrExpired):
		desc = "token expired"
	}
	w.Header().Set("WWW-Authenticate", `Bearer error="invalid_token", error_description="`+desc+`"`)
	WriteJSON(w, http.StatusUnauthorized, map[string]string{
		"error":             "invalid_token",
		"error_description": desc,
	})
}
