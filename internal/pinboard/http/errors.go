package http

import (
	"log/slog"
	"net/http"

	"github.com/aussiebroadwan/pinboard/internal/pinboard/domain"
	"github.com/aussiebroadwan/pinboard/pkg/pinsdk"
	"github.com/aussiebroadwan/pinboard/pkg/slogx"
)

// writeError renders a service failure. The status comes from the error
// kind and the body carries only its user-facing reasons.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	apiErr := pinsdk.ErrServerError
	switch domain.KindOf(err) {
	case domain.KindValidation:
		apiErr = pinsdk.ErrValidation
	case domain.KindInvalidCredentials:
		apiErr = pinsdk.ErrInvalidCredentials
	case domain.KindPermissionDenied:
		apiErr = pinsdk.ErrPermissionDenied
	case domain.KindNotFound, domain.KindInvalidID:
		apiErr = pinsdk.ErrNotFound
	default:
		slogx.FromContext(r.Context()).Error("request failed",
			slog.String("kind", domain.KindOf(err).String()),
			slog.Any("error", err),
		)
	}
	apiErr.WithReasons(domain.Reasons(err)...).WriteError(w)
}
