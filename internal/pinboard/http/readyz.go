package http

import (
	"net/http"
	"time"

	"github.com/aussiebroadwan/pinboard/internal/pinboard/store"
	"github.com/aussiebroadwan/pinboard/pkg/httpx"
	"github.com/aussiebroadwan/pinboard/pkg/jwtx"
	"github.com/aussiebroadwan/pinboard/pkg/pinsdk"
)

// ReadyzHandler godoc
//
//	@Summary		Readiness Check Endpoint
//	@Description	Readiness probe reporting the store connection and whether signing keys are loaded
//	@Tags			Health
//	@Produce		json
//	@Success		200	{object}	pinsdk.HealthResponse	"status, uptime, version, checks"
//	@Failure		503	{object}	pinsdk.HealthResponse	"status, uptime, version, checks - service not ready"
//	@Router			/readyz [get].
func ReadyzHandler(startTime time.Time, version string, st store.Store, keys *jwtx.KeySet) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		checks := &pinsdk.HealthChecks{
			Database: "ok",
			Signer:   "ok",
		}
		overallStatus := "ok"
		statusCode := http.StatusOK

		if err := st.Ping(r.Context()); err != nil {
			checks.Database = "error: " + err.Error()
			overallStatus = "degraded"
			statusCode = http.StatusServiceUnavailable
		}

		if !keys.IsReady() {
			checks.Signer = "error: no keys loaded"
			overallStatus = "degraded"
			statusCode = http.StatusServiceUnavailable
		}

		httpx.WriteJSON(w, statusCode, pinsdk.HealthResponse{
			Status:  overallStatus,
			Uptime:  time.Since(startTime).String(),
			Version: version,
			Checks:  checks,
		})
	}
}
