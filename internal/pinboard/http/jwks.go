package http

import (
	"net/http"

	"github.com/aussiebroadwan/pinboard/pkg/httpx"
	"github.com/aussiebroadwan/pinboard/pkg/jwtx"
	"github.com/aussiebroadwan/pinboard/pkg/pinsdk"
)

// JWKSHandler exposes the JSON Web Key Set for public key discovery.
//
//	@Summary		Get JWKS
//	@Description	Returns the JSON Web Key Set used to verify access tokens.
//	@Tags			well-known
//	@Produce		json
//	@Success		200	{object}	pinsdk.JWKSResponse	"The JSON Web Key Set"
//	@Router			/.well-known/jwks.json [get].
func JWKSHandler(keys *jwtx.KeySet) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		httpx.WriteJSON(w, http.StatusOK, pinsdk.JWKSResponse(keys.PublicJWKS()))
	}
}
