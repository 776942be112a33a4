package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/aussiebroadwan/pinboard/internal/pinboard/service"
	"github.com/aussiebroadwan/pinboard/internal/pinboard/store"
	"github.com/aussiebroadwan/pinboard/pkg/httpx"
	"github.com/aussiebroadwan/pinboard/pkg/jwtx"
	"github.com/aussiebroadwan/pinboard/pkg/slogx"

	_ "github.com/aussiebroadwan/pinboard/api/pinboard" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	keys         *jwtx.KeySet
	verifier     jwtx.Verifier
	buildVersion string
	startTime    time.Time
	logger       *slog.Logger
	limits       httpx.RateLimitProfiles

	store       store.Store
	Credentials *service.CredentialService
	Tokens      *service.TokenService
	Posts       *service.PostService
	Follows     *service.FollowService
	Profiles    *service.ProfileService
}

func NewRouter(
	keys *jwtx.KeySet,
	verifier jwtx.Verifier,
	buildVersion string,
	st store.Store,
	limits httpx.RateLimitProfiles,
	logger *slog.Logger,
) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		keys:         keys,
		verifier:     verifier,
		buildVersion: buildVersion,
		startTime:    time.Now(),
		limits:       limits,
		store:        st,
		logger:       logger,
	}

	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerSessions()
	r.registerUsers()
	r.registerFollows()
	r.registerPosts()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			Pinboard API
//	@version		0.1.0
//	@description	Social publishing core: accounts, posts with full-text search, and a follow graph.
//	@description
//	@description				Access tokens are EdDSA-signed JWTs and can be verified using the JWKS endpoint.
//
//	@contact.name				AussieBroadWAN Team
//	@contact.url				https://github.com/aussiebroadwan/pinboard
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:8080
//	@BasePath					/
//
//	@schemes					http https
//
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				JWT access token. Format: "Bearer {token}".
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

func (r *Router) registerSessions() {
	h := &SessionsHandler{Credentials: r.Credentials, Tokens: r.Tokens}

	// Rate limited by IP + username to slow password guessing
	r.Mux.Handle("POST /v1/sessions",
		httpx.Chain(h,
			httpx.RateLimitByIPAndJSONField(r.limits.Strict, "username"),
		),
	)
}

func (r *Router) registerUsers() {
	h := &UsersHandler{
		Credentials: r.Credentials,
		Posts:       r.Posts,
		Follows:     r.Follows,
		Profiles:    r.Profiles,
	}

	r.Mux.Handle("POST /v1/users",
		httpx.Chain(http.HandlerFunc(h.HandleRegister),
			httpx.RateLimitByIP(r.limits.Strict),
		),
	)

	// Anonymous reads; a bearer token personalises is_following and is_owner
	r.Mux.Handle("GET /v1/users/{username}", r.publicRead(h.HandleProfile))
	r.Mux.Handle("GET /v1/users/{username}/posts", r.publicRead(h.HandlePosts))
}

func (r *Router) registerFollows() {
	h := &UsersHandler{
		Credentials: r.Credentials,
		Follows:     r.Follows,
	}

	r.Mux.Handle("GET /v1/users/{username}/followers",
		httpx.Chain(http.HandlerFunc(h.HandleFollowers),
			httpx.RateLimitByIP(r.limits.Public),
		),
	)
	r.Mux.Handle("GET /v1/users/{username}/following",
		httpx.Chain(http.HandlerFunc(h.HandleFollowing),
			httpx.RateLimitByIP(r.limits.Public),
		),
	)

	r.Mux.Handle("POST /v1/users/{username}/follow", r.securedWrite(h.HandleFollow, service.ScopeFollowsWrite))
	r.Mux.Handle("DELETE /v1/users/{username}/follow", r.securedWrite(h.HandleUnfollow, service.ScopeFollowsWrite))
}

func (r *Router) registerPosts() {
	h := &PostsHandler{Posts: r.Posts}

	r.Mux.Handle("POST /v1/posts", r.securedWrite(h.HandleCreate, service.ScopePostsWrite))
	r.Mux.Handle("PUT /v1/posts/{id}", r.securedWrite(h.HandleUpdate, service.ScopePostsWrite))
	r.Mux.Handle("DELETE /v1/posts/{id}", r.securedWrite(h.HandleDelete, service.ScopePostsWrite))

	r.Mux.Handle("GET /v1/posts/{id}", r.publicRead(h.HandleGet))

	// Search is heavier than a point read
	r.Mux.Handle("GET /v1/posts/search",
		httpx.Chain(http.HandlerFunc(h.HandleSearchQuery),
			httpx.OptionalAuthnMiddleware(r.verifier),
			httpx.RateLimitByIP(r.limits.Lenient),
		),
	)
	r.Mux.Handle("POST /v1/posts/search",
		httpx.Chain(http.HandlerFunc(h.HandleSearch),
			httpx.OptionalAuthnMiddleware(r.verifier),
			httpx.RateLimitByIP(r.limits.Lenient),
		),
	)
}

func (r *Router) registerSystem() {
	// Health check endpoints - lenient rate limits (monitoring systems may poll frequently)
	r.Mux.Handle("GET /livez",
		httpx.Chain(LivezHandler(r.startTime, r.buildVersion),
			httpx.RateLimitByIP(r.limits.Lenient),
		),
	)
	r.Mux.Handle("GET /readyz",
		httpx.Chain(ReadyzHandler(r.startTime, r.buildVersion, r.store, r.keys),
			httpx.RateLimitByIP(r.limits.Lenient),
		),
	)
	r.Mux.Handle("GET /.well-known/jwks.json",
		httpx.Chain(JWKSHandler(r.keys),
			httpx.RateLimitByIP(r.limits.Public),
		),
	)
}

func (r *Router) publicRead(h http.HandlerFunc) http.Handler {
	return httpx.Chain(h,
		httpx.OptionalAuthnMiddleware(r.verifier),
		httpx.RateLimitByIP(r.limits.Public),
	)
}

func (r *Router) securedWrite(h http.HandlerFunc, scope string) http.Handler {
	return httpx.Chain(h,
		httpx.AuthnMiddleware(r.verifier),
		httpx.RequireAllScopes(scope),
		httpx.RateLimitByUser(r.limits.Moderate),
	)
}
