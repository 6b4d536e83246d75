package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/driftboard/driftboard/internal/board/service"
	"github.com/driftboard/driftboard/internal/board/store"
	"github.com/driftboard/driftboard/pkg/httpx"
	"github.com/driftboard/driftboard/pkg/jwtx"
	"github.com/driftboard/driftboard/pkg/slogx"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	codec        jwtx.Codec
	buildVersion string
	startTime    time.Time
	logger       *slog.Logger

	store          store.Store
	AuthService    *service.AuthService
	UserService    *service.UserService
	BoardService   *service.BoardService
	PostService    *service.PostService
	CommentService *service.CommentService
}

func NewRouter(codec jwtx.Codec, buildVersion string, st store.Store, logger *slog.Logger) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		codec:        codec,
		buildVersion: buildVersion,
		startTime:    time.Now(),
		store:        st,
		logger:       logger,
	}

	// Set default middleware chain
	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerAuth()
	r.registerUsers()
	r.registerBoards()
	r.registerPosts()
	r.registerComments()
	r.registerSystem()
}

// ServeHTTP implements http.Handler for Router and applies the global
// middleware chain.
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

func (r *Router) registerAuth() {
	h := &AuthHandler{AuthService: r.AuthService}

	// Credential endpoints take strict per-IP limits and reject callers
	// who already hold a valid session.
	r.Mux.Handle("POST /auth/signup",
		httpx.Chain(http.HandlerFunc(h.HandleSignUp),
			httpx.RequireAnon(r.codec),
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)
	// Sign-in takes no guard: a caller holding a valid session may still
	// sign in, e.g. to switch accounts.
	r.Mux.Handle("POST /auth/signin",
		httpx.Chain(http.HandlerFunc(h.HandleSignIn),
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)
	r.Mux.Handle("POST /auth/signin/demo-user",
		httpx.Chain(http.HandlerFunc(h.HandleDemoMember),
			httpx.RequireAnon(r.codec),
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)
	r.Mux.Handle("POST /auth/signin/demo-admin",
		httpx.Chain(http.HandlerFunc(h.HandleDemoAdmin),
			httpx.RequireAnon(r.codec),
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)

	r.Mux.Handle("POST /auth/signout",
		httpx.Chain(http.HandlerFunc(h.HandleSignOut),
			httpx.RequireAuth(r.codec),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)
}

func (r *Router) registerUsers() {
	h := &UserHandler{UserService: r.UserService}

	r.Mux.Handle("GET /users/current",
		httpx.Chain(http.HandlerFunc(h.HandleCurrent),
			httpx.RequireAuth(r.codec),
			httpx.RateLimitByUser(httpx.LenientLimit),
		),
	)

	// Account management. The service layer enforces the admin gate; the
	// routes only require a verified token.
	r.Mux.Handle("POST /users",
		httpx.Chain(http.HandlerFunc(h.HandleCreate),
			httpx.RequireAuth(r.codec),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)
	r.Mux.Handle("GET /users",
		httpx.Chain(http.HandlerFunc(h.HandleList),
			httpx.RequireAuth(r.codec),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)
	r.Mux.Handle("GET /users/{id}",
		httpx.Chain(http.HandlerFunc(h.HandleGet),
			httpx.RequireAuth(r.codec),
			httpx.RateLimitByUser(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("PUT /users/{id}",
		httpx.Chain(http.HandlerFunc(h.HandleUpdate),
			httpx.RequireAuth(r.codec),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)
	r.Mux.Handle("DELETE /users/{id}",
		httpx.Chain(http.HandlerFunc(h.HandleDelete),
			httpx.RequireAuth(r.codec),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)
}

func (r *Router) registerBoards() {
	h := &BoardHandler{BoardService: r.BoardService}

	// Reads are public.
	r.Mux.Handle("GET /boards",
		httpx.Chain(http.HandlerFunc(h.HandleList),
			httpx.RateLimitByIP(httpx.PublicLimit),
		),
	)
	r.Mux.Handle("GET /boards/{id}",
		httpx.Chain(http.HandlerFunc(h.HandleGet),
			httpx.RateLimitByIP(httpx.PublicLimit),
		),
	)

	r.Mux.Handle("POST /boards",
		httpx.Chain(http.HandlerFunc(h.HandleCreate),
			httpx.RequireAuth(r.codec),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)
	r.Mux.Handle("PUT /boards/{id}",
		httpx.Chain(http.HandlerFunc(h.HandleUpdate),
			httpx.RequireAuth(r.codec),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)
	r.Mux.Handle("DELETE /boards/{id}",
		httpx.Chain(http.HandlerFunc(h.HandleDelete),
			httpx.RequireAuth(r.codec),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)
}

func (r *Router) registerPosts() {
	h := &PostHandler{PostService: r.PostService}

	r.Mux.Handle("GET /posts",
		httpx.Chain(http.HandlerFunc(h.HandleList),
			httpx.RateLimitByIP(httpx.PublicLimit),
		),
	)
	r.Mux.Handle("GET /posts/{id}",
		httpx.Chain(http.HandlerFunc(h.HandleGet),
			httpx.RateLimitByIP(httpx.PublicLimit),
		),
	)

	r.Mux.Handle("POST /posts",
		httpx.Chain(http.HandlerFunc(h.HandleCreate),
			httpx.RequireAuth(r.codec),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)
	r.Mux.Handle("PUT /posts/{id}",
		httpx.Chain(http.HandlerFunc(h.HandleUpdate),
			httpx.RequireAuth(r.codec),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)
	r.Mux.Handle("DELETE /posts/{id}",
		httpx.Chain(http.HandlerFunc(h.HandleDelete),
			httpx.RequireAuth(r.codec),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)
}

func (r *Router) registerComments() {
	h := &CommentHandler{CommentService: r.CommentService}

	r.Mux.Handle("GET /comments",
		httpx.Chain(http.HandlerFunc(h.HandleList),
			httpx.RateLimitByIP(httpx.PublicLimit),
		),
	)
	r.Mux.Handle("GET /comments/{id}",
		httpx.Chain(http.HandlerFunc(h.HandleGet),
			httpx.RateLimitByIP(httpx.PublicLimit),
		),
	)

	r.Mux.Handle("POST /comments",
		httpx.Chain(http.HandlerFunc(h.HandleCreate),
			httpx.RequireAuth(r.codec),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)
	r.Mux.Handle("PUT /comments/{id}",
		httpx.Chain(http.HandlerFunc(h.HandleUpdate),
			httpx.RequireAuth(r.codec),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)
	r.Mux.Handle("DELETE /comments/{id}",
		httpx.Chain(http.HandlerFunc(h.HandleDelete),
			httpx.RequireAuth(r.codec),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)
}

func (r *Router) registerSystem() {
	// Health checks get lenient limits since monitors poll them.
	r.Mux.Handle("GET /livez",
		httpx.Chain(LivezHandler(r.startTime, r.buildVersion),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("GET /readyz",
		httpx.Chain(ReadyzHandler(r.startTime, r.buildVersion, r.store),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
}
