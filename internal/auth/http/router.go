package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/aayush-1o/freightflow/internal/auth/service"
	"github.com/aayush-1o/freightflow/internal/auth/store"
	"github.com/aayush-1o/freightflow/pkg/httpx"
	"github.com/aayush-1o/freightflow/pkg/slogx"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	buildVersion string
	startTime    time.Time
	logger       *slog.Logger

	store                store.Store
	UserService          *service.UserService
	PasswordResetService *service.PasswordResetService
}

func NewRouter(buildVersion string, st store.Store, logger *slog.Logger) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
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
	r.registerUsers()
	r.registerPasswordReset()
	r.registerSystem()
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

func (r *Router) registerUsers() {
	// POST /api/register - strict rate limit (account creation)
	registerHandler := &RegisterHandler{UserService: r.UserService}
	r.Mux.Handle("POST /api/register",
		httpx.Chain(registerHandler,
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)

	// POST /api/login - strict rate limit (authentication attempts)
	loginHandler := &LoginHandler{UserService: r.UserService}
	r.Mux.Handle("POST /api/login",
		httpx.Chain(loginHandler,
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)
}

func (r *Router) registerPasswordReset() {
	// POST /forgot-password - strict rate limit (sends email, easy to abuse)
	forgotHandler := &ForgotPasswordHandler{ResetService: r.PasswordResetService}
	r.Mux.Handle("POST /api/forgot-password",
		httpx.Chain(forgotHandler,
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)

	// POST /verify-token - moderate rate limit (read-only check)
	verifyHandler := &VerifyTokenHandler{ResetService: r.PasswordResetService}
	r.Mux.Handle("POST /api/verify-token",
		httpx.Chain(verifyHandler,
			httpx.RateLimitByIP(httpx.ModerateLimit),
		),
	)

	// POST /reset-password - strict rate limit (credential change)
	resetHandler := &ResetPasswordHandler{ResetService: r.PasswordResetService}
	r.Mux.Handle("POST /api/reset-password",
		httpx.Chain(resetHandler,
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)
}

func (r *Router) registerSystem() {
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
