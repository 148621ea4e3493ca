// Package web provides the HTTP server and handlers for the catalog browser.
package web

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"net/url"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/JonMunkholm/vinyl/internal/config"
	"github.com/JonMunkholm/vinyl/internal/core"
	"github.com/JonMunkholm/vinyl/internal/logging"
	"github.com/JonMunkholm/vinyl/internal/render"
	weblog "github.com/JonMunkholm/vinyl/internal/web/middleware"
	"github.com/JonMunkholm/vinyl/internal/web/templates"
)

// coversPrefix is the URL path local covers are served under.
const coversPrefix = "/covers"

// Server is the HTTP server for the catalog browser.
type Server struct {
	cfg      *config.Config
	covers   render.CoverResolver
	sessions *sessionStore
	limiter  *rateLimiter
	router   *chi.Mux
	server   *http.Server
}

// NewServer creates a new Server instance. Call Shutdown to stop its
// background goroutines even if Start is never called.
func NewServer(cfg *config.Config) *Server {
	s := &Server{
		cfg: cfg,
		covers: render.CoverResolver{
			BaseURL:        cfg.Covers.BaseURL,
			LocalBase:      coversPrefix,
			Dir:            cfg.Covers.Dir,
			Ext:            cfg.Covers.Ext,
			Fallbacks:      cfg.Covers.FallbackExts,
			FoldDiacritics: cfg.Covers.FoldDiacritics,
		},
		sessions: newSessionStore(cfg.Session.TTL),
		router:   chi.NewRouter(),
	}
	s.setupMiddleware()
	s.setupRoutes()
	return s
}

// setupMiddleware configures middleware for all routes.
func (s *Server) setupMiddleware() {
	s.router.Use(middleware.RequestID)
	s.router.Use(weblog.TrustedRealIP(s.cfg.Security.TrustedProxies))
	s.router.Use(s.withSession)
	s.router.Use(weblog.Logger)
	s.router.Use(middleware.Recoverer)
	s.router.Use(middleware.Compress(5))
	s.router.Use(middleware.Timeout(s.cfg.Server.RequestTimeout))

	if s.cfg.Security.EnableCSP {
		s.router.Use(securityHeaders(contentSecurityPolicy(s.cfg.Covers.BaseURL)))
	}

	if s.cfg.Rate.Enabled {
		s.limiter = newRateLimiter(s.cfg.Rate.RequestsPerMinute, time.Minute)
		s.router.Use(s.limiter.middleware)
	}
}

// setupRoutes configures all HTTP routes.
func (s *Server) setupRoutes() {
	// Pages
	s.router.Get("/", s.handleIndex)
	s.router.Post("/reload", s.handleReload)
	s.router.Get("/health", s.handleHealth)

	// Local cover art
	s.router.Get(coversPrefix+"/{file}", s.handleCoverFile)

	// API routes
	s.router.Route("/api", func(r chi.Router) {
		r.Get("/records", s.handleRecords)
		r.Get("/facets", s.handleFacets)
		r.Get("/cover", s.handleCover)
	})
}

// Start begins listening for HTTP requests.
func (s *Server) Start() error {
	s.server = &http.Server{
		Addr:         s.cfg.Server.Addr(),
		Handler:      s.router,
		ReadTimeout:  s.cfg.Server.ReadTimeout,
		WriteTimeout: s.cfg.Server.WriteTimeout,
		IdleTimeout:  s.cfg.Server.IdleTimeout,
	}

	slog.Info("starting server",
		"addr", s.server.Addr,
		"source", config.MaskSource(s.cfg.Catalog.Source),
	)
	return s.server.ListenAndServe()
}

// Shutdown gracefully stops the server and its background goroutines.
func (s *Server) Shutdown(ctx context.Context) error {
	s.sessions.close()
	if s.limiter != nil {
		s.limiter.close()
	}
	if s.server == nil {
		return nil
	}
	return s.server.Shutdown(ctx)
}

// Router returns the underlying chi router for testing.
func (s *Server) Router() *chi.Mux {
	return s.router
}

// collection returns the session's collection, loading it on first use.
// Failed loads are not remembered, so the next request tries again.
func (s *Server) collection(ctx context.Context) (*core.Collection, error) {
	sess := s.sessions.get(logging.SessionFromContext(ctx))

	sess.mu.Lock()
	defer sess.mu.Unlock()

	if sess.collection != nil {
		return sess.collection, nil
	}

	c, err := core.Load(ctx, s.cfg.Catalog.Source, core.LoadOptions{Sheet: s.cfg.Catalog.Sheet})
	if err != nil {
		return nil, err
	}
	sess.collection = c
	return c, nil
}

// contentSecurityPolicy restricts resource loading to this origin, the
// htmx script origin and, when covers are remote, the cover origin.
func contentSecurityPolicy(coverBaseURL string) string {
	scriptSrc := "'self'"
	if origin := originOf(templates.HTMXSrc); origin != "" {
		scriptSrc += " " + origin
	}
	imgSrc := "'self' data:"
	if origin := originOf(coverBaseURL); origin != "" {
		imgSrc += " " + origin
	}
	return fmt.Sprintf("default-src 'self'; script-src %s; style-src 'self' 'unsafe-inline'; img-src %s; font-src 'self'",
		scriptSrc, imgSrc)
}

func originOf(raw string) string {
	u, err := url.Parse(raw)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return ""
	}
	return u.Scheme + "://" + u.Host
}

// securityHeaders adds security headers to all responses.
func securityHeaders(csp string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// Prevent MIME type sniffing
			w.Header().Set("X-Content-Type-Options", "nosniff")

			// Prevent clickjacking
			w.Header().Set("X-Frame-Options", "DENY")

			w.Header().Set("Content-Security-Policy", csp)

			// Control referrer information
			w.Header().Set("Referrer-Policy", "strict-origin-when-cross-origin")

			next.ServeHTTP(w, r)
		})
	}
}

// rateLimiter implements a simple token bucket rate limiter per IP.
type rateLimiter struct {
	mu       sync.Mutex
	visitors map[string]*visitor
	rate     int           // requests per window
	window   time.Duration // time window
	stop     chan struct{}
	once     sync.Once
}

type visitor struct {
	tokens    int
	lastReset time.Time
}

// newRateLimiter creates a rate limiter with the specified rate per window.
func newRateLimiter(rate int, window time.Duration) *rateLimiter {
	rl := &rateLimiter{
		visitors: make(map[string]*visitor),
		rate:     rate,
		window:   window,
		stop:     make(chan struct{}),
	}
	go rl.cleanup()
	return rl
}

// cleanup removes stale visitor entries every window until close.
func (rl *rateLimiter) cleanup() {
	ticker := time.NewTicker(rl.window)
	defer ticker.Stop()

	for {
		select {
		case <-rl.stop:
			return
		case <-ticker.C:
			rl.mu.Lock()
			for ip, v := range rl.visitors {
				if time.Since(v.lastReset) > rl.window*2 {
					delete(rl.visitors, ip)
				}
			}
			rl.mu.Unlock()
		}
	}
}

func (rl *rateLimiter) close() {
	rl.once.Do(func() { close(rl.stop) })
}

// allow checks if the request should be allowed and consumes a token if so.
func (rl *rateLimiter) allow(ip string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	v, exists := rl.visitors[ip]
	if !exists {
		rl.visitors[ip] = &visitor{
			tokens:    rl.rate - 1,
			lastReset: time.Now(),
		}
		return true
	}

	// Reset tokens if window has passed
	if time.Since(v.lastReset) > rl.window {
		v.tokens = rl.rate - 1
		v.lastReset = time.Now()
		return true
	}

	if v.tokens <= 0 {
		return false
	}

	v.tokens--
	return true
}

// middleware returns an HTTP middleware that rate limits by IP. It runs
// after TrustedRealIP, so RemoteAddr already holds the client address.
func (rl *rateLimiter) middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ip := r.RemoteAddr
		if host, _, err := net.SplitHostPort(ip); err == nil {
			ip = host
		}

		if !rl.allow(ip) {
			w.Header().Set("Retry-After", "60")
			writeError(w, r, http.StatusTooManyRequests, "rate limit exceeded")
			return
		}

		next.ServeHTTP(w, r)
	})
}

// writeError writes a JSON error response for request-level failures that
// are not collection errors.
func writeError(w http.ResponseWriter, r *http.Request, status int, message string) {
	logging.FromContext(r.Context()).Warn("request rejected",
		"status", status,
		"path", r.URL.Path,
		"reason", message,
	)

	msg := core.MapError(fmt.Errorf("%s", message))
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(ErrorResponse{
		Error:   message,
		Message: msg.Message,
		Action:  msg.Action,
		Code:    msg.Code,
	})
}

// writeJSON encodes v as JSON and writes it to w.
// Logs encoding errors since headers are already sent.
func writeJSON(w http.ResponseWriter, r *http.Request, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logging.FromContext(r.Context()).Error("json encode error", "error", err)
	}
}
