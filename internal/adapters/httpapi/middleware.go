package httpapi

import (
	"context"
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/daehan-dev/fleetworks-go/internal/application/common"
	"github.com/daehan-dev/fleetworks-go/internal/domain/shared"
)

type contextKey string

const playerIDKey contextKey = "playerID"

// PlayerIDFromContext returns the authenticated player for the request.
func PlayerIDFromContext(ctx context.Context) (shared.PlayerID, bool) {
	id, ok := ctx.Value(playerIDKey).(shared.PlayerID)
	return id, ok
}

// withAuth resolves the player identity forwarded by the edge proxy in the
// X-Player-ID header. The proxy has already authenticated the session; at
// this layer the header is the trusted identity.
func withAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw := r.Header.Get("X-Player-ID")
		if raw == "" {
			writeError(w, r, shared.NewValidationError("X-Player-ID", "missing player identity header"))
			return
		}
		id, err := strconv.Atoi(raw)
		if err != nil {
			writeError(w, r, shared.NewValidationError("X-Player-ID", "player identity must be numeric"))
			return
		}
		playerID, err := shared.NewPlayerID(id)
		if err != nil {
			writeError(w, r, err)
			return
		}
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), playerIDKey, playerID)))
	})
}

// withLogging attaches the request logger to the context and emits an
// access line once the handler returns.
func withLogging(logger common.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(sw, r.WithContext(common.WithLogger(r.Context(), logger)))

		logger.Log("INFO", "http request", map[string]interface{}{
			"method":      r.Method,
			"path":        r.URL.Path,
			"status":      sw.status,
			"duration_ms": time.Since(start).Milliseconds(),
		})
	})
}

type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(status int) {
	w.status = status
	w.ResponseWriter.WriteHeader(status)
}

// clientLimiter hands out one token bucket per remote address.
type clientLimiter struct {
	mu      sync.Mutex
	clients map[string]*rate.Limiter
	rps     rate.Limit
	burst   int
}

func newClientLimiter(rps float64, burst int) *clientLimiter {
	return &clientLimiter{
		clients: make(map[string]*rate.Limiter),
		rps:     rate.Limit(rps),
		burst:   burst,
	}
}

func (c *clientLimiter) limiterFor(addr string) *rate.Limiter {
	c.mu.Lock()
	defer c.mu.Unlock()
	if lim, ok := c.clients[addr]; ok {
		return lim
	}
	lim := rate.NewLimiter(c.rps, c.burst)
	c.clients[addr] = lim
	return lim
}

func withRateLimit(limiter *clientLimiter, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		host, _, err := net.SplitHostPort(r.RemoteAddr)
		if err != nil {
			host = r.RemoteAddr
		}
		if !limiter.limiterFor(host).Allow() {
			writeJSON(w, http.StatusTooManyRequests, map[string]string{
				"error": "rate limit exceeded",
			})
			return
		}
		next.ServeHTTP(w, r)
	})
}
