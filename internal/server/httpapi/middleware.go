package httpapi

import (
	"context"
	"net/http"
	"time"

	"github.com/avolkovs/techcards/internal/server/auth"
)

// AuthCookieName is the cookie the login handler sets and the write gate
// reads.
const AuthCookieName = "token"

type contextKey int

const userIDKey contextKey = iota

// userIDFromContext returns the authenticated user's ID placed there by
// requireAuth.
func userIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(userIDKey).(string)
	return id, ok
}

// requireAuth gates a handler behind the auth cookie. A missing cookie and an
// invalid or expired token both fail with 401; only the message differs.
func (s *HTTPServer) requireAuth(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(AuthCookieName)
		if err != nil {
			writeJSON(w, http.StatusUnauthorized, errorEnvelope{Error: "Authentication required", Code: "AUTH_ERROR"})
			return
		}

		userID, err := auth.GetUserIDFromToken(cookie.Value, []byte(s.cfg.SecretKey))
		if err != nil {
			writeJSON(w, http.StatusUnauthorized, errorEnvelope{Error: "Invalid or expired token", Code: "AUTH_ERROR"})
			return
		}

		ctx := context.WithValue(r.Context(), userIDKey, userID)
		next(w, r.WithContext(ctx))
	}
}

// statusRecorder captures the response code for the access log.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

// withLogging logs one line per request: method, path, status, duration.
func (s *HTTPServer) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		s.logger.Info(r.Context(), "request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", rec.status,
			"duration", time.Since(start).String(),
		)
	})
}
