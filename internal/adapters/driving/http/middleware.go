package http

import (
	"context"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/pratham7711/docmind-ai/internal/core/domain"
	"github.com/pratham7711/docmind-ai/internal/core/ports/driven"
	"github.com/pratham7711/docmind-ai/internal/core/ports/driving"
)

// Context keys
type contextKey string

const userContextKey contextKey = "user_context"

// bypassPrincipal is the fixed identity served when auth is disabled
var bypassPrincipal = domain.Principal{
	Email: "test@docmind.local",
	Name:  "Local Tester",
}

// AuthMiddleware verifies bearer tokens and resolves them to stored users
type AuthMiddleware struct {
	verifier driven.TokenVerifier
	identity driving.IdentityService
	bypass   bool
}

// NewAuthMiddleware creates a new AuthMiddleware
func NewAuthMiddleware(verifier driven.TokenVerifier, identity driving.IdentityService, bypass bool) *AuthMiddleware {
	return &AuthMiddleware{
		verifier: verifier,
		identity: identity,
		bypass:   bypass,
	}
}

// Authenticate validates the request token, resolves the user record, and
// adds it to the request context. The bypass identity goes through the same
// resolver so downstream code always sees a persisted user.
func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		principal := &bypassPrincipal

		if !m.bypass {
			token := extractBearerToken(r)
			if token == "" {
				writeUnauthorized(w, "missing authorization token")
				return
			}

			var err error
			principal, err = m.verifier.Verify(token)
			if err != nil {
				writeUnauthorized(w, "invalid token")
				return
			}
		}

		user, err := m.identity.Resolve(r.Context(), *principal)
		if err != nil {
			writeError(w, http.StatusInternalServerError, "failed to resolve user")
			return
		}

		ctx := context.WithValue(r.Context(), userContextKey, user)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetUser retrieves the authenticated user from request context
func GetUser(ctx context.Context) *domain.User {
	if ctx == nil {
		return nil
	}
	user, ok := ctx.Value(userContextKey).(*domain.User)
	if !ok {
		return nil
	}
	return user
}

// writeUnauthorized rejects the request with a bearer challenge
func writeUnauthorized(w http.ResponseWriter, message string) {
	w.Header().Set("WWW-Authenticate", "Bearer")
	writeError(w, http.StatusUnauthorized, message)
}

// extractBearerToken extracts the Bearer token from Authorization header
func extractBearerToken(r *http.Request) string {
	auth := r.Header.Get("Authorization")
	if auth == "" {
		return ""
	}

	parts := strings.SplitN(auth, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}

	return strings.TrimSpace(parts[1])
}

// Logging middleware

// LoggingMiddleware logs HTTP requests
type LoggingMiddleware struct{}

// NewLoggingMiddleware creates a new LoggingMiddleware
func NewLoggingMiddleware() *LoggingMiddleware {
	return &LoggingMiddleware{}
}

// Handler wraps an http.Handler with request logging
func (m *LoggingMiddleware) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		// Wrap response writer to capture status code
		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}

		next.ServeHTTP(rw, r)

		duration := time.Since(start)
		log.Printf("%s %s %d %v", r.Method, r.URL.Path, rw.statusCode, duration)
	})
}

type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

// Recovery middleware

// RecoveryMiddleware recovers from panics
type RecoveryMiddleware struct{}

// NewRecoveryMiddleware creates a new RecoveryMiddleware
func NewRecoveryMiddleware() *RecoveryMiddleware {
	return &RecoveryMiddleware{}
}

// Handler wraps an http.Handler with panic recovery
func (m *RecoveryMiddleware) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if err := recover(); err != nil {
				log.Printf("panic recovered: %v", err)
				writeError(w, http.StatusInternalServerError, "internal server error")
			}
		}()
		next.ServeHTTP(w, r)
	})
}
