package http

import (
	"context"
	"net/http"
	"strconv"
	"strings"
	"time"

	firebaseauth "firebase.google.com/go/v4/auth"
	"github.com/gorilla/mux"

	"autoloc-backend/internal/metrics"
	"autoloc-backend/internal/security"
)

type contextKey string

const userIDKey contextKey = "user_id"

// UserID extracts the authenticated user ID from a request context.
func UserID(ctx context.Context) string {
	id, _ := ctx.Value(userIDKey).(string)
	return id
}

// Authenticator verifies a bearer token and returns the caller's user ID.
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (string, error)
}

// FirebaseAuthenticator verifies Firebase ID tokens against the auth
// provider. This is the production mode; identity is managed entirely by
// Firebase, this service only verifies.
type FirebaseAuthenticator struct {
	client *firebaseauth.Client
}

func NewFirebaseAuthenticator(client *firebaseauth.Client) *FirebaseAuthenticator {
	return &FirebaseAuthenticator{client: client}
}

func (a *FirebaseAuthenticator) Authenticate(ctx context.Context, token string) (string, error) {
	decoded, err := a.client.VerifyIDToken(ctx, token)
	if err != nil {
		return "", err
	}
	return decoded.UID, nil
}

// LocalAuthenticator validates HS256 tokens issued by the local token
// manager. Dev and test mode only.
type LocalAuthenticator struct {
	tokens security.TokenManager
}

func NewLocalAuthenticator(tokens security.TokenManager) *LocalAuthenticator {
	return &LocalAuthenticator{tokens: tokens}
}

func (a *LocalAuthenticator) Authenticate(ctx context.Context, token string) (string, error) {
	claims, err := a.tokens.ValidateToken(token)
	if err != nil {
		return "", err
	}
	return claims.UserID, nil
}

// AuthMiddleware rejects requests without a valid bearer token and stores
// the caller's user ID on the context.
func AuthMiddleware(auth Authenticator) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			token, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || token == "" {
				respondError(w, http.StatusUnauthorized, "missing bearer token")
				return
			}
			userID, err := auth.Authenticate(r.Context(), token)
			if err != nil {
				respondError(w, http.StatusUnauthorized, "invalid token")
				return
			}
			ctx := context.WithValue(r.Context(), userIDKey, userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// MetricsMiddleware records request counts and latency per route template.
func MetricsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)

		route := r.URL.Path
		if current := mux.CurrentRoute(r); current != nil {
			if tpl, err := current.GetPathTemplate(); err == nil {
				route = tpl
			}
		}
		metrics.HTTPRequests.WithLabelValues(r.Method, route, strconv.Itoa(rec.status)).Inc()
		metrics.HTTPDuration.WithLabelValues(r.Method, route).Observe(time.Since(start).Seconds())
	})
}
