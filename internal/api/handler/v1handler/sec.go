package v1handler

import (
	"context"
	"crypto/rsa"
	"fmt"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"

	"avconsole/internal/config"
	"avconsole/pkg/domain"
	"avconsole/pkg/serrors"
)

// userIDKey is the context key under which the authenticated user ID is
// stored.
type userIDKey struct{}

// UserIDKey is the context key instance used by the auth middleware.
var UserIDKey = userIDKey{} //nolint: gochecknoglobals

// GetUserIDFromContext returns the authenticated user ID, or the zero ID when
// the request was not authenticated.
func GetUserIDFromContext(ctx context.Context) domain.UserID {
	id, _ := ctx.Value(UserIDKey).(domain.UserID)

	return id
}

// WithUserID returns a context carrying the given user ID. Exposed for
// handler tests.
func WithUserID(ctx context.Context, id domain.UserID) context.Context {
	return context.WithValue(ctx, UserIDKey, id)
}

// SecHandlerOptions configures bearer token verification.
type SecHandlerOptions struct {
	// PublicKey is the PEM-encoded RSA public key tokens must be signed
	// against.
	PublicKey string
}

// NewSecHandlerOptions extracts the security settings from the application
// config.
func NewSecHandlerOptions(cfg *config.Config) *SecHandlerOptions {
	return &SecHandlerOptions{PublicKey: cfg.JWT.PublicKey}
}

// SecHandler verifies RS256 bearer tokens and attaches the token subject to
// the request context as the authenticated user ID.
type SecHandler struct {
	key *rsa.PublicKey
}

func NewSecHandler(opts *SecHandlerOptions) (*SecHandler, error) {
	key, err := jwt.ParseRSAPublicKeyFromPEM([]byte(opts.PublicKey))
	if err != nil {
		return nil, fmt.Errorf("could not parse RSA public key: %w", err)
	}

	return &SecHandler{key: key}, nil
}

// Authenticate verifies the Authorization header and returns a context with
// the user ID set.
func (s *SecHandler) Authenticate(ctx context.Context, authorization string) (context.Context, error) {
	raw, ok := strings.CutPrefix(authorization, "Bearer ")
	if !ok || raw == "" {
		return ctx, serrors.With(serrors.ErrUnauthorized, "missing bearer token")
	}

	claims := &jwt.RegisteredClaims{}
	_, err := jwt.ParseWithClaims(raw, claims,
		func(*jwt.Token) (any, error) { return s.key, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodRS256.Alg()}))
	if err != nil {
		return ctx, serrors.Wrap(serrors.ErrUnauthorized, err, "invalid token")
	}

	userID, err := domain.ParseUserID(claims.Subject)
	if err != nil {
		return ctx, serrors.Wrap(serrors.ErrUnauthorized, err, "invalid token subject")
	}

	return WithUserID(ctx, userID), nil
}

// Middleware wraps next with bearer authentication. Unauthenticated requests
// are rejected with 401 before reaching the handlers.
func (s *SecHandler) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, err := s.Authenticate(r.Context(), r.Header.Get("Authorization"))
		if err != nil {
			respondError(w, r, err)

			return
		}

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
