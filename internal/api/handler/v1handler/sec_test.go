package v1handler_test

import (
	"context"
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"avconsole/internal/api/handler/v1handler"
	"avconsole/pkg/domain"
	"avconsole/pkg/logger"
	"avconsole/pkg/serrors"
)

func TestMain(m *testing.M) {
	logger.Setup(logger.DevelopmentEnvironment)
	m.Run()
}

// helper to generate an RSA key pair and return the private key and PEM-encoded public key.
func genRSAKeys(tb testing.TB) (*rsa.PrivateKey, string) {
	tb.Helper()
	priv, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(tb, err, "failed to generate RSA key")
	pubASN1, err := x509.MarshalPKIXPublicKey(&priv.PublicKey)
	require.NoError(tb, err, "failed to marshal public key")
	pubPEM := pem.EncodeToMemory(&pem.Block{Type: "PUBLIC KEY", Bytes: pubASN1})

	return priv, string(pubPEM)
}

func newSecHandlerForTest(t *testing.T, pubPEM string) *v1handler.SecHandler {
	t.Helper()
	sh, err := v1handler.NewSecHandler(&v1handler.SecHandlerOptions{PublicKey: pubPEM})
	require.NoError(t, err, "NewSecHandler failed")

	return sh
}

func signJWTRS256(tb testing.TB, priv *rsa.PrivateKey, sub string, issuedAt time.Time, exp time.Time) string {
	tb.Helper()
	claims := jwt.RegisteredClaims{
		Subject:   sub,
		IssuedAt:  jwt.NewNumericDate(issuedAt),
		ExpiresAt: jwt.NewNumericDate(exp),
		NotBefore: jwt.NewNumericDate(issuedAt),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodRS256, claims)
	signed, err := token.SignedString(priv)
	require.NoError(tb, err, "failed to sign token")

	return signed
}

func TestAuthenticate_ValidToken(t *testing.T) {
	priv, pubPEM := genRSAKeys(t)
	sh := newSecHandlerForTest(t, pubPEM)

	uid := uuid.New()
	now := time.Now()
	tkn := signJWTRS256(t, priv, uid.String(), now, now.Add(1*time.Hour))

	ctx, err := sh.Authenticate(context.Background(), "Bearer "+tkn)
	require.NoError(t, err)
	require.Equal(t, domain.UserID(uid), v1handler.GetUserIDFromContext(ctx))
}

func TestAuthenticate_MissingToken(t *testing.T) {
	_, pubPEM := genRSAKeys(t)
	sh := newSecHandlerForTest(t, pubPEM)

	_, err := sh.Authenticate(context.Background(), "")
	require.ErrorIs(t, err, serrors.ErrUnauthorized)
}

func TestAuthenticate_InvalidSignature(t *testing.T) {
	// handler uses pub from key A, but token signed with key B
	_, pubPEM := genRSAKeys(t)
	sh := newSecHandlerForTest(t, pubPEM)

	otherPriv, _ := genRSAKeys(t)
	now := time.Now()
	tkn := signJWTRS256(t, otherPriv, uuid.NewString(), now, now.Add(time.Hour))

	_, err := sh.Authenticate(context.Background(), "Bearer "+tkn)
	require.ErrorIs(t, err, serrors.ErrUnauthorized)
}

func TestAuthenticate_ExpiredToken(t *testing.T) {
	priv, pubPEM := genRSAKeys(t)
	sh := newSecHandlerForTest(t, pubPEM)

	past := time.Now().Add(-2 * time.Hour)
	tkn := signJWTRS256(t, priv, uuid.NewString(), past, past.Add(time.Hour))

	_, err := sh.Authenticate(context.Background(), "Bearer "+tkn)
	require.ErrorIs(t, err, serrors.ErrUnauthorized)
}

func TestAuthenticate_BadSubject(t *testing.T) {
	priv, pubPEM := genRSAKeys(t)
	sh := newSecHandlerForTest(t, pubPEM)

	now := time.Now()
	tkn := signJWTRS256(t, priv, "not-a-uuid", now, now.Add(time.Hour))

	_, err := sh.Authenticate(context.Background(), "Bearer "+tkn)
	require.ErrorIs(t, err, serrors.ErrUnauthorized)
}

func TestMiddleware_RejectsWithoutToken(t *testing.T) {
	_, pubPEM := genRSAKeys(t)
	sh := newSecHandlerForTest(t, pubPEM)

	called := false
	next := http.HandlerFunc(func(http.ResponseWriter, *http.Request) { called = true })

	req := httptest.NewRequest(http.MethodGet, "/v1/scans", nil)
	rec := httptest.NewRecorder()
	sh.Middleware(next).ServeHTTP(rec, req)

	require.False(t, called)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestMiddleware_PassesUserID(t *testing.T) {
	priv, pubPEM := genRSAKeys(t)
	sh := newSecHandlerForTest(t, pubPEM)

	uid := uuid.New()
	now := time.Now()
	tkn := signJWTRS256(t, priv, uid.String(), now, now.Add(time.Hour))

	var got domain.UserID
	next := http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		got = v1handler.GetUserIDFromContext(r.Context())
	})

	req := httptest.NewRequest(http.MethodGet, "/v1/scans", nil)
	req.Header.Set("Authorization", "Bearer "+tkn)
	rec := httptest.NewRecorder()
	sh.Middleware(next).ServeHTTP(rec, req)

	require.Equal(t, domain.UserID(uid), got)
}
