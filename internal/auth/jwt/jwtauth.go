package jwt

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/jwtauth/v5"
)

type contextKey string

const (
	// AuthHeader carries the bearer token; AuthMetadataKey is accepted for
	// clients still sending the gateway header.
	AuthHeader      = "Authorization"
	AuthMetadataKey = "Grpc-Metadata-Authorization"

	subjectKey contextKey = "jwt_subject"
)

// New returns an HS256 signer and verifier for secret.
func New(secret string) *jwtauth.JWTAuth {
	return jwtauth.New("HS256", []byte(secret), nil)
}

// VerifyToken validates the signature and expiry of token and returns its subject.
func VerifyToken(jwtAuth *jwtauth.JWTAuth, token string) (string, error) {
	t, err := jwtauth.VerifyToken(jwtAuth, token)
	if err != nil {
		return "", err
	}
	return t.Subject(), nil
}

// NewToken creates a JWT expiring after ttl with an optional subject claim.
func NewToken(jwtAuth *jwtauth.JWTAuth, ttl time.Duration, subject string) (string, error) {
	claims := map[string]interface{}{
		"exp": time.Now().Add(ttl).Unix(),
	}
	if subject != "" {
		claims["sub"] = subject
	}
	_, ts, err := jwtAuth.Encode(claims)
	if err != nil {
		return "", fmt.Errorf("can't encode token: %w", err)
	}
	return ts, nil
}

// WithAuth rejects requests without a valid bearer token. The token subject
// is available to handlers through Subject.
func WithAuth(jwtAuth *jwtauth.JWTAuth) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get(AuthHeader)
			if header == "" {
				header = r.Header.Get(AuthMetadataKey)
			}
			token := strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
			sub, err := VerifyToken(jwtAuth, token)
			if err != nil {
				http.Error(w, fmt.Sprintf("invalid token %v", err.Error()), http.StatusUnauthorized)
				return
			}
			next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), subjectKey, sub)))
		})
	}
}

// Subject returns the subject of the verified token of the request.
func Subject(ctx context.Context) string {
	if s, ok := ctx.Value(subjectKey).(string); ok {
		return s
	}
	return ""
}
