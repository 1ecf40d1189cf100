package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"donatehub/internal/auth"
	"donatehub/internal/domain"
)

// Authenticate verifies the Bearer token on the request and stores the
// resulting principal in the context. Requests without a valid access token
// are rejected before reaching the handler.
func Authenticate(tokens *auth.Tokens) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" {
				reject(w, http.StatusUnauthorized, "authentication required")
				return
			}
			parts := strings.SplitN(header, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
				reject(w, http.StatusUnauthorized, "invalid authorization header")
				return
			}
			p, err := tokens.Verify(parts[1])
			if err != nil {
				reject(w, http.StatusUnauthorized, "invalid or expired token")
				return
			}
			ctx := context.WithValue(r.Context(), principalKey, p)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// PrincipalFromContext returns the authenticated principal, if any.
func PrincipalFromContext(ctx context.Context) (domain.Principal, bool) {
	p, ok := ctx.Value(principalKey).(domain.Principal)
	return p, ok
}

func ContextWithPrincipal(ctx context.Context, p domain.Principal) context.Context {
	return context.WithValue(ctx, principalKey, p)
}

// reject writes the error envelope directly; middleware runs before any
// handler helper is in scope.
func reject(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]any{
		"statusCode": status,
		"success":    false,
		"message":    msg,
	})
}
