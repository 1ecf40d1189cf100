package middleware

import (
	"net/http"

	"donatehub/internal/domain"
	"donatehub/internal/policy"
)

// RequireRole gates a route group to principals holding one of the given
// roles. It must run after Authenticate.
func RequireRole(roles ...domain.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			p, ok := PrincipalFromContext(r.Context())
			if !ok {
				reject(w, http.StatusUnauthorized, "authentication required")
				return
			}
			if err := policy.AllowRole(p, roles...); err != nil {
				reject(w, http.StatusForbidden, err.Error())
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
