// File: internal/middleware/role_middleware.go
package middleware

import (
	"log"
	"net/http"

	"github.com/graceworks/churchos/internal/repository/user"
)

// RequireRole gates a route behind a set of roles. It re-reads the
// user from the database rather than trusting the token's role claim,
// so a demotion takes effect before the token expires. It MUST run
// after the session middleware.
func RequireRole(userRepo user.UserRepository, roles ...string) func(http.Handler) http.Handler {
	allowed := make(map[string]struct{}, len(roles))
	for _, r := range roles {
		allowed[r] = struct{}{}
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			principal, ok := PrincipalFrom(r.Context())
			if !ok || principal.UserID == 0 {
				log.Printf("[RoleMiddleware] Forbidden: no principal in context for path %s", r.URL.Path)
				http.Error(w, "Forbidden", http.StatusForbidden)
				return
			}

			usr, err := userRepo.FindByID(r.Context(), principal.UserID)
			if err != nil {
				log.Printf("[RoleMiddleware] Forbidden: could not load user %d: %v", principal.UserID, err)
				http.Error(w, "Forbidden", http.StatusForbidden)
				return
			}

			if _, ok := allowed[usr.Role]; !ok {
				log.Printf("[RoleMiddleware] FORBIDDEN: user %d (%s) attempted %s", usr.ID, usr.Role, r.URL.Path)
				http.Error(w, "Forbidden: insufficient role", http.StatusForbidden)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
