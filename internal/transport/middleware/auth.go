package middleware

import (
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/BhaveshChowdary07/ptas-api/pkg/ctxutil"
)

type tokenValidator interface {
	ValidateAccessToken(token string) (uuid.UUID, string, error)
}

// Auth verifies bearer tokens and stores the caller's id and role claim in
// the request context. Requests under protectedPrefix must carry a valid
// token; elsewhere a missing token leaves the request anonymous.
func Auth(validator tokenValidator, protectedPrefix string) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			protected := protectedPrefix != "" && strings.HasPrefix(r.URL.Path, protectedPrefix)

			token := extractBearerToken(r)
			if token == "" {
				if protected && r.Method != http.MethodOptions {
					writeError(w, http.StatusUnauthorized, "unauthorized")
					return
				}
				next.ServeHTTP(w, r) // Anonymous
				return
			}

			userID, role, err := validator.ValidateAccessToken(token)
			if err != nil {
				writeError(w, http.StatusUnauthorized, "unauthorized")
				return
			}
			setLogUser(r.Context(), userID)
			ctx := ctxutil.WithUserID(r.Context(), userID)
			ctx = ctxutil.WithUserRole(ctx, role)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func extractBearerToken(r *http.Request) string {
	auth := r.Header.Get("Authorization")
	scheme, token, ok := strings.Cut(auth, " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}
