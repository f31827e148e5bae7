package auth

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"talenthub/internal/user"
)

type ctxKey string

const userKey ctxKey = "current_user"

// UserFinder is the slice of user.Store the guard needs.
type UserFinder interface {
	FindByID(ctx context.Context, id uint64) (*user.User, error)
}

func UserFromContext(ctx context.Context) (*user.User, bool) {
	u, ok := ctx.Value(userKey).(*user.User)
	return u, ok
}

// RequireAuth verifies the bearer token and resolves the user fresh from the
// store on every request, so a record deleted after token issuance is
// rejected immediately. All failure modes produce the same 401.
func RequireAuth(jwtSvc *JWT, users UserFinder) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			h := r.Header.Get("Authorization")
			if h == "" || !strings.HasPrefix(h, "Bearer ") {
				unauthorized(w)
				return
			}
			token := strings.TrimPrefix(h, "Bearer ")

			uid, err := jwtSvc.Verify(token)
			if err != nil {
				unauthorized(w)
				return
			}

			u, err := users.FindByID(r.Context(), uid)
			if err != nil {
				unauthorized(w)
				return
			}

			ctx := context.WithValue(r.Context(), userKey, u)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func unauthorized(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_ = json.NewEncoder(w).Encode(map[string]any{
		"success": false,
		"error":   "unauthorized",
	})
}
