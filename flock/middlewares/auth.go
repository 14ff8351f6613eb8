package middlewares

import (
	"context"
	"encoding/json"
	"net/http"

	"flock/flock/config"
	"flock/flock/sources/psql/dao"
	"flock/flock/sources/psql/models"
	"flock/flock/utils/logging"
	"flock/flock/utils/token"

	"go.uber.org/zap"
)

type contextKey string

const userKey contextKey = "user"

// CookieName is the cookie the session token travels in.
const CookieName = "jwt"

// UserFromContext returns the authenticated user placed by
// AuthMiddleware, or nil.
func UserFromContext(ctx context.Context) *models.User {
	user, _ := ctx.Value(userKey).(*models.User)
	return user
}

// AuthMiddleware verifies the session cookie and resolves it to a
// live user row. A token whose user no longer exists is treated the
// same as an invalid token.
func AuthMiddleware(users *dao.UserDAO, cfg config.Config) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(CookieName)
			if err != nil || cookie.Value == "" {
				writeUnauthorized(w, "Unauthorized Access: No Token Provided!")
				return
			}

			userID, err := token.Verify(cookie.Value, cfg.JWTSecret)
			if err != nil {
				writeUnauthorized(w, "Unauthorized Access: Invalid Token")
				return
			}

			user, err := users.GetUserByID(r.Context(), userID)
			if err != nil {
				logging.ErrorLogger.Error("auth middleware user lookup failed", zap.Error(err))
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(map[string]string{"error": "Internal Server Error!"})
				return
			}
			if user == nil {
				writeUnauthorized(w, "Unauthorized Access: Invalid Token")
				return
			}

			ctx := context.WithValue(r.Context(), userKey, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func writeUnauthorized(w http.ResponseWriter, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
