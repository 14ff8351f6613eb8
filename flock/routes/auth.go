package routes

import (
	"encoding/json"
	"net/http"

	"flock/flock/config"
	"flock/flock/controllers"
	"flock/flock/middlewares"
	"flock/flock/sources/psql/dao"
	"flock/flock/types"
	"flock/flock/utils/token"

	"github.com/go-chi/chi/v5"
)

// setSessionCookie installs the signed token as an HTTP-only,
// SameSite-strict cookie; Secure everywhere except local development.
func setSessionCookie(w http.ResponseWriter, t string, cfg config.Config) {
	http.SetCookie(w, &http.Cookie{
		Name:     middlewares.CookieName,
		Value:    t,
		Path:     "/",
		MaxAge:   int(token.TTL.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
		Secure:   cfg.Env != "development",
	})
}

func clearSessionCookie(w http.ResponseWriter, cfg config.Config) {
	http.SetCookie(w, &http.Cookie{
		Name:     middlewares.CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
		Secure:   cfg.Env != "development",
	})
}

func AuthRoutes(ctrl *controllers.AuthController, users *dao.UserDAO, limiter *middlewares.RateLimiter, cfg config.Config) chi.Router {
	r := chi.NewRouter()

	r.Group(func(gr chi.Router) {
		gr.Use(limiter.Middleware())

		gr.Post("/signup", func(w http.ResponseWriter, r *http.Request) {
			var req types.SignUpRequest
			if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
				writeError(w, r, types.NewValidationError("Invalid Request Body"))
				return
			}
			user, t, err := ctrl.SignUp(r.Context(), req)
			if err != nil {
				writeError(w, r, err)
				return
			}
			setSessionCookie(w, t, cfg)
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusCreated)
			json.NewEncoder(w).Encode(user)
		})

		gr.Post("/login", func(w http.ResponseWriter, r *http.Request) {
			var req types.LoginRequest
			if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
				writeError(w, r, types.NewValidationError("Invalid Request Body"))
				return
			}
			user, t, err := ctrl.Login(r.Context(), req)
			if err != nil {
				writeError(w, r, err)
				return
			}
			setSessionCookie(w, t, cfg)
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusOK)
			json.NewEncoder(w).Encode(user)
		})
	})

	r.Post("/logout", func(w http.ResponseWriter, r *http.Request) {
		clearSessionCookie(w, cfg)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(types.MessageResponse{Message: "Logged Out Successfully!"})
	})

	r.Group(func(gr chi.Router) {
		gr.Use(middlewares.AuthMiddleware(users, cfg))

		gr.Get("/me", handleJSON(func(r *http.Request) (any, int, error) {
			user := middlewares.UserFromContext(r.Context())
			resp, err := ctrl.Me(r.Context(), user)
			if err != nil {
				return nil, 0, err
			}
			return resp, http.StatusOK, nil
		}))
	})

	return r
}
