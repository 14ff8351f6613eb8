package routes

import (
	"encoding/json"
	"net/http"

	"flock/flock/config"
	"flock/flock/controllers"
	"flock/flock/middlewares"
	"flock/flock/sources/psql/dao"
	"flock/flock/types"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

func UserRoutes(ctrl *controllers.UserController, users *dao.UserDAO, cfg config.Config) chi.Router {
	r := chi.NewRouter()

	r.Group(func(gr chi.Router) {
		gr.Use(middlewares.AuthMiddleware(users, cfg))

		gr.Get("/profile/{username}", handleJSON(func(r *http.Request) (any, int, error) {
			profile, err := ctrl.GetProfile(r.Context(), chi.URLParam(r, "username"))
			if err != nil {
				return nil, 0, err
			}
			return profile, http.StatusOK, nil
		}))

		gr.Get("/suggested", handleJSON(func(r *http.Request) (any, int, error) {
			user := middlewares.UserFromContext(r.Context())
			suggested, err := ctrl.GetSuggestedUsers(r.Context(), user.ID)
			if err != nil {
				return nil, 0, err
			}
			return suggested, http.StatusOK, nil
		}))

		gr.Post("/follow/{id}", handleJSON(func(r *http.Request) (any, int, error) {
			user := middlewares.UserFromContext(r.Context())
			targetID, err := uuid.Parse(chi.URLParam(r, "id"))
			if err != nil {
				return nil, 0, types.NewNotFoundError("User Not Found!")
			}
			msg, err := ctrl.FollowUnfollow(r.Context(), user, targetID)
			if err != nil {
				return nil, 0, err
			}
			return msg, http.StatusOK, nil
		}))

		gr.Post("/update", handleJSON(func(r *http.Request) (any, int, error) {
			user := middlewares.UserFromContext(r.Context())
			var req types.UpdateUserRequest
			if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
				return nil, 0, types.NewValidationError("Invalid Request Body")
			}
			profile, err := ctrl.UpdateProfile(r.Context(), user, req)
			if err != nil {
				return nil, 0, err
			}
			return profile, http.StatusOK, nil
		}))
	})

	return r
}
