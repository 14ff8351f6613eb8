package routes

import (
	"net/http"

	"flock/flock/config"
	"flock/flock/controllers"
	"flock/flock/middlewares"
	"flock/flock/sources/psql/dao"

	"github.com/go-chi/chi/v5"
)

func NotificationRoutes(ctrl *controllers.NotificationController, users *dao.UserDAO, cfg config.Config) chi.Router {
	r := chi.NewRouter()

	r.Group(func(gr chi.Router) {
		gr.Use(middlewares.AuthMiddleware(users, cfg))

		gr.Get("/", handleJSON(func(r *http.Request) (any, int, error) {
			user := middlewares.UserFromContext(r.Context())
			ns, err := ctrl.GetNotifications(r.Context(), user.ID)
			if err != nil {
				return nil, 0, err
			}
			return ns, http.StatusOK, nil
		}))

		gr.Delete("/", handleJSON(func(r *http.Request) (any, int, error) {
			user := middlewares.UserFromContext(r.Context())
			msg, err := ctrl.DeleteNotifications(r.Context(), user.ID)
			if err != nil {
				return nil, 0, err
			}
			return msg, http.StatusOK, nil
		}))
	})

	return r
}
