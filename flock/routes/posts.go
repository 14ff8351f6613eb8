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

func PostRoutes(ctrl *controllers.PostController, users *dao.UserDAO, cfg config.Config) chi.Router {
	r := chi.NewRouter()

	// An empty store answers with a message object rather than [],
	// so clients can tell "no posts" from a failed query.
	r.Get("/", handleJSON(func(r *http.Request) (any, int, error) {
		posts, err := ctrl.GetAllPosts(r.Context())
		if err != nil {
			return nil, 0, err
		}
		if len(posts) == 0 {
			return types.MessageResponse{Message: "No Posts Today!"}, http.StatusOK, nil
		}
		return posts, http.StatusOK, nil
	}))

	r.Get("/likes/{id}", handleJSON(func(r *http.Request) (any, int, error) {
		userID, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			return nil, 0, types.NewNotFoundError("User Not Found!")
		}
		posts, err := ctrl.GetLikedPosts(r.Context(), userID)
		if err != nil {
			return nil, 0, err
		}
		return posts, http.StatusOK, nil
	}))

	r.Get("/user/{username}", handleJSON(func(r *http.Request) (any, int, error) {
		posts, err := ctrl.GetUserPosts(r.Context(), chi.URLParam(r, "username"))
		if err != nil {
			return nil, 0, err
		}
		return posts, http.StatusOK, nil
	}))

	r.Group(func(gr chi.Router) {
		gr.Use(middlewares.AuthMiddleware(users, cfg))

		gr.Get("/following", handleJSON(func(r *http.Request) (any, int, error) {
			user := middlewares.UserFromContext(r.Context())
			posts, err := ctrl.GetFollowingPosts(r.Context(), user.ID)
			if err != nil {
				return nil, 0, err
			}
			return posts, http.StatusOK, nil
		}))

		gr.Post("/create", handleJSON(func(r *http.Request) (any, int, error) {
			user := middlewares.UserFromContext(r.Context())
			var req types.CreatePostRequest
			if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
				return nil, 0, types.NewValidationError("Invalid Request Body")
			}
			post, err := ctrl.CreatePost(r.Context(), user.ID, req)
			if err != nil {
				return nil, 0, err
			}
			return post, http.StatusCreated, nil
		}))

		gr.Delete("/{id}", handleJSON(func(r *http.Request) (any, int, error) {
			user := middlewares.UserFromContext(r.Context())
			postID, err := uuid.Parse(chi.URLParam(r, "id"))
			if err != nil {
				return nil, 0, types.NewNotFoundError("Post Not Found!")
			}
			msg, err := ctrl.DeletePost(r.Context(), postID, user.ID)
			if err != nil {
				return nil, 0, err
			}
			return msg, http.StatusOK, nil
		}))

		gr.Post("/comment/{id}", handleJSON(func(r *http.Request) (any, int, error) {
			user := middlewares.UserFromContext(r.Context())
			postID, err := uuid.Parse(chi.URLParam(r, "id"))
			if err != nil {
				return nil, 0, types.NewNotFoundError("Post Not Found!")
			}
			var req types.CommentRequest
			if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
				return nil, 0, types.NewValidationError("Invalid Request Body")
			}
			post, err := ctrl.CommentOnPost(r.Context(), postID, user, req)
			if err != nil {
				return nil, 0, err
			}
			return post, http.StatusOK, nil
		}))

		gr.Post("/like/{id}", handleJSON(func(r *http.Request) (any, int, error) {
			user := middlewares.UserFromContext(r.Context())
			postID, err := uuid.Parse(chi.URLParam(r, "id"))
			if err != nil {
				return nil, 0, types.NewNotFoundError("Post Not Found!")
			}
			likes, err := ctrl.LikeUnlikePost(r.Context(), postID, user.ID)
			if err != nil {
				return nil, 0, err
			}
			return likes, http.StatusOK, nil
		}))
	})

	return r
}
