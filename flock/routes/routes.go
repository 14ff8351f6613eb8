package routes

import (
	"encoding/json"
	"errors"
	"net/http"

	"flock/flock/types"
	"flock/flock/utils/logging"

	"go.uber.org/zap"
)

// handleJSON is the generic wrapper all routes go through. Expected
// failures arrive as *types.APIError and keep their status and
// message; anything else becomes a generic 500, with the real error
// written to error.log only.
func handleJSON(handler func(r *http.Request) (any, int, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		res, status, err := handler(r)
		if err != nil {
			writeError(w, r, err)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		json.NewEncoder(w).Encode(res)
	}
}

func writeError(w http.ResponseWriter, r *http.Request, err error) {
	var apiErr *types.APIError
	if !errors.As(err, &apiErr) {
		logging.ErrorLogger.Error("request failed",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Error(err),
		)
		apiErr = &types.APIError{Status: http.StatusInternalServerError, Message: "Internal Server Error!"}
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(apiErr.Status)
	json.NewEncoder(w).Encode(apiErr)
}
