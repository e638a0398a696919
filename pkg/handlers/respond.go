package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/tuan-design/miniappdesign/pkg/api"
	"github.com/tuan-design/miniappdesign/pkg/gateway"
	"github.com/tuan-design/miniappdesign/pkg/models"
)

// RespondJSON writes v with the given status.
func RespondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		http.Error(w, "failed to write response", http.StatusInternalServerError)
	}
}

// RespondError writes the uniform error envelope.
func RespondError(w http.ResponseWriter, status int, message string) {
	RespondJSON(w, status, api.ErrorResponse{Error: message})
}

// RespondFailure maps the error kinds of this system to HTTP statuses:
// validation problems are the caller's to fix in place, Gateway failures
// surface the Gateway's message with a bad-gateway status.
func RespondFailure(w http.ResponseWriter, err error) {
	var vErr *models.ValidationError
	if errors.As(err, &vErr) {
		RespondError(w, http.StatusUnprocessableEntity, vErr.Error())
		return
	}
	var gwErr *gateway.GatewayError
	if errors.As(err, &gwErr) {
		RespondError(w, http.StatusBadGateway, gwErr.Message)
		return
	}
	RespondError(w, http.StatusInternalServerError, err.Error())
}
