package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-shop-api/internal/domain"
	"github.com/go-shop-api/internal/pkg/service"
)

// MessageEnvelope is the generic response wrapper.
type MessageEnvelope struct {
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}

// DomainErrorEnvelope is the stable wire shape for business-rule rejections:
// the resolved message plus the error's full context mapping. Detail is
// always present, {} when the context is empty.
type DomainErrorEnvelope struct {
	Error  string          `json:"error"`
	Detail service.Context `json:"detail"`
}

// AuthEnvelope wraps login/register/refresh responses.
type AuthEnvelope struct {
	Bearer       string          `json:"bearer,omitempty"`
	RefreshToken string          `json:"refresh_token,omitempty"`
	Session      *domain.Session `json:"session,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, MessageEnvelope{Error: msg})
}

// serviceError is the boundary between services and the transport layer.
// Domain errors — whichever variant, already logged by the service's logging
// wrapper — all map to a 400 with the DomainErrorEnvelope shape. Anything
// else gets the default translation: an opaque 500. The mapping is pure, so
// feeding the same error twice produces byte-identical responses.
func serviceError(w http.ResponseWriter, err error) {
	var svcErr *service.Error
	if errors.As(err, &svcErr) {
		writeJSON(w, http.StatusBadRequest, DomainErrorEnvelope{
			Error:  svcErr.Message(),
			Detail: svcErr.Context(),
		})
		return
	}
	writeError(w, http.StatusInternalServerError, "internal server error")
}
