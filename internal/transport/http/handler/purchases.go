package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-shop-api/internal/application/purchase"
	"github.com/go-shop-api/internal/domain"
	"github.com/go-shop-api/internal/pkg/validate"
	"github.com/go-shop-api/internal/transport/http/middleware"
)

// PurchaseHandler handles the buy flow and purchase history endpoints.
// All routes require a customer profile (middleware.CustomerRequired).
type PurchaseHandler struct {
	svc purchase.Service
}

func NewPurchaseHandler(svc purchase.Service) *PurchaseHandler {
	return &PurchaseHandler{svc: svc}
}

func (h *PurchaseHandler) Buy(w http.ResponseWriter, r *http.Request) {
	customer, ok := middleware.CustomerFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusForbidden, "customer profile required")
		return
	}
	var req domain.BuyProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	p, err := h.svc.Buy(r.Context(), customer, req)
	if err != nil {
		serviceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, p)
}

func (h *PurchaseHandler) List(w http.ResponseWriter, r *http.Request) {
	customer, ok := middleware.CustomerFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusForbidden, "customer profile required")
		return
	}
	purchases, err := h.svc.List(r.Context(), customer)
	if err != nil {
		serviceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, purchases)
}

func (h *PurchaseHandler) Get(w http.ResponseWriter, r *http.Request) {
	customer, ok := middleware.CustomerFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusForbidden, "customer profile required")
		return
	}
	p, err := h.svc.Get(r.Context(), customer, chi.URLParam(r, "id"))
	if err != nil {
		serviceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}
