package handler

import (
	"net/http"

	"github.com/efreitasn/minibourse/internal/service"
)

// EntityHandler handles HTTP requests for entity creation.
type EntityHandler struct {
	entitySvc *service.EntityService
}

// NewEntityHandler creates a new EntityHandler.
func NewEntityHandler(entitySvc *service.EntityService) *EntityHandler {
	return &EntityHandler{entitySvc: entitySvc}
}

// createEntityRequest is the JSON request body for all three creation
// endpoints.
type createEntityRequest struct {
	Name string `json:"name"`
}

// createEntityResponse is the JSON response for entity creation.
type createEntityResponse struct {
	Name string `json:"name"`
}

// CreateCompany handles POST /companies.
func (h *EntityHandler) CreateCompany(w http.ResponseWriter, r *http.Request) {
	var req createEntityRequest
	if err := ParseJSON(r, &req); err != nil {
		WriteError(w, http.StatusBadRequest, "invalid_request", err.Error())
		return
	}

	c, err := h.entitySvc.CreateCompany(req.Name)
	if err != nil {
		mapDomainError(w, err)
		return
	}
	WriteJSON(w, http.StatusCreated, createEntityResponse{Name: c.Name})
}

// CreateExchange handles POST /exchanges.
func (h *EntityHandler) CreateExchange(w http.ResponseWriter, r *http.Request) {
	var req createEntityRequest
	if err := ParseJSON(r, &req); err != nil {
		WriteError(w, http.StatusBadRequest, "invalid_request", err.Error())
		return
	}

	x, err := h.entitySvc.CreateExchange(req.Name)
	if err != nil {
		mapDomainError(w, err)
		return
	}
	WriteJSON(w, http.StatusCreated, createEntityResponse{Name: x.Name})
}

// CreateTrader handles POST /traders.
func (h *EntityHandler) CreateTrader(w http.ResponseWriter, r *http.Request) {
	var req createEntityRequest
	if err := ParseJSON(r, &req); err != nil {
		WriteError(w, http.StatusBadRequest, "invalid_request", err.Error())
		return
	}

	t, err := h.entitySvc.CreateTrader(req.Name)
	if err != nil {
		mapDomainError(w, err)
		return
	}
	WriteJSON(w, http.StatusCreated, createEntityResponse{Name: t.Name})
}
