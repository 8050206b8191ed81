package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/plutoledger/pluto/internal/models"
	"github.com/plutoledger/pluto/internal/services"
)

type InvestmentHandler struct {
	service services.InvestmentService
}

func NewInvestmentHandler(service services.InvestmentService) *InvestmentHandler {
	return &InvestmentHandler{service: service}
}

// @Summary List investments
// @Tags investments
// @Produce json
// @Success 200 {array} models.Investment
// @Router /investments [get]
func (h *InvestmentHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	investments, err := h.service.List(r.Context(), userID)
	if err != nil {
		writeError(w, err)
		return
	}
	if investments == nil {
		investments = []*models.Investment{}
	}

	writeJSON(w, http.StatusOK, investments)
}

// @Summary Create an investment
// @Tags investments
// @Accept json
// @Produce json
// @Success 201 {object} models.Investment
// @Router /investments [post]
func (h *InvestmentHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	var investment models.Investment
	if err := json.NewDecoder(r.Body).Decode(&investment); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	investment.UserID = userID

	created, err := h.service.Create(r.Context(), &investment)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, created)
}

// @Summary Get an investment
// @Tags investments
// @Produce json
// @Param id path string true "Investment ID"
// @Success 200 {object} models.Investment
// @Router /investments/{id} [get]
func (h *InvestmentHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	investment, err := h.service.Get(r.Context(), mux.Vars(r)["id"], userID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, investment)
}

// @Summary Update an investment
// @Tags investments
// @Accept json
// @Produce json
// @Param id path string true "Investment ID"
// @Success 200 {object} models.Investment
// @Router /investments/{id} [put]
func (h *InvestmentHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	var investment models.Investment
	if err := json.NewDecoder(r.Body).Decode(&investment); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	investment.ID = mux.Vars(r)["id"]
	investment.UserID = userID

	updated, err := h.service.Update(r.Context(), &investment)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, updated)
}

// @Summary Delete an investment
// @Tags investments
// @Param id path string true "Investment ID"
// @Success 204 {string} string ""
// @Router /investments/{id} [delete]
func (h *InvestmentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	if err := h.service.Delete(r.Context(), mux.Vars(r)["id"], userID); err != nil {
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
