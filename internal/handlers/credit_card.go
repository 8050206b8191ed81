package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/plutoledger/pluto/internal/models"
	"github.com/plutoledger/pluto/internal/services"
)

type CreditCardHandler struct {
	service services.CreditCardService
}

func NewCreditCardHandler(service services.CreditCardService) *CreditCardHandler {
	return &CreditCardHandler{service: service}
}

// @Summary List credit cards
// @Tags credit-cards
// @Produce json
// @Success 200 {array} models.CreditCard
// @Router /credit-cards [get]
func (h *CreditCardHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	cards, err := h.service.List(r.Context(), userID)
	if err != nil {
		writeError(w, err)
		return
	}
	if cards == nil {
		cards = []*models.CreditCard{}
	}

	writeJSON(w, http.StatusOK, cards)
}

// @Summary Create a credit card
// @Tags credit-cards
// @Accept json
// @Produce json
// @Success 201 {object} models.CreditCard
// @Router /credit-cards [post]
func (h *CreditCardHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	var card models.CreditCard
	if err := json.NewDecoder(r.Body).Decode(&card); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	card.UserID = userID

	created, err := h.service.Create(r.Context(), &card)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, created)
}

// @Summary Get a credit card
// @Tags credit-cards
// @Produce json
// @Param id path string true "Credit card ID"
// @Success 200 {object} models.CreditCard
// @Router /credit-cards/{id} [get]
func (h *CreditCardHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	card, err := h.service.Get(r.Context(), mux.Vars(r)["id"], userID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, card)
}

// @Summary Update a credit card
// @Tags credit-cards
// @Accept json
// @Produce json
// @Param id path string true "Credit card ID"
// @Success 200 {object} models.CreditCard
// @Router /credit-cards/{id} [put]
func (h *CreditCardHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	var card models.CreditCard
	if err := json.NewDecoder(r.Body).Decode(&card); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	card.ID = mux.Vars(r)["id"]
	card.UserID = userID

	updated, err := h.service.Update(r.Context(), &card)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, updated)
}

// @Summary Delete a credit card
// @Tags credit-cards
// @Param id path string true "Credit card ID"
// @Success 204 {string} string ""
// @Router /credit-cards/{id} [delete]
func (h *CreditCardHandler) Delete(w http.ResponseWriter, r *http.Request) {
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
