package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gorilla/mux"

	"github.com/plutoledger/pluto/internal/models"
	"github.com/plutoledger/pluto/internal/services"
)

type TransactionHandler struct {
	service services.TransactionService
}

func NewTransactionHandler(service services.TransactionService) *TransactionHandler {
	return &TransactionHandler{service: service}
}

// List returns one page of the caller's transactions.
// @Summary List transactions
// @Tags transactions
// @Produce json
// @Param start_date query string false "Start date (YYYY-MM-DD)"
// @Param end_date query string false "End date (YYYY-MM-DD)"
// @Param types query string false "Comma-separated transaction types"
// @Param account query string false "Account ID"
// @Param category query string false "Category ID"
// @Param page query int false "Page"
// @Param limit query int false "Page size"
// @Success 200 {object} services.TransactionList
// @Failure 500 {string} string "Internal server error"
// @Router /transactions [get]
func (h *TransactionHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	list, err := h.service.List(r.Context(), userID, parseFilter(r))
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, list)
}

// Create records a transaction and applies its balance effect.
// @Summary Create a transaction
// @Tags transactions
// @Accept json
// @Produce json
// @Success 201 {object} models.Transaction
// @Failure 400 {string} string "Invalid request"
// @Failure 404 {string} string "Account not found"
// @Router /transactions [post]
func (h *TransactionHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	var in services.TransactionInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	tx, err := h.service.Create(r.Context(), userID, &in)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, tx)
}

// Get returns a single transaction by id.
// @Summary Get a transaction
// @Tags transactions
// @Produce json
// @Param id path string true "Transaction ID"
// @Success 200 {object} models.Transaction
// @Failure 404 {string} string "Not found"
// @Router /transactions/{id} [get]
func (h *TransactionHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	tx, err := h.service.Get(r.Context(), mux.Vars(r)["id"], userID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, tx)
}

// Update applies a partial payload to a transaction.
// @Summary Update a transaction
// @Tags transactions
// @Accept json
// @Produce json
// @Param id path string true "Transaction ID"
// @Success 200 {object} models.Transaction
// @Failure 404 {string} string "Not found"
// @Router /transactions/{id} [put]
func (h *TransactionHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	var in services.TransactionUpdateInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	tx, err := h.service.Update(r.Context(), mux.Vars(r)["id"], userID, &in)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, tx)
}

// Delete reverses a transaction's balance effect and removes it.
// @Summary Delete a transaction
// @Tags transactions
// @Produce json
// @Param id path string true "Transaction ID"
// @Success 200 {object} map[string]bool
// @Failure 404 {string} string "Not found"
// @Router /transactions/{id} [delete]
func (h *TransactionHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	success, err := h.service.Delete(r.Context(), mux.Vars(r)["id"], userID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]bool{"success": success})
}

// Stats returns aggregated totals and chart data for a period.
// @Summary Transaction statistics
// @Tags transactions
// @Produce json
// @Param period query string false "day, week, month or year"
// @Success 200 {object} models.TransactionStats
// @Router /transactions/stats [get]
func (h *TransactionHandler) Stats(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	stats, err := h.service.Stats(r.Context(), userID, models.Period(r.URL.Query().Get("period")))
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, stats)
}

// RemoveAttachment drops one attachment from a transaction.
// @Summary Remove a transaction attachment
// @Tags transactions
// @Produce json
// @Param id path string true "Transaction ID"
// @Param attachmentId path string true "Attachment ID"
// @Success 200 {object} models.Transaction
// @Failure 404 {string} string "Not found"
// @Router /transactions/{id}/attachments/{attachmentId} [delete]
func (h *TransactionHandler) RemoveAttachment(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	vars := mux.Vars(r)
	tx, err := h.service.RemoveAttachment(r.Context(), vars["id"], userID, vars["attachmentId"])
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, tx)
}

// ListByInvestment returns the transactions linked to one investment.
// @Summary List transactions for an investment
// @Tags transactions
// @Produce json
// @Param investmentId path string true "Investment ID"
// @Success 200 {array} models.Transaction
// @Router /transactions/investment/{investmentId} [get]
func (h *TransactionHandler) ListByInvestment(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	transactions, err := h.service.ListByInvestment(r.Context(), userID, mux.Vars(r)["investmentId"])
	if err != nil {
		writeError(w, err)
		return
	}
	if transactions == nil {
		transactions = []*models.Transaction{}
	}

	writeJSON(w, http.StatusOK, transactions)
}

func parseFilter(r *http.Request) *models.TransactionFilter {
	filter := &models.TransactionFilter{}
	query := r.URL.Query()

	if startDate := query.Get("start_date"); startDate != "" {
		if date, err := time.Parse("2006-01-02", startDate); err == nil {
			filter.StartDate = &date
		}
	}
	if endDate := query.Get("end_date"); endDate != "" {
		if date, err := time.Parse("2006-01-02", endDate); err == nil {
			filter.EndDate = &date
		}
	}
	if types := query.Get("types"); types != "" {
		filter.Types = strings.Split(types, ",")
	}
	if account := query.Get("account"); account != "" {
		filter.AccountID = &account
	}
	if category := query.Get("category"); category != "" {
		filter.CategoryID = &category
	}
	if page, err := strconv.Atoi(query.Get("page")); err == nil {
		filter.Page = page
	}
	if limit, err := strconv.Atoi(query.Get("limit")); err == nil {
		filter.Limit = limit
	}

	return filter
}
