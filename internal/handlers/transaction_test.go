package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/plutoledger/pluto/internal/errors"
	"github.com/plutoledger/pluto/internal/models"
	"github.com/plutoledger/pluto/internal/services"
)

// stubTransactionService returns canned results so the tests can focus on
// request parsing and status code mapping.
type stubTransactionService struct {
	tx    *models.Transaction
	list  *services.TransactionList
	stats *models.TransactionStats
	err   error

	lastUserID string
	lastFilter *models.TransactionFilter
	lastPeriod models.Period
}

func (s *stubTransactionService) Create(ctx context.Context, userID string, in *services.TransactionInput) (*models.Transaction, error) {
	s.lastUserID = userID
	return s.tx, s.err
}

func (s *stubTransactionService) Get(ctx context.Context, id, userID string) (*models.Transaction, error) {
	s.lastUserID = userID
	return s.tx, s.err
}

func (s *stubTransactionService) List(ctx context.Context, userID string, filter *models.TransactionFilter) (*services.TransactionList, error) {
	s.lastUserID = userID
	s.lastFilter = filter
	return s.list, s.err
}

func (s *stubTransactionService) Update(ctx context.Context, id, userID string, in *services.TransactionUpdateInput) (*models.Transaction, error) {
	s.lastUserID = userID
	return s.tx, s.err
}

func (s *stubTransactionService) Delete(ctx context.Context, id, userID string) (bool, error) {
	s.lastUserID = userID
	return s.err == nil, s.err
}

func (s *stubTransactionService) RemoveAttachment(ctx context.Context, id, userID, attachmentID string) (*models.Transaction, error) {
	s.lastUserID = userID
	return s.tx, s.err
}

func (s *stubTransactionService) Stats(ctx context.Context, userID string, period models.Period) (*models.TransactionStats, error) {
	s.lastUserID = userID
	s.lastPeriod = period
	return s.stats, s.err
}

func (s *stubTransactionService) ListByInvestment(ctx context.Context, userID, investmentID string) ([]*models.Transaction, error) {
	s.lastUserID = userID
	if s.tx == nil {
		return nil, s.err
	}
	return []*models.Transaction{s.tx}, s.err
}

func newTransactionRouter(service services.TransactionService) *mux.Router {
	handler := NewTransactionHandler(service)
	router := mux.NewRouter()
	router.HandleFunc("/api/transactions", handler.List).Methods(http.MethodGet)
	router.HandleFunc("/api/transactions", handler.Create).Methods(http.MethodPost)
	router.HandleFunc("/api/transactions/stats", handler.Stats).Methods(http.MethodGet)
	router.HandleFunc("/api/transactions/{id}", handler.Get).Methods(http.MethodGet)
	router.HandleFunc("/api/transactions/{id}", handler.Update).Methods(http.MethodPut)
	router.HandleFunc("/api/transactions/{id}", handler.Delete).Methods(http.MethodDelete)
	return router
}

func TestTransactionHandler_RequiresUserHeader(t *testing.T) {
	router := newTransactionRouter(&stubTransactionService{})

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/api/transactions", nil))

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}

func TestTransactionHandler_Create(t *testing.T) {
	stub := &stubTransactionService{
		tx: &models.Transaction{ID: "tx-1", UserID: "user-1", Type: models.TypeExpense, Amount: decimal.NewFromInt(10)},
	}
	router := newTransactionRouter(stub)

	body, err := json.Marshal(map[string]any{
		"type":    "expense",
		"amount":  "10",
		"date":    "2025-06-15",
		"account": "5f6b2a51-65cf-45e2-a89d-3d05e78c9d54",
	})
	require.NoError(t, err)

	request := httptest.NewRequest(http.MethodPost, "/api/transactions", bytes.NewReader(body))
	request.Header.Set("X-User-ID", "user-1")
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusCreated, recorder.Code)
	assert.Equal(t, "user-1", stub.lastUserID)

	var created models.Transaction
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &created))
	assert.Equal(t, "tx-1", created.ID)
}

func TestTransactionHandler_Create_InvalidBody(t *testing.T) {
	router := newTransactionRouter(&stubTransactionService{})

	request := httptest.NewRequest(http.MethodPost, "/api/transactions", bytes.NewReader([]byte("{not json")))
	request.Header.Set("X-User-ID", "user-1")
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestTransactionHandler_ErrorStatusMapping(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{
			name:     "not found maps to 404",
			err:      apperrors.NotFound("transaction not found"),
			expected: http.StatusNotFound,
		},
		{
			name:     "validation maps to 400",
			err:      &apperrors.ErrValidation{Field: "date", Message: "must be an RFC3339 or YYYY-MM-DD date"},
			expected: http.StatusBadRequest,
		},
		{
			name:     "internal maps to 500",
			err:      apperrors.Internal("failed to update transaction"),
			expected: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newTransactionRouter(&stubTransactionService{err: tt.err})

			request := httptest.NewRequest(http.MethodGet, "/api/transactions/tx-1", nil)
			request.Header.Set("X-User-ID", "user-1")
			recorder := httptest.NewRecorder()
			router.ServeHTTP(recorder, request)

			assert.Equal(t, tt.expected, recorder.Code)

			var payload map[string]string
			require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &payload))
			assert.Equal(t, tt.err.Error(), payload["error"])
		})
	}
}

func TestTransactionHandler_List_ParsesFilter(t *testing.T) {
	stub := &stubTransactionService{
		list: &services.TransactionList{Transactions: []*models.Transaction{}, Page: 2, Limit: 5},
	}
	router := newTransactionRouter(stub)

	request := httptest.NewRequest(http.MethodGet,
		"/api/transactions?start_date=2025-06-01&end_date=2025-06-30&types=income,expense&account=acc-1&page=2&limit=5", nil)
	request.Header.Set("X-User-ID", "user-1")
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusOK, recorder.Code)
	require.NotNil(t, stub.lastFilter)
	require.NotNil(t, stub.lastFilter.StartDate)
	assert.Equal(t, "2025-06-01", stub.lastFilter.StartDate.Format("2006-01-02"))
	require.NotNil(t, stub.lastFilter.EndDate)
	assert.Equal(t, []string{"income", "expense"}, stub.lastFilter.Types)
	require.NotNil(t, stub.lastFilter.AccountID)
	assert.Equal(t, "acc-1", *stub.lastFilter.AccountID)
	assert.Equal(t, 2, stub.lastFilter.Page)
	assert.Equal(t, 5, stub.lastFilter.Limit)
}

func TestTransactionHandler_Stats_PassesPeriod(t *testing.T) {
	stub := &stubTransactionService{stats: &models.TransactionStats{}}
	router := newTransactionRouter(stub)

	request := httptest.NewRequest(http.MethodGet, "/api/transactions/stats?period=week", nil)
	request.Header.Set("X-User-ID", "user-1")
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, models.PeriodWeek, stub.lastPeriod)
}

func TestTransactionHandler_Delete(t *testing.T) {
	router := newTransactionRouter(&stubTransactionService{})

	request := httptest.NewRequest(http.MethodDelete, "/api/transactions/tx-1", nil)
	request.Header.Set("X-User-ID", "user-1")
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusOK, recorder.Code)

	var payload map[string]bool
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &payload))
	assert.True(t, payload["success"])
}
