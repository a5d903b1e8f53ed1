package transaction

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRouter() *mux.Router {
	handler := NewTransactionHandler(service)
	r := mux.NewRouter()
	r.HandleFunc("/api/transactions", handler.GetAll).Methods("GET")
	r.HandleFunc("/api/transactions", handler.Create).Methods("POST")
	r.HandleFunc("/api/transactions/{id}", handler.Get).Methods("GET")
	r.HandleFunc("/api/transactions/{id}", handler.Update).Methods("PUT")
	r.HandleFunc("/api/transactions/{id}", handler.Delete).Methods("DELETE")
	return r
}

func TestTransactionHandler_Get(t *testing.T) {
	t.Run("should return 404 with error body for an unknown id", func(t *testing.T) {
		teardown := setup(t)
		defer teardown()
		router := newRouter()

		// when
		req := httptest.NewRequest("GET", "/api/transactions/doesnotexist", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		// then
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.JSONEq(t, `{"error":"Transaction not found"}`, rec.Body.String())
	})
}

func TestTransactionHandler_Create(t *testing.T) {
	t.Run("should return 201 with the created transaction", func(t *testing.T) {
		teardown := setup(t, "food")
		defer teardown()
		router := newRouter()

		// when
		body := `{"type":"expense","amount":100,"category":"food","description":"Grocery Shopping","date":"2026-02-03"}`
		req := httptest.NewRequest("POST", "/api/transactions", strings.NewReader(body))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		// then
		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.Contains(t, rec.Body.String(), `"id"`)
		assert.Equal(t, 100.0, budgetTracker.categories["food"])
	})

	t.Run("should return 400 when a required field is missing", func(t *testing.T) {
		teardown := setup(t)
		defer teardown()
		router := newRouter()

		// when
		body := `{"type":"expense","amount":100,"category":"food"}`
		req := httptest.NewRequest("POST", "/api/transactions", strings.NewReader(body))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		// then
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.JSONEq(t, `{"error":"Missing required fields: type, amount, category, description, date"}`, rec.Body.String())
	})
}

func TestTransactionHandler_Delete(t *testing.T) {
	t.Run("should return the removed transaction", func(t *testing.T) {
		teardown := setup(t)
		defer teardown()
		router := newRouter()

		// given
		created, err := service.Create(ctx, draft())
		require.NoError(t, err)

		// when
		req := httptest.NewRequest("DELETE", "/api/transactions/"+created.ID, nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		// then
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), created.ID)
	})
}
