package order

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"gomart-be/internal/metrics"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func setupRouter(repo Repository) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewHandler(NewService(repo, metrics.NewOrderStats()), "test")

	r := gin.New()
	r.POST("/api/orders", h.CreateOrder)
	r.GET("/api/orders/:orderId", h.GetOrder)
	return r
}

func postOrder(t *testing.T, r *gin.Engine, payload any) *httptest.ResponseRecorder {
	t.Helper()
	body, err := json.Marshal(payload)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/orders", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestHandler_CreateOrder(t *testing.T) {
	t.Run("Created", func(t *testing.T) {
		mockRepo := new(MockRepository)
		mockRepo.On("Insert", mock.Anything, mock.AnythingOfType("*order.Order")).Return(nil)
		r := setupRouter(mockRepo)

		w := postOrder(t, r, validSubmission())

		assert.Equal(t, http.StatusCreated, w.Code)
		resp := decodeBody(t, w)
		assert.Equal(t, true, resp["success"])
		assert.Equal(t, "Order created successfully", resp["message"])

		data := resp["data"].(map[string]any)
		assert.Equal(t, float64(2), data["totalItems"])
		assert.Equal(t, 20.00, data["totalAmount"])
		assert.Contains(t, data["orderId"], "ORD-")
	})

	t.Run("Empty order", func(t *testing.T) {
		r := setupRouter(new(MockRepository))

		w := postOrder(t, r, Submission{Customer: validCustomer()})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		resp := decodeBody(t, w)
		assert.Equal(t, false, resp["success"])

		errs := resp["errors"].([]any)
		first := errs[0].(map[string]any)
		assert.Equal(t, "products", first["field"])
	})

	t.Run("Customer validation envelope", func(t *testing.T) {
		r := setupRouter(new(MockRepository))

		sub := validSubmission()
		sub.Customer.Name = "John123"
		w := postOrder(t, r, sub)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		resp := decodeBody(t, w)
		assert.Equal(t, "Order validation failed", resp["message"])

		errs := resp["errors"].([]any)
		require.Len(t, errs, 1)
		first := errs[0].(map[string]any)
		assert.Equal(t, "customer.name", first["field"])
	})

	t.Run("Product validation tagged with position", func(t *testing.T) {
		r := setupRouter(new(MockRepository))

		bad := validLine()
		bad.Quantity = 0
		sub := validSubmission()
		sub.Products = []OrderLine{validLine(), bad}
		w := postOrder(t, r, sub)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		resp := decodeBody(t, w)

		errs := resp["errors"].([]any)
		require.Len(t, errs, 1)
		first := errs[0].(map[string]any)
		assert.Equal(t, "products[1].quantity", first["field"])
	})

	t.Run("Summary mismatch envelope", func(t *testing.T) {
		r := setupRouter(new(MockRepository))

		sub := validSubmission()
		sub.OrderSummary = &OrderSummary{TotalItems: 5, TotalAmount: 20.00}
		w := postOrder(t, r, sub)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		resp := decodeBody(t, w)

		errs := resp["errors"].([]any)
		require.Len(t, errs, 1)
		first := errs[0].(map[string]any)
		assert.Equal(t, "orderSummary", first["field"])
		assert.Contains(t, first["message"], "Total items mismatch")
	})

	t.Run("Duplicate order id", func(t *testing.T) {
		mockRepo := new(MockRepository)
		mockRepo.On("Insert", mock.Anything, mock.AnythingOfType("*order.Order")).Return(ErrDuplicateOrderID)
		r := setupRouter(mockRepo)

		w := postOrder(t, r, validSubmission())

		assert.Equal(t, http.StatusBadRequest, w.Code)
		resp := decodeBody(t, w)
		assert.Equal(t, "Order ID already exists. Please try again.", resp["message"])
		assert.Equal(t, "Duplicate order ID", resp["error"])
	})

	t.Run("Unknown persistence failure is a 500 without detail", func(t *testing.T) {
		mockRepo := new(MockRepository)
		mockRepo.On("Insert", mock.Anything, mock.AnythingOfType("*order.Order")).
			Return(&PersistenceError{Err: assert.AnError})
		r := setupRouter(mockRepo)

		w := postOrder(t, r, validSubmission())

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		resp := decodeBody(t, w)
		assert.Equal(t, "Internal server error", resp["error"])
	})

	t.Run("Malformed body", func(t *testing.T) {
		r := setupRouter(new(MockRepository))

		req := httptest.NewRequest(http.MethodPost, "/api/orders", bytes.NewReader([]byte("{not json")))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestHandler_GetOrder(t *testing.T) {
	t.Run("Found", func(t *testing.T) {
		mockRepo := new(MockRepository)
		stored := validOrder()
		stored.OrderSummary = OrderSummary{TotalItems: 2, TotalAmount: 20.00}
		mockRepo.On("GetByOrderID", mock.Anything, "ORD-TEST-1").Return(&stored, nil)
		r := setupRouter(mockRepo)

		req := httptest.NewRequest(http.MethodGet, "/api/orders/ORD-TEST-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Not found", func(t *testing.T) {
		mockRepo := new(MockRepository)
		mockRepo.On("GetByOrderID", mock.Anything, "missing").Return(nil, ErrOrderNotFound)
		r := setupRouter(mockRepo)

		req := httptest.NewRequest(http.MethodGet, "/api/orders/missing", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
