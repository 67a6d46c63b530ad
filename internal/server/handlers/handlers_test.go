package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"atelier-system/internal/database/models"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := db.AutoMigrate(&models.OrderType{}, &models.Order{}, &models.Invoice{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func newTestRouter(db *gorm.DB) *gin.Engine {
	orderTypeHandler := NewOrderTypeHandler(db)
	orderHandler := NewOrderHandler(db)
	invoiceHandler := NewInvoiceHandler(db)

	r := gin.New()
	r.GET("/order-types", orderTypeHandler.List)
	r.POST("/order-types", orderTypeHandler.Create)
	r.DELETE("/order-types/:name", orderTypeHandler.Delete)
	r.POST("/orders", orderHandler.Create)
	r.GET("/orders", orderHandler.List)
	r.PATCH("/orders/:id", orderHandler.UpdatePaymentStatus)
	r.GET("/invoices/:order_id", invoiceHandler.GetByOrderID)
	return r
}

func doJSON(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.Unmarshal(w.Body.Bytes(), v); err != nil {
		t.Fatalf("decode %s: %v", w.Body.String(), err)
	}
}

func mustCreateOrder(t *testing.T, r *gin.Engine, body string) uint {
	t.Helper()
	w := doJSON(r, http.MethodPost, "/orders", body)
	if w.Code != http.StatusCreated {
		t.Fatalf("create order: expected 201 got %d body=%s", w.Code, w.Body.String())
	}
	var resp struct {
		Order models.Order `json:"order"`
	}
	decodeBody(t, w, &resp)
	return resp.Order.ID
}
