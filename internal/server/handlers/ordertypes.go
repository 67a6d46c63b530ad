package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"atelier-system/internal/database/models"
)

type OrderTypeHandler struct {
	db *gorm.DB
}

func NewOrderTypeHandler(db *gorm.DB) *OrderTypeHandler {
	return &OrderTypeHandler{db: db}
}

type CreateOrderTypeRequest struct {
	Name string `json:"name"`
}

// List: GET /order-types — bare array of names, store order, empty store
// yields [].
func (h *OrderTypeHandler) List(c *gin.Context) {
	var orderTypes []models.OrderType
	if err := h.db.Find(&orderTypes).Error; err != nil {
		c.JSON(http.StatusInternalServerError, errorResponse(err.Error()))
		return
	}

	names := make([]string, 0, len(orderTypes))
	for _, t := range orderTypes {
		names = append(names, t.Name)
	}

	c.JSON(http.StatusOK, names)
}

// Create: POST /order-types. Uniqueness is not checked here; the unique
// index on name lets the store reject duplicates.
func (h *OrderTypeHandler) Create(c *gin.Context) {
	var req CreateOrderTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse("Invalid request body"))
		return
	}

	if req.Name == "" {
		c.JSON(http.StatusBadRequest, errorResponse("name is required"))
		return
	}

	orderType := models.OrderType{Name: req.Name}
	if err := h.db.Create(&orderType).Error; err != nil {
		c.JSON(http.StatusInternalServerError, errorResponse(err.Error()))
		return
	}

	c.JSON(http.StatusCreated, orderType)
}

// Delete: DELETE /order-types/:name. Idempotent: zero matched rows is still
// a success.
func (h *OrderTypeHandler) Delete(c *gin.Context) {
	name := c.Param("name")

	if err := h.db.Where("name = ?", name).Delete(&models.OrderType{}).Error; err != nil {
		c.JSON(http.StatusInternalServerError, errorResponse(err.Error()))
		return
	}

	c.JSON(http.StatusOK, messageResponse("Order type deleted successfully"))
}
