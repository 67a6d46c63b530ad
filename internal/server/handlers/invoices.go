package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"atelier-system/internal/database/models"
)

type InvoiceHandler struct {
	db *gorm.DB
}

func NewInvoiceHandler(db *gorm.DB) *InvoiceHandler {
	return &InvoiceHandler{db: db}
}

// GetByOrderID: GET /invoices/:order_id. Single-row contract: exactly one
// invoice must exist for the order; zero or multiple rows is a store error.
func (h *InvoiceHandler) GetByOrderID(c *gin.Context) {
	orderID, err := strconv.ParseUint(c.Param("order_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, errorResponse("Invalid order ID"))
		return
	}

	var invoices []models.Invoice
	if err := h.db.Preload("Order").
		Where("order_id = ?", orderID).
		Limit(2).
		Find(&invoices).Error; err != nil {
		c.JSON(http.StatusInternalServerError, errorResponse(err.Error()))
		return
	}

	switch len(invoices) {
	case 0:
		c.JSON(http.StatusInternalServerError, errorResponse(fmt.Sprintf("no invoice found for order %d", orderID)))
	case 1:
		c.JSON(http.StatusOK, invoices[0])
	default:
		c.JSON(http.StatusInternalServerError, errorResponse(fmt.Sprintf("multiple invoices found for order %d", orderID)))
	}
}
