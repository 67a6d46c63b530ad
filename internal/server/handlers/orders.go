package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"atelier-system/internal/database/models"
)

const deadlineLayout = "2006-01-02"

type OrderHandler struct {
	db *gorm.DB
}

func NewOrderHandler(db *gorm.DB) *OrderHandler {
	return &OrderHandler{db: db}
}

type CreateOrderRequest struct {
	OrderType     string           `json:"order_type"`
	Deadline      string           `json:"deadline"`
	TotalAmount   *decimal.Decimal `json:"total_amount"`
	PaymentStatus string           `json:"payment_status"`
	AmountPaid    *decimal.Decimal `json:"amount_paid"`
	ClientName    string           `json:"client_name"`
	ClientPhone   string           `json:"client_phone"`
	Notes         string           `json:"notes"`
}

type UpdatePaymentStatusRequest struct {
	PaymentStatus string `json:"payment_status"`
}

// Create: POST /orders. Inserts the order and its derived invoice in one
// transaction, so a failing invoice insert cannot leave an orphan order.
func (h *OrderHandler) Create(c *gin.Context) {
	var req CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse("Invalid request body"))
		return
	}

	if req.OrderType == "" {
		c.JSON(http.StatusBadRequest, errorResponse("order_type is required"))
		return
	}
	if req.Deadline == "" {
		c.JSON(http.StatusBadRequest, errorResponse("deadline is required"))
		return
	}
	if req.ClientName == "" {
		c.JSON(http.StatusBadRequest, errorResponse("client_name is required"))
		return
	}
	if req.TotalAmount == nil {
		c.JSON(http.StatusBadRequest, errorResponse("total_amount is required"))
		return
	}

	deadline, err := time.Parse(deadlineLayout, req.Deadline)
	if err != nil {
		c.JSON(http.StatusBadRequest, errorResponse("deadline must be a valid date (YYYY-MM-DD)"))
		return
	}

	amountPaid := decimal.Zero
	if req.AmountPaid != nil {
		amountPaid = *req.AmountPaid
	}

	paymentStatus := req.PaymentStatus
	if paymentStatus == "" {
		paymentStatus = models.OrderNotPaid
	}

	order := models.Order{
		OrderType:     req.OrderType,
		Deadline:      deadline,
		TotalAmount:   *req.TotalAmount,
		PaymentStatus: paymentStatus,
		AmountPaid:    amountPaid,
		// Snapshot: not corrected to zero even when the order is created
		// already marked "Paid". Only a later status update does that.
		RemainingBalance: req.TotalAmount.Sub(amountPaid),
		ClientName:       req.ClientName,
		ClientPhone:      req.ClientPhone,
		Notes:            req.Notes,
	}

	var invoice models.Invoice
	err = h.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&order).Error; err != nil {
			return err
		}
		invoice = models.NewInvoiceForOrder(order, time.Now())
		return tx.Create(&invoice).Error
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, errorResponse(err.Error()))
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"order":   order,
		"invoice": invoice,
	})
}

// List: GET /orders — every order row, unfiltered and unsorted.
func (h *OrderHandler) List(c *gin.Context) {
	orders := []models.Order{}
	if err := h.db.Find(&orders).Error; err != nil {
		c.JSON(http.StatusInternalServerError, errorResponse(err.Error()))
		return
	}

	c.JSON(http.StatusOK, orders)
}

// UpdatePaymentStatus: PATCH /orders/:id. Read-modify-write on the order,
// then the invoice mirror (status + amount_paid) in the same transaction.
// Moving to "Paid" settles the order in full; moving away leaves the order's
// amounts untouched but clears the invoice's amount_paid to NULL.
func (h *OrderHandler) UpdatePaymentStatus(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, errorResponse("Invalid order ID"))
		return
	}

	var req UpdatePaymentStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse("Invalid request body"))
		return
	}
	if req.PaymentStatus == "" {
		c.JSON(http.StatusBadRequest, errorResponse("payment_status is required"))
		return
	}

	var order models.Order
	err = h.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&order, id).Error; err != nil {
			return err
		}

		order.PaymentStatus = req.PaymentStatus
		if req.PaymentStatus == models.OrderPaid {
			order.AmountPaid = order.TotalAmount
			order.RemainingBalance = decimal.Zero
		}

		if err := tx.Save(&order).Error; err != nil {
			return err
		}

		invoiceStatus := models.InvoicePending
		invoicePaid := decimal.NullDecimal{}
		if req.PaymentStatus == models.OrderPaid {
			invoiceStatus = models.InvoicePaid
			invoicePaid = decimal.NullDecimal{Decimal: order.TotalAmount, Valid: true}
		}

		return tx.Model(&models.Invoice{}).
			Where("order_id = ?", order.ID).
			Updates(map[string]interface{}{
				"status":      invoiceStatus,
				"amount_paid": invoicePaid,
			}).Error
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, errorResponse(err.Error()))
		return
	}

	c.JSON(http.StatusOK, order)
}
