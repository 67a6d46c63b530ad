package models

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Payment status values as the frontend sends them on orders, and their
// lowercase mirrors carried on invoices.
const (
	OrderNotPaid = "Not Paid"
	OrderPaid    = "Paid"

	InvoicePending = "pending"
	InvoicePaid    = "paid"
)

// TaxRate is applied to an order's total when its invoice is derived.
var TaxRate = decimal.NewFromFloat(0.05)

type OrderType struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name      string    `gorm:"type:varchar(128);uniqueIndex;not null" json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

type Order struct {
	ID        uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	OrderType string `gorm:"type:varchar(128);not null" json:"order_type"` // references OrderType.Name, not enforced

	Deadline      time.Time       `gorm:"type:date;not null" json:"deadline"`
	TotalAmount   decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"total_amount"`
	PaymentStatus string          `gorm:"type:varchar(16);not null;default:'Not Paid'" json:"payment_status"`
	AmountPaid    decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0" json:"amount_paid"`

	// RemainingBalance is a snapshot taken at creation (total - paid). It
	// is only recomputed when the payment status is updated.
	RemainingBalance decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"remaining_balance"`

	ClientName  string `gorm:"type:varchar(128);not null" json:"client_name"`
	ClientPhone string `gorm:"type:varchar(32)" json:"client_phone"`
	Notes       string `gorm:"type:text" json:"notes"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type Invoice struct {
	ID      uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	OrderID uint   `gorm:"index;not null" json:"order_id"`
	Order   *Order `gorm:"foreignKey:OrderID" json:"order,omitempty"`

	InvoiceNumber string          `gorm:"type:varchar(32);uniqueIndex;not null" json:"invoice_number"`
	TotalAmount   decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"total_amount"`

	// AmountPaid goes NULL when the order is moved back to "Not Paid";
	// the status-update flow clears it rather than recomputing a balance.
	AmountPaid decimal.NullDecimal `gorm:"type:decimal(12,2)" json:"amount_paid"`

	RemainingBalance decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"remaining_balance"`
	Subtotal         decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"subtotal"`
	Tax              decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"tax"`

	IssueDate time.Time `gorm:"type:date;not null" json:"issue_date"`
	Status    string    `gorm:"type:varchar(16);not null;default:'pending'" json:"status"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewInvoiceForOrder derives the invoice row that accompanies a freshly
// created order. The invoice number is a timestamp-based token, so callers
// creating several invoices must pass distinct issue times.
func NewInvoiceForOrder(order Order, issuedAt time.Time) Invoice {
	tax := order.TotalAmount.Mul(TaxRate)

	status := InvoicePending
	if order.PaymentStatus == OrderPaid {
		status = InvoicePaid
	}

	return Invoice{
		OrderID:          order.ID,
		InvoiceNumber:    fmt.Sprintf("INV-%d", issuedAt.UnixMilli()),
		TotalAmount:      order.TotalAmount,
		AmountPaid:       decimal.NullDecimal{Decimal: order.AmountPaid, Valid: true},
		RemainingBalance: order.RemainingBalance,
		Subtotal:         order.TotalAmount.Sub(tax),
		Tax:              tax,
		IssueDate:        issuedAt,
		Status:           status,
	}
}
