package ports

import (
	"context"
	"time"

	"entregas/internal/core/domain/model/kernel"
)

// DeliveryConfirmation is what the invoicing system is told once an order is delivered.
type DeliveryConfirmation struct {
	InvoiceNumber    kernel.InvoiceNumber
	ReceiverDocument string
	DeliveredAt      time.Time
}

// InvoicingSystem is the external ERP that owns invoices.
type InvoicingSystem interface {
	// PullPendingInvoices returns every invoice waiting for delivery, or an error and
	// nothing at all.
	PullPendingInvoices(ctx context.Context) ([]OrderCandidate, error)

	// PushDeliveryConfirmation is idempotent upstream for the same invoice and state.
	PushDeliveryConfirmation(ctx context.Context, confirmation DeliveryConfirmation) error

	// RegisterWebhook asks the system to call callbackURL when new invoices appear.
	RegisterWebhook(ctx context.Context, callbackURL string) error
}
