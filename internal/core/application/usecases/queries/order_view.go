// Package queries holds the read use cases. Handlers read straight from the database
// with raw SQL and return flat views; they never load aggregates.
package queries

import (
	"time"

	"github.com/google/uuid"

	"entregas/internal/core/domain/model/kernel"
	"entregas/internal/core/domain/model/order"
)

// OrderView is the read model of an order. Assignment and delivery fields are nil or
// empty until the order reaches the matching state.
type OrderView struct {
	ID            kernel.UUID
	InvoiceNumber string
	InvoiceDate   time.Time
	Customer      string
	Address       string
	Locality      string
	Status        order.Status

	BranchID   *int64
	AssignedBy *int64
	AssignedAt *time.Time

	DeliveredBy      *int64
	DeliveredAt      *time.Time
	ReceiverDocument string
	SignatureRef     string
	Notes            string

	SyncedAt *time.Time
}

const orderColumns = `
	id,
	invoice_number,
	invoice_date,
	customer,
	COALESCE(address, '') AS address,
	COALESCE(locality, '') AS locality,
	status,
	branch_id,
	assigned_by,
	assigned_at,
	delivered_by,
	delivered_at,
	COALESCE(receiver_document, '') AS receiver_document,
	COALESCE(signature_ref, '') AS signature_ref,
	COALESCE(notes, '') AS notes,
	synced_at`

type orderRow struct {
	ID               uuid.UUID
	InvoiceNumber    string
	InvoiceDate      time.Time
	Customer         string
	Address          string
	Locality         string
	Status           string
	BranchID         *int64
	AssignedBy       *int64
	AssignedAt       *time.Time
	DeliveredBy      *int64
	DeliveredAt      *time.Time
	ReceiverDocument string
	SignatureRef     string
	Notes            string
	SyncedAt         *time.Time
}

func (r orderRow) toView() (OrderView, error) {
	id, err := kernel.UUIDFrom(r.ID)
	if err != nil {
		return OrderView{}, err
	}
	status, err := order.ParseStatus(r.Status)
	if err != nil {
		return OrderView{}, err
	}

	return OrderView{
		ID:               id,
		InvoiceNumber:    r.InvoiceNumber,
		InvoiceDate:      r.InvoiceDate,
		Customer:         r.Customer,
		Address:          r.Address,
		Locality:         r.Locality,
		Status:           status,
		BranchID:         r.BranchID,
		AssignedBy:       r.AssignedBy,
		AssignedAt:       r.AssignedAt,
		DeliveredBy:      r.DeliveredBy,
		DeliveredAt:      r.DeliveredAt,
		ReceiverDocument: r.ReceiverDocument,
		SignatureRef:     r.SignatureRef,
		Notes:            r.Notes,
		SyncedAt:         r.SyncedAt,
	}, nil
}

func toOrderViews(rows []orderRow) ([]OrderView, error) {
	views := make([]OrderView, 0, len(rows))
	for _, r := range rows {
		v, err := r.toView()
		if err != nil {
			return nil, err
		}
		views = append(views, v)
	}
	return views, nil
}
