// Package orderrepo persists the Order aggregate in the "orders" table.
package orderrepo

import (
	"time"

	"entregas/internal/core/domain/model/kernel"
	"entregas/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO is one row of "orders". The invoice number is unique; the status column
// holds the wire name of order.Status.
type OrderDTO struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	InvoiceNumber string    `gorm:"size:64;not null;uniqueIndex"`
	InvoiceDate   time.Time `gorm:"not null;index"`
	Customer      string    `gorm:"not null"`
	Address       string
	Locality      string
	Status        string `gorm:"size:16;not null;index"`

	BranchID   *int64 `gorm:"index"`
	AssignedBy *int64
	AssignedAt *time.Time

	DeliveredBy      *int64
	DeliveredAt      *time.Time
	ReceiverDocument string `gorm:"size:32"`
	SignatureRef     string
	Notes            string

	SyncedAt *time.Time `gorm:"index"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (OrderDTO) TableName() string {
	return "orders"
}

func fromDomain(o *order.Order) OrderDTO {
	s := o.Snapshot()
	dto := OrderDTO{
		ID:            s.ID.Value(),
		InvoiceNumber: s.Invoice.Number.String(),
		InvoiceDate:   s.Invoice.Date,
		Customer:      s.Invoice.Customer,
		Address:       s.Invoice.Address,
		Locality:      s.Invoice.Locality,
		Status:        s.Status.String(),
		SyncedAt:      s.SyncedAt,
	}

	if a := s.Assignment; a != nil {
		dto.BranchID = &a.BranchID
		dto.AssignedBy = &a.AssignerID
		dto.AssignedAt = &a.AssignedAt
	}

	if d := s.Delivery; d != nil {
		dto.DeliveredBy = &d.DelivererID
		dto.DeliveredAt = &d.DeliveredAt
		dto.ReceiverDocument = d.ReceiverDocument
		dto.SignatureRef = d.SignatureRef
		dto.Notes = d.Notes
	}

	return dto
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFrom(dto.ID)
	if err != nil {
		return nil, err
	}

	number, err := kernel.NewInvoiceNumber(dto.InvoiceNumber)
	if err != nil {
		return nil, err
	}

	status, err := order.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	s := order.Snapshot{
		ID: id,
		Invoice: order.Invoice{
			Number:   number,
			Date:     dto.InvoiceDate,
			Customer: dto.Customer,
			Address:  dto.Address,
			Locality: dto.Locality,
		},
		Status:   status,
		SyncedAt: dto.SyncedAt,
	}

	if dto.BranchID != nil {
		s.Assignment = &order.Assignment{
			BranchID:   *dto.BranchID,
			AssignerID: deref(dto.AssignedBy),
			AssignedAt: derefTime(dto.AssignedAt),
		}
	}

	if status == order.Delivered {
		s.Delivery = &order.Delivery{
			ReceiverDocument: dto.ReceiverDocument,
			DelivererID:      deref(dto.DeliveredBy),
			SignatureRef:     dto.SignatureRef,
			Notes:            dto.Notes,
			DeliveredAt:      derefTime(dto.DeliveredAt),
		}
	}

	return order.RestoreOrder(s)
}

func toDomainList(dtos []OrderDTO) ([]*order.Order, error) {
	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		o, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	return orders, nil
}

func deref(v *int64) int64 {
	if v == nil {
		return 0
	}
	return *v
}

func derefTime(v *time.Time) time.Time {
	if v == nil {
		return time.Time{}
	}
	return *v
}
