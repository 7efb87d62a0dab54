package http

import (
	"time"

	"entregas/internal/core/application/usecases/queries"
	"entregas/internal/core/domain/model/branch"
	"entregas/internal/core/domain/model/order"
	"entregas/internal/core/domain/model/user"
)

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
	User      User      `json:"user"`
}

type AssignOrderRequest struct {
	BranchID int64 `json:"branchId" validate:"required,gt=0"`
}

type NewBranch struct {
	Name       string `json:"name" validate:"required,max=120"`
	Address    string `json:"address"`
	Locality   string `json:"locality"`
	PostalCode string `json:"postalCode" validate:"max=16"`
	Phone      string `json:"phone" validate:"max=32"`
	Email      string `json:"email" validate:"omitempty,email"`
}

type NewUser struct {
	Name     string `json:"name" validate:"required,max=120"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Role     string `json:"role" validate:"required,oneof=ADMIN OPERATOR BRANCH"`
	BranchID *int64 `json:"branchId" validate:"omitempty,gt=0"`
}

type Order struct {
	ID               string     `json:"id"`
	InvoiceNumber    string     `json:"invoiceNumber"`
	InvoiceDate      time.Time  `json:"invoiceDate"`
	Customer         string     `json:"customer"`
	Address          string     `json:"address"`
	Locality         string     `json:"locality"`
	Status           string     `json:"status"`
	BranchID         *int64     `json:"branchId,omitempty"`
	AssignedBy       *int64     `json:"assignedBy,omitempty"`
	AssignedAt       *time.Time `json:"assignedAt,omitempty"`
	DeliveredBy      *int64     `json:"deliveredBy,omitempty"`
	DeliveredAt      *time.Time `json:"deliveredAt,omitempty"`
	ReceiverDocument string     `json:"receiverDocument,omitempty"`
	SignatureRef     string     `json:"signatureRef,omitempty"`
	Notes            string     `json:"notes,omitempty"`
	SyncedAt         *time.Time `json:"syncedAt,omitempty"`
}

type ConfirmDeliveryResponse struct {
	Order  Order `json:"order"`
	Synced bool  `json:"synced"`
}

type SyncResponse struct {
	Received int `json:"received"`
	Created  int `json:"created"`
}

type Branch struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	Address    string `json:"address"`
	Locality   string `json:"locality"`
	PostalCode string `json:"postalCode"`
	Phone      string `json:"phone"`
	Email      string `json:"email"`
	Active     bool   `json:"active"`
}

type User struct {
	ID       int64  `json:"id"`
	Name     string `json:"name,omitempty"`
	Email    string `json:"email"`
	Role     string `json:"role"`
	BranchID *int64 `json:"branchId,omitempty"`
	Active   bool   `json:"active"`
}

func orderFromView(v queries.OrderView) Order {
	return Order{
		ID:               v.ID.String(),
		InvoiceNumber:    v.InvoiceNumber,
		InvoiceDate:      v.InvoiceDate,
		Customer:         v.Customer,
		Address:          v.Address,
		Locality:         v.Locality,
		Status:           v.Status.String(),
		BranchID:         v.BranchID,
		AssignedBy:       v.AssignedBy,
		AssignedAt:       v.AssignedAt,
		DeliveredBy:      v.DeliveredBy,
		DeliveredAt:      v.DeliveredAt,
		ReceiverDocument: v.ReceiverDocument,
		SignatureRef:     v.SignatureRef,
		Notes:            v.Notes,
		SyncedAt:         v.SyncedAt,
	}
}

func ordersFromViews(views []queries.OrderView) []Order {
	response := make([]Order, len(views))
	for i, v := range views {
		response[i] = orderFromView(v)
	}
	return response
}

func orderFromDomain(o *order.Order) Order {
	s := o.Snapshot()
	response := Order{
		ID:            s.ID.String(),
		InvoiceNumber: s.Invoice.Number.String(),
		InvoiceDate:   s.Invoice.Date,
		Customer:      s.Invoice.Customer,
		Address:       s.Invoice.Address,
		Locality:      s.Invoice.Locality,
		Status:        s.Status.String(),
		SyncedAt:      s.SyncedAt,
	}
	if a := s.Assignment; a != nil {
		response.BranchID = &a.BranchID
		response.AssignedBy = &a.AssignerID
		response.AssignedAt = &a.AssignedAt
	}
	if d := s.Delivery; d != nil {
		response.DeliveredBy = &d.DelivererID
		response.DeliveredAt = &d.DeliveredAt
		response.ReceiverDocument = d.ReceiverDocument
		response.SignatureRef = d.SignatureRef
		response.Notes = d.Notes
	}
	return response
}

func branchFromView(v queries.BranchView) Branch {
	return Branch(v)
}

func branchFromDomain(b *branch.Branch) Branch {
	s := b.Snapshot()
	return Branch{
		ID:         s.ID,
		Name:       s.Name,
		Address:    s.Contact.Address,
		Locality:   s.Contact.Locality,
		PostalCode: s.Contact.PostalCode,
		Phone:      s.Contact.Phone,
		Email:      s.Contact.Email,
		Active:     s.Active,
	}
}

func userFromView(v queries.UserView) User {
	return User{
		ID:       v.ID,
		Name:     v.Name,
		Email:    v.Email,
		Role:     v.Role.String(),
		BranchID: v.BranchID,
		Active:   v.Active,
	}
}

func userFromDomain(u *user.User) User {
	return User{
		ID:       u.ID(),
		Name:     u.Name(),
		Email:    u.Email(),
		Role:     u.Role().String(),
		BranchID: u.BranchID(),
		Active:   u.IsActive(),
	}
}
