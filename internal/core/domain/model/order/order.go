package order

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"entregas/internal/core/domain/model/kernel"
	"entregas/internal/pkg/errs"
	"entregas/internal/pkg/guard"
)

// ErrOrderIsNotConstructed is returned when an Order was not built by NewOrder or RestoreOrder.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")

// Invoice is the part of an order that comes from the external invoicing system.
// It doubles as the upsert candidate produced by a pull.
type Invoice struct {
	Number   kernel.InvoiceNumber
	Date     time.Time
	Customer string
	Address  string
	Locality string
}

// Validate checks the fields every pulled invoice must carry.
func (i Invoice) Validate() error {
	var dateErr, customerErr error
	if i.Date.IsZero() {
		dateErr = errs.NewValueIsRequiredError("invoiceDate")
	}
	if strings.TrimSpace(i.Customer) == "" {
		customerErr = errs.NewValueIsRequiredError("customer")
	}
	return errors.Join(i.Number.Validate(), dateErr, customerErr)
}

// Assignment records which branch an order was dispatched to, and by whom.
type Assignment struct {
	BranchID   int64
	AssignerID int64
	AssignedAt time.Time
}

// Delivery records the confirmation captured at the door.
type Delivery struct {
	ReceiverDocument string
	DelivererID      int64
	SignatureRef     string
	Notes            string
	DeliveredAt      time.Time
}

// Snapshot is the full persisted state of an order, used to restore it from storage
// and to render it in read models.
type Snapshot struct {
	ID         kernel.UUID
	Invoice    Invoice
	Status     Status
	Assignment *Assignment
	Delivery   *Delivery
	SyncedAt   *time.Time
}

// Order is the aggregate root of the delivery lifecycle. It is created Pending from a
// pulled invoice and moves forward through Assigned, InTransit and Delivered.
//
// Invariants:
//   - the invoice number is the natural key shared with the invoicing system
//   - a branch is bound if and only if the order left Pending
//   - delivery data exists if and only if the order is Delivered
//   - a Delivered order only accepts MarkSynced
type Order struct {
	id         kernel.UUID
	invoice    Invoice
	status     Status
	assignment *Assignment
	delivery   *Delivery

	// syncedAt is set once the invoicing system acknowledged the delivery.
	syncedAt *time.Time

	guard guard.ConstructorGuard
}

// NewOrder creates a Pending order for a pulled invoice.
//
// Example:
//
//	number, _ := kernel.NewInvoiceNumber("A-0001")
//	o, err := order.NewOrder(kernel.NewUUID(), order.Invoice{
//	    Number:   number,
//	    Date:     time.Now(),
//	    Customer: "ACME SA",
//	})
func NewOrder(id kernel.UUID, invoice Invoice) (*Order, error) {
	if err := errors.Join(id.Validate(), invoice.Validate()); err != nil {
		return nil, err
	}

	return &Order{
		id:      id,
		invoice: invoice,
		status:  Pending,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// RestoreOrder rebuilds an order from persisted state and re-checks every invariant.
func RestoreOrder(s Snapshot) (*Order, error) {
	if err := errors.Join(s.ID.Validate(), s.Invoice.Validate(), s.Status.Validate()); err != nil {
		return nil, err
	}
	if err := s.Status.ValidateCanHaveBranch(s.Assignment != nil); err != nil {
		return nil, err
	}
	if (s.Delivery != nil) != (s.Status == Delivered) {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"delivery",
			fmt.Errorf("%s orders cannot have delivery=%t", s.Status, s.Delivery != nil),
		)
	}
	if s.SyncedAt != nil && s.Status != Delivered {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"syncedAt",
			fmt.Errorf("%s orders cannot be synced", s.Status),
		)
	}

	return &Order{
		id:         s.ID,
		invoice:    s.Invoice,
		status:     s.Status,
		assignment: s.Assignment,
		delivery:   s.Delivery,
		syncedAt:   s.SyncedAt,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the order was built by one of the constructors.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

func (o *Order) ID() kernel.UUID {
	return o.id
}

func (o *Order) InvoiceNumber() kernel.InvoiceNumber {
	return o.invoice.Number
}

func (o *Order) Invoice() Invoice {
	return o.invoice
}

func (o *Order) Status() Status {
	return o.status
}

// Assignment returns nil while the order is Pending.
func (o *Order) Assignment() *Assignment {
	if o.assignment == nil {
		return nil
	}
	a := *o.assignment
	return &a
}

// Delivery returns nil until the order is Delivered.
func (o *Order) Delivery() *Delivery {
	if o.delivery == nil {
		return nil
	}
	d := *o.delivery
	return &d
}

func (o *Order) SyncedAt() *time.Time {
	return o.syncedAt
}

// AwaitingSync reports whether the delivery still has to be pushed upstream.
func (o *Order) AwaitingSync() bool {
	return o.status == Delivered && o.syncedAt == nil
}

// Snapshot exports the full state for persistence and read models.
func (o *Order) Snapshot() Snapshot {
	return Snapshot{
		ID:         o.id,
		Invoice:    o.invoice,
		Status:     o.status,
		Assignment: o.Assignment(),
		Delivery:   o.Delivery(),
		SyncedAt:   o.syncedAt,
	}
}

// Assign binds a Pending order to a branch.
//
// Returns errs.StateIsInvalidError unless the order is Pending, and
// errs.ValueIsRequiredError when either id is missing.
func (o *Order) Assign(branchID, assignerID int64, at time.Time) error {
	var branchErr, assignerErr error
	if branchID <= 0 {
		branchErr = errs.NewValueIsRequiredError("branchId")
	}
	if assignerID <= 0 {
		assignerErr = errs.NewValueIsRequiredError("assignerId")
	}
	if err := errors.Join(branchErr, assignerErr); err != nil {
		return err
	}

	next, err := o.status.Assign()
	if err != nil {
		return err
	}

	o.status = next
	o.assignment = &Assignment{
		BranchID:   branchID,
		AssignerID: assignerID,
		AssignedAt: at,
	}
	return nil
}

// MarkInTransit records that an Assigned order left the branch.
func (o *Order) MarkInTransit() error {
	next, err := o.status.MarkInTransit()
	if err != nil {
		return err
	}

	o.status = next
	return nil
}

// ConfirmDelivery moves an Assigned or InTransit order to Delivered.
//
// The receiver document is mandatory; signature and notes are optional. The order is
// left awaiting sync: pushing the confirmation upstream is the caller's concern and
// its failure never undoes this transition.
func (o *Order) ConfirmDelivery(d Delivery) error {
	d.ReceiverDocument = strings.TrimSpace(d.ReceiverDocument)

	var docErr, delivererErr error
	if d.ReceiverDocument == "" {
		docErr = errs.NewValueIsRequiredError("receiverDocument")
	}
	if d.DelivererID <= 0 {
		delivererErr = errs.NewValueIsRequiredError("delivererId")
	}
	if err := errors.Join(docErr, delivererErr); err != nil {
		return err
	}

	next, err := o.status.Deliver()
	if err != nil {
		return err
	}

	o.status = next
	o.delivery = &d
	o.syncedAt = nil
	return nil
}

// MarkSynced records that the invoicing system acknowledged the delivery.
// It is the only mutation a Delivered order accepts; repeated calls keep the first timestamp.
func (o *Order) MarkSynced(at time.Time) error {
	if o.status != Delivered {
		return errs.NewStateIsInvalidError(o.status.String(), "mark synced")
	}
	if o.syncedAt == nil {
		o.syncedAt = &at
	}
	return nil
}
