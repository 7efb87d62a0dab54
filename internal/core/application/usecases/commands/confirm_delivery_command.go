package commands

import (
	"errors"
	"strings"

	"entregas/internal/core/domain/model/kernel"
	"entregas/internal/pkg/errs"
	"entregas/internal/pkg/guard"
)

var ErrConfirmDeliveryCommandIsNotConstructed = errors.New(
	"ConfirmDeliveryCommand must be created via NewConfirmDeliveryCommand constructor",
)

// ConfirmDeliveryCommand closes an order at the door.
// signatureRef and notes are optional and may be empty.
type ConfirmDeliveryCommand struct {
	orderID          kernel.UUID
	receiverDocument string
	delivererID      int64
	signatureRef     string
	notes            string

	guard guard.ConstructorGuard
}

func NewConfirmDeliveryCommand(
	orderID kernel.UUID,
	receiverDocument string,
	delivererID int64,
	signatureRef string,
	notes string,
) (ConfirmDeliveryCommand, error) {
	receiverDocument = strings.TrimSpace(receiverDocument)

	var docErr, delivererErr error
	if receiverDocument == "" {
		docErr = errs.NewValueIsRequiredError("receiverDocument")
	}
	if delivererID <= 0 {
		delivererErr = errs.NewValueIsRequiredError("delivererId")
	}
	if err := errors.Join(docErr, delivererErr, orderID.Validate()); err != nil {
		return ConfirmDeliveryCommand{}, err
	}

	return ConfirmDeliveryCommand{
		orderID:          orderID,
		receiverDocument: receiverDocument,
		delivererID:      delivererID,
		signatureRef:     signatureRef,
		notes:            strings.TrimSpace(notes),
		guard:            guard.NewConstructorGuard(),
	}, nil
}

func (c ConfirmDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrConfirmDeliveryCommandIsNotConstructed)
}

func (c ConfirmDeliveryCommand) OrderID() kernel.UUID     { return c.orderID }
func (c ConfirmDeliveryCommand) ReceiverDocument() string { return c.receiverDocument }
func (c ConfirmDeliveryCommand) DelivererID() int64       { return c.delivererID }
func (c ConfirmDeliveryCommand) SignatureRef() string     { return c.signatureRef }
func (c ConfirmDeliveryCommand) Notes() string            { return c.notes }
