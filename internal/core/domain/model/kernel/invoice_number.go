package kernel

import (
	"fmt"
	"strings"
	"unicode"

	"entregas/internal/pkg/errs"
	"entregas/internal/pkg/guard"
)

// MaxInvoiceNumberLength bounds the external invoice key stored in orders.invoice_number.
const MaxInvoiceNumberLength = 64

var ErrInvoiceNumberIsNotConstructed = errs.NewValueIsRequiredError(
	"InvoiceNumber must be created via NewInvoiceNumber",
)

// InvoiceNumber is the natural key shared with the external invoicing system.
// Every order carries exactly one and no two orders share it.
type InvoiceNumber struct {
	value string
	guard guard.ConstructorGuard
}

// NewInvoiceNumber trims surrounding whitespace and rejects empty, oversized or
// control-character values.
func NewInvoiceNumber(raw string) (InvoiceNumber, error) {
	value := strings.TrimSpace(raw)
	if value == "" {
		return InvoiceNumber{}, errs.NewValueIsRequiredError("invoiceNumber")
	}
	if len(value) > MaxInvoiceNumberLength {
		return InvoiceNumber{}, errs.NewValueIsInvalidErrorWithCause(
			"invoiceNumber",
			fmt.Errorf("%d characters exceeds the limit of %d", len(value), MaxInvoiceNumberLength),
		)
	}
	if strings.IndexFunc(value, unicode.IsControl) >= 0 {
		return InvoiceNumber{}, errs.NewValueIsInvalidErrorWithCause(
			"invoiceNumber",
			fmt.Errorf("%q contains control characters", value),
		)
	}

	return InvoiceNumber{value: value, guard: guard.NewConstructorGuard()}, nil
}

func (n InvoiceNumber) String() string {
	return n.value
}

func (n InvoiceNumber) IsEqual(other InvoiceNumber) bool {
	return n.value == other.value
}

func (n InvoiceNumber) Validate() error {
	return n.guard.Validate(ErrInvoiceNumberIsNotConstructed)
}
