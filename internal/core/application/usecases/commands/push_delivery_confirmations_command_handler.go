package commands

import (
	"context"

	"github.com/facebookgo/clock"

	"entregas/internal/core/ports"
)

// PushFailure is one order the invoicing system did not acknowledge.
type PushFailure struct {
	InvoiceNumber string
	Err           error
}

type PushDeliveryConfirmationsResult struct {
	Attempted int
	Pushed    int
	Failures  []PushFailure
}

type PushDeliveryConfirmationsCommandHandler struct {
	uowFactory OrderUoWFactory
	pusher     deliveryPusher
}

func NewPushDeliveryConfirmationsCommandHandler(
	uowFactory OrderUoWFactory,
	invoicing ports.InvoicingSystem,
	clk clock.Clock,
) PushDeliveryConfirmationsCommandHandler {
	return PushDeliveryConfirmationsCommandHandler{
		uowFactory: uowFactory,
		pusher: deliveryPusher{
			invoicing: invoicing,
			newUoW:    uowFactory.Create,
			clock:     clk,
		},
	}
}

// Handle pushes orders one at a time. A failure only affects its own order, which stays
// awaiting sync for the next cycle. An error is returned only when the orders cannot be
// listed or ctx is done.
func (h PushDeliveryConfirmationsCommandHandler) Handle(ctx context.Context, cmd PushDeliveryConfirmationsCommand) (PushDeliveryConfirmationsResult, error) {
	if err := cmd.Validate(); err != nil {
		return PushDeliveryConfirmationsResult{}, err
	}

	awaiting, err := h.uowFactory.Create().OrderRepository().ListAwaitingSync(ctx)
	if err != nil {
		return PushDeliveryConfirmationsResult{}, err
	}

	var result PushDeliveryConfirmationsResult
	for _, o := range awaiting {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		result.Attempted++
		if _, err := h.pusher.push(ctx, o); err != nil {
			result.Failures = append(result.Failures, PushFailure{
				InvoiceNumber: o.InvoiceNumber().String(),
				Err:           err,
			})
			continue
		}
		result.Pushed++
	}

	return result, nil
}
