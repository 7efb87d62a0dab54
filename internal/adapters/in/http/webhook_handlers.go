package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"entregas/internal/core/application/usecases/commands"
)

// InvoicesWebhook handles POST /api/v1/webhooks/invoices, called by the invoicing
// system when new invoices appear. The payload is ignored: a pull fetches the full
// pending page, which is idempotent.
func (s *Server) InvoicesWebhook(ctx echo.Context) error {
	cmd, _ := commands.NewSyncPendingInvoicesCommand()

	res, err := s.useCases.SyncPendingInvoices.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, SyncResponse{
		Received: len(res.Orders),
		Created:  res.Created,
	})
}
