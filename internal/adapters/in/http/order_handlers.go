package http

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"entregas/internal/core/application/usecases/commands"
	"entregas/internal/core/application/usecases/queries"
	"entregas/internal/core/domain/model/kernel"
	"entregas/internal/core/domain/model/order"
	"entregas/internal/core/ports"
	"entregas/internal/pkg/errs"
)

const signatureField = "firma"

// GetOrders handles GET /api/v1/orders with an optional ?status= filter.
func (s *Server) GetOrders(ctx echo.Context) error {
	query := queries.NewGetOrdersQuery()
	if raw := ctx.QueryParam("status"); raw != "" {
		status, err := order.ParseStatus(raw)
		if err != nil {
			return s.fail(ctx, err)
		}
		if query, err = queries.NewGetOrdersByStatusQuery(status); err != nil {
			return s.fail(ctx, err)
		}
	}

	orders, err := s.useCases.GetOrders.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, ordersFromViews(orders))
}

// GetPendingOrders handles GET /api/v1/orders/pending. It pulls from the invoicing
// system first; a failed pull is logged and the stored pending orders are returned.
func (s *Server) GetPendingOrders(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()

	cmd, _ := commands.NewSyncPendingInvoicesCommand()
	if _, err := s.useCases.SyncPendingInvoices.Handle(reqCtx, cmd); err != nil {
		s.logger.WarnContext(reqCtx, "Pull before listing pending orders failed", "error", err)
	}

	query, err := queries.NewGetOrdersByStatusQuery(order.Pending)
	if err != nil {
		return s.fail(ctx, err)
	}
	orders, err := s.useCases.GetOrders.Handle(reqCtx, query)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, ordersFromViews(orders))
}

// GetOrder handles GET /api/v1/orders/:id.
func (s *Server) GetOrder(ctx echo.Context) error {
	id, err := orderIDParam(ctx)
	if err != nil {
		return s.fail(ctx, err)
	}

	query, err := queries.NewGetOrderQuery(id)
	if err != nil {
		return s.fail(ctx, err)
	}

	view, err := s.useCases.GetOrder.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}
	if err = authorizeBranch(claimsFrom(ctx), view.BranchID); err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, orderFromView(view))
}

// AssignOrder handles POST /api/v1/orders/:id/assign.
func (s *Server) AssignOrder(ctx echo.Context) error {
	id, err := orderIDParam(ctx)
	if err != nil {
		return s.fail(ctx, err)
	}

	var req AssignOrderRequest
	if err = ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}
	if err = ctx.Validate(&req); err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewAssignOrderCommand(id, req.BranchID, claimsFrom(ctx).UserID)
	if err != nil {
		return s.fail(ctx, err)
	}

	o, err := s.useCases.AssignOrder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, orderFromDomain(o))
}

// MarkOrderInTransit handles POST /api/v1/orders/:id/in-transit.
func (s *Server) MarkOrderInTransit(ctx echo.Context) error {
	id, err := orderIDParam(ctx)
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewMarkOrderInTransitCommand(id)
	if err != nil {
		return s.fail(ctx, err)
	}

	o, err := s.useCases.MarkOrderInTransit.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, orderFromDomain(o))
}

// ConfirmDelivery handles POST /api/v1/orders/:id/confirm. The body is multipart with
// the receiverDocument and notes fields and an optional "firma" image part.
func (s *Server) ConfirmDelivery(ctx echo.Context) error {
	id, err := orderIDParam(ctx)
	if err != nil {
		return s.fail(ctx, err)
	}

	deliverer := claimsFrom(ctx).UserID
	receiverDocument := ctx.FormValue("receiverDocument")
	notes := ctx.FormValue("notes")

	// Reject a missing document before anything is stored.
	if _, err = commands.NewConfirmDeliveryCommand(id, receiverDocument, deliverer, "", notes); err != nil {
		return s.fail(ctx, err)
	}
	if err = s.checkDeliverable(ctx, id); err != nil {
		return s.fail(ctx, err)
	}

	signatureRef, err := s.saveSignature(ctx)
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewConfirmDeliveryCommand(id, receiverDocument, deliverer, signatureRef, notes)
	if err != nil {
		return s.fail(ctx, err)
	}

	res, err := s.useCases.ConfirmDelivery.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, ConfirmDeliveryResponse{
		Order:  orderFromDomain(res.Order),
		Synced: res.Synced,
	})
}

// checkDeliverable runs the confirmation's cheap rejections against the stored order
// so that no signature is uploaded for a request that cannot succeed. The command
// handler repeats them under the row lock.
func (s *Server) checkDeliverable(ctx echo.Context, id kernel.UUID) error {
	query, err := queries.NewGetOrderQuery(id)
	if err != nil {
		return err
	}
	view, err := s.useCases.GetOrder.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}
	if view.BranchID != nil {
		if err = authorizeBranch(claimsFrom(ctx), view.BranchID); err != nil {
			return err
		}
	}
	_, err = view.Status.Deliver()
	return err
}

// saveSignature stores the uploaded signature and returns its reference, or "" when
// the request carries none.
func (s *Server) saveSignature(ctx echo.Context) (string, error) {
	header, err := ctx.FormFile(signatureField)
	if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
		return "", nil
	}
	if err != nil {
		return "", errs.NewValueIsInvalidErrorWithCause(signatureField, err)
	}
	if header.Size > ports.MaxSignatureSize {
		return "", ports.ErrSignatureTooLarge
	}

	f, err := header.Open()
	if err != nil {
		return "", err
	}
	defer f.Close()

	content, err := io.ReadAll(io.LimitReader(f, ports.MaxSignatureSize+1))
	if err != nil {
		return "", err
	}

	return s.signatures.Save(ctx.Request().Context(), content, header.Filename)
}

// GetBranchOrders handles GET /api/v1/branches/:branchId/orders. Branch staff may
// only list their own branch.
func (s *Server) GetBranchOrders(ctx echo.Context) error {
	branchID, err := strconv.ParseInt(ctx.Param("branchId"), 10, 64)
	if err != nil {
		return s.fail(ctx, errs.NewValueIsInvalidErrorWithCause("branchId", err))
	}

	if err = authorizeBranch(claimsFrom(ctx), &branchID); err != nil {
		return s.fail(ctx, err)
	}

	query, err := queries.NewGetBranchOrdersQuery(branchID)
	if err != nil {
		return s.fail(ctx, err)
	}

	orders, err := s.useCases.GetBranchOrders.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, ordersFromViews(orders))
}

func orderIDParam(ctx echo.Context) (kernel.UUID, error) {
	id, err := kernel.ParseUUID(ctx.Param("id"))
	if err != nil {
		return kernel.UUID{}, errs.NewValueIsInvalidErrorWithCause("id", err)
	}
	return id, nil
}
