package http

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"entregas/internal/adapters/out/tangoconnect"
	"entregas/internal/core/application/usecases/queries"
	"entregas/internal/core/domain/services"
	"entregas/internal/core/ports"
	"entregas/internal/pkg/errs"
)

// Error is the body of every non-2xx response.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// statusFor maps use case errors to HTTP status codes. Unknown errors are 500.
func statusFor(err error) int {
	var validationErrs validator.ValidationErrors
	switch {
	case errors.As(err, &validationErrs),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, ports.ErrSignatureNotImage),
		errors.Is(err, ports.ErrSignatureTooLarge):
		return http.StatusBadRequest
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrStateIsInvalid):
		return http.StatusConflict
	case errors.Is(err, queries.ErrInvalidCredentials):
		return http.StatusUnauthorized
	case errors.Is(err, queries.ErrUserInactive),
		errors.Is(err, services.ErrBranchMismatch):
		return http.StatusForbidden
	case tangoconnect.IsAuthenticationError(err):
		return http.StatusBadGateway
	}

	var syncErr *tangoconnect.SyncError
	if errors.As(err, &syncErr) {
		return http.StatusBadGateway
	}
	return http.StatusInternalServerError
}

// fail writes err as JSON. Server errors are logged and their detail is not exposed.
func (s *Server) fail(ctx echo.Context, err error) error {
	status := statusFor(err)
	message := err.Error()
	if status == http.StatusInternalServerError {
		s.logger.ErrorContext(ctx.Request().Context(), "Request failed",
			"method", ctx.Request().Method,
			"path", ctx.Path(),
			"error", err,
		)
		message = "Internal server error"
	}
	return ctx.JSON(status, Error{Code: status, Message: message})
}
