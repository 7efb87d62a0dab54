package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"entregas/internal/core/application/usecases/queries"
)

// Login handles POST /api/v1/auth/login.
func (s *Server) Login(ctx echo.Context) error {
	var req LoginRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}
	if err := ctx.Validate(&req); err != nil {
		return s.fail(ctx, err)
	}

	query, err := queries.NewAuthenticateUserQuery(req.Email, req.Password)
	if err != nil {
		return s.fail(ctx, err)
	}

	u, err := s.useCases.Authenticate.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	token, expiresAt, err := s.tokens.Issue(u)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, LoginResponse{
		Token:     token,
		ExpiresAt: expiresAt,
		User:      userFromView(u),
	})
}

// Verify handles GET /api/v1/auth/verify and echoes the caller's identity.
func (s *Server) Verify(ctx echo.Context) error {
	claims := claimsFrom(ctx)
	return ctx.JSON(http.StatusOK, User{
		ID:       claims.UserID,
		Email:    claims.Email,
		Role:     claims.Role.String(),
		BranchID: claims.BranchID,
		Active:   true,
	})
}
