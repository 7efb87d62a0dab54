package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"entregas/internal/core/application/usecases/commands"
	"entregas/internal/core/application/usecases/queries"
	"entregas/internal/core/domain/model/branch"
	"entregas/internal/core/domain/model/user"
)

// GetBranches handles GET /api/v1/branches.
func (s *Server) GetBranches(ctx echo.Context) error {
	branches, err := s.useCases.GetBranches.Handle(ctx.Request().Context(), queries.NewGetBranchesQuery())
	if err != nil {
		return s.fail(ctx, err)
	}

	response := make([]Branch, len(branches))
	for i, b := range branches {
		response[i] = branchFromView(b)
	}
	return ctx.JSON(http.StatusOK, response)
}

// CreateBranch handles POST /api/v1/branches.
func (s *Server) CreateBranch(ctx echo.Context) error {
	var req NewBranch
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}
	if err := ctx.Validate(&req); err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewCreateBranchCommand(req.Name, branch.Contact{
		Address:    req.Address,
		Locality:   req.Locality,
		PostalCode: req.PostalCode,
		Phone:      req.Phone,
		Email:      req.Email,
	})
	if err != nil {
		return s.fail(ctx, err)
	}

	b, err := s.useCases.CreateBranch.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusCreated, branchFromDomain(b))
}

// GetUsers handles GET /api/v1/users.
func (s *Server) GetUsers(ctx echo.Context) error {
	users, err := s.useCases.GetUsers.Handle(ctx.Request().Context(), queries.NewGetUsersQuery())
	if err != nil {
		return s.fail(ctx, err)
	}

	response := make([]User, len(users))
	for i, u := range users {
		response[i] = userFromView(u)
	}
	return ctx.JSON(http.StatusOK, response)
}

// CreateUser handles POST /api/v1/users.
func (s *Server) CreateUser(ctx echo.Context) error {
	var req NewUser
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}
	if err := ctx.Validate(&req); err != nil {
		return s.fail(ctx, err)
	}

	role, err := user.ParseRole(req.Role)
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewCreateUserCommand(req.Name, req.Email, req.Password, role, req.BranchID)
	if err != nil {
		return s.fail(ctx, err)
	}

	u, err := s.useCases.CreateUser.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusCreated, userFromDomain(u))
}
