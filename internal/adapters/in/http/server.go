// Package http exposes the REST API under /api/v1 with echo.
package http

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"entregas/internal/core/application/usecases/commands"
	"entregas/internal/core/application/usecases/queries"
	"entregas/internal/core/domain/model/branch"
	"entregas/internal/core/domain/model/order"
	"entregas/internal/core/domain/model/user"
	"entregas/internal/core/ports"
)

// UseCase is the shape shared by every command and query handler.
type UseCase[In, Out any] interface {
	Handle(ctx context.Context, in In) (Out, error)
}

// UseCases groups the application handlers the API dispatches to.
type UseCases struct {
	Authenticate UseCase[queries.AuthenticateUserQuery, queries.UserView]

	GetOrders       UseCase[queries.GetOrdersQuery, []queries.OrderView]
	GetOrder        UseCase[queries.GetOrderQuery, queries.OrderView]
	GetBranchOrders UseCase[queries.GetBranchOrdersQuery, []queries.OrderView]
	GetBranches     UseCase[queries.GetBranchesQuery, []queries.BranchView]
	GetUsers        UseCase[queries.GetUsersQuery, []queries.UserView]

	AssignOrder         UseCase[commands.AssignOrderCommand, *order.Order]
	MarkOrderInTransit  UseCase[commands.MarkOrderInTransitCommand, *order.Order]
	ConfirmDelivery     UseCase[commands.ConfirmDeliveryCommand, commands.ConfirmDeliveryResult]
	SyncPendingInvoices UseCase[commands.SyncPendingInvoicesCommand, commands.SyncPendingInvoicesResult]
	CreateBranch        UseCase[commands.CreateBranchCommand, *branch.Branch]
	CreateUser          UseCase[commands.CreateUserCommand, *user.User]
}

const (
	// confirmBodyLimit leaves room for the form fields around a signature of
	// ports.MaxSignatureSize.
	confirmBodyLimit = "6M"

	webhookRate  = 1
	webhookBurst = 5
)

// Server handles HTTP requests by translating them into use case calls.
type Server struct {
	useCases      UseCases
	signatures    ports.SignatureStore
	tokens        *TokenIssuer
	webhookSecret string
	logger        *slog.Logger
}

// NewServer builds the API. webhookSecret authenticates the invoicing system's
// callbacks; when empty the webhook endpoint rejects every call.
func NewServer(
	useCases UseCases,
	signatures ports.SignatureStore,
	tokens *TokenIssuer,
	webhookSecret string,
	logger *slog.Logger,
) *Server {
	return &Server{
		useCases:      useCases,
		signatures:    signatures,
		tokens:        tokens,
		webhookSecret: webhookSecret,
		logger:        logger.With("component", "http"),
	}
}

// NewEcho builds the echo instance with every route registered. metricsHandler is
// served on /metrics.
func NewEcho(s *Server, recorder RequestRecorder, metricsHandler http.Handler) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = newRequestValidator()
	e.Use(recordRequests(recorder))

	e.GET("/health", func(ctx echo.Context) error {
		return ctx.String(http.StatusOK, "Healthy")
	})
	e.GET("/metrics", echo.WrapHandler(metricsHandler))

	s.Register(e.Group("/api/v1"))
	return e
}

// Register mounts the API routes on g.
func (s *Server) Register(g *echo.Group) {
	auth := requireAuth(s.tokens)
	office := requireRole(user.Admin, user.Operator)
	anyone := requireRole(user.Admin, user.Operator, user.BranchStaff)
	admin := requireRole(user.Admin)

	g.POST("/auth/login", s.Login)
	g.GET("/auth/verify", s.Verify, auth)

	g.GET("/orders", s.GetOrders, auth, office)
	g.GET("/orders/pending", s.GetPendingOrders, auth, office)
	g.GET("/orders/:id", s.GetOrder, auth, anyone)
	g.POST("/orders/:id/assign", s.AssignOrder, auth, office)
	g.POST("/orders/:id/in-transit", s.MarkOrderInTransit, auth, anyone)
	g.POST("/orders/:id/confirm", s.ConfirmDelivery, middleware.BodyLimit(confirmBodyLimit), auth, anyone)

	g.GET("/branches", s.GetBranches, auth, office)
	g.POST("/branches", s.CreateBranch, auth, admin)
	g.GET("/branches/:branchId/orders", s.GetBranchOrders, auth, anyone)

	g.GET("/users", s.GetUsers, auth, admin)
	g.POST("/users", s.CreateUser, auth, admin)

	g.POST("/webhooks/invoices", s.InvoicesWebhook,
		middleware.RateLimiter(middleware.NewRateLimiterMemoryStoreWithConfig(middleware.RateLimiterMemoryStoreConfig{
			Rate:      webhookRate,
			Burst:     webhookBurst,
			ExpiresIn: 3 * time.Minute,
		})),
		requireWebhookSecret(s.webhookSecret),
	)
}
