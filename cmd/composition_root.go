package cmd

import (
	"context"
	"log/slog"

	"github.com/facebookgo/clock"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	httpin "entregas/internal/adapters/in/http"
	"entregas/internal/adapters/out/metrics"
	"entregas/internal/adapters/out/postgres"
	"entregas/internal/adapters/out/signatures"
	"entregas/internal/adapters/out/tangoconnect"
	"entregas/internal/core/application/usecases/commands"
	"entregas/internal/core/application/usecases/queries"
	"entregas/internal/core/ports"
	"entregas/internal/jobs"
)

type CompositionRoot struct {
	cfg        Config
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	clock      clock.Clock
	logger     *slog.Logger
	metrics    *metrics.Metrics
	invoicing  *tangoconnect.Client
	signatures ports.SignatureStore
}

func NewCompositionRoot(ctx context.Context, cfg Config, gormDB *gorm.DB, logger *slog.Logger) (CompositionRoot, error) {
	clk := clock.New()
	m := metrics.New()

	store, err := newSignatureStore(ctx, cfg, clk)
	if err != nil {
		return CompositionRoot{}, err
	}

	return CompositionRoot{
		cfg:        cfg,
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB),
		clock:      clk,
		logger:     logger,
		metrics:    m,
		invoicing: tangoconnect.NewClient(tangoconnect.Config{
			BaseURL:      cfg.TangoConnectURL,
			ClientID:     cfg.TangoConnectClientID,
			ClientSecret: cfg.TangoConnectClientSecret,
			Clock:        clk,
			Logger:       logger,
			Metrics:      m,
		}),
		signatures: store,
	}, nil
}

func newSignatureStore(ctx context.Context, cfg Config, clk clock.Clock) (ports.SignatureStore, error) {
	if cfg.SignatureStorage == SignatureStorageS3 {
		return signatures.NewS3Store(ctx, signatures.S3Config{
			Endpoint:  cfg.S3Endpoint,
			Region:    cfg.S3Region,
			Bucket:    cfg.S3Bucket,
			AccessKey: cfg.S3AccessKey,
			SecretKey: cfg.S3SecretKey,
		})
	}
	return signatures.NewFileStore(cfg.UploadDir, clk), nil
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) branchUoWFactory() commands.BranchUoWFactory {
	return FuncBranchUoWFactory(func() commands.BranchUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) uoWFactory() commands.UoWFactory {
	return FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateAssignOrderCommandHandler() commands.AssignOrderCommandHandler {
	return commands.NewAssignOrderCommandHandler(c.uoWFactory(), c.clock)
}

func (c *CompositionRoot) CreateMarkOrderInTransitCommandHandler() commands.MarkOrderInTransitCommandHandler {
	return commands.NewMarkOrderInTransitCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateConfirmDeliveryCommandHandler() commands.ConfirmDeliveryCommandHandler {
	return commands.NewConfirmDeliveryCommandHandler(c.uoWFactory(), c.invoicing, c.clock, c.logger)
}

func (c *CompositionRoot) CreateSyncPendingInvoicesCommandHandler() commands.SyncPendingInvoicesCommandHandler {
	return commands.NewSyncPendingInvoicesCommandHandler(c.orderUoWFactory(), c.invoicing)
}

func (c *CompositionRoot) CreatePushDeliveryConfirmationsCommandHandler() commands.PushDeliveryConfirmationsCommandHandler {
	return commands.NewPushDeliveryConfirmationsCommandHandler(c.orderUoWFactory(), c.invoicing, c.clock)
}

func (c *CompositionRoot) CreateCreateBranchCommandHandler() commands.CreateBranchCommandHandler {
	return commands.NewCreateBranchCommandHandler(c.branchUoWFactory())
}

func (c *CompositionRoot) CreateCreateUserCommandHandler() commands.CreateUserCommandHandler {
	return commands.NewCreateUserCommandHandler(c.uoWFactory())
}

func (c *CompositionRoot) CreateAuthenticateUserQueryHandler() queries.AuthenticateUserQueryHandler {
	return queries.NewAuthenticateUserQueryHandler(c.uowFactory.Create().UserRepository())
}

func (c *CompositionRoot) CreateGetOrdersQueryHandler() queries.GetOrdersQueryHandler {
	return queries.NewGetOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetBranchOrdersQueryHandler() queries.GetBranchOrdersQueryHandler {
	return queries.NewGetBranchOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetBranchesQueryHandler() queries.GetBranchesQueryHandler {
	return queries.NewGetBranchesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetUsersQueryHandler() queries.GetUsersQueryHandler {
	return queries.NewGetUsersQueryHandler(c.gormDB)
}

// NewEcho builds the HTTP server with every route registered.
func (c *CompositionRoot) NewEcho() *echo.Echo {
	server := httpin.NewServer(
		httpin.UseCases{
			Authenticate:        c.CreateAuthenticateUserQueryHandler(),
			GetOrders:           c.CreateGetOrdersQueryHandler(),
			GetOrder:            c.CreateGetOrderQueryHandler(),
			GetBranchOrders:     c.CreateGetBranchOrdersQueryHandler(),
			GetBranches:         c.CreateGetBranchesQueryHandler(),
			GetUsers:            c.CreateGetUsersQueryHandler(),
			AssignOrder:         c.CreateAssignOrderCommandHandler(),
			MarkOrderInTransit:  c.CreateMarkOrderInTransitCommandHandler(),
			ConfirmDelivery:     c.CreateConfirmDeliveryCommandHandler(),
			SyncPendingInvoices: c.CreateSyncPendingInvoicesCommandHandler(),
			CreateBranch:        c.CreateCreateBranchCommandHandler(),
			CreateUser:          c.CreateCreateUserCommandHandler(),
		},
		c.signatures,
		httpin.NewTokenIssuer(c.cfg.JWTSecret, c.cfg.JWTExpiresIn, c.clock),
		c.cfg.TangoWebhookSecret,
		c.logger,
	)
	return httpin.NewEcho(server, c.metrics, c.metrics.Handler())
}

func (c *CompositionRoot) NewJobManager() *jobs.JobManager {
	syncJob := jobs.NewSynchronizationJob(
		c.CreateSyncPendingInvoicesCommandHandler(),
		c.CreatePushDeliveryConfirmationsCommandHandler(),
		c.invoicing,
		c.metrics,
		jobs.SyncJobConfig{
			Interval:           c.cfg.SyncInterval,
			WebhookCallbackURL: c.cfg.WebhookCallbackURL(),
		},
		c.logger,
	)
	return jobs.NewJobManager(syncJob)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncBranchUoWFactory func() commands.BranchUoW

func (f FuncBranchUoWFactory) Create() commands.BranchUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
