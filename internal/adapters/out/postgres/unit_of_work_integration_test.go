package postgres_test

import (
	"context"
	"sync"
	"testing"
	"time"

	postgresadapter "entregas/internal/adapters/out/postgres"
	"entregas/internal/adapters/out/postgres/orderrepo"
	"entregas/internal/adapters/out/postgres/pgtest"
	"entregas/internal/core/domain/model/branch"
	"entregas/internal/core/domain/model/kernel"
	"entregas/internal/core/domain/model/order"
	"entregas/internal/core/ports"

	"github.com/stretchr/testify/suite"
)

type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	pg      *pgtest.Database
	factory ports.UnitOfWorkFactory
}

func TestUnitOfWorkIntegration(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	pg, err := pgtest.Start(context.Background())
	suite.Require().NoError(err)
	suite.pg = pg
	suite.factory = postgresadapter.NewGormUnitOfWorkFactory(pg.DB)
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.pg.Truncate())
}

func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.pg != nil {
		suite.Require().NoError(suite.pg.Terminate(context.Background()))
	}
}

func (suite *UnitOfWorkIntegrationTestSuite) candidate(number string) ports.OrderCandidate {
	n, err := kernel.NewInvoiceNumber(number)
	suite.Require().NoError(err)
	return ports.OrderCandidate{Number: n, Date: time.Now().UTC(), Customer: "Cliente"}
}

func (suite *UnitOfWorkIntegrationTestSuite) countOrders() int64 {
	var count int64
	suite.Require().NoError(suite.pg.DB.Model(&orderrepo.OrderDTO{}).Count(&count).Error)
	return count
}

func (suite *UnitOfWorkIntegrationTestSuite) TestTransactionLifecycle() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Begin(ctx), "second Begin joins the active transaction")
	suite.Require().NoError(uow.Commit(ctx))

	suite.Require().Error(uow.Commit(ctx), "commit without transaction")
	suite.Require().NoError(uow.Rollback(ctx), "rollback after commit is a no-op")
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCommit_PersistsAcrossRepositories() {
	ctx := context.Background()
	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	defer uow.Rollback(ctx)

	b, err := branch.NewBranch("Centro", branch.Contact{})
	suite.Require().NoError(err)
	stored, err := uow.BranchRepository().Add(ctx, b)
	suite.Require().NoError(err)

	o, created, err := uow.OrderRepository().UpsertPending(ctx, suite.candidate("U-1"))
	suite.Require().NoError(err)
	suite.True(created)
	suite.Require().NoError(o.Assign(stored.ID(), 1, time.Now()))
	suite.Require().NoError(uow.OrderRepository().Update(ctx, o))

	suite.Require().NoError(uow.Commit(ctx))

	loaded, err := suite.factory.Create().OrderRepository().Get(ctx, o.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Assigned, loaded.Status())
	suite.Equal(stored.ID(), loaded.Assignment().BranchID)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestRollback_DiscardsWholeBatch() {
	ctx := context.Background()
	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))

	for _, n := range []string{"R-1", "R-2", "R-3"} {
		_, _, err := uow.OrderRepository().UpsertPending(ctx, suite.candidate(n))
		suite.Require().NoError(err)
	}
	suite.Require().NoError(uow.Rollback(ctx))

	suite.Equal(int64(0), suite.countOrders())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestGetForUpdate_SerializesConcurrentTransitions() {
	ctx := context.Background()
	o, _, err := suite.factory.Create().OrderRepository().UpsertPending(ctx, suite.candidate("L-1"))
	suite.Require().NoError(err)

	var wg sync.WaitGroup
	results := make(chan error, 2)
	for _, branchID := range []int64{1, 2} {
		wg.Add(1)
		go func() {
			defer wg.Done()
			uow := suite.factory.Create()
			if err := uow.Begin(ctx); err != nil {
				results <- err
				return
			}
			defer uow.Rollback(ctx)

			locked, err := uow.OrderRepository().GetForUpdate(ctx, o.ID())
			if err != nil {
				results <- err
				return
			}
			if err := locked.Assign(branchID, 1, time.Now()); err != nil {
				results <- err
				return
			}
			if err := uow.OrderRepository().Update(ctx, locked); err != nil {
				results <- err
				return
			}
			results <- uow.Commit(ctx)
		}()
	}
	wg.Wait()
	close(results)

	var succeeded, failed int
	for err := range results {
		if err == nil {
			succeeded++
		} else {
			failed++
		}
	}
	suite.Equal(1, succeeded)
	suite.Equal(1, failed)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestRepositoriesWithoutTransaction() {
	ctx := context.Background()
	uow := suite.factory.Create()

	_, _, err := uow.OrderRepository().UpsertPending(ctx, suite.candidate("N-1"))

	suite.Require().NoError(err)
	suite.Equal(int64(1), suite.countOrders())
}
