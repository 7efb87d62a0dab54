package userrepo_test

import (
	"context"
	"testing"

	"entregas/internal/adapters/out/postgres/pgtest"
	"entregas/internal/adapters/out/postgres/userrepo"
	"entregas/internal/core/domain/model/user"
	"entregas/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
)

type UserRepositoryIntegrationTestSuite struct {
	suite.Suite
	pg         *pgtest.Database
	repository *userrepo.GormUserRepository
}

func TestUserRepositoryIntegration(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(UserRepositoryIntegrationTestSuite))
}

func (suite *UserRepositoryIntegrationTestSuite) SetupSuite() {
	pg, err := pgtest.Start(context.Background())
	suite.Require().NoError(err)
	suite.pg = pg
}

func (suite *UserRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.pg.Truncate())
	suite.repository = userrepo.NewGormUserRepository(suite.pg.DB)
}

func (suite *UserRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.pg != nil {
		suite.Require().NoError(suite.pg.Terminate(context.Background()))
	}
}

func (suite *UserRepositoryIntegrationTestSuite) newUser(email string, role user.Role, branchID *int64) *user.User {
	u, err := user.NewUser("Test User", email, "secreto1", role, branchID)
	suite.Require().NoError(err)
	return u
}

func (suite *UserRepositoryIntegrationTestSuite) TestAdd_And_GetByEmail() {
	ctx := context.Background()
	branchID := int64(3)

	stored, err := suite.repository.Add(ctx, suite.newUser("staff@example.com", user.BranchStaff, &branchID))
	suite.Require().NoError(err)
	suite.Positive(stored.ID())

	loaded, err := suite.repository.GetByEmail(ctx, "  STAFF@example.com")
	suite.Require().NoError(err)
	suite.Equal(stored.ID(), loaded.ID())
	suite.Equal(user.BranchStaff, loaded.Role())
	suite.Equal(branchID, *loaded.BranchID())
	suite.True(loaded.CheckPassword("secreto1"))
}

func (suite *UserRepositoryIntegrationTestSuite) TestAdd_DuplicateEmail() {
	ctx := context.Background()
	_, err := suite.repository.Add(ctx, suite.newUser("dup@example.com", user.Operator, nil))
	suite.Require().NoError(err)

	_, err = suite.repository.Add(ctx, suite.newUser("dup@example.com", user.Admin, nil))

	suite.Require().ErrorIs(err, errs.ErrValueIsInvalid)
}

func (suite *UserRepositoryIntegrationTestSuite) TestGet_NotFound() {
	ctx := context.Background()

	_, err := suite.repository.Get(ctx, 99)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)

	_, err = suite.repository.GetByEmail(ctx, "nobody@example.com")
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *UserRepositoryIntegrationTestSuite) TestList() {
	ctx := context.Background()
	_, err := suite.repository.Add(ctx, suite.newUser("a@example.com", user.Admin, nil))
	suite.Require().NoError(err)
	_, err = suite.repository.Add(ctx, suite.newUser("b@example.com", user.Operator, nil))
	suite.Require().NoError(err)

	users, err := suite.repository.List(ctx)

	suite.Require().NoError(err)
	suite.Require().Len(users, 2)
	suite.Equal("a@example.com", users[0].Email())
}
