package commands_test

import (
	"context"
	"testing"
	"time"

	"github.com/facebookgo/clock"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"entregas/internal/core/application/usecases/commands"
	"entregas/internal/core/domain/model/branch"
	"entregas/internal/core/domain/model/kernel"
	"entregas/internal/core/domain/model/order"
	"entregas/internal/core/domain/model/user"
	"entregas/internal/core/ports"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) UpsertPending(ctx context.Context, c ports.OrderCandidate) (*order.Order, bool, error) {
	args := m.Called(ctx, c)
	o, _ := args.Get(0).(*order.Order)
	return o, args.Bool(1), args.Error(2)
}
func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	return m.Called(ctx, o).Error(0)
}
func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	o, _ := args.Get(0).(*order.Order)
	return o, args.Error(1)
}
func (m *MockOrderRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	o, _ := args.Get(0).(*order.Order)
	return o, args.Error(1)
}
func (m *MockOrderRepository) FindByInvoiceNumber(ctx context.Context, n kernel.InvoiceNumber) (*order.Order, error) {
	args := m.Called(ctx, n)
	o, _ := args.Get(0).(*order.Order)
	return o, args.Error(1)
}
func (m *MockOrderRepository) ListByState(ctx context.Context, s order.Status) ([]*order.Order, error) {
	args := m.Called(ctx, s)
	orders, _ := args.Get(0).([]*order.Order)
	return orders, args.Error(1)
}
func (m *MockOrderRepository) ListByBranch(ctx context.Context, branchID int64, statuses ...order.Status) ([]*order.Order, error) {
	args := m.Called(ctx, branchID, statuses)
	orders, _ := args.Get(0).([]*order.Order)
	return orders, args.Error(1)
}
func (m *MockOrderRepository) ListAwaitingSync(ctx context.Context) ([]*order.Order, error) {
	args := m.Called(ctx)
	orders, _ := args.Get(0).([]*order.Order)
	return orders, args.Error(1)
}

type MockBranchRepository struct{ mock.Mock }

func (m *MockBranchRepository) Add(ctx context.Context, b *branch.Branch) (*branch.Branch, error) {
	args := m.Called(ctx, b)
	stored, _ := args.Get(0).(*branch.Branch)
	return stored, args.Error(1)
}
func (m *MockBranchRepository) Get(ctx context.Context, id int64) (*branch.Branch, error) {
	args := m.Called(ctx, id)
	b, _ := args.Get(0).(*branch.Branch)
	return b, args.Error(1)
}
func (m *MockBranchRepository) List(ctx context.Context) ([]*branch.Branch, error) {
	args := m.Called(ctx)
	branches, _ := args.Get(0).([]*branch.Branch)
	return branches, args.Error(1)
}

type MockUserRepository struct{ mock.Mock }

func (m *MockUserRepository) Add(ctx context.Context, u *user.User) (*user.User, error) {
	args := m.Called(ctx, u)
	stored, _ := args.Get(0).(*user.User)
	return stored, args.Error(1)
}
func (m *MockUserRepository) Get(ctx context.Context, id int64) (*user.User, error) {
	args := m.Called(ctx, id)
	u, _ := args.Get(0).(*user.User)
	return u, args.Error(1)
}
func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	args := m.Called(ctx, email)
	u, _ := args.Get(0).(*user.User)
	return u, args.Error(1)
}
func (m *MockUserRepository) List(ctx context.Context) ([]*user.User, error) {
	args := m.Called(ctx)
	users, _ := args.Get(0).([]*user.User)
	return users, args.Error(1)
}

// MockUoW implements every unit of work flavour the handlers depend on.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error    { return m.Called(ctx).Error(0) }
func (m *MockUoW) Commit(ctx context.Context) error   { return m.Called(ctx).Error(0) }
func (m *MockUoW) Rollback(ctx context.Context) error { return m.Called(ctx).Error(0) }

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	return m.Called().Get(0).(ports.OrderRepository)
}
func (m *MockUoW) BranchRepository() ports.BranchRepository {
	return m.Called().Get(0).(ports.BranchRepository)
}
func (m *MockUoW) UserRepository() ports.UserRepository {
	return m.Called().Get(0).(ports.UserRepository)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	return m.Called().Get(0).(commands.UoW)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	return m.Called().Get(0).(commands.OrderUoW)
}

type MockBranchUoWFactory struct{ mock.Mock }

func (m *MockBranchUoWFactory) Create() commands.BranchUoW {
	return m.Called().Get(0).(commands.BranchUoW)
}

type MockInvoicingSystem struct{ mock.Mock }

func (m *MockInvoicingSystem) PullPendingInvoices(ctx context.Context) ([]ports.OrderCandidate, error) {
	args := m.Called(ctx)
	candidates, _ := args.Get(0).([]ports.OrderCandidate)
	return candidates, args.Error(1)
}
func (m *MockInvoicingSystem) PushDeliveryConfirmation(ctx context.Context, c ports.DeliveryConfirmation) error {
	return m.Called(ctx, c).Error(0)
}
func (m *MockInvoicingSystem) RegisterWebhook(ctx context.Context, url string) error {
	return m.Called(ctx, url).Error(0)
}

var now = time.Date(2025, 3, 10, 14, 30, 0, 0, time.UTC)

func invoice(t *testing.T, number string) order.Invoice {
	t.Helper()
	n, err := kernel.NewInvoiceNumber(number)
	require.NoError(t, err)
	return order.Invoice{
		Number:   n,
		Date:     now.Add(-48 * time.Hour),
		Customer: "Ferreteria Lopez SRL",
		Address:  "Av. Colon 1234",
		Locality: "Cordoba",
	}
}

func pendingOrder(t *testing.T, number string) *order.Order {
	t.Helper()
	o, err := order.NewOrder(kernel.NewUUID(), invoice(t, number))
	require.NoError(t, err)
	return o
}

func assignedOrder(t *testing.T, number string, branchID int64) *order.Order {
	t.Helper()
	o := pendingOrder(t, number)
	require.NoError(t, o.Assign(branchID, 1, now.Add(-time.Hour)))
	return o
}

func deliveredOrder(t *testing.T, number string) *order.Order {
	t.Helper()
	o := assignedOrder(t, number, 3)
	require.NoError(t, o.ConfirmDelivery(order.Delivery{
		ReceiverDocument: "30111222",
		DelivererID:      7,
		DeliveredAt:      now.Add(-30 * time.Minute),
	}))
	return o
}

func restoredBranch(t *testing.T, id int64, active bool) *branch.Branch {
	t.Helper()
	b, err := branch.RestoreBranch(branch.Snapshot{ID: id, Name: "Sucursal Centro", Active: active})
	require.NoError(t, err)
	return b
}

func restoredUser(t *testing.T, id int64, role user.Role, branchID *int64) *user.User {
	t.Helper()
	u, err := user.RestoreUser(user.Snapshot{
		ID:           id,
		Name:         "Ana Perez",
		Email:        "ana@example.com",
		PasswordHash: "$2a$10$hash",
		Role:         role,
		BranchID:     branchID,
		Active:       true,
	})
	require.NoError(t, err)
	return u
}

func int64Ptr(v int64) *int64 { return &v }

func mockClock() *clock.Mock {
	clk := clock.NewMock()
	clk.Add(now.Sub(clk.Now()))
	return clk
}
