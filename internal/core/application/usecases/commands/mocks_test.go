package commands_test

import (
	"context"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/domain/model/evidence"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/master"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) UpdateInStatus(ctx context.Context, o *order.Order, expected order.Status) error {
	args := m.Called(ctx, o, expected)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetAll(ctx context.Context) ([]*order.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetFirstInNewStatus(ctx context.Context) (*order.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

type MockMasterRepository struct{ mock.Mock }

func (m *MockMasterRepository) Add(ctx context.Context, mst *master.Master) error {
	args := m.Called(ctx, mst)
	return args.Error(0)
}

func (m *MockMasterRepository) Update(ctx context.Context, mst *master.Master) error {
	args := m.Called(ctx, mst)
	return args.Error(0)
}

func (m *MockMasterRepository) Get(ctx context.Context, id kernel.UUID) (*master.Master, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*master.Master), args.Error(1)
}

func (m *MockMasterRepository) GetAll(ctx context.Context) ([]*master.Master, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*master.Master), args.Error(1)
}

func (m *MockMasterRepository) GetAllAvailable(ctx context.Context) ([]*master.Master, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*master.Master), args.Error(1)
}

func (m *MockMasterRepository) ActiveLoads(ctx context.Context) (map[kernel.UUID]int, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[kernel.UUID]int), args.Error(1)
}

type MockEvidenceRepository struct{ mock.Mock }

func (m *MockEvidenceRepository) Add(ctx context.Context, ev *evidence.Evidence) error {
	args := m.Called(ctx, ev)
	return args.Error(0)
}

func (m *MockEvidenceRepository) GetAllByOrderID(
	ctx context.Context,
	orderID kernel.UUID,
) ([]*evidence.Evidence, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*evidence.Evidence), args.Error(1)
}

func (m *MockEvidenceRepository) HasValidPhoto(ctx context.Context, orderID kernel.UUID) (bool, error) {
	args := m.Called(ctx, orderID)
	return args.Bool(0), args.Error(1)
}

type mockTx struct{ mock.Mock }

func (m *mockTx) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *mockTx) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *mockTx) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

type MockOrderUoW struct{ mockTx }

func (m *MockOrderUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockMasterUoW struct{ mockTx }

func (m *MockMasterUoW) MasterRepository() ports.MasterRepository {
	args := m.Called()
	return args.Get(0).(ports.MasterRepository)
}

type MockMasterUoWFactory struct{ mock.Mock }

func (m *MockMasterUoWFactory) Create() commands.MasterUoW {
	args := m.Called()
	return args.Get(0).(commands.MasterUoW)
}

type MockAssignmentUoW struct{ mockTx }

func (m *MockAssignmentUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockAssignmentUoW) MasterRepository() ports.MasterRepository {
	args := m.Called()
	return args.Get(0).(ports.MasterRepository)
}

type MockAssignmentUoWFactory struct{ mock.Mock }

func (m *MockAssignmentUoWFactory) Create() commands.AssignmentUoW {
	args := m.Called()
	return args.Get(0).(commands.AssignmentUoW)
}

type MockEvidenceUoW struct{ mockTx }

func (m *MockEvidenceUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockEvidenceUoW) EvidenceRepository() ports.EvidenceRepository {
	args := m.Called()
	return args.Get(0).(ports.EvidenceRepository)
}

type MockEvidenceUoWFactory struct{ mock.Mock }

func (m *MockEvidenceUoWFactory) Create() commands.EvidenceUoW {
	args := m.Called()
	return args.Get(0).(commands.EvidenceUoW)
}
