package queries_test

import (
	"context"
	"testing"
	"time"

	"dispatch/internal/adapters/out/postgres/evidencerepo"
	"dispatch/internal/adapters/out/postgres/masterrepo"
	"dispatch/internal/adapters/out/postgres/orderrepo"
	"dispatch/internal/core/application/usecases/queries"
	"dispatch/internal/core/domain/model/evidence"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/master"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type GetOrderDetailsQueryHandlerTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	orders    *orderrepo.GormOrderRepository
	masters   *masterrepo.GormMasterRepository
	evidence  *evidencerepo.GormEvidenceRepository
	handler   queries.GetOrderDetailsQueryHandler
}

func (suite *GetOrderDetailsQueryHandlerTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(&orderrepo.OrderDTO{}, &masterrepo.MasterDTO{}, &evidencerepo.EvidenceDTO{})
	suite.Require().NoError(err)

	suite.orders = orderrepo.NewGormOrderRepository(db, noopTracker{})
	suite.masters = masterrepo.NewGormMasterRepository(db, noopTracker{})
	suite.evidence = evidencerepo.NewGormEvidenceRepository(db, noopTracker{})
	suite.handler = queries.NewGetOrderDetailsQueryHandler(db)
}

func (suite *GetOrderDetailsQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *GetOrderDetailsQueryHandlerTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE orders, masters, evidence CASCADE").Error
	suite.Require().NoError(err)
}

func (suite *GetOrderDetailsQueryHandlerTestSuite) TestHandle_OrderNotFound() {
	query, err := queries.NewGetOrderDetailsQuery(kernel.NewUUID())
	suite.Require().NoError(err)

	_, err = suite.handler.Handle(context.Background(), query)

	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *GetOrderDetailsQueryHandlerTestSuite) TestHandle_UnassignedOrderWithoutEvidence() {
	ctx := context.Background()

	location, err := kernel.NewLocation(55.75, 37.61)
	suite.Require().NoError(err)

	ord, err := order.NewOrder(kernel.NewUUID(), "Fix boiler", "No hot water", "Alice", "+1000000", location)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.orders.Add(ctx, ord))

	query, err := queries.NewGetOrderDetailsQuery(ord.ID())
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(ctx, query)

	suite.Require().NoError(err)
	suite.Equal(ord.ID(), result.ID)
	suite.Equal("Fix boiler", result.Title)
	suite.Equal("No hot water", result.Description)
	suite.Equal("Alice", result.CustomerName)
	suite.Equal("new", result.Status)
	suite.Nil(result.Master)
	suite.Empty(result.Evidence)
}

func (suite *GetOrderDetailsQueryHandlerTestSuite) TestHandle_AssignedOrderIncludesMaster() {
	ctx := context.Background()

	location, err := kernel.NewLocation(55.75, 37.61)
	suite.Require().NoError(err)

	testMaster, err := master.NewMaster(kernel.NewUUID(), "John Doe", 4.5, location)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.masters.Add(ctx, testMaster))

	masterID := testMaster.ID()
	now := time.Now().UTC().Truncate(time.Second)
	ord, err := order.RestoreOrder(
		kernel.NewUUID(), "Fix boiler", "", "", "", location,
		order.Assigned, &masterID, now, now,
	)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.orders.Add(ctx, ord))

	query, err := queries.NewGetOrderDetailsQuery(ord.ID())
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(ctx, query)

	suite.Require().NoError(err)
	suite.Equal("assigned", result.Status)
	suite.Require().NotNil(result.Master)
	suite.Equal(testMaster.ID(), result.Master.ID)
	suite.Equal("John Doe", result.Master.Name)
	suite.InDelta(4.5, result.Master.Rating, 1e-9)
}

func (suite *GetOrderDetailsQueryHandlerTestSuite) TestHandle_EvidenceOldestCaptureFirst() {
	ctx := context.Background()

	location, err := kernel.NewLocation(55.75, 37.61)
	suite.Require().NoError(err)

	ord, err := order.NewOrder(kernel.NewUUID(), "Fix boiler", "", "", "", location)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.orders.Add(ctx, ord))

	base := time.Now().UTC().Truncate(time.Second)
	later, err := evidence.RestoreEvidence(
		kernel.NewUUID(), ord.ID(), evidence.KindVideo,
		"https://cdn.example.com/b.mp4", location, base, nil,
	)
	suite.Require().NoError(err)
	earlier, err := evidence.RestoreEvidence(
		kernel.NewUUID(), ord.ID(), evidence.KindPhoto,
		"https://cdn.example.com/a.jpg", location, base.Add(-time.Hour),
		map[string]any{"device": "pixel"},
	)
	suite.Require().NoError(err)

	suite.Require().NoError(suite.evidence.Add(ctx, later))
	suite.Require().NoError(suite.evidence.Add(ctx, earlier))

	query, err := queries.NewGetOrderDetailsQuery(ord.ID())
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(ctx, query)

	suite.Require().NoError(err)
	suite.Require().Len(result.Evidence, 2)
	suite.Equal(earlier.ID(), result.Evidence[0].ID)
	suite.Equal("photo", result.Evidence[0].Kind)
	suite.Equal("pixel", result.Evidence[0].Meta["device"])
	suite.Equal(later.ID(), result.Evidence[1].ID)
	suite.Equal("video", result.Evidence[1].Kind)
	suite.Nil(result.Evidence[1].Meta)
}

func TestGetOrderDetailsQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetOrderDetailsQueryHandlerTestSuite))
}
