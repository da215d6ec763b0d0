package postgres_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	adapter "livraison/internal/adapters/out/postgres"
	"livraison/internal/adapters/out/postgres/deliveryrepo"
	"livraison/internal/adapters/out/postgres/incidentrepo"
	"livraison/internal/adapters/out/postgres/stockrepo"
	"livraison/internal/core/domain/model/delivery"
	"livraison/internal/core/domain/model/incident"
	"livraison/internal/core/domain/model/kernel"
	"livraison/internal/core/domain/model/stock"
	"livraison/internal/core/domain/services"
	"livraison/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *tcpostgres.PostgresContainer
	db        *gorm.DB
	factory   *adapter.GormUnitOfWorkFactory
	refSeq    int
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := tcpostgres.Run(ctx,
		"postgres:15-alpine",
		tcpostgres.WithDatabase("testdb"),
		tcpostgres.WithUsername("testuser"),
		tcpostgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(
		&deliveryrepo.DeliveryDTO{},
		&deliveryrepo.ItemDTO{},
		&stockrepo.StockItemDTO{},
		&incidentrepo.IncidentDTO{},
	))
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec(
		"TRUNCATE TABLE deliveries, delivery_items, stock_items, incidents").Error)
	suite.factory = adapter.NewGormUnitOfWorkFactory(suite.db)
}

func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

// TestUnitOfWorkFactory_Create verifies factory creates unit of work instances
// with isolated state.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWorkFactory_Create() {
	first := suite.factory.Create()
	second := suite.factory.Create()

	suite.NotNil(first)
	suite.NotNil(second)
	suite.NotSame(first, second)
}

// TestUnitOfWork_TransactionLifecycle verifies proper transaction management
// through begin, commit and repeated begin calls.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionLifecycle() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().NoError(uow.Begin(ctx))

	// Repeated Begin on an open transaction is a no-op.
	suite.Require().NoError(uow.Begin(ctx))

	suite.Require().NoError(uow.Commit(ctx))

	// A committed transaction cannot be committed again.
	suite.Require().Error(uow.Commit(ctx))
}

// TestUnitOfWork_TransactionErrors verifies error handling for invalid transaction operations.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionErrors() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().ErrorIs(uow.Commit(ctx), gorm.ErrInvalidTransaction)
	suite.Require().ErrorIs(uow.Rollback(ctx), gorm.ErrInvalidTransaction)
}

// TestUnitOfWork_SingleRepositoryTransaction verifies repository operations
// land in the database after commit.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_SingleRepositoryTransaction() {
	ctx := context.Background()
	uow := suite.factory.Create()

	testDelivery := suite.createTestDelivery()

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.DeliveryRepository().Add(ctx, testDelivery))
	suite.Require().NoError(uow.Commit(ctx))

	retrieved, err := suite.factory.Create().DeliveryRepository().Get(ctx, testDelivery.ID())
	suite.Require().NoError(err)
	suite.Equal(testDelivery.ID(), retrieved.ID())
}

// TestUnitOfWork_TransactionRollback verifies rollback discards all changes.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionRollback() {
	ctx := context.Background()
	uow := suite.factory.Create()

	testDelivery := suite.createTestDelivery()
	testStock := suite.createTestStockItem(20, 5)

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.DeliveryRepository().Add(ctx, testDelivery))
	suite.Require().NoError(uow.StockRepository().Add(ctx, testStock))
	suite.Require().NoError(uow.Rollback(ctx))

	_, err := suite.factory.Create().DeliveryRepository().Get(ctx, testDelivery.ID())
	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)

	_, err = suite.factory.Create().StockRepository().Get(ctx, testStock.ID())
	suite.Require().ErrorAs(err, &notFoundErr)
}

// TestUnitOfWork_DeliveryConfirmationWorkflow walks the confirmation flow as
// the transition handler runs it: the status write and the stock decrement
// share one transaction.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_DeliveryConfirmationWorkflow() {
	ctx := context.Background()
	now := time.Now().UTC()

	// Seed a stock item and an in-transit delivery demanding it.
	testStock := suite.createTestStockItem(20, 5)
	seed := suite.factory.Create()
	suite.Require().NoError(seed.Begin(ctx))
	suite.Require().NoError(seed.StockRepository().Add(ctx, testStock))

	driverID := kernel.NewUUID()
	testDelivery := suite.createTestDeliveryDemanding(testStock.ID(), 4)
	suite.Require().NoError(testDelivery.AssignDriver(driverID, "Nadia", now))
	suite.Require().NoError(testDelivery.TakeCharge(driverID, "Nadia", now))
	suite.Require().NoError(seed.DeliveryRepository().Add(ctx, testDelivery))
	suite.Require().NoError(seed.Commit(ctx))

	// Confirm the delivery: decrement then compare-and-set update.
	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))

	suite.Require().NoError(testDelivery.Deliver("M. Dupont", now))

	ledger := services.NewInventoryLedger()
	movements, err := uow.StockRepository().DecrementBatch(ctx, ledger.DemandFor(testDelivery.Items()))
	suite.Require().NoError(err)
	suite.Require().Len(movements, 1)
	suite.Equal(16, movements[0].Remaining)

	suite.Require().NoError(uow.DeliveryRepository().Update(ctx, testDelivery, delivery.StatusInTransit))
	suite.Require().NoError(uow.Commit(ctx))

	retrievedDelivery, err := suite.factory.Create().DeliveryRepository().Get(ctx, testDelivery.ID())
	suite.Require().NoError(err)
	suite.Equal(delivery.StatusDelivered, retrievedDelivery.Status())

	retrievedStock, err := suite.factory.Create().StockRepository().Get(ctx, testStock.ID())
	suite.Require().NoError(err)
	suite.Equal(16, retrievedStock.Quantity())
}

// TestUnitOfWork_WorkflowRollback verifies a failed decrement leaves the
// delivery status untouched when the caller rolls back.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_WorkflowRollback() {
	ctx := context.Background()
	now := time.Now().UTC()

	driverID := kernel.NewUUID()
	missingStockID := kernel.NewUUID()
	testDelivery := suite.createTestDeliveryDemanding(missingStockID, 4)
	suite.Require().NoError(testDelivery.AssignDriver(driverID, "Nadia", now))
	suite.Require().NoError(testDelivery.TakeCharge(driverID, "Nadia", now))

	seed := suite.factory.Create()
	suite.Require().NoError(seed.Begin(ctx))
	suite.Require().NoError(seed.DeliveryRepository().Add(ctx, testDelivery))
	suite.Require().NoError(seed.Commit(ctx))

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))

	suite.Require().NoError(testDelivery.Deliver("M. Dupont", now))
	suite.Require().NoError(uow.DeliveryRepository().Update(ctx, testDelivery, delivery.StatusInTransit))

	ledger := services.NewInventoryLedger()
	_, err := uow.StockRepository().DecrementBatch(ctx, ledger.DemandFor(testDelivery.Items()))
	suite.Require().Error(err)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)
	suite.Require().NoError(uow.Rollback(ctx))

	// The status write rolled back with the failed decrement.
	retrieved, getErr := suite.factory.Create().DeliveryRepository().Get(ctx, testDelivery.ID())
	suite.Require().NoError(getErr)
	suite.Equal(delivery.StatusInTransit, retrieved.Status())
}

// TestUnitOfWork_IncidentRecording verifies the incident row and the delivery
// status change commit together.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_IncidentRecording() {
	ctx := context.Background()
	now := time.Now().UTC()

	driverID := kernel.NewUUID()
	testDelivery := suite.createTestDelivery()
	suite.Require().NoError(testDelivery.AssignDriver(driverID, "Nadia", now))
	suite.Require().NoError(testDelivery.TakeCharge(driverID, "Nadia", now))

	seed := suite.factory.Create()
	suite.Require().NoError(seed.Begin(ctx))
	suite.Require().NoError(seed.DeliveryRepository().Add(ctx, testDelivery))
	suite.Require().NoError(seed.Commit(ctx))

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))

	suite.Require().NoError(testDelivery.ReportIncident("client absent", now))
	record, err := incident.NewIncident(
		kernel.NewUUID(), testDelivery.ID(), incident.TypeRefused, "client absent", driverID, now)
	suite.Require().NoError(err)

	suite.Require().NoError(uow.IncidentRepository().Add(ctx, record))
	suite.Require().NoError(uow.DeliveryRepository().Update(ctx, testDelivery, delivery.StatusInTransit))
	suite.Require().NoError(uow.Commit(ctx))

	incidents, err := suite.factory.Create().IncidentRepository().GetAllByDelivery(ctx, testDelivery.ID())
	suite.Require().NoError(err)
	suite.Require().Len(incidents, 1)
	suite.Equal(incident.StatusOpen, incidents[0].Status())

	retrieved, err := suite.factory.Create().DeliveryRepository().Get(ctx, testDelivery.ID())
	suite.Require().NoError(err)
	suite.Equal(delivery.StatusIncident, retrieved.Status())
}

// TestUnitOfWork_ConcurrentClaim verifies the compare-and-set serializes two
// writers racing for the same pending delivery.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_ConcurrentClaim() {
	ctx := context.Background()
	now := time.Now().UTC()

	testDelivery := suite.createTestDelivery()
	seed := suite.factory.Create()
	suite.Require().NoError(seed.Begin(ctx))
	suite.Require().NoError(seed.DeliveryRepository().Add(ctx, testDelivery))
	suite.Require().NoError(seed.Commit(ctx))

	// Both writers read the pending row.
	firstView, err := suite.factory.Create().DeliveryRepository().Get(ctx, testDelivery.ID())
	suite.Require().NoError(err)
	secondView, err := suite.factory.Create().DeliveryRepository().Get(ctx, testDelivery.ID())
	suite.Require().NoError(err)

	firstUow := suite.factory.Create()
	suite.Require().NoError(firstUow.Begin(ctx))
	suite.Require().NoError(firstView.AssignDriver(kernel.NewUUID(), "Nadia", now))
	suite.Require().NoError(firstUow.DeliveryRepository().Update(ctx, firstView, delivery.StatusPending))
	suite.Require().NoError(firstUow.Commit(ctx))

	secondUow := suite.factory.Create()
	suite.Require().NoError(secondUow.Begin(ctx))
	suite.Require().NoError(secondView.AssignDriver(kernel.NewUUID(), "Karim", now))
	err = secondUow.DeliveryRepository().Update(ctx, secondView, delivery.StatusPending)
	suite.Require().Error(err)
	suite.Require().ErrorIs(err, errs.ErrVersionConflict)
	suite.Require().NoError(secondUow.Rollback(ctx))

	retrieved, err := suite.factory.Create().DeliveryRepository().Get(ctx, testDelivery.ID())
	suite.Require().NoError(err)
	suite.Equal("Nadia", retrieved.DriverName())
}

// TestUnitOfWork_WithoutTransaction verifies that repositories work correctly
// when no transaction has been started.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_WithoutTransaction() {
	ctx := context.Background()
	uow := suite.factory.Create()

	testStock := suite.createTestStockItem(20, 5)
	suite.Require().NoError(uow.StockRepository().Add(ctx, testStock))

	retrieved, err := uow.StockRepository().Get(ctx, testStock.ID())
	suite.Require().NoError(err)
	suite.Equal(testStock.ID(), retrieved.ID())
}

// createTestDelivery creates a pending delivery with a unique reference and
// one stock-free line.
func (suite *UnitOfWorkIntegrationTestSuite) createTestDelivery() *delivery.Delivery {
	item, err := delivery.NewItem(
		"Ruban adhésif", "RUB-01", 3, "rouleau", decimal.NewFromFloat(1.2), nil)
	suite.Require().NoError(err)
	return suite.newDelivery([]delivery.Item{item})
}

// createTestDeliveryDemanding creates a pending delivery with one line bound
// to the given stock item.
func (suite *UnitOfWorkIntegrationTestSuite) createTestDeliveryDemanding(
	stockID kernel.UUID, qty int,
) *delivery.Delivery {
	item, err := delivery.NewItem(
		"Cartons 40x40", "CART-40", qty, "unité", decimal.NewFromFloat(2.5), &stockID)
	suite.Require().NoError(err)
	return suite.newDelivery([]delivery.Item{item})
}

func (suite *UnitOfWorkIntegrationTestSuite) newDelivery(items []delivery.Item) *delivery.Delivery {
	suite.refSeq++
	d, err := delivery.NewDelivery(
		kernel.NewUUID(),
		fmt.Sprintf("LIV-2025-%04d", suite.refSeq),
		kernel.NewUUID(),
		"Boulangerie Martin",
		"12 rue de la Paix, Paris",
		delivery.PriorityNormal,
		time.Now().Add(24*time.Hour).UTC(),
		items,
		kernel.NewUUID(),
		time.Now().UTC(),
	)
	suite.Require().NoError(err)
	return d
}

// createTestStockItem creates an active stock item with a unique reference.
func (suite *UnitOfWorkIntegrationTestSuite) createTestStockItem(quantity, minQuantity int) *stock.StockItem {
	suite.refSeq++
	item, err := stock.NewStockItem(
		kernel.NewUUID(),
		fmt.Sprintf("Carton modèle %d", suite.refSeq),
		fmt.Sprintf("CART-%03d", suite.refSeq),
		"unité",
		quantity,
		minQuantity,
		decimal.NewFromFloat(2.5),
		time.Now().UTC(),
	)
	suite.Require().NoError(err)
	return item
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
