package incidentrepo_test

import (
	"context"
	"testing"
	"time"

	"livraison/internal/adapters/out/postgres/incidentrepo"
	"livraison/internal/core/domain/model/incident"
	"livraison/internal/core/domain/model/kernel"
	"livraison/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// MockAggregateTracker is a mock implementation of aggregateTracker interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate interface{}) {
	m.Called(id, aggregate)
}

// IncidentRepositoryIntegrationTestSuite provides integration tests for IncidentRepository
// using PostgreSQL containers to verify database persistence behavior.
type IncidentRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *incidentrepo.GormIncidentRepository
	tracker    *MockAggregateTracker
}

func (suite *IncidentRepositoryIntegrationTestSuite) SetupSuite() {
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

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&incidentrepo.IncidentDTO{}))
}

func (suite *IncidentRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE incidents").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.repository = incidentrepo.NewGormIncidentRepository(suite.db, suite.tracker)
}

func (suite *IncidentRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *IncidentRepositoryIntegrationTestSuite) TestAdd_ValidIncident_Success() {
	ctx := context.Background()

	record := suite.createTestIncident(kernel.NewUUID(), time.Now().UTC())
	suite.tracker.On("TrackAggregate", record.ID(), record).Once()

	err := suite.repository.Add(ctx, record)
	suite.Require().NoError(err)

	suite.assertIncidentCount(1)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *IncidentRepositoryIntegrationTestSuite) TestGet_ExistingIncident_RoundTripsAllFields() {
	ctx := context.Background()
	reportedAt := time.Now().UTC().Truncate(time.Microsecond)

	deliveryID := kernel.NewUUID()
	original := suite.createTestIncident(deliveryID, reportedAt)
	suite.tracker.On("TrackAggregate", original.ID(), original).Once()
	suite.Require().NoError(suite.repository.Add(ctx, original))

	retrieved, err := suite.repository.Get(ctx, original.ID())
	suite.Require().NoError(err)

	suite.Equal(original.ID(), retrieved.ID())
	suite.Equal(deliveryID, retrieved.DeliveryID())
	suite.Equal(incident.TypeDamage, retrieved.Type())
	suite.Equal(incident.StatusOpen, retrieved.Status())
	suite.Equal("colis écrasé au chargement", retrieved.Description())
	suite.Equal(original.ReportedBy(), retrieved.ReportedBy())
	suite.Nil(retrieved.ResolvedBy())
	suite.Nil(retrieved.ResolvedAt())
	suite.Empty(retrieved.Resolution())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *IncidentRepositoryIntegrationTestSuite) TestGet_NonExistentIncident_ReturnsNotFoundError() {
	ctx := context.Background()

	retrieved, err := suite.repository.Get(ctx, kernel.NewUUID())

	suite.Nil(retrieved)
	suite.Require().Error(err)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *IncidentRepositoryIntegrationTestSuite) TestUpdate_Resolution_PersistsResolvedState() {
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Microsecond)

	record := suite.createTestIncident(kernel.NewUUID(), now)
	suite.tracker.On("TrackAggregate", record.ID(), record).Twice()
	suite.Require().NoError(suite.repository.Add(ctx, record))

	adminID := kernel.NewUUID()
	suite.Require().NoError(record.Resolve(adminID, "colis remplacé, client livré", now))
	suite.Require().NoError(suite.repository.Update(ctx, record))

	retrieved, err := suite.repository.Get(ctx, record.ID())
	suite.Require().NoError(err)
	suite.Equal(incident.StatusResolved, retrieved.Status())
	suite.Require().NotNil(retrieved.ResolvedBy())
	suite.Equal(adminID, *retrieved.ResolvedBy())
	suite.Require().NotNil(retrieved.ResolvedAt())
	suite.Equal("colis remplacé, client livré", retrieved.Resolution())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *IncidentRepositoryIntegrationTestSuite) TestUpdate_NonExistentIncident_ReturnsNotFoundError() {
	ctx := context.Background()

	missing := suite.createTestIncident(kernel.NewUUID(), time.Now().UTC())

	err := suite.repository.Update(ctx, missing)
	suite.Require().Error(err)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *IncidentRepositoryIntegrationTestSuite) TestGetAllUnresolved_ReturnsOldestFirst() {
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Microsecond)

	newer := suite.createTestIncident(kernel.NewUUID(), now)
	older := suite.createTestIncident(kernel.NewUUID(), now.Add(-time.Hour))
	resolved := suite.createTestIncident(kernel.NewUUID(), now.Add(-2*time.Hour))
	suite.Require().NoError(resolved.Resolve(kernel.NewUUID(), "réglé", now))

	suite.tracker.On("TrackAggregate", mock.AnythingOfType("kernel.UUID"), mock.Anything).Times(3)
	for _, record := range []*incident.Incident{newer, older, resolved} {
		suite.Require().NoError(suite.repository.Add(ctx, record))
	}

	unresolved, err := suite.repository.GetAllUnresolved(ctx)
	suite.Require().NoError(err)

	suite.Require().Len(unresolved, 2)
	suite.Equal(older.ID(), unresolved[0].ID())
	suite.Equal(newer.ID(), unresolved[1].ID())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *IncidentRepositoryIntegrationTestSuite) TestGetAllByDelivery_ReturnsNewestFirst() {
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Microsecond)

	deliveryID := kernel.NewUUID()
	first := suite.createTestIncident(deliveryID, now.Add(-time.Hour))
	second := suite.createTestIncident(deliveryID, now)
	unrelated := suite.createTestIncident(kernel.NewUUID(), now)

	suite.tracker.On("TrackAggregate", mock.AnythingOfType("kernel.UUID"), mock.Anything).Times(3)
	for _, record := range []*incident.Incident{first, second, unrelated} {
		suite.Require().NoError(suite.repository.Add(ctx, record))
	}

	incidents, err := suite.repository.GetAllByDelivery(ctx, deliveryID)
	suite.Require().NoError(err)

	suite.Require().Len(incidents, 2)
	suite.Equal(second.ID(), incidents[0].ID())
	suite.Equal(first.ID(), incidents[1].ID())

	suite.tracker.AssertExpectations(suite.T())
}

// createTestIncident creates an open damage incident for the given delivery.
func (suite *IncidentRepositoryIntegrationTestSuite) createTestIncident(
	deliveryID kernel.UUID, reportedAt time.Time,
) *incident.Incident {
	record, err := incident.NewIncident(
		kernel.NewUUID(),
		deliveryID,
		incident.TypeDamage,
		"colis écrasé au chargement",
		kernel.NewUUID(),
		reportedAt,
	)
	suite.Require().NoError(err)
	return record
}

// assertIncidentCount verifies the number of incidents in the database.
func (suite *IncidentRepositoryIntegrationTestSuite) assertIncidentCount(expected int) {
	var count int64
	err := suite.db.Model(&incidentrepo.IncidentDTO{}).Count(&count).Error
	suite.Require().NoError(err)
	suite.Equal(int64(expected), count)
}

func TestIncidentRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(IncidentRepositoryIntegrationTestSuite))
}
