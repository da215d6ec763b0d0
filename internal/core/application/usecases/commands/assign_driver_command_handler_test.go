package commands_test

import (
	"context"
	"testing"

	"livraison/internal/core/application/usecases/commands"
	"livraison/internal/core/domain/model/delivery"
	"livraison/internal/core/domain/model/kernel"
	"livraison/internal/core/domain/services"
	"livraison/internal/core/ports"
	"livraison/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newAssignHandler(
	factory *MockDeliveryUoWFactory,
	publisher *MockChangePublisher,
	notifier *MockNotifier,
) commands.AssignDriverCommandHandler {
	return commands.NewAssignDriverCommandHandler(
		factory, services.NewAccessGuard(), publisher, notifier, testLogger())
}

func TestAssignDriverCommandHandler_Handle(t *testing.T) {
	ctx := context.Background()

	t.Run("should assign driver and notify", func(t *testing.T) {
		admin := adminActor(t)
		driverID := kernel.NewUUID()
		aggregate := pendingDelivery(t, nil, 0)

		repo := new(MockDeliveryRepository)
		repo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil)
		repo.On("Update", mock.Anything, aggregate, delivery.StatusPending).Return(nil)

		uow := new(MockUoW)
		uow.On("Begin", mock.Anything).Return(nil)
		uow.On("Commit", mock.Anything).Return(nil)
		uow.On("Rollback", mock.Anything).Return(nil)
		uow.On("DeliveryRepository").Return(repo)

		factory := new(MockDeliveryUoWFactory)
		factory.On("Create").Return(uow)

		publisher := new(MockChangePublisher)
		publisher.On("Publish", mock.Anything, mock.MatchedBy(func(c ports.DeliveryChange) bool {
			return c.From == delivery.StatusPending && c.To == delivery.StatusAssigned &&
				c.Snapshot.Status == delivery.StatusAssigned && c.Snapshot.DriverID != nil
		})).Return(nil)

		notifier := new(MockNotifier)
		notifier.On("NotifyAssigned", mock.Anything, aggregate).Return(nil)

		handler := newAssignHandler(factory, publisher, notifier)

		cmd, err := commands.NewAssignDriverCommand(aggregate.ID(), admin, driverID, "Karim B.")
		require.NoError(t, err)

		require.NoError(t, handler.Handle(ctx, cmd))

		assert.Equal(t, delivery.StatusAssigned, aggregate.Status())
		require.NotNil(t, aggregate.DriverID())
		assert.True(t, driverID.IsEqual(*aggregate.DriverID()))
		notifier.AssertExpectations(t)
	})

	t.Run("should succeed even when notification fails", func(t *testing.T) {
		admin := adminActor(t)
		aggregate := pendingDelivery(t, nil, 0)

		repo := new(MockDeliveryRepository)
		repo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil)
		repo.On("Update", mock.Anything, aggregate, delivery.StatusPending).Return(nil)

		uow := new(MockUoW)
		uow.On("Begin", mock.Anything).Return(nil)
		uow.On("Commit", mock.Anything).Return(nil)
		uow.On("Rollback", mock.Anything).Return(nil)
		uow.On("DeliveryRepository").Return(repo)

		factory := new(MockDeliveryUoWFactory)
		factory.On("Create").Return(uow)

		publisher := new(MockChangePublisher)
		publisher.On("Publish", mock.Anything, mock.Anything).Return(nil)

		notifier := new(MockNotifier)
		notifier.On("NotifyAssigned", mock.Anything, mock.Anything).
			Return(errs.NewObjectNotFoundError("driver token", "missing"))

		handler := newAssignHandler(factory, publisher, notifier)

		cmd, err := commands.NewAssignDriverCommand(aggregate.ID(), admin, kernel.NewUUID(), "Karim B.")
		require.NoError(t, err)

		require.NoError(t, handler.Handle(ctx, cmd))
	})

	t.Run("should succeed even when publication fails", func(t *testing.T) {
		admin := adminActor(t)
		aggregate := pendingDelivery(t, nil, 0)

		repo := new(MockDeliveryRepository)
		repo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil)
		repo.On("Update", mock.Anything, aggregate, delivery.StatusPending).Return(nil)

		uow := new(MockUoW)
		uow.On("Begin", mock.Anything).Return(nil)
		uow.On("Commit", mock.Anything).Return(nil)
		uow.On("Rollback", mock.Anything).Return(nil)
		uow.On("DeliveryRepository").Return(repo)

		factory := new(MockDeliveryUoWFactory)
		factory.On("Create").Return(uow)

		publisher := new(MockChangePublisher)
		publisher.On("Publish", mock.Anything, mock.Anything).
			Return(errs.NewValueIsInvalidError("feed closed"))

		notifier := new(MockNotifier)
		notifier.On("NotifyAssigned", mock.Anything, aggregate).Return(nil)

		handler := newAssignHandler(factory, publisher, notifier)

		cmd, err := commands.NewAssignDriverCommand(aggregate.ID(), admin, kernel.NewUUID(), "Karim B.")
		require.NoError(t, err)

		// The transition is committed; a feed hiccup is logged, not surfaced.
		require.NoError(t, handler.Handle(ctx, cmd))
		publisher.AssertExpectations(t)
	})

	t.Run("should deny assignment to drivers", func(t *testing.T) {
		driver := driverActor(t)
		aggregate := pendingDelivery(t, nil, 0)

		repo := new(MockDeliveryRepository)
		repo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil)

		uow := new(MockUoW)
		uow.On("Begin", mock.Anything).Return(nil)
		uow.On("Rollback", mock.Anything).Return(nil)
		uow.On("DeliveryRepository").Return(repo)

		factory := new(MockDeliveryUoWFactory)
		factory.On("Create").Return(uow)

		handler := newAssignHandler(factory, new(MockChangePublisher), new(MockNotifier))

		cmd, err := commands.NewAssignDriverCommand(aggregate.ID(), driver, driver.ID(), "Karim B.")
		require.NoError(t, err)

		require.ErrorIs(t, handler.Handle(ctx, cmd), errs.ErrPermissionDenied)
		uow.AssertNotCalled(t, "Commit", mock.Anything)
	})

	t.Run("should require a driver name", func(t *testing.T) {
		_, err := commands.NewAssignDriverCommand(kernel.NewUUID(), adminActor(t), kernel.NewUUID(), "")
		require.ErrorIs(t, err, commands.ErrAssignDriverNameIsRequired)
	})
}
