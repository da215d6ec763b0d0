package commands_test

import (
	"context"
	"testing"
	"time"

	"livraison/internal/core/application/usecases/commands"
	"livraison/internal/core/domain/model/incident"
	"livraison/internal/core/domain/model/kernel"
	"livraison/internal/core/domain/services"
	"livraison/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockIncidentUoWFactory struct{ mock.Mock }

func (m *MockIncidentUoWFactory) Create() commands.IncidentUoW {
	args := m.Called()
	return args.Get(0).(commands.IncidentUoW)
}

func openIncident(t *testing.T) *incident.Incident {
	t.Helper()
	i, err := incident.NewIncident(kernel.NewUUID(), kernel.NewUUID(),
		incident.TypeMissing, "one parcel short", kernel.NewUUID(), time.Now())
	require.NoError(t, err)
	return i
}

func TestResolveIncidentCommandHandler_Handle(t *testing.T) {
	ctx := context.Background()

	t.Run("should resolve incident as admin", func(t *testing.T) {
		admin := adminActor(t)
		record := openIncident(t)

		repo := new(MockIncidentRepository)
		repo.On("Get", mock.Anything, record.ID()).Return(record, nil)
		repo.On("Update", mock.Anything, record).Return(nil)

		uow := new(MockUoW)
		uow.On("Begin", mock.Anything).Return(nil)
		uow.On("Commit", mock.Anything).Return(nil)
		uow.On("Rollback", mock.Anything).Return(nil)
		uow.On("IncidentRepository").Return(repo)

		factory := new(MockIncidentUoWFactory)
		factory.On("Create").Return(uow)

		handler := commands.NewResolveIncidentCommandHandler(factory, services.NewAccessGuard())

		cmd, err := commands.NewResolveIncidentCommand(record.ID(), admin, "replacement shipped")
		require.NoError(t, err)

		require.NoError(t, handler.Handle(ctx, cmd))

		assert.Equal(t, incident.StatusResolved, record.Status())
		require.NotNil(t, record.ResolvedBy())
		assert.True(t, admin.ID().IsEqual(*record.ResolvedBy()))
		repo.AssertExpectations(t)
	})

	t.Run("should deny resolution to non-admins", func(t *testing.T) {
		factory := new(MockIncidentUoWFactory)
		handler := commands.NewResolveIncidentCommandHandler(factory, services.NewAccessGuard())

		cmd, err := commands.NewResolveIncidentCommand(kernel.NewUUID(), driverActor(t), "done")
		require.NoError(t, err)

		require.ErrorIs(t, handler.Handle(ctx, cmd), errs.ErrPermissionDenied)
		factory.AssertNotCalled(t, "Create")
	})

	t.Run("should surface double resolution", func(t *testing.T) {
		admin := adminActor(t)
		record := openIncident(t)
		require.NoError(t, record.Resolve(kernel.NewUUID(), "already handled", time.Now()))

		repo := new(MockIncidentRepository)
		repo.On("Get", mock.Anything, record.ID()).Return(record, nil)

		uow := new(MockUoW)
		uow.On("Begin", mock.Anything).Return(nil)
		uow.On("Rollback", mock.Anything).Return(nil)
		uow.On("IncidentRepository").Return(repo)

		factory := new(MockIncidentUoWFactory)
		factory.On("Create").Return(uow)

		handler := commands.NewResolveIncidentCommandHandler(factory, services.NewAccessGuard())

		cmd, err := commands.NewResolveIncidentCommand(record.ID(), admin, "again")
		require.NoError(t, err)

		require.ErrorIs(t, handler.Handle(ctx, cmd), incident.ErrAlreadyResolved)
		repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
		uow.AssertNotCalled(t, "Commit", mock.Anything)
	})

	t.Run("should require a resolution note", func(t *testing.T) {
		_, err := commands.NewResolveIncidentCommand(kernel.NewUUID(), adminActor(t), "")
		require.ErrorIs(t, err, commands.ErrResolutionIsRequired)
	})
}
