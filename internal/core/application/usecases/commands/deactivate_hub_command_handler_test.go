package commands_test

import (
	"testing"

	"forwarding/internal/core/application/usecases/commands"
	"forwarding/internal/core/domain/model/kernel"
	"forwarding/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewDeactivateHubCommand_ValidInput(t *testing.T) {
	cmd, err := commands.NewDeactivateHubCommand(miamiHubCode())
	require.NoError(t, err)
	assert.Equal(t, miamiHubCode(), cmd.Hub())
}

func TestNewDeactivateHubCommand_InvalidHub(t *testing.T) {
	_, err := commands.NewDeactivateHubCommand(kernel.HubCode{})
	require.Error(t, err)
}

func TestDeactivateHubCommand_NotConstructed(t *testing.T) {
	var cmd commands.DeactivateHubCommand
	require.ErrorIs(t, cmd.Validate(), commands.ErrDeactivateHubCommandIsNotConstructed)
}

func TestDeactivateHubCommandHandler_Handle_DeactivatesHub(t *testing.T) {
	ctx := t.Context()
	existing := activeHub()
	cmd, err := commands.NewDeactivateHubCommand(miamiHubCode())
	require.NoError(t, err)

	hubRepo := new(MockHubRepository)
	uow := new(MockAddressUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("HubRepository").Return(hubRepo).Once(),
		hubRepo.On("GetByCode", ctx, miamiHubCode()).Return(existing, nil).Once(),
		hubRepo.On("Upsert", mock.Anything, existing).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockAddressUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewDeactivateHubCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))
	require.False(t, existing.IsActive())

	hubRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestDeactivateHubCommandHandler_Handle_UnknownHub(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewDeactivateHubCommand(miamiHubCode())
	require.NoError(t, err)

	hubRepo := new(MockHubRepository)
	uow := new(MockAddressUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("HubRepository").Return(hubRepo).Once(),
		hubRepo.On("GetByCode", ctx, miamiHubCode()).Return(nil, errNotFound).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockAddressUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewDeactivateHubCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
	uow.AssertExpectations(t)
}
