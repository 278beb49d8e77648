package commands_test

import (
	"testing"

	"forwarding/internal/core/application/usecases/commands"
	"forwarding/internal/core/domain/model/kernel"
	"forwarding/internal/core/ports"
	"forwarding/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAllocateAddressCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	userID := kernel.NewUUID()
	cmd, _ := commands.NewAllocateAddressCommand(userID, miamiHubCode())

	users := new(MockUserDirectory)
	users.On("FindUser", ctx, userID).Return(&ports.User{ID: userID, IsActive: true}, nil).Once()

	addressRepo := new(MockAddressRepository)
	hubRepo := new(MockHubRepository)
	counterRepo := new(MockCounterRepository)
	uow := new(MockAddressUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("HubRepository").Return(hubRepo).Once(),
		hubRepo.On("GetByCode", ctx, miamiHubCode()).Return(activeHub(), nil).Once(),
		uow.On("CounterRepository").Return(counterRepo).Once(),
		counterRepo.On("Next", ctx, ports.CounterAddress, "MIA").Return(int64(12), nil).Once(),
		uow.On("AddressRepository").Return(addressRepo).Once(),
		addressRepo.On("FindActiveByUserAndHub", ctx, userID, miamiHubCode()).Return(nil, nil).Once(),
		uow.On("AddressRepository").Return(addressRepo).Once(),
		addressRepo.On("Add", mock.Anything, mock.AnythingOfType("*address.CustomAddress")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockAddressUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAllocateAddressCommandHandler(factory, users)
	allocated, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.Equal(t, "HT-MIA-00012/A", allocated.Code().String())
	require.Equal(t, userID, allocated.UserID())
	require.True(t, allocated.IsActive())
	require.True(t, allocated.IsPrimary())

	users.AssertExpectations(t)
	addressRepo.AssertExpectations(t)
	hubRepo.AssertExpectations(t)
	counterRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestAllocateAddressCommandHandler_Handle_UnknownUser(t *testing.T) {
	ctx := t.Context()
	userID := kernel.NewUUID()
	cmd, _ := commands.NewAllocateAddressCommand(userID, miamiHubCode())

	users := new(MockUserDirectory)
	users.On("FindUser", ctx, userID).Return(nil, nil).Once()

	factory := new(MockAddressUoWFactory)

	h := commands.NewAllocateAddressCommandHandler(factory, users)
	_, err := h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	factory.AssertNotCalled(t, "Create")
}

func TestAllocateAddressCommandHandler_Handle_InactiveHub(t *testing.T) {
	ctx := t.Context()
	userID := kernel.NewUUID()
	cmd, _ := commands.NewAllocateAddressCommand(userID, miamiHubCode())

	users := new(MockUserDirectory)
	users.On("FindUser", ctx, userID).Return(&ports.User{ID: userID, IsActive: true}, nil).Once()

	hubRepo := new(MockHubRepository)
	uow := new(MockAddressUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("HubRepository").Return(hubRepo).Once(),
		hubRepo.On("GetByCode", ctx, miamiHubCode()).Return(inactiveHub(), nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockAddressUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAllocateAddressCommandHandler(factory, users)
	_, err := h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
	uow.AssertExpectations(t)
}

func TestAllocateAddressCommandHandler_Handle_DuplicateActiveAddress(t *testing.T) {
	ctx := t.Context()
	userID := kernel.NewUUID()
	cmd, _ := commands.NewAllocateAddressCommand(userID, miamiHubCode())

	users := new(MockUserDirectory)
	users.On("FindUser", ctx, userID).Return(&ports.User{ID: userID, IsActive: true}, nil).Once()

	addressRepo := new(MockAddressRepository)
	hubRepo := new(MockHubRepository)
	counterRepo := new(MockCounterRepository)
	uow := new(MockAddressUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("HubRepository").Return(hubRepo).Once(),
		hubRepo.On("GetByCode", ctx, miamiHubCode()).Return(activeHub(), nil).Once(),
		uow.On("CounterRepository").Return(counterRepo).Once(),
		counterRepo.On("Next", ctx, ports.CounterAddress, "MIA").Return(int64(13), nil).Once(),
		uow.On("AddressRepository").Return(addressRepo).Once(),
		addressRepo.On("FindActiveByUserAndHub", ctx, userID, miamiHubCode()).Return(activeAddress(userID), nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockAddressUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAllocateAddressCommandHandler(factory, users)
	_, err := h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrConflict)
	require.ErrorContains(t, err, "HT-MIA-00001/A")
	uow.AssertNotCalled(t, "Commit", mock.Anything)
	uow.AssertExpectations(t)
}

func TestAllocateAddressCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.AllocateAddressCommand{} // not constructed properly
	h := commands.NewAllocateAddressCommandHandler(new(MockAddressUoWFactory), new(MockUserDirectory))
	_, err := h.Handle(ctx, cmd)
	require.Error(t, err)
}
