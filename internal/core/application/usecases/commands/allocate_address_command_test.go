package commands_test

import (
	"testing"

	"forwarding/internal/core/application/usecases/commands"
	"forwarding/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAllocateAddressCommand_ValidInput(t *testing.T) {
	userID := kernel.NewUUID()
	cmd, err := commands.NewAllocateAddressCommand(userID, miamiHubCode())
	require.NoError(t, err)
	assert.Equal(t, userID, cmd.UserID())
	assert.Equal(t, "MIA", cmd.Hub().String())
	assert.NoError(t, cmd.Validate())
}

func TestNewAllocateAddressCommand_InvalidUserID(t *testing.T) {
	_, err := commands.NewAllocateAddressCommand(kernel.UUID{}, miamiHubCode())
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestNewAllocateAddressCommand_InvalidHub(t *testing.T) {
	_, err := commands.NewAllocateAddressCommand(kernel.NewUUID(), kernel.HubCode{})
	require.Error(t, err)
}

func TestAllocateAddressCommand_NotConstructed(t *testing.T) {
	var cmd commands.AllocateAddressCommand
	require.ErrorIs(t, cmd.Validate(), commands.ErrAllocateAddressCommandIsNotConstructed)
}
