package address_test

import (
	"testing"

	"forwarding/internal/core/domain/model/address"
	"forwarding/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHubAddress(t *testing.T) {
	t.Run("registers an active hub", func(t *testing.T) {
		h, err := address.NewHubAddress(
			kernel.NewUUID(), mustHub(t, "MIA"), "Miami", miamiUSAddress())
		require.NoError(t, err)

		assert.Equal(t, "MIA", h.Hub().String())
		assert.Equal(t, "Miami", h.HubName())
		assert.True(t, h.IsActive())
	})

	t.Run("rejects an empty name", func(t *testing.T) {
		_, err := address.NewHubAddress(
			kernel.NewUUID(), mustHub(t, "MIA"), "", miamiUSAddress())
		require.Error(t, err)
	})
}

func TestHubAddress_Update(t *testing.T) {
	h, err := address.NewHubAddress(
		kernel.NewUUID(), mustHub(t, "MIA"), "Miami", miamiUSAddress())
	require.NoError(t, err)
	require.NoError(t, h.Deactivate())

	newUS := address.USAddress{Street: "100 Brickell Ave", City: "Miami", State: "FL", Zip: "33131"}
	require.NoError(t, h.Update("Miami Downtown", newUS))

	assert.Equal(t, "Miami Downtown", h.HubName())
	assert.Equal(t, newUS, h.USAddress())
	assert.True(t, h.IsActive(), "update reactivates the hub")
}

func TestHubAddress_Deactivate(t *testing.T) {
	h, err := address.NewHubAddress(
		kernel.NewUUID(), mustHub(t, "NMB"), "North Miami Beach", miamiUSAddress())
	require.NoError(t, err)

	require.NoError(t, h.Deactivate())
	assert.False(t, h.IsActive())

	require.NoError(t, h.Deactivate())
	assert.False(t, h.IsActive())
}
