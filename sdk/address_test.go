package sdk_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"nostromo_launchpad/sdk"
)

// TestAddressIsValid tests the identity shape check.
func TestAddressIsValid(t *testing.T) {
	assert.True(t, sdk.Address(strings.Repeat("A", 60)).IsValid())
	assert.False(t, sdk.Address(strings.Repeat("A", 59)).IsValid())
	assert.False(t, sdk.Address(strings.Repeat("A", 61)).IsValid())
	assert.False(t, sdk.Address(strings.Repeat("a", 60)).IsValid())
	assert.False(t, sdk.Address(strings.Repeat("A", 59)+"1").IsValid())
	assert.False(t, sdk.ZeroAddress.IsValid())
}

// TestAddressIsZero tests the zero identity.
func TestAddressIsZero(t *testing.T) {
	assert.True(t, sdk.ZeroAddress.IsZero())
	assert.False(t, sdk.Address(strings.Repeat("B", 60)).IsZero())
}

// TestMockHostTracksBalancesAndTransfers tests the payment flow helpers the
// contract tests depend on.
func TestMockHostTracksBalancesAndTransfers(t *testing.T) {
	host := sdk.NewMockHost()
	user := sdk.Address(strings.Repeat("C", 60))

	host.Fund(user, 1000)
	host.CallAs(user, 400)

	assert.Equal(t, user, host.Invocator())
	assert.Equal(t, int64(400), host.InvocationReward())
	assert.Equal(t, int64(600), host.Balances[user])

	host.Transfer(user, 150)
	assert.Equal(t, int64(750), host.Balances[user])
	assert.Equal(t, []sdk.TransferRecord{{To: user, Amount: 150}}, host.Transfers)

	host.Log("x|y:1")
	assert.Equal(t, "x|y:1", host.LastEntry())
}
