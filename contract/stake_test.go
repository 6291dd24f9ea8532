package contract_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nostromo_launchpad/contract"
)

// =============================================================================
// Stake Ledger Tests
// =============================================================================

// TestAddUserTierLocksStake tests that staking retains fee plus stake and
// raises the aggregate staked total.
func TestAddUserTierLocksStake(t *testing.T) {
	c, host := newTestContract(t)

	mustStake(t, c, host, alice, contract.TierQueen)

	assert.Equal(t, contract.TierQueen, c.UserTier(alice.String()))
	assert.Equal(t, int64(100), c.StakedTotalAmount())
	// Nothing refunded: the fee and the stake both stay with the contract.
	assert.Equal(t, startBalance-txFee-100, host.Balances[alice])
	assert.Contains(t, host.LastEntry(), "t:queen")
}

// TestAddUserTierSecondTierRejected tests tier exclusivity per user.
func TestAddUserTierSecondTierRejected(t *testing.T) {
	c, host := newTestContract(t)
	mustStake(t, c, host, alice, contract.TierDog)

	host.CallAs(alice, txFee+stakeOf(contract.TierEgg))
	out := c.AddUserTier(contract.AddUserTierInput{Tier: contract.TierEgg})

	assert.Equal(t, contract.StatusTierAlreadySet, out.Status)
	assert.Equal(t, contract.TierDog, c.UserTier(alice.String()))
	// Full payment came back, so only the first call cost anything.
	assert.Equal(t, startBalance-txFee-5, host.Balances[alice])
	assert.Equal(t, int64(5), c.StakedTotalAmount())
}

// TestAddUserTierInvalidLevels tests rejection of NONE and out-of-catalog
// levels with a full refund.
func TestAddUserTierInvalidLevels(t *testing.T) {
	c, host := newTestContract(t)

	for _, level := range []contract.TierLevel{contract.TierNone, contract.TierLevel(9)} {
		host.CallAs(bob, txFee+500)
		out := c.AddUserTier(contract.AddUserTierInput{Tier: level})
		assert.Equal(t, contract.StatusInvalidTier, out.Status)
	}
	assert.Equal(t, startBalance, host.Balances[bob])
	assert.Equal(t, int64(0), c.StakedTotalAmount())
}

// TestAddUserTierInsufficientPayment tests that a payment covering the fee
// but not the stake is rejected and returned in full.
func TestAddUserTierInsufficientPayment(t *testing.T) {
	c, host := newTestContract(t)

	host.CallAs(alice, txFee+stakeOf(contract.TierWarrior)-1)
	out := c.AddUserTier(contract.AddUserTierInput{Tier: contract.TierWarrior})

	assert.Equal(t, contract.StatusInsufficientBalance, out.Status)
	assert.Equal(t, startBalance, host.Balances[alice])
	assert.Equal(t, contract.TierNone, c.UserTier(alice.String()))
}

// TestAddUserTierUnderFee tests rejection when the payment does not even
// cover the transaction fee.
func TestAddUserTierUnderFee(t *testing.T) {
	c, host := newTestContract(t)

	host.CallAs(alice, txFee-1)
	out := c.AddUserTier(contract.AddUserTierInput{Tier: contract.TierEgg})

	assert.Equal(t, contract.StatusInsufficientBalance, out.Status)
	assert.Equal(t, startBalance, host.Balances[alice])
}

// TestRemoveUserTierReturnsStake tests that unstaking returns exactly the
// stake, keeps the fee, and clears the tier.
func TestRemoveUserTierReturnsStake(t *testing.T) {
	c, host := newTestContract(t)
	mustStake(t, c, host, alice, contract.TierAlien)

	host.CallAs(alice, txFee)
	out := c.RemoveUserTier()

	require.Equal(t, contract.StatusSuccess, out.Status)
	assert.Equal(t, contract.TierNone, c.UserTier(alice.String()))
	assert.Equal(t, int64(0), c.StakedTotalAmount())
	// Two fees paid in total, stake returned.
	assert.Equal(t, startBalance-2*txFee, host.Balances[alice])
}

// TestRemoveUserTierUnknownUser tests the rejection for a user the stake
// ledger has never seen.
func TestRemoveUserTierUnknownUser(t *testing.T) {
	c, host := newTestContract(t)

	host.CallAs(bob, txFee)
	out := c.RemoveUserTier()

	assert.Equal(t, contract.StatusUserNotFound, out.Status)
	assert.Equal(t, startBalance, host.Balances[bob])
}

// TestRemoveUserTierTwice tests that a second release is rejected once the
// tier is already NONE.
func TestRemoveUserTierTwice(t *testing.T) {
	c, host := newTestContract(t)
	mustStake(t, c, host, alice, contract.TierEgg)

	host.CallAs(alice, txFee)
	require.Equal(t, contract.StatusSuccess, c.RemoveUserTier().Status)

	host.CallAs(alice, txFee)
	out := c.RemoveUserTier()

	assert.Equal(t, contract.StatusNoTierFound, out.Status)
}

// TestRestakeAfterRelease tests the add -> remove -> add cycle.
func TestRestakeAfterRelease(t *testing.T) {
	c, host := newTestContract(t)

	mustStake(t, c, host, alice, contract.TierEgg)
	host.CallAs(alice, txFee)
	require.Equal(t, contract.StatusSuccess, c.RemoveUserTier().Status)

	mustStake(t, c, host, alice, contract.TierQueen)

	assert.Equal(t, contract.TierQueen, c.UserTier(alice.String()))
	assert.Equal(t, int64(100), c.StakedTotalAmount())
}

// TestStakedTotalTracksOutstandingStakes tests the aggregate across several
// users staking and unstaking.
func TestStakedTotalTracksOutstandingStakes(t *testing.T) {
	c, host := newTestContract(t)

	mustStake(t, c, host, alice, contract.TierQueen)
	mustStake(t, c, host, bob, contract.TierWarrior)
	mustStake(t, c, host, carol, contract.TierDog)
	assert.Equal(t, int64(135), c.StakedTotalAmount())

	host.CallAs(bob, txFee)
	require.Equal(t, contract.StatusSuccess, c.RemoveUserTier().Status)
	assert.Equal(t, int64(105), c.StakedTotalAmount())
}
