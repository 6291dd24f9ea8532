package contract_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nostromo_launchpad/contract"
)

// =============================================================================
// Voting Ledger Tests
// =============================================================================

// TestVoteProjectTallies tests yes and no votes from two tiered users.
func TestVoteProjectTallies(t *testing.T) {
	c, host := newTestContract(t)
	id := projectInState(t, c, host, contract.StateVote)

	mustStake(t, c, host, alice, contract.TierQueen)
	mustStake(t, c, host, bob, contract.TierEgg)

	host.CallAs(alice, txFee)
	require.Equal(t, contract.StatusSuccess, c.VoteProject(contract.VoteProjectInput{ProjectID: id, Vote: contract.VoteYes}).Status)
	host.CallAs(bob, txFee)
	require.Equal(t, contract.StatusSuccess, c.VoteProject(contract.VoteProjectInput{ProjectID: id, Vote: contract.VoteNo}).Status)

	out := c.CheckProjectVote(contract.CheckProjectVoteInput{ProjectID: id})

	require.Equal(t, contract.StatusSuccess, out.Status)
	assert.Equal(t, uint64(1), out.YesVotes)
	assert.Equal(t, uint64(1), out.NoVotes)
}

// TestVoteRequiresTier tests that untiered users cannot vote.
func TestVoteRequiresTier(t *testing.T) {
	c, host := newTestContract(t)
	id := projectInState(t, c, host, contract.StateVote)

	host.CallAs(carol, txFee)
	out := c.VoteProject(contract.VoteProjectInput{ProjectID: id, Vote: contract.VoteYes})

	assert.Equal(t, contract.StatusInvalidTier, out.Status)
	assert.Equal(t, startBalance, host.Balances[carol])
}

// TestVoteAfterTierRelease tests that releasing the tier revokes voting
// eligibility.
func TestVoteAfterTierRelease(t *testing.T) {
	c, host := newTestContract(t)
	id := projectInState(t, c, host, contract.StateVote)

	mustStake(t, c, host, alice, contract.TierDog)
	host.CallAs(alice, txFee)
	require.Equal(t, contract.StatusSuccess, c.RemoveUserTier().Status)

	host.CallAs(alice, txFee)
	out := c.VoteProject(contract.VoteProjectInput{ProjectID: id, Vote: contract.VoteYes})

	assert.Equal(t, contract.StatusInvalidTier, out.Status)
}

// TestVoteOutsideVotePhase tests the phase gate.
func TestVoteOutsideVotePhase(t *testing.T) {
	c, host := newTestContract(t)
	id := createDraftProject(t, c, host, alice)
	mustStake(t, c, host, bob, contract.TierAlien)

	host.CallAs(bob, txFee)
	out := c.VoteProject(contract.VoteProjectInput{ProjectID: id, Vote: contract.VoteYes})

	assert.Equal(t, contract.StatusInvalidState, out.Status)
	assert.Equal(t, startBalance-txFee-10, host.Balances[bob])
}

// TestVoteOncePerProject tests the single-fire vote bit; the direction of
// the second attempt does not matter.
func TestVoteOncePerProject(t *testing.T) {
	c, host := newTestContract(t)
	id := projectInState(t, c, host, contract.StateVote)
	mustStake(t, c, host, alice, contract.TierQueen)

	host.CallAs(alice, txFee)
	require.Equal(t, contract.StatusSuccess, c.VoteProject(contract.VoteProjectInput{ProjectID: id, Vote: contract.VoteYes}).Status)

	host.CallAs(alice, txFee)
	out := c.VoteProject(contract.VoteProjectInput{ProjectID: id, Vote: contract.VoteNo})

	assert.Equal(t, contract.StatusAlreadyVoted, out.Status)

	tally := c.CheckProjectVote(contract.CheckProjectVoteInput{ProjectID: id})
	assert.Equal(t, uint64(1), tally.YesVotes)
	assert.Zero(t, tally.NoVotes)
}

// TestVoteBitsArePerProject tests voting on two projects independently.
func TestVoteBitsArePerProject(t *testing.T) {
	c, host := newTestContract(t)
	first := projectInState(t, c, host, contract.StateVote)
	second := projectInState(t, c, host, contract.StateVote)
	mustStake(t, c, host, alice, contract.TierEgg)

	host.CallAs(alice, txFee)
	require.Equal(t, contract.StatusSuccess, c.VoteProject(contract.VoteProjectInput{ProjectID: first, Vote: contract.VoteYes}).Status)

	host.CallAs(alice, txFee)
	out := c.VoteProject(contract.VoteProjectInput{ProjectID: second, Vote: contract.VoteNo})

	assert.Equal(t, contract.StatusSuccess, out.Status)
}

// TestVoteInvalidProject tests the id range check.
func TestVoteInvalidProject(t *testing.T) {
	c, host := newTestContract(t)
	mustStake(t, c, host, alice, contract.TierEgg)

	host.CallAs(alice, txFee)
	out := c.VoteProject(contract.VoteProjectInput{ProjectID: 5, Vote: contract.VoteYes})

	assert.Equal(t, contract.StatusInvalidProjectID, out.Status)
}

// TestCheckProjectVoteInvalidProject tests the read-only id range check.
func TestCheckProjectVoteInvalidProject(t *testing.T) {
	c, _ := newTestContract(t)

	out := c.CheckProjectVote(contract.CheckProjectVoteInput{ProjectID: 0})

	assert.Equal(t, contract.StatusInvalidProjectID, out.Status)
}
