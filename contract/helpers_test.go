package contract_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"nostromo_launchpad/contract"
	"nostromo_launchpad/sdk"
)

// Test identities: 60 upper-case letters each, like real ones.
var (
	admin = sdk.Address("ADMIN" + strings.Repeat("A", 55))
	alice = sdk.Address("ALICE" + strings.Repeat("B", 55))
	bob   = sdk.Address("BOB" + strings.Repeat("C", 57))
	carol = sdk.Address("CAROL" + strings.Repeat("D", 55))
)

const (
	txFee      = contract.DefaultTransactionFee
	projectFee = contract.DefaultProjectFee

	startBalance = int64(10_000_000)
)

// newTestContract initializes a fresh contract over an in-memory state with
// admin as the initializing caller and every test identity funded.
func newTestContract(t *testing.T) (*contract.Contract, *sdk.MockHost) {
	t.Helper()
	host := sdk.NewMockHost()
	c := contract.New(contract.NewMemState(), host)
	for _, id := range []sdk.Address{admin, alice, bob, carol} {
		host.Fund(id, startBalance)
	}
	host.CallAs(admin, 0)
	require.NoError(t, c.Init())
	return c, host
}

// stakeOf returns the stake requirement the catalog assigns to a level.
func stakeOf(level contract.TierLevel) int64 {
	switch level {
	case contract.TierEgg:
		return 1
	case contract.TierDog:
		return 5
	case contract.TierAlien:
		return 10
	case contract.TierWarrior:
		return 30
	case contract.TierQueen:
		return 100
	default:
		return 0
	}
}

// mustStake puts a user into a tier, paying the exact fee plus stake.
func mustStake(t *testing.T, c *contract.Contract, host *sdk.MockHost, user sdk.Address, level contract.TierLevel) {
	t.Helper()
	host.CallAs(user, txFee+stakeOf(level))
	out := c.AddUserTier(contract.AddUserTierInput{Tier: level})
	require.Equal(t, contract.StatusSuccess, out.Status)
}

// testFinance is the finance record most project tests create: a 250k target
// with a 10% threshold.
func testFinance() contract.ProjectFinance {
	return contract.ProjectFinance{
		TotalAmount:   250_000,
		Threshold:     0.1,
		TokenPrice:    5,
		RaiseInQubics: 1_250_000,
		TokensInSale:  50_000,
	}
}

// createDraftProject creates a project owned by owner and returns its id.
func createDraftProject(t *testing.T, c *contract.Contract, host *sdk.MockHost, owner sdk.Address) uint64 {
	t.Helper()
	host.CallAs(owner, txFee+projectFee)
	out := c.CreateProject(contract.CreateProjectInput{Finance: testFinance()})
	require.Equal(t, contract.StatusSuccess, out.Status)
	return out.ProjectID
}

// projectInState creates an alice-owned project and forces it into state.
func projectInState(t *testing.T, c *contract.Contract, host *sdk.MockHost, state contract.ProjectState) uint64 {
	t.Helper()
	id := createDraftProject(t, c, host, alice)
	c.ForceProjectState(id, state)
	return id
}
