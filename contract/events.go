package contract

import (
	"fmt"

	"nostromo_launchpad/sdk"
)

// Event lines are terse pipe-delimited strings so explorers can follow the
// ledger without diffing storage.

// emitInitialized records the admin fixed at initialization.
func emitInitialized(h sdk.Host, admin string) {
	h.Log(fmt.Sprintf("init|adm:%s", admin))
}

// emitTierAssigned pings watchers when a user stakes into a level.
func emitTierAssigned(h sdk.Host, user string, tier TierLevel, stake int64) {
	h.Log(fmt.Sprintf("ts|by:%s|t:%s|amt:%d", user, tier, stake))
}

// emitTierReleased mirrors the assign ping for unstaking.
func emitTierReleased(h sdk.Host, user string, tier TierLevel, stake int64) {
	h.Log(fmt.Sprintf("tr|by:%s|t:%s|amt:%d", user, tier, stake))
}

// emitProjectCreated gives explorers a neat ping for every new campaign.
func emitProjectCreated(h sdk.Host, id uint64, owner string) {
	h.Log(fmt.Sprintf("pc|id:%d|by:%s", id, owner))
}

// emitProjectStateChanged is the log entry for any lifecycle flip.
func emitProjectStateChanged(h sdk.Host, id uint64, state ProjectState) {
	h.Log(fmt.Sprintf("ps|id:%d|s:%s", id, state))
}

// emitRegistered flags an opt-in during the registration phase.
func emitRegistered(h sdk.Host, id uint64, user string) {
	h.Log(fmt.Sprintf("rg|id:%d|by:%s", id, user))
}

// emitUnregistered flags the opt-out.
func emitUnregistered(h sdk.Host, id uint64, user string) {
	h.Log(fmt.Sprintf("ur|id:%d|by:%s", id, user))
}

// emitVoteCast includes the direction so tallies can be replayed from logs.
func emitVoteCast(h sdk.Host, id uint64, user string, vote VoteValue) {
	h.Log(fmt.Sprintf("v|id:%d|by:%s|y:%d", id, user, vote))
}

// emitPhaseEpochsSet spells out admin phase-duration changes for auditors.
func emitPhaseEpochsSet(h sdk.Host, phase int, epochs uint8) {
	h.Log(fmt.Sprintf("pe|p:%d|n:%d", phase, epochs))
}
