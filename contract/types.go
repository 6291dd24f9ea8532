package contract

import "nostromo_launchpad/sdk"

// -----------------------------------------------------------------------------
// Tier levels
// -----------------------------------------------------------------------------

// TierLevel identifies a staking tier. TierNone means "no tier assigned".
type TierLevel uint8

const (
	TierNone    TierLevel = 0
	TierEgg     TierLevel = 1
	TierDog     TierLevel = 2
	TierAlien   TierLevel = 3
	TierWarrior TierLevel = 4
	TierQueen   TierLevel = 5
)

// String prints the tier as lower-case text for events and logs.
func (t TierLevel) String() string {
	switch t {
	case TierEgg:
		return "egg"
	case TierDog:
		return "dog"
	case TierAlien:
		return "alien"
	case TierWarrior:
		return "warrior"
	case TierQueen:
		return "queen"
	default:
		return "none"
	}
}

// Tier is one catalog entry: the stake a level costs and the pool weight it
// grants. Immutable after initialization.
type Tier struct {
	StakeRequirement int64
	PoolWeight       float64
}

// -----------------------------------------------------------------------------
// Project lifecycle states
// -----------------------------------------------------------------------------

// ProjectState is the current phase of a project's funding process. The
// numeric values are part of the wire surface and must not be reordered.
type ProjectState uint8

const (
	StateVote               ProjectState = 0
	StateRegister           ProjectState = 1
	StateInvestmentPhase1   ProjectState = 2
	StateInvestmentPhase2   ProjectState = 3
	StateInvestmentPhase3   ProjectState = 4
	StateClosedFailed       ProjectState = 5
	StateClosedSuccess      ProjectState = 6
	StateBlocked            ProjectState = 7
	StateAskMoreInformation ProjectState = 8
	StatePreInvest          ProjectState = 9
	StatePrepareVote        ProjectState = 10
	StateFunded             ProjectState = 11
	StateDraft              ProjectState = 12
)

// String prints the lifecycle state as short lower-case text.
func (s ProjectState) String() string {
	switch s {
	case StateVote:
		return "vote"
	case StateRegister:
		return "register"
	case StateInvestmentPhase1:
		return "invest1"
	case StateInvestmentPhase2:
		return "invest2"
	case StateInvestmentPhase3:
		return "invest3"
	case StateClosedFailed:
		return "closed_failed"
	case StateClosedSuccess:
		return "closed_success"
	case StateBlocked:
		return "blocked"
	case StateAskMoreInformation:
		return "ask_more_information"
	case StatePreInvest:
		return "preinvest"
	case StatePrepareVote:
		return "prepare_vote"
	case StateFunded:
		return "funded"
	case StateDraft:
		return "draft"
	default:
		return "unknown"
	}
}

// Terminal reports whether a project can never leave this state.
func (s ProjectState) Terminal() bool {
	return s == StateClosedSuccess || s == StateClosedFailed
}

// -----------------------------------------------------------------------------
// Status codes
// -----------------------------------------------------------------------------

// Status is the first field of every operation output. Rejections are
// statuses, never Go errors; errors are reserved for host/storage faults.
type Status uint8

const (
	StatusSuccess             Status = 0
	StatusInvalidTier         Status = 1
	StatusInsufficientBalance Status = 2
	StatusTierAlreadySet      Status = 3
	StatusUserNotFound        Status = 4
	StatusNoTierFound         Status = 5
	StatusUnableToUnstake     Status = 6
	StatusProjectNotFound     Status = 7
	StatusProjectCreateFailed Status = 8
	StatusInvalidProjectID    Status = 9
	StatusInvalidState        Status = 10
	StatusInvalidTransition   Status = 11
	StatusAlreadyRegistered   Status = 12
	StatusNotRegistered       Status = 13
	StatusAlreadyVoted        Status = 14
	StatusRequiresAdmin       Status = 15
)

func (s Status) String() string {
	switch s {
	case StatusSuccess:
		return "success"
	case StatusInvalidTier:
		return "invalid_tier"
	case StatusInsufficientBalance:
		return "insufficient_balance"
	case StatusTierAlreadySet:
		return "tier_already_set"
	case StatusUserNotFound:
		return "user_not_found"
	case StatusNoTierFound:
		return "no_tier_found"
	case StatusUnableToUnstake:
		return "unable_to_unstake"
	case StatusProjectNotFound:
		return "project_not_found"
	case StatusProjectCreateFailed:
		return "project_create_failed"
	case StatusInvalidProjectID:
		return "invalid_project_id"
	case StatusInvalidState:
		return "invalid_state"
	case StatusInvalidTransition:
		return "invalid_transition"
	case StatusAlreadyRegistered:
		return "already_registered"
	case StatusNotRegistered:
		return "not_registered"
	case StatusAlreadyVoted:
		return "already_voted"
	case StatusRequiresAdmin:
		return "requires_admin"
	default:
		return "unknown"
	}
}

// -----------------------------------------------------------------------------
// Votes
// -----------------------------------------------------------------------------

// VoteValue is a vote direction. Only the aggregate survives; the per-user
// direction is folded into the project tallies at cast time.
type VoteValue uint8

const (
	VoteNo  VoteValue = 0
	VoteYes VoteValue = 1
)

// -----------------------------------------------------------------------------
// Records
// -----------------------------------------------------------------------------

// ProjectMeta is the mutable part of a project record.
//
// The InvestOne/Two/Three counters track epochs elapsed inside each
// investment phase. No accrual logic runs yet; they are reserved state.
type ProjectMeta struct {
	Owner       sdk.Address
	State       ProjectState
	YesVotes    uint64
	NoVotes     uint64
	InvestOne   uint8
	InvestTwo   uint8
	InvestThree uint8
}

// ProjectFinance holds a project's financial terms. Set once at creation and
// never mutated by lifecycle transitions.
type ProjectFinance struct {
	TotalAmount   float64
	Threshold     float64
	TokenPrice    uint64
	RaisedAmount  uint64
	RaiseInQubics uint64
	TokensInSale  uint64
}

// CapPair is derived from finance terms on demand; it is not stored.
type CapPair struct {
	MinCap float64
	MaxCap float64
}

// Config is the contract's root configuration: the admin identity, the fee
// schedule and the admin-set investment phase durations. It is persisted in
// state and loaded per call; nothing here lives in package globals.
type Config struct {
	Admin            sdk.Address
	TransactionFee   int64
	ProjectFee       int64
	PhaseOneEpochs   uint8
	PhaseTwoEpochs   uint8
	PhaseThreeEpochs uint8
}

// -----------------------------------------------------------------------------
// Operation inputs and outputs
// -----------------------------------------------------------------------------

type AddUserTierInput struct {
	Tier TierLevel
}

type AddUserTierOutput struct {
	Status Status
}

type RemoveUserTierOutput struct {
	Status Status
}

type CreateProjectInput struct {
	Finance ProjectFinance
}

type CreateProjectOutput struct {
	Status    Status
	ProjectID uint64
}

type GetProjectInput struct {
	ProjectID uint64
}

type GetProjectOutput struct {
	Status  Status
	Meta    ProjectMeta
	Finance ProjectFinance
}

type ChangeProjectStateInput struct {
	ProjectID uint64
	NewState  ProjectState
}

type ChangeProjectStateOutput struct {
	Status Status
}

type RegisterInput struct {
	ProjectID uint64
}

type RegisterOutput struct {
	Status Status
}

type UnregisterInput struct {
	ProjectID uint64
}

type UnregisterOutput struct {
	Status Status
}

type VoteProjectInput struct {
	ProjectID uint64
	Vote      VoteValue
}

type VoteProjectOutput struct {
	Status Status
}

type CheckProjectVoteInput struct {
	ProjectID uint64
}

type CheckProjectVoteOutput struct {
	Status   Status
	YesVotes uint64
	NoVotes  uint64
}

type SetPhaseEpochsInput struct {
	Epochs uint8
}

type SetPhaseEpochsOutput struct {
	Status Status
}

type InvestInProjectInput struct {
	ProjectID uint64
	Amount    uint64
}

type InvestInProjectOutput struct {
	Status Status
}

type ProjectCapsInput struct {
	ProjectID uint64
}

type ProjectCapsOutput struct {
	Status Status
	Caps   CapPair
}

type TotalStakeWeightInput struct {
	ProjectID uint64
}

type TotalStakeWeightOutput struct {
	Status Status
	Total  float64
}

// AddressFromString converts a plain identity string to the sdk wrapper.
func AddressFromString(s string) sdk.Address { return sdk.Address(s) }
