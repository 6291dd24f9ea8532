package contract

// -----------------------------------------------------------------------------
// Capacity ceilings
// -----------------------------------------------------------------------------

// The ledgers are bounded; writes past these ceilings are refused instead of
// growing without limit. The values match the on-chain deployment sizing.
const (
	// MaxUsers bounds the per-user ledgers (tiers, registrations, votes).
	MaxUsers = 131072
	// MaxProjects bounds the project registry and sizes the per-user
	// project flag rows.
	MaxProjects = 1024
	// MaxLevels bounds the tier catalog.
	MaxLevels = 8
)

// -----------------------------------------------------------------------------
// Fees
// -----------------------------------------------------------------------------

// Fees are fixed at initialization and persisted in the contract config.
const (
	// DefaultTransactionFee is the minimum admission price for any
	// end-user write, in settlement units.
	DefaultTransactionFee int64 = 1000
	// DefaultProjectFee is charged on top of the transaction fee when
	// creating a project.
	DefaultProjectFee int64 = 10000
)

// -----------------------------------------------------------------------------
// Storage key prefixes
// -----------------------------------------------------------------------------

const (
	// kConfig stores the encoded contract config (admin, fees, phase epochs).
	kConfig byte = 0x00
	// kTier stores one catalog entry per tier level.
	kTier byte = 0x01
	// kUserTier stores the single tier byte assigned to a user.
	kUserTier byte = 0x02
	// kProjectMeta contains encoded project metadata records.
	kProjectMeta byte = 0x03
	// kProjectFinance tracks the immutable finance terms per project.
	kProjectFinance byte = 0x04
	// kRegFlags stores the per-user registration bitset rows.
	kRegFlags byte = 0x05
	// kVoteFlags stores the per-user voted bitset rows.
	kVoteFlags byte = 0x06
	// kInvestments is reserved for the per-user investment rows. The write
	// path is not live yet; the prefix is kept for layout stability.
	kInvestments byte = 0x07
)

// -----------------------------------------------------------------------------
// Counter and index keys
// -----------------------------------------------------------------------------

const (
	// ProjectsCount holds the monotonically increasing project id counter.
	ProjectsCount = "count:proj"
	// StakedTotal holds the aggregate amount currently staked.
	StakedTotal = "staked:total"
	// stakersIndexKey lists users in tier-assignment order.
	stakersIndexKey = "idx:stakers"
	// registrantsIndexKey lists users in first-registration order. The
	// stake-weight scan iterates it, so order must be deterministic.
	registrantsIndexKey = "idx:registrants"
	// votersIndexKey lists users in first-vote order.
	votersIndexKey = "idx:voters"
	// investorsIndexKey is reserved alongside kInvestments.
	investorsIndexKey = "idx:investors"
)
