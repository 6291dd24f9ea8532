package contract

import (
	"errors"
	"strconv"
	"sync"

	"nostromo_launchpad/sdk"
)

// Contract owns the launchpad ledgers. All standing state lives in the State
// store; the Host supplies caller identity, attached payment and the
// transfer primitive. One mutex serializes every operation, so concurrent
// callers observe linearizable, one-at-a-time effects.
type Contract struct {
	mu    sync.Mutex
	state State
	host  sdk.Host
}

// ErrAlreadyInitialized is returned when Init runs against a state store
// that already carries a contract config.
var ErrAlreadyInitialized = errors.New("contract already initialized")

// ErrNotInitialized is returned by Invoke/Query before Init has run.
var ErrNotInitialized = errors.New("contract not initialized")

func New(state State, host sdk.Host) *Contract {
	return &Contract{state: state, host: host}
}

// Init runs once before any call is accepted: it populates the five fixed
// tier entries, sets the fee schedule, zeroes the staked total and project
// counter, and fixes the admin to the initializing caller.
func (c *Contract) Init() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state.Get(configKey()) != nil {
		return ErrAlreadyInitialized
	}

	c.saveTier(TierEgg, &Tier{StakeRequirement: 1, PoolWeight: 5.5})
	c.saveTier(TierDog, &Tier{StakeRequirement: 5, PoolWeight: 30.0})
	c.saveTier(TierAlien, &Tier{StakeRequirement: 10, PoolWeight: 75.0})
	c.saveTier(TierWarrior, &Tier{StakeRequirement: 30, PoolWeight: 305.0})
	c.saveTier(TierQueen, &Tier{StakeRequirement: 100, PoolWeight: 1375.0})

	cfg := Config{
		Admin:          c.host.Invocator(),
		TransactionFee: DefaultTransactionFee,
		ProjectFee:     DefaultProjectFee,
	}
	c.saveConfig(&cfg)
	c.setCount(ProjectsCount, 0)
	c.setCount(StakedTotal, 0)

	emitInitialized(c.host, cfg.Admin.String())
	return nil
}

// Initialized reports whether Init has run against the backing state.
func (c *Contract) Initialized() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state.Get(configKey()) != nil
}

// -----------------------------------------------------------------------------
// Persistence helpers
// -----------------------------------------------------------------------------

// config loads the contract config. A missing or corrupt config is a fatal
// misconfiguration, not a user error: Init must have run first.
func (c *Contract) config() *Config {
	ptr := c.state.Get(configKey())
	if ptr == nil {
		panic(ErrNotInitialized)
	}
	cfg, err := decodeConfig([]byte(*ptr))
	if err != nil {
		panic(err)
	}
	return cfg
}

func (c *Contract) saveConfig(cfg *Config) {
	c.state.Set(configKey(), string(encodeConfig(cfg)))
}

// tier resolves a catalog entry. TierNone is never in the catalog.
func (c *Contract) tier(level TierLevel) (*Tier, bool) {
	ptr := c.state.Get(tierKey(level))
	if ptr == nil {
		return nil, false
	}
	t, err := decodeTier([]byte(*ptr))
	if err != nil {
		panic(err)
	}
	return t, true
}

func (c *Contract) saveTier(level TierLevel, t *Tier) {
	c.state.Set(tierKey(level), string(encodeTier(t)))
}

// userTier returns the user's assigned level and whether the user has a
// stake record at all.
func (c *Contract) userTier(addr sdk.Address) (TierLevel, bool) {
	ptr := stakerLedger().load(c.state, addr)
	if ptr == nil || len(*ptr) == 0 {
		return TierNone, false
	}
	return TierLevel((*ptr)[0]), true
}

func (c *Contract) saveUserTier(addr sdk.Address, level TierLevel) error {
	return stakerLedger().store(c.state, addr, string([]byte{byte(level)}))
}

func (c *Contract) loadProjectMeta(id uint64) *ProjectMeta {
	ptr := c.state.Get(projectMetaKey(id))
	if ptr == nil {
		return nil
	}
	m, err := decodeProjectMeta([]byte(*ptr))
	if err != nil {
		panic(err)
	}
	return m
}

func (c *Contract) saveProjectMeta(id uint64, m *ProjectMeta) {
	c.state.Set(projectMetaKey(id), string(encodeProjectMeta(m)))
}

func (c *Contract) loadProjectFinance(id uint64) *ProjectFinance {
	ptr := c.state.Get(projectFinanceKey(id))
	if ptr == nil {
		return nil
	}
	f, err := decodeProjectFinance([]byte(*ptr))
	if err != nil {
		panic(err)
	}
	return f
}

func (c *Contract) saveProjectFinance(id uint64, f *ProjectFinance) {
	c.state.Set(projectFinanceKey(id), string(encodeProjectFinance(f)))
}

// getCount reads a string counter, defaulting to zero.
func (c *Contract) getCount(key string) uint64 {
	ptr := c.state.Get(key)
	if ptr == nil || *ptr == "" {
		return 0
	}
	n, _ := strconv.ParseUint(*ptr, 10, 64)
	return n
}

// setCount stores uint64 counters back as decimal strings for the host kv.
func (c *Contract) setCount(key string, n uint64) {
	c.state.Set(key, strconv.FormatUint(n, 10))
}

// projectExists checks an id against the monotonically increasing counter.
func (c *Contract) projectExists(id uint64) bool {
	return id < c.getCount(ProjectsCount)
}

// StakedTotalAmount returns the aggregate amount currently staked.
func (c *Contract) StakedTotalAmount() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return int64(c.getCount(StakedTotal))
}

// ProjectCount returns the next project id, i.e. how many were created.
func (c *Contract) ProjectCount() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.getCount(ProjectsCount)
}
