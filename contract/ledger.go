package contract

import (
	"encoding/json"
	"errors"

	"nostromo_launchpad/sdk"
)

// ErrLedgerFull is returned when a per-user ledger has reached its capacity
// ceiling. Procedures translate it into a refunded rejection; it never
// escapes the operation boundary.
var ErrLedgerFull = errors.New("ledger at capacity")

// -----------------------------------------------------------------------------
// Per-user project flag rows
// -----------------------------------------------------------------------------

// projectFlags is a fixed-width bitset with one bit per project slot. The
// width is a parameter so the project capacity never leaks into the callers.
type projectFlags []byte

// newProjectFlags allocates a cleared row sized for `projects` slots.
func newProjectFlags(projects int) projectFlags {
	return make(projectFlags, (projects+7)/8)
}

func (f projectFlags) get(id uint64) bool {
	idx := id / 8
	if idx >= uint64(len(f)) {
		return false
	}
	return f[idx]&(1<<(id%8)) != 0
}

func (f projectFlags) set(id uint64, v bool) {
	idx := id / 8
	if idx >= uint64(len(f)) {
		return
	}
	if v {
		f[idx] |= 1 << (id % 8)
	} else {
		f[idx] &^= 1 << (id % 8)
	}
}

// -----------------------------------------------------------------------------
// Capacity-checked per-user ledgers
// -----------------------------------------------------------------------------

// userLedger stores one record per user under a byte prefix and keeps an
// insertion-ordered index of users. The index makes full-ledger scans
// deterministic and doubles as the capacity counter: the host kv itself has
// no iteration, so every user-keyed ledger that must be walked (or bounded)
// goes through this.
type userLedger struct {
	prefix   byte
	indexKey string
	capacity int
}

func (l userLedger) load(st State, addr sdk.Address) *string {
	return st.Get(userKey(l.prefix, addr))
}

// store writes the user's record, admitting the user into the index on first
// write. A first write past capacity is refused with ErrLedgerFull.
func (l userLedger) store(st State, addr sdk.Address, val string) error {
	key := userKey(l.prefix, addr)
	if st.Get(key) == nil {
		users := l.users(st)
		if len(users) >= l.capacity {
			return ErrLedgerFull
		}
		users = append(users, addr)
		b, err := json.Marshal(users)
		if err != nil {
			return err
		}
		st.Set(l.indexKey, string(b))
	}
	st.Set(key, val)
	return nil
}

// users returns every user ever admitted, in insertion order.
func (l userLedger) users(st State) []sdk.Address {
	ptr := st.Get(l.indexKey)
	if ptr == nil {
		return nil
	}
	var users []sdk.Address
	if err := json.Unmarshal([]byte(*ptr), &users); err != nil {
		return nil
	}
	return users
}

// The three live ledgers plus the reserved investment one. Records:
// stakers hold a single tier byte, registrants and voters hold a
// projectFlags row, investors will hold per-project amounts once the
// investment path goes live.
func stakerLedger() userLedger {
	return userLedger{prefix: kUserTier, indexKey: stakersIndexKey, capacity: MaxUsers}
}

func registrantLedger() userLedger {
	return userLedger{prefix: kRegFlags, indexKey: registrantsIndexKey, capacity: MaxUsers}
}

func voterLedger() userLedger {
	return userLedger{prefix: kVoteFlags, indexKey: votersIndexKey, capacity: MaxUsers}
}

func investorLedger() userLedger {
	return userLedger{prefix: kInvestments, indexKey: investorsIndexKey, capacity: MaxUsers}
}

// loadFlags decodes a user's flag row; absent users get nil.
func loadFlags(l userLedger, st State, addr sdk.Address) projectFlags {
	ptr := l.load(st, addr)
	if ptr == nil {
		return nil
	}
	return projectFlags(*ptr)
}

// storeFlags persists a flag row back to the user's slot.
func storeFlags(l userLedger, st State, addr sdk.Address, f projectFlags) error {
	return l.store(st, addr, string(f))
}
