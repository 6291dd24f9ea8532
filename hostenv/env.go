package hostenv

import (
	"encoding/binary"
	"errors"
	"fmt"
	"log"

	"github.com/google/uuid"
	"go.etcd.io/bbolt"

	"nostromo_launchpad/sdk"
)

// contractAccount is the ledger key holding funds currently owned by the
// contract. It is not a valid identity, so it can never collide with a user.
const contractAccount = "!contract"

// ErrInsufficientFunds is returned by Begin when the caller cannot cover
// the payment it wants to attach.
var ErrInsufficientFunds = errors.New("hostenv: insufficient funds")

// Env implements sdk.Host on top of a BoltState's database. Each call is
// framed by Begin, which moves the attached payment from the caller to the
// contract account and mints a transaction id for log correlation.
type Env struct {
	state  *BoltState
	logger *log.Logger

	caller sdk.Address
	reward int64
	txID   string
}

// Compile-time interface check.
var _ sdk.Host = (*Env)(nil)

// NewEnv wires an Env to an opened BoltState. Log lines go to logger.
func NewEnv(state *BoltState, logger *log.Logger) *Env {
	return &Env{state: state, logger: logger}
}

// Begin frames the next contract call: caller becomes the invocator and
// amount the attached payment. The amount is debited from the caller's
// balance up front, mirroring how the execution environment moves the
// reward before the call runs.
func (e *Env) Begin(caller sdk.Address, amount int64) error {
	if amount < 0 {
		return fmt.Errorf("hostenv: negative payment %d", amount)
	}
	if amount > 0 {
		if err := e.move(string(caller), contractAccount, amount); err != nil {
			return err
		}
	}
	e.caller = caller
	e.reward = amount
	e.txID = uuid.NewString()
	return nil
}

// BeginQuery frames a read-only call: no caller, no payment. Rejections on
// the query surface must never move funds, so the reward is zeroed.
func (e *Env) BeginQuery() {
	e.caller = sdk.ZeroAddress
	e.reward = 0
	e.txID = uuid.NewString()
}

// TxID returns the id minted by the last Begin.
func (e *Env) TxID() string { return e.txID }

func (e *Env) Invocator() sdk.Address { return e.caller }

func (e *Env) InvocationReward() int64 { return e.reward }

// Transfer moves amount from the contract account to an address. A failed
// ledger write here means the database is gone, so it is fatal.
func (e *Env) Transfer(to sdk.Address, amount int64) {
	if amount <= 0 {
		return
	}
	if err := e.move(contractAccount, string(to), amount); err != nil {
		panic(err)
	}
}

func (e *Env) Log(msg string) {
	e.logger.Printf("tx=%s %s", e.txID, msg)
}

// Balance returns an account's current holdings.
func (e *Env) Balance(addr sdk.Address) (int64, error) {
	var bal int64
	err := e.state.db.View(func(tx *bbolt.Tx) error {
		bal = readBalance(tx.Bucket(bucketBalances), string(addr))
		return nil
	})
	return bal, err
}

// Credit adds amount to an account, the faucet for local development.
func (e *Env) Credit(addr sdk.Address, amount int64) error {
	if amount <= 0 {
		return fmt.Errorf("hostenv: credit must be positive, got %d", amount)
	}
	return e.state.db.Update(func(tx *bbolt.Tx) error {
		b := tx.Bucket(bucketBalances)
		return writeBalance(b, string(addr), readBalance(b, string(addr))+amount)
	})
}

func (e *Env) move(from, to string, amount int64) error {
	return e.state.db.Update(func(tx *bbolt.Tx) error {
		b := tx.Bucket(bucketBalances)
		src := readBalance(b, from)
		if src < amount {
			return fmt.Errorf("%w: %s has %d, needs %d", ErrInsufficientFunds, from, src, amount)
		}
		if err := writeBalance(b, from, src-amount); err != nil {
			return err
		}
		return writeBalance(b, to, readBalance(b, to)+amount)
	})
}

func readBalance(b *bbolt.Bucket, key string) int64 {
	raw := b.Get([]byte(key))
	if len(raw) != 8 {
		return 0
	}
	return int64(binary.BigEndian.Uint64(raw))
}

func writeBalance(b *bbolt.Bucket, key string, bal int64) error {
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], uint64(bal))
	return b.Put([]byte(key), buf[:])
}
