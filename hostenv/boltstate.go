// Package hostenv provides a local hosting environment for the launchpad
// contract: a durable key/value state backed by bbolt and an account ledger
// with attached-payment semantics. It stands in for the production execution
// environment during development and integration testing.
package hostenv

import (
	"fmt"
	"os"
	"path/filepath"

	"go.etcd.io/bbolt"

	"nostromo_launchpad/contract"
)

var (
	bucketState    = []byte("state")
	bucketBalances = []byte("balances")
)

// BoltState is a durable contract.State. All reads and writes go through an
// in-memory cache; mutations are buffered until Flush commits them in one
// bolt transaction, so a failed call can be rolled back with Discard.
type BoltState struct {
	db    *bbolt.DB
	cache map[string]string
	dirty map[string]bool
}

// Compile-time interface check.
var _ contract.State = (*BoltState)(nil)

// OpenBoltState opens or creates the bbolt database at dbPath and loads the
// stored contract state into memory. The parent directory is created if it
// does not exist.
func OpenBoltState(dbPath string) (*BoltState, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0700); err != nil {
		return nil, fmt.Errorf("hostenv: create directory: %w", err)
	}
	db, err := bbolt.Open(dbPath, 0600, nil)
	if err != nil {
		return nil, fmt.Errorf("hostenv: open bolt db: %w", err)
	}

	err = db.Update(func(tx *bbolt.Tx) error {
		for _, name := range [][]byte{bucketState, bucketBalances} {
			if _, err := tx.CreateBucketIfNotExists(name); err != nil {
				return fmt.Errorf("create bucket %q: %w", name, err)
			}
		}
		return nil
	})
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("hostenv: create buckets: %w", err)
	}

	s := &BoltState{
		db:    db,
		cache: make(map[string]string),
		dirty: make(map[string]bool),
	}
	if err := s.load(); err != nil {
		_ = db.Close()
		return nil, err
	}
	return s, nil
}

// Close closes the underlying database. Buffered writes are not flushed.
func (s *BoltState) Close() error { return s.db.Close() }

func (s *BoltState) load() error {
	s.cache = make(map[string]string)
	s.dirty = make(map[string]bool)
	return s.db.View(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketState).ForEach(func(k, v []byte) error {
			s.cache[string(k)] = string(v)
			return nil
		})
	})
}

func (s *BoltState) Set(key, value string) {
	s.cache[key] = value
	s.dirty[key] = true
}

func (s *BoltState) Get(key string) *string {
	val, ok := s.cache[key]
	if !ok {
		return nil
	}
	return &val
}

func (s *BoltState) Delete(key string) {
	delete(s.cache, key)
	s.dirty[key] = true
}

// Flush commits every buffered mutation in a single transaction.
func (s *BoltState) Flush() error {
	if len(s.dirty) == 0 {
		return nil
	}
	err := s.db.Update(func(tx *bbolt.Tx) error {
		b := tx.Bucket(bucketState)
		for key := range s.dirty {
			val, ok := s.cache[key]
			if !ok {
				if err := b.Delete([]byte(key)); err != nil {
					return fmt.Errorf("delete %q: %w", key, err)
				}
				continue
			}
			if err := b.Put([]byte(key), []byte(val)); err != nil {
				return fmt.Errorf("put %q: %w", key, err)
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("hostenv: flush state: %w", err)
	}
	s.dirty = make(map[string]bool)
	return nil
}

// Discard drops buffered mutations and reloads the committed state.
func (s *BoltState) Discard() error {
	if len(s.dirty) == 0 {
		return nil
	}
	if err := s.load(); err != nil {
		return fmt.Errorf("hostenv: reload state: %w", err)
	}
	return nil
}
