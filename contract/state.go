package contract

// State is the key/value store the hosting environment provides for all
// standing ledger data. Get returns nil when the key is absent.
type State interface {
	Set(key, value string)
	Get(key string) *string
	Delete(key string)
}

// MemState is a plain in-memory State, used by tests and as the default
// backing store when no durable one is wired in.
type MemState struct {
	db map[string]string
}

func NewMemState() *MemState {
	return &MemState{db: make(map[string]string)}
}

func (m *MemState) Set(key, value string) {
	m.db[key] = value
}

func (m *MemState) Get(key string) *string {
	val, ok := m.db[key]
	if !ok {
		return nil
	}
	return &val
}

func (m *MemState) Delete(key string) {
	delete(m.db, key)
}

// Len reports the number of stored keys, handy in tests.
func (m *MemState) Len() int {
	return len(m.db)
}
