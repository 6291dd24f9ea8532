package sdk

// TransferRecord captures one outbound transfer issued by the contract.
type TransferRecord struct {
	To     Address
	Amount int64
}

// MockHost is an in-memory Host for tests. It tracks account balances so
// refund behaviour can be asserted: CallAs moves the attached payment from
// the sender to the contract, Transfer moves funds back out.
type MockHost struct {
	sender Address
	reward int64

	Balances  map[Address]int64
	Transfers []TransferRecord
	Entries   []string
}

func NewMockHost() *MockHost {
	return &MockHost{Balances: map[Address]int64{}}
}

// Fund credits an account so tests can start from a known balance.
func (h *MockHost) Fund(addr Address, amount int64) {
	h.Balances[addr] += amount
}

// CallAs stages the next call: sender identity plus attached payment.
// The payment is debited from the sender immediately, mirroring how the
// hosting environment moves the reward before the procedure runs.
func (h *MockHost) CallAs(sender Address, reward int64) {
	h.sender = sender
	h.reward = reward
	h.Balances[sender] -= reward
}

func (h *MockHost) Invocator() Address {
	return h.sender
}

func (h *MockHost) InvocationReward() int64 {
	return h.reward
}

func (h *MockHost) Transfer(to Address, amount int64) {
	h.Transfers = append(h.Transfers, TransferRecord{To: to, Amount: amount})
	h.Balances[to] += amount
}

func (h *MockHost) Log(msg string) {
	h.Entries = append(h.Entries, msg)
}

// LastEntry returns the most recent log line, or "" when none were emitted.
func (h *MockHost) LastEntry() string {
	if len(h.Entries) == 0 {
		return ""
	}
	return h.Entries[len(h.Entries)-1]
}
