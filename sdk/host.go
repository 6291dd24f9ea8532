package sdk

// Host is the surface the contract consumes from its hosting execution
// environment: who invoked the current call, how much payment rode along
// with it, a primitive to move funds back out, and a log sink.
//
// The host serializes calls against one contract instance; implementations
// only need to be consistent for the duration of a single call.
type Host interface {
	// Invocator returns the identity of the caller of the current call.
	Invocator() Address

	// InvocationReward returns the payment attached to the current call.
	// The amount has already been moved to the contract when the call runs.
	InvocationReward() int64

	// Transfer moves amount from the contract's holdings to an address.
	// Used for refunds and stake returns.
	Transfer(to Address, amount int64)

	// Log emits a short event line for explorers and debugging.
	Log(msg string)
}
