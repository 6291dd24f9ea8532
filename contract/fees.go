package contract

// Admission control: every mutating call carries a payment, and rejection of
// any kind returns the entire attached payment, not just the fee. Success
// retains the payment (the fee plus any surplus); stake returns on unstake
// are issued separately.

// refund returns the full attached payment to the invocator.
func (c *Contract) refund() {
	if r := c.host.InvocationReward(); r > 0 {
		c.host.Transfer(c.host.Invocator(), r)
	}
}

// admit enforces the minimum payment for a mutating call. On failure the
// full payment is refunded and the caller gets StatusInsufficientBalance.
func (c *Contract) admit(min int64) bool {
	if c.host.InvocationReward() < min {
		c.refund()
		return false
	}
	return true
}

// requireAdmin gates phase configuration and forced state transitions to the
// identity fixed at initialization. Admin calls carry no fee, but anything a
// non-admin caller attached still comes back.
func (c *Contract) requireAdmin(cfg *Config) bool {
	if c.host.Invocator() != cfg.Admin {
		c.refund()
		return false
	}
	return true
}
