package contract

// -----------------------------------------------------------------------------
// Stake ledger: one optional tier per user
// -----------------------------------------------------------------------------

// AddUserTier stakes the caller into a tier. The attached payment must cover
// the transaction fee plus the tier's stake requirement; the stake moves into
// the aggregate staked total and stays with the contract until released.
func (c *Contract) AddUserTier(in AddUserTierInput) AddUserTierOutput {
	c.mu.Lock()
	defer c.mu.Unlock()
	cfg := c.config()

	if !c.admit(cfg.TransactionFee) {
		return AddUserTierOutput{Status: StatusInsufficientBalance}
	}

	// TierNone and levels outside the catalog are not stakeable. A level
	// missing from the catalog would be a misconfiguration, but a caller
	// asking for it is simply requesting an invalid tier.
	tier, ok := c.tier(in.Tier)
	if !ok {
		c.refund()
		return AddUserTierOutput{Status: StatusInvalidTier}
	}

	if c.host.InvocationReward() < cfg.TransactionFee+tier.StakeRequirement {
		c.refund()
		return AddUserTierOutput{Status: StatusInsufficientBalance}
	}

	if cur, _ := c.userTier(c.host.Invocator()); cur != TierNone {
		c.refund()
		return AddUserTierOutput{Status: StatusTierAlreadySet}
	}

	if err := c.saveUserTier(c.host.Invocator(), in.Tier); err != nil {
		// Ledger at capacity: the stake cannot be admitted.
		c.refund()
		return AddUserTierOutput{Status: StatusInsufficientBalance}
	}
	c.setCount(StakedTotal, c.getCount(StakedTotal)+uint64(tier.StakeRequirement))

	emitTierAssigned(c.host, c.host.Invocator().String(), in.Tier, tier.StakeRequirement)
	return AddUserTierOutput{Status: StatusSuccess}
}

// RemoveUserTier releases the caller's tier: the stake requirement flows back
// to the caller, the fee is retained, and the aggregate staked total drops.
func (c *Contract) RemoveUserTier() RemoveUserTierOutput {
	c.mu.Lock()
	defer c.mu.Unlock()
	cfg := c.config()

	if !c.admit(cfg.TransactionFee) {
		return RemoveUserTierOutput{Status: StatusInsufficientBalance}
	}

	user := c.host.Invocator()
	level, seen := c.userTier(user)
	if !seen {
		c.refund()
		return RemoveUserTierOutput{Status: StatusUserNotFound}
	}
	if level == TierNone {
		c.refund()
		return RemoveUserTierOutput{Status: StatusNoTierFound}
	}

	tier, ok := c.tier(level)
	if !ok {
		// Cannot happen with a correctly initialized catalog.
		panic("tier catalog entry missing for assigned level")
	}

	// The user keeps their slot in the staker index with TierNone, so a
	// later AddUserTier does not re-admit them against capacity.
	if err := c.saveUserTier(user, TierNone); err != nil {
		panic(err)
	}
	c.host.Transfer(user, tier.StakeRequirement)
	c.setCount(StakedTotal, c.getCount(StakedTotal)-uint64(tier.StakeRequirement))

	emitTierReleased(c.host, user.String(), level, tier.StakeRequirement)
	return RemoveUserTierOutput{Status: StatusSuccess}
}

// UserTier reports the caller-independent view of a user's current level.
func (c *Contract) UserTier(addr string) TierLevel {
	c.mu.Lock()
	defer c.mu.Unlock()
	level, _ := c.userTier(AddressFromString(addr))
	return level
}
