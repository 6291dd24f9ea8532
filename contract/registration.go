package contract

// -----------------------------------------------------------------------------
// Registration ledger: per-user, per-project opt-in bits
// -----------------------------------------------------------------------------

// RegisterForProject sets the caller's registration bit for a project. Only
// valid while the project is in its registration phase, and only once per
// (user, project) until an unregister.
func (c *Contract) RegisterForProject(in RegisterInput) RegisterOutput {
	c.mu.Lock()
	defer c.mu.Unlock()
	cfg := c.config()

	if !c.admit(cfg.TransactionFee) {
		return RegisterOutput{Status: StatusInsufficientBalance}
	}
	if !c.projectExists(in.ProjectID) {
		c.refund()
		return RegisterOutput{Status: StatusInvalidProjectID}
	}

	meta := c.loadProjectMeta(in.ProjectID)
	if meta.State != StateRegister {
		c.refund()
		return RegisterOutput{Status: StatusInvalidState}
	}

	user := c.host.Invocator()
	flags := loadFlags(registrantLedger(), c.state, user)
	if flags == nil {
		flags = newProjectFlags(MaxProjects)
	} else if flags.get(in.ProjectID) {
		c.refund()
		return RegisterOutput{Status: StatusAlreadyRegistered}
	}

	flags.set(in.ProjectID, true)
	if err := storeFlags(registrantLedger(), c.state, user, flags); err != nil {
		c.refund()
		return RegisterOutput{Status: StatusInsufficientBalance}
	}

	emitRegistered(c.host, in.ProjectID, user.String())
	return RegisterOutput{Status: StatusSuccess}
}

// UnregisterForProject clears the caller's registration bit. A first-time
// caller with no flag row still gets a cleared row written before the
// NotRegistered rejection; the write is an idempotent initialization and the
// observable ledger is identical either way.
func (c *Contract) UnregisterForProject(in UnregisterInput) UnregisterOutput {
	c.mu.Lock()
	defer c.mu.Unlock()
	cfg := c.config()

	if !c.admit(cfg.TransactionFee) {
		return UnregisterOutput{Status: StatusInsufficientBalance}
	}
	if !c.projectExists(in.ProjectID) {
		c.refund()
		return UnregisterOutput{Status: StatusInvalidProjectID}
	}

	meta := c.loadProjectMeta(in.ProjectID)
	if meta.State != StateRegister {
		c.refund()
		return UnregisterOutput{Status: StatusInvalidState}
	}

	user := c.host.Invocator()
	flags := loadFlags(registrantLedger(), c.state, user)
	if flags == nil {
		// First-time caller: initialize a cleared row. Best effort; the
		// rejection and refund stand whether or not the row fits.
		_ = storeFlags(registrantLedger(), c.state, user, newProjectFlags(MaxProjects))
		c.refund()
		return UnregisterOutput{Status: StatusNotRegistered}
	}
	if !flags.get(in.ProjectID) {
		c.refund()
		return UnregisterOutput{Status: StatusNotRegistered}
	}

	flags.set(in.ProjectID, false)
	if err := storeFlags(registrantLedger(), c.state, user, flags); err != nil {
		panic(err)
	}

	emitUnregistered(c.host, in.ProjectID, user.String())
	return UnregisterOutput{Status: StatusSuccess}
}

// TotalStakeWeight walks every registration row for the project and sums the
// stake requirement of each registered user's tier. This is a full-ledger
// scan over the insertion-ordered registrant index, not an incrementally
// maintained counter; callers needing it repeatedly should cache it.
func (c *Contract) TotalStakeWeight(in TotalStakeWeightInput) TotalStakeWeightOutput {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.projectExists(in.ProjectID) {
		c.refund()
		return TotalStakeWeightOutput{Status: StatusInvalidProjectID}
	}

	total := 0.0
	ledger := registrantLedger()
	for _, user := range ledger.users(c.state) {
		flags := loadFlags(ledger, c.state, user)
		if flags == nil || !flags.get(in.ProjectID) {
			continue
		}
		level, _ := c.userTier(user)
		if level == TierNone {
			continue
		}
		if tier, ok := c.tier(level); ok {
			total += float64(tier.StakeRequirement)
		}
	}

	return TotalStakeWeightOutput{Status: StatusSuccess, Total: total}
}
