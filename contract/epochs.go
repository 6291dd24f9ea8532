package contract

// -----------------------------------------------------------------------------
// Investment phase configuration and the reserved invest path
// -----------------------------------------------------------------------------

// SetPhaseOneEpochs configures how many epochs investment phase one lasts.
// Admin only; no fee is charged on admin calls.
func (c *Contract) SetPhaseOneEpochs(in SetPhaseEpochsInput) SetPhaseEpochsOutput {
	return c.setPhaseEpochs(1, in.Epochs)
}

// SetPhaseTwoEpochs configures the phase-two duration.
func (c *Contract) SetPhaseTwoEpochs(in SetPhaseEpochsInput) SetPhaseEpochsOutput {
	return c.setPhaseEpochs(2, in.Epochs)
}

// SetPhaseThreeEpochs configures the phase-three duration.
func (c *Contract) SetPhaseThreeEpochs(in SetPhaseEpochsInput) SetPhaseEpochsOutput {
	return c.setPhaseEpochs(3, in.Epochs)
}

func (c *Contract) setPhaseEpochs(phase int, epochs uint8) SetPhaseEpochsOutput {
	c.mu.Lock()
	defer c.mu.Unlock()
	cfg := c.config()

	if !c.requireAdmin(cfg) {
		return SetPhaseEpochsOutput{Status: StatusRequiresAdmin}
	}

	switch phase {
	case 1:
		cfg.PhaseOneEpochs = epochs
	case 2:
		cfg.PhaseTwoEpochs = epochs
	case 3:
		cfg.PhaseThreeEpochs = epochs
	}
	c.saveConfig(cfg)

	emitPhaseEpochsSet(c.host, phase, epochs)
	return SetPhaseEpochsOutput{Status: StatusSuccess}
}

// InvestInProject is the reserved investment entry point. The per-user
// investment rows and the phase epoch counters exist in the layout, but no
// accrual or write logic is live yet; the call validates nothing and
// mutates nothing.
func (c *Contract) InvestInProject(in InvestInProjectInput) InvestInProjectOutput {
	c.mu.Lock()
	defer c.mu.Unlock()
	_ = in
	return InvestInProjectOutput{Status: StatusSuccess}
}
