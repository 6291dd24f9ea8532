package contract

// -----------------------------------------------------------------------------
// Voting ledger: tier-gated yes/no votes during the vote phase
// -----------------------------------------------------------------------------

// VoteProject casts the caller's vote on a project. Voting requires an
// active tier, a project in the vote phase, and no prior vote by this user
// on this project. Only the direction's tally and the fact-of-voting bit
// survive; the per-user direction is not retained.
func (c *Contract) VoteProject(in VoteProjectInput) VoteProjectOutput {
	c.mu.Lock()
	defer c.mu.Unlock()
	cfg := c.config()

	if !c.admit(cfg.TransactionFee) {
		return VoteProjectOutput{Status: StatusInsufficientBalance}
	}
	if !c.projectExists(in.ProjectID) {
		c.refund()
		return VoteProjectOutput{Status: StatusInvalidProjectID}
	}

	// A user with no stake record at all is simply not eligible, the same
	// as one whose tier was released back to none.
	user := c.host.Invocator()
	level, _ := c.userTier(user)
	if level == TierNone {
		c.refund()
		return VoteProjectOutput{Status: StatusInvalidTier}
	}

	meta := c.loadProjectMeta(in.ProjectID)
	if meta.State != StateVote {
		c.refund()
		return VoteProjectOutput{Status: StatusInvalidState}
	}

	flags := loadFlags(voterLedger(), c.state, user)
	if flags == nil {
		flags = newProjectFlags(MaxProjects)
	} else if flags.get(in.ProjectID) {
		c.refund()
		return VoteProjectOutput{Status: StatusAlreadyVoted}
	}

	flags.set(in.ProjectID, true)
	if err := storeFlags(voterLedger(), c.state, user, flags); err != nil {
		c.refund()
		return VoteProjectOutput{Status: StatusInsufficientBalance}
	}

	if in.Vote == VoteNo {
		meta.NoVotes++
	} else {
		meta.YesVotes++
	}
	c.saveProjectMeta(in.ProjectID, meta)

	emitVoteCast(c.host, in.ProjectID, user.String(), in.Vote)
	return VoteProjectOutput{Status: StatusSuccess}
}

// CheckProjectVote returns the current yes/no tallies. Read-only.
func (c *Contract) CheckProjectVote(in CheckProjectVoteInput) CheckProjectVoteOutput {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.projectExists(in.ProjectID) {
		return CheckProjectVoteOutput{Status: StatusInvalidProjectID}
	}

	meta := c.loadProjectMeta(in.ProjectID)
	return CheckProjectVoteOutput{
		Status:   StatusSuccess,
		YesVotes: meta.YesVotes,
		NoVotes:  meta.NoVotes,
	}
}
