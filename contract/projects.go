package contract

// -----------------------------------------------------------------------------
// Project registry and lifecycle state machine
// -----------------------------------------------------------------------------

// CreateProject registers a new funding campaign. The caller becomes the
// owner, the finance terms are stored verbatim, and the project starts in
// DRAFT with zeroed tallies. Ids are assigned in strictly increasing order
// and never reused, even for projects that later fail.
func (c *Contract) CreateProject(in CreateProjectInput) CreateProjectOutput {
	c.mu.Lock()
	defer c.mu.Unlock()
	cfg := c.config()

	if !c.admit(cfg.TransactionFee + cfg.ProjectFee) {
		return CreateProjectOutput{Status: StatusInsufficientBalance}
	}

	id := c.getCount(ProjectsCount)
	if id >= MaxProjects {
		c.refund()
		return CreateProjectOutput{Status: StatusProjectCreateFailed}
	}

	meta := ProjectMeta{
		Owner: c.host.Invocator(),
		State: StateDraft,
	}
	finance := in.Finance

	c.saveProjectMeta(id, &meta)
	c.saveProjectFinance(id, &finance)
	c.setCount(ProjectsCount, id+1)

	emitProjectCreated(c.host, id, meta.Owner.String())
	return CreateProjectOutput{Status: StatusSuccess, ProjectID: id}
}

// GetProject returns a project's metadata and finance terms. Read-only; no
// payment is required, but anything attached comes back on rejection.
func (c *Contract) GetProject(in GetProjectInput) GetProjectOutput {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.projectExists(in.ProjectID) {
		c.refund()
		return GetProjectOutput{Status: StatusInvalidProjectID}
	}

	meta := c.loadProjectMeta(in.ProjectID)
	finance := c.loadProjectFinance(in.ProjectID)
	return GetProjectOutput{Status: StatusSuccess, Meta: *meta, Finance: *finance}
}

// ChangeProjectState moves a project through the manually reachable part of
// the lifecycle. Only the admin may force transitions; later phases advance
// by epoch-driven automation, so any manual request for them is rejected.
func (c *Contract) ChangeProjectState(in ChangeProjectStateInput) ChangeProjectStateOutput {
	c.mu.Lock()
	defer c.mu.Unlock()
	cfg := c.config()

	if !c.requireAdmin(cfg) {
		return ChangeProjectStateOutput{Status: StatusRequiresAdmin}
	}
	if !c.projectExists(in.ProjectID) {
		c.refund()
		return ChangeProjectStateOutput{Status: StatusInvalidProjectID}
	}

	meta := c.loadProjectMeta(in.ProjectID)

	switch in.NewState {
	case StatePrepareVote:
		// Promotion out of review: allowed from draft or from a project
		// that was previously asked for more information.
		if meta.State == StateDraft || meta.State == StateAskMoreInformation {
			meta.State = StatePrepareVote
			c.saveProjectMeta(in.ProjectID, meta)
			emitProjectStateChanged(c.host, in.ProjectID, meta.State)
			return ChangeProjectStateOutput{Status: StatusSuccess}
		}

	case StateAskMoreInformation:
		// Asking for more information resets the project to draft rather
		// than parking it in a distinct held state. Only reachable from
		// draft or blocked; never during voting or investment.
		if meta.State == StateDraft || meta.State == StateBlocked {
			meta.State = StateDraft
			c.saveProjectMeta(in.ProjectID, meta)
			emitProjectStateChanged(c.host, in.ProjectID, meta.State)
			return ChangeProjectStateOutput{Status: StatusSuccess}
		}
	}

	c.refund()
	return ChangeProjectStateOutput{Status: StatusInvalidTransition}
}

// ProjectCaps derives the min/max fundraising caps from a project's target
// amount and threshold. Pure computation; nothing is stored.
func (c *Contract) ProjectCaps(in ProjectCapsInput) ProjectCapsOutput {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.projectExists(in.ProjectID) {
		return ProjectCapsOutput{Status: StatusInvalidProjectID}
	}

	finance := c.loadProjectFinance(in.ProjectID)
	return ProjectCapsOutput{Status: StatusSuccess, Caps: computeCaps(finance)}
}

// computeCaps is the cap rule: a target of 250k with a 10% threshold gives
// a 225k min cap and a 275k max cap.
func computeCaps(f *ProjectFinance) CapPair {
	return CapPair{
		MinCap: (1.0 - f.Threshold) * f.TotalAmount,
		MaxCap: (1.0 + f.Threshold) * f.TotalAmount,
	}
}
