package contract

// Read-only view records for hosts that expose ledger contents over JSON.
// Marshalers are generated into views_tinyjson.go; run
// `tinyjson -all contract/views.go` after changing any struct here.

//tinyjson:json
type ProjectView struct {
	ID            uint64  `json:"id"`
	Owner         string  `json:"owner"`
	State         string  `json:"state"`
	YesVotes      uint64  `json:"yesVotes"`
	NoVotes       uint64  `json:"noVotes"`
	TotalAmount   float64 `json:"totalAmount"`
	Threshold     float64 `json:"threshold"`
	TokenPrice    uint64  `json:"tokenPrice"`
	RaisedAmount  uint64  `json:"raisedAmount"`
	RaiseInQubics uint64  `json:"raiseInQubics"`
	TokensInSale  uint64  `json:"tokensInSale"`
	MinCap        float64 `json:"minCap"`
	MaxCap        float64 `json:"maxCap"`
}

//tinyjson:json
type TallyView struct {
	ProjectID uint64 `json:"projectId"`
	YesVotes  uint64 `json:"yesVotes"`
	NoVotes   uint64 `json:"noVotes"`
}

//tinyjson:json
type StakeView struct {
	User  string `json:"user"`
	Tier  string `json:"tier"`
	Stake int64  `json:"stake"`
}

//tinyjson:json
type StatusView struct {
	Projects         uint64 `json:"projects"`
	StakedTotal      int64  `json:"stakedTotal"`
	TransactionFee   int64  `json:"transactionFee"`
	ProjectFee       int64  `json:"projectFee"`
	PhaseOneEpochs   uint8  `json:"phaseOneEpochs"`
	PhaseTwoEpochs   uint8  `json:"phaseTwoEpochs"`
	PhaseThreeEpochs uint8  `json:"phaseThreeEpochs"`
}

// ProjectViewOf assembles the external record for one project. The second
// return is false when the id was never assigned.
func (c *Contract) ProjectViewOf(id uint64) (ProjectView, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.projectExists(id) {
		return ProjectView{}, false
	}
	meta := c.loadProjectMeta(id)
	fin := c.loadProjectFinance(id)
	if meta == nil || fin == nil {
		return ProjectView{}, false
	}
	caps := computeCaps(fin)
	return ProjectView{
		ID:            id,
		Owner:         meta.Owner.String(),
		State:         meta.State.String(),
		YesVotes:      meta.YesVotes,
		NoVotes:       meta.NoVotes,
		TotalAmount:   fin.TotalAmount,
		Threshold:     fin.Threshold,
		TokenPrice:    fin.TokenPrice,
		RaisedAmount:  fin.RaisedAmount,
		RaiseInQubics: fin.RaiseInQubics,
		TokensInSale:  fin.TokensInSale,
		MinCap:        caps.MinCap,
		MaxCap:        caps.MaxCap,
	}, true
}

// TallyViewOf returns the running yes/no counts for one project.
func (c *Contract) TallyViewOf(id uint64) (TallyView, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.projectExists(id) {
		return TallyView{}, false
	}
	meta := c.loadProjectMeta(id)
	if meta == nil {
		return TallyView{}, false
	}
	return TallyView{ProjectID: id, YesVotes: meta.YesVotes, NoVotes: meta.NoVotes}, true
}

// StakeViewOf reports a user's current tier and locked stake. Users never
// seen by the ledger get a zero view with ok == false.
func (c *Contract) StakeViewOf(addr string) (StakeView, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	level, seen := c.userTier(AddressFromString(addr))
	if !seen {
		return StakeView{}, false
	}
	view := StakeView{User: addr, Tier: level.String()}
	if t, ok := c.tier(level); ok {
		view.Stake = t.StakeRequirement
	}
	return view, true
}

// StatusViewOf summarizes the whole ledger for host status endpoints.
func (c *Contract) StatusViewOf() StatusView {
	c.mu.Lock()
	defer c.mu.Unlock()

	cfg := c.config()
	return StatusView{
		Projects:         c.getCount(ProjectsCount),
		StakedTotal:      int64(c.getCount(StakedTotal)),
		TransactionFee:   cfg.TransactionFee,
		ProjectFee:       cfg.ProjectFee,
		PhaseOneEpochs:   cfg.PhaseOneEpochs,
		PhaseTwoEpochs:   cfg.PhaseTwoEpochs,
		PhaseThreeEpochs: cfg.PhaseThreeEpochs,
	}
}
