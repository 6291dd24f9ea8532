package contract

// ForceProjectState rewrites a project's lifecycle state directly in the
// backing store. The manual transition rules cannot reach the vote,
// registration or investment phases, so tests that exercise those phases
// seed them through this hook.
func (c *Contract) ForceProjectState(id uint64, s ProjectState) {
	c.mu.Lock()
	defer c.mu.Unlock()
	meta := c.loadProjectMeta(id)
	if meta == nil {
		panic("no such project")
	}
	meta.State = s
	c.saveProjectMeta(id, meta)
}
