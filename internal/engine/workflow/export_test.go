package workflow

// StepStatusMap returns a copy of the internal step status map.
// This is exported for testing purposes only.
func (r *Runner) StepStatusMap() map[int]StepStatus {
	r.mu.RLock()
	defer r.mu.RUnlock()

	statusMap := make(map[int]StepStatus, len(r.stepStatus))
	for k, v := range r.stepStatus {
		statusMap[k] = v
	}
	return statusMap
}
