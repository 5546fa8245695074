package domain

// RunState is the small state.json record written next to the GeoJSON output.
type RunState struct {
	LastModified string `json:"last_modified"`
	Nodes        int    `json:"nodes"`
}

// NewRunState stamps a run with the current time at minute granularity and
// the total number of aggregated nodes.
func NewRunState(nodes int) RunState {
	return RunState{
		LastModified: clock.Now().Format("2006-01-02 15:04"),
		Nodes:        nodes,
	}
}
