package handlers

import (
	"app/agents"
	"app/analytics"
)

// Deps are the pipeline components the handlers delegate to. They are
// constructed once in main and injected here; the DataContext inside is
// read-only and shared across requests.
type Deps struct {
	Ctx     *analytics.DataContext
	Planner agents.Planner
	Analyst *agents.DataAnalyst
	Coach   *agents.Coach
}

var deps *Deps

// Init wires the handler package to its dependencies. Must be called before
// any route is served.
func Init(d *Deps) {
	deps = d
}
