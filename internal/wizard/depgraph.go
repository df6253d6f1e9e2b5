// StackForge - Project Provisioning Wizard
// Copyright (C) 2026 Cloud Exit B.V.
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package wizard

import "fmt"

// DependencyGraph maps each step to the steps whose decisions become
// stale when that step's decision changes. The graph is authored once,
// validated at construction, and read-only afterwards.
type DependencyGraph struct {
	edges map[StepID][]StepID
}

// defaultEdges is the authored dependency table: an edge "A -> B" means
// changing A's decision invalidates B's.
var defaultEdges = map[StepID][]StepID{
	StepAuth:        {StepProject, StepEnvironment},
	StepProject:     {StepEnvironment},
	StepEnvironment: {StepMesh},
	StepComponents:  {StepComponentSettings, StepMesh},
}

// NewDependencyGraph validates edges against the full step list and
// rejects cycles. Validation failure is a configuration error: the
// wizard cannot start.
func NewDependencyGraph(edges map[StepID][]StepID) (*DependencyGraph, error) {
	known := make(map[StepID]bool, len(catalogOrder))
	for _, id := range catalogOrder {
		known[id] = true
	}
	for from, tos := range edges {
		if !known[from] {
			return nil, fmt.Errorf("dependency graph: unknown step %q", from)
		}
		for _, to := range tos {
			if !known[to] {
				return nil, fmt.Errorf("dependency graph: unknown step %q (dependent of %q)", to, from)
			}
		}
	}
	g := &DependencyGraph{edges: edges}
	if cyc := g.findCycle(); cyc != "" {
		return nil, fmt.Errorf("dependency graph: cycle through step %q", cyc)
	}
	return g, nil
}

// NewDefaultGraph builds the graph from the authored dependency table.
func NewDefaultGraph() (*DependencyGraph, error) {
	return NewDependencyGraph(defaultEdges)
}

// Dependents returns the direct (one hop) dependents of step. Steps with
// no entry in the table have no dependents; that is the common case for
// terminal steps.
func (g *DependencyGraph) Dependents(step StepID) StepSet {
	return NewStepSet(g.edges[step]...)
}

// findCycle returns a step that (directly or transitively) depends on
// itself, or "" when the graph is acyclic.
func (g *DependencyGraph) findCycle() StepID {
	const (
		unvisited = iota
		visiting
		done
	)
	state := make(map[StepID]int, len(g.edges))
	var visit func(StepID) StepID
	visit = func(id StepID) StepID {
		switch state[id] {
		case visiting:
			return id
		case done:
			return ""
		}
		state[id] = visiting
		for _, next := range g.edges[id] {
			if hit := visit(next); hit != "" {
				return hit
			}
		}
		state[id] = done
		return ""
	}
	for id := range g.edges {
		if hit := visit(id); hit != "" {
			return hit
		}
	}
	return ""
}
