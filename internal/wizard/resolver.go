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

// StepsToInvalidate computes the transitive closure of dependents of
// changed: every step whose decision can no longer be trusted once
// changed's decision is different. The changed step itself is never in
// the result. Steps with no dependents yield the empty set.
func (g *DependencyGraph) StepsToInvalidate(changed StepID) StepSet {
	out := NewStepSet()
	frontier := []StepID{changed}
	for len(frontier) > 0 {
		id := frontier[0]
		frontier = frontier[1:]
		for _, dep := range g.edges[id] {
			if out.Has(dep) {
				continue
			}
			out.Add(dep)
			frontier = append(frontier, dep)
		}
	}
	// A (hypothetical) cycle would put changed in its own closure; the
	// constructor rejects those graphs, but never self-invalidate.
	out.Remove(changed)
	return out
}

// FilterCompletedSteps returns a new set equal to completed minus the
// transitive dependents of changed. The changed step's own completion
// status is governed by the navigation controller, not here. Steps that
// are not dependents of changed keep their completion untouched, so
// revisiting an independent step never loses unrelated progress.
func (g *DependencyGraph) FilterCompletedSteps(completed StepSet, changed StepID) StepSet {
	stale := g.StepsToInvalidate(changed)
	out := NewStepSet()
	for id := range completed {
		if !stale.Has(id) {
			out.Add(id)
		}
	}
	return out
}
