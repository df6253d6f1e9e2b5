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

// Action is one discrete operator action. Actions are processed one at a
// time; each Apply runs to completion (including the full transitive
// invalidation computation) before the next action is accepted.
type Action interface {
	isAction()
}

// Advance moves from the current step to the next enabled step, marking
// the step being left as completed (and confirmed, in edit mode).
type Advance struct{}

// Retreat moves to the previous enabled step. Moving backward never
// clears completion and never invalidates anything.
type Retreat struct{}

// Jump moves directly to an eligible step: the current step, a completed
// step, or an invalidated step. Forward skipping to a never-visited step
// is not eligible.
type Jump struct {
	Target StepID
}

// ChangeDecision signals that the operator edited the step's payload to a
// value that differs from its prior value. The step's transitive
// dependents are invalidated; the step itself is not.
type ChangeDecision struct {
	Step StepID
}

// Resolve re-confirms an invalidated step without advancing: the step
// leaves the invalidated set and, in edit mode, enters the confirmed set.
type Resolve struct {
	Step StepID
}

func (Advance) isAction()        {}
func (Retreat) isAction()        {}
func (Jump) isAction()           {}
func (ChangeDecision) isAction() {}
func (Resolve) isAction()        {}

// Controller is the single writer of wizard State. Every transition is a
// total function: illegal or malformed actions return the input state
// unchanged rather than erroring at the operator.
type Controller struct {
	catalog Catalog
	graph   *DependencyGraph
}

// NewController builds a controller over a validated catalog and graph.
func NewController(catalog Catalog, graph *DependencyGraph) *Controller {
	return &Controller{catalog: catalog, graph: graph}
}

// Catalog returns the session's step catalog.
func (c *Controller) Catalog() Catalog {
	return c.catalog
}

// Clickable reports whether the operator may jump to id: the current
// step, any completed step, and any invalidated step are reachable;
// never-visited steps are not.
func (c *Controller) Clickable(s State, id StepID) bool {
	if !c.catalog.IsEnabled(id) {
		return false
	}
	return id == s.Current || s.Completed.Has(id) || s.Invalidated.Has(id)
}

// Apply processes one action and returns the resulting state. The input
// state is never mutated.
func (c *Controller) Apply(s State, a Action) State {
	switch a := a.(type) {
	case Advance:
		return c.advance(s)
	case Retreat:
		return c.retreat(s)
	case Jump:
		return c.jump(s, a.Target)
	case ChangeDecision:
		return c.changeDecision(s, a.Step)
	case Resolve:
		return c.resolve(s, a.Step)
	}
	return s
}

func (c *Controller) advance(s State) State {
	if !c.catalog.IsEnabled(s.Current) {
		return s
	}
	next, ok := c.catalog.Next(s.Current)
	if !ok {
		return s
	}
	// The review step is gated: it is unreachable while any decision is
	// known-stale.
	if next == StepReview && s.Invalidated.Len() > 0 {
		return s
	}
	out := s.clone()
	out.Completed.Add(s.Current)
	// Advancing past a step re-confirms it.
	out.Invalidated.Remove(s.Current)
	if s.EditMode {
		out.Confirmed.Add(s.Current)
	}
	out.Current = next
	return out
}

func (c *Controller) retreat(s State) State {
	prev, ok := c.catalog.Prev(s.Current)
	if !ok {
		return s
	}
	// The gate holds on every route into review, including backward ones.
	if prev == StepReview && s.Invalidated.Len() > 0 {
		return s
	}
	out := s.clone()
	out.Current = prev
	return out
}

func (c *Controller) jump(s State, target StepID) State {
	if target == s.Current {
		return s
	}
	if !c.Clickable(s, target) {
		return s
	}
	if target == StepReview && s.Invalidated.Len() > 0 {
		return s
	}
	out := s.clone()
	out.Current = target
	return out
}

func (c *Controller) changeDecision(s State, step StepID) State {
	if !c.catalog.IsEnabled(step) {
		return s
	}
	stale := c.graph.StepsToInvalidate(step)
	out := s.clone()
	out.Completed = c.graph.FilterCompletedSteps(out.Completed, step)
	for id := range stale {
		// Disabled steps stay invisible to navigation even when the
		// graph names them.
		if !c.catalog.IsEnabled(id) {
			continue
		}
		out.Invalidated.Add(id)
		out.Confirmed.Remove(id)
	}
	return out
}

func (c *Controller) resolve(s State, step StepID) State {
	if !c.catalog.IsEnabled(step) {
		return s
	}
	// Only a step that is actually flagged can be resolved. Resolving a
	// never-visited step would mark it completed and make it clickable,
	// opening a forward skip.
	if !s.Invalidated.Has(step) {
		return s
	}
	out := s.clone()
	out.Invalidated.Remove(step)
	out.Completed.Add(step)
	if s.EditMode {
		out.Confirmed.Add(step)
	}
	return out
}
