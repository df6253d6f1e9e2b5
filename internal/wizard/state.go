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

// State is the navigation state of one wizard session. It has value
// semantics: the controller's Apply returns a new State and never
// mutates the one it was given, so readers always hold a consistent
// snapshot.
type State struct {
	// Current is the step the operator is looking at.
	Current StepID
	// Completed holds steps the operator has passed through this
	// session (pre-populated in edit mode).
	Completed StepSet
	// Invalidated holds steps whose prior decision is stale and must be
	// re-confirmed before the review step becomes reachable. A step can
	// be completed and invalidated at the same time.
	Invalidated StepSet
	// Confirmed holds steps the operator has explicitly re-confirmed
	// since entering edit mode. Empty outside edit mode. Invalidation
	// always removes a step from this set.
	Confirmed StepSet
	// EditMode is true when the session was seeded from an existing
	// project record.
	EditMode bool
	// ProjectName names the record being edited (edit mode only).
	ProjectName string
}

// NewState returns the initial state for a fresh (non-edit) session.
func NewState(catalog Catalog) State {
	return State{
		Current:     catalog.First(),
		Completed:   NewStepSet(),
		Invalidated: NewStepSet(),
		Confirmed:   NewStepSet(),
	}
}

// clone returns a deep copy; transitions mutate only the copy.
func (s State) clone() State {
	out := s
	out.Completed = s.Completed.Clone()
	out.Invalidated = s.Invalidated.Clone()
	out.Confirmed = s.Confirmed.Clone()
	return out
}

// StepStatus is the display status of a step.
type StepStatus int

// Step display statuses, in increasing precedence order except Current,
// which always wins.
const (
	StatusUpcoming StepStatus = iota
	StatusCompleted
	StatusConfirmed
	StatusInvalidated
	StatusCurrent
)

// StatusOf classifies a step for display. Invalidation outranks
// confirmation: a step that is both reads as invalidated.
func (s State) StatusOf(id StepID) StepStatus {
	switch {
	case id == s.Current:
		return StatusCurrent
	case s.Invalidated.Has(id):
		return StatusInvalidated
	case s.Confirmed.Has(id):
		return StatusConfirmed
	case s.Completed.Has(id):
		return StatusCompleted
	default:
		return StatusUpcoming
	}
}
