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

// StepSet is an unordered set of step ids. Re-adding a member is a no-op,
// so a step can never be "completed twice".
type StepSet map[StepID]struct{}

// NewStepSet builds a set from the given ids.
func NewStepSet(ids ...StepID) StepSet {
	s := make(StepSet, len(ids))
	for _, id := range ids {
		s[id] = struct{}{}
	}
	return s
}

// Has reports membership.
func (s StepSet) Has(id StepID) bool {
	_, ok := s[id]
	return ok
}

// Add inserts id.
func (s StepSet) Add(id StepID) {
	s[id] = struct{}{}
}

// Remove deletes id.
func (s StepSet) Remove(id StepID) {
	delete(s, id)
}

// Len returns the number of members.
func (s StepSet) Len() int {
	return len(s)
}

// Clone returns an independent copy. Navigation transitions clone before
// mutating so that prior state snapshots stay untouched.
func (s StepSet) Clone() StepSet {
	out := make(StepSet, len(s))
	for id := range s {
		out[id] = struct{}{}
	}
	return out
}

// Equal reports whether both sets hold exactly the same members.
func (s StepSet) Equal(other StepSet) bool {
	if len(s) != len(other) {
		return false
	}
	for id := range s {
		if !other.Has(id) {
			return false
		}
	}
	return true
}
