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

import (
	"github.com/cloud-exit/stackforge/internal/project"
)

// LoadState builds the initial edit-mode state for an existing record:
// every enabled step except the terminal create step starts completed,
// nothing starts confirmed or invalidated, and the operator is placed on
// the first enabled step. Steps the record never exercised are still
// completed; their payload is simply empty. Prior decisions are assumed
// valid until the operator changes something.
func LoadState(rec *project.Record, catalog Catalog) State {
	completed := NewStepSet()
	for _, def := range catalog.EnabledSteps() {
		if def.ID == StepCreate {
			continue
		}
		completed.Add(def.ID)
	}
	return State{
		Current:     catalog.First(),
		Completed:   completed,
		Invalidated: NewStepSet(),
		Confirmed:   NewStepSet(),
		EditMode:    true,
		ProjectName: rec.Name,
	}
}

// ProjectLoader fetches records for edit-mode sessions.
type ProjectLoader interface {
	Get(name string) (*project.Record, error)
}

// LoadForEdit fetches a record and builds its edit-mode state. A missing
// record surfaces the store's ErrNotFound so the caller can decline to
// open the wizard at all; no partially populated state is ever returned.
func LoadForEdit(loader ProjectLoader, name string) (*project.Record, State, error) {
	rec, err := loader.Get(name)
	if err != nil {
		return nil, State{}, err
	}
	flavor := Flavor(rec.Flavor)
	if flavor != FlavorService && flavor != FlavorStatic {
		flavor = FlavorService
	}
	catalog := NewCatalog(flavor)
	return rec, LoadState(rec, catalog), nil
}
