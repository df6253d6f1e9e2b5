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

// Package wizard implements the provisioning wizard: a step catalog, a
// dependency graph between step decisions, the navigation state machine
// that enforces invalidation and forward-progress rules, and the
// bubbletea display layer on top.
package wizard

// StepID identifies a single wizard step.
type StepID string

// The wizard steps, in catalog order.
const (
	StepAuth              StepID = "auth"
	StepProject           StepID = "project"
	StepEnvironment       StepID = "environment"
	StepComponents        StepID = "components"
	StepComponentSettings StepID = "component-settings"
	StepMesh              StepID = "mesh"
	StepReview            StepID = "review"
	StepCreate            StepID = "create"
)

// Flavor selects which steps are enabled for a wizard session.
type Flavor string

// Supported project flavors.
const (
	FlavorService Flavor = "service"
	FlavorStatic  Flavor = "static"
)

// StepDefinition pairs a step id with its enablement for the session's
// flavor. Disabled steps are invisible to navigation: they never enter
// the completed, invalidated, or confirmed sets and never participate in
// index computations.
type StepDefinition struct {
	ID      StepID
	Enabled bool
}

// Catalog is the ordered step list for one wizard session. It is built
// once at wizard start and never changes afterwards.
type Catalog struct {
	steps []StepDefinition
}

// catalogOrder is the full step order; enablement is decided per flavor.
var catalogOrder = []StepID{
	StepAuth,
	StepProject,
	StepEnvironment,
	StepComponents,
	StepComponentSettings,
	StepMesh,
	StepReview,
	StepCreate,
}

// NewCatalog builds the step catalog for a flavor. Static projects do not
// join the mesh, so the mesh step is disabled for them.
func NewCatalog(flavor Flavor) Catalog {
	steps := make([]StepDefinition, 0, len(catalogOrder))
	for _, id := range catalogOrder {
		enabled := true
		if id == StepMesh && flavor == FlavorStatic {
			enabled = false
		}
		steps = append(steps, StepDefinition{ID: id, Enabled: enabled})
	}
	return Catalog{steps: steps}
}

// EnabledSteps returns the ordered, enabled-only subset used for
// index-based navigation.
func (c Catalog) EnabledSteps() []StepDefinition {
	var out []StepDefinition
	for _, s := range c.steps {
		if s.Enabled {
			out = append(out, s)
		}
	}
	return out
}

// IsEnabled reports whether id is a known, enabled step.
func (c Catalog) IsEnabled(id StepID) bool {
	for _, s := range c.steps {
		if s.ID == id {
			return s.Enabled
		}
	}
	return false
}

// First returns the first enabled step.
func (c Catalog) First() StepID {
	for _, s := range c.steps {
		if s.Enabled {
			return s.ID
		}
	}
	return ""
}

// Next returns the enabled step after id, or false when id is the last
// enabled step or not an enabled step at all.
func (c Catalog) Next(id StepID) (StepID, bool) {
	found := false
	for _, s := range c.steps {
		if found && s.Enabled {
			return s.ID, true
		}
		if s.ID == id && s.Enabled {
			found = true
		}
	}
	return "", false
}

// Prev returns the enabled step before id, or false when id is the first
// enabled step or not an enabled step at all.
func (c Catalog) Prev(id StepID) (StepID, bool) {
	var prev StepID
	havePrev := false
	for _, s := range c.steps {
		if !s.Enabled {
			continue
		}
		if s.ID == id {
			return prev, havePrev
		}
		prev = s.ID
		havePrev = true
	}
	return "", false
}
