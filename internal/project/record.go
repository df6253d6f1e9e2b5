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

// Package project stores provisioned project records on disk.
package project

import "time"

// Record is a provisioned project as saved by the wizard (one yaml file
// per project under the projects data directory).
type Record struct {
	Version   int       `yaml:"version"`
	Name      string    `yaml:"name"`
	Flavor    string    `yaml:"flavor"`
	CreatedAt time.Time `yaml:"created_at"`
	UpdatedAt time.Time `yaml:"updated_at,omitempty"`
	Decisions Decisions `yaml:"decisions"`
}

// Decisions holds the per-step decision payloads. Steps the operator never
// exercised have a nil entry; the wizard treats those as valid-but-empty
// when re-opening a record for editing.
type Decisions struct {
	Auth              *AuthDecision              `yaml:"auth,omitempty"`
	Project           *ProjectDecision           `yaml:"project,omitempty"`
	Environment       *EnvironmentDecision       `yaml:"environment,omitempty"`
	Components        *ComponentsDecision        `yaml:"components,omitempty"`
	ComponentSettings *ComponentSettingsDecision `yaml:"component_settings,omitempty"`
	Mesh              *MeshDecision              `yaml:"mesh,omitempty"`
}

// AuthDecision records the organization the operator signed in to.
type AuthDecision struct {
	Organization string `yaml:"organization"`
}

// ProjectDecision records the target project on the platform.
type ProjectDecision struct {
	Project string `yaml:"project"`
}

// EnvironmentDecision records the target environment within the project.
type EnvironmentDecision struct {
	Environment string `yaml:"environment"`
}

// ComponentsDecision records the selected component set.
type ComponentsDecision struct {
	Components []string `yaml:"components"`
}

// ComponentSettingsDecision records per-component settings, keyed by
// component id.
type ComponentSettingsDecision struct {
	Settings map[string]ComponentSettings `yaml:"settings"`
}

// ComponentSettings are the tunables for a single component.
type ComponentSettings struct {
	Plan     string `yaml:"plan,omitempty"`
	Replicas int    `yaml:"replicas,omitempty"`
}

// MeshDecision records whether the project joins the service mesh.
type MeshDecision struct {
	Enabled bool `yaml:"enabled"`
}
