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

// Package provider defines the external collaborators the wizard fetches
// data from: identity, target selection, component catalog, and mesh
// status. The navigation core never calls these; only the display layer
// does, and only outside a navigation transition.
package provider

import "context"

// Organization is an identity the operator can provision under.
type Organization struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// TargetProject is a project on the deployment platform.
type TargetProject struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Environment is a deployment environment within a project.
type Environment struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Region string `json:"region"`
}

// Component is a provisionable building block (api, worker, database, ...).
type Component struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	// Plans the component can run on, first entry is the default.
	Plans []string `json:"plans"`
}

// MeshStatus describes the service mesh in an environment.
type MeshStatus struct {
	Available bool   `json:"available"`
	Version   string `json:"version"`
	Nodes     int    `json:"nodes"`
}

// Identity lists organizations visible to the current credentials.
type Identity interface {
	Organizations(ctx context.Context) ([]Organization, error)
}

// Targets lists projects and environments for an organization.
type Targets interface {
	Projects(ctx context.Context, org string) ([]TargetProject, error)
	Environments(ctx context.Context, org, projectID string) ([]Environment, error)
}

// Mesh reports mesh availability for an environment.
type Mesh interface {
	Status(ctx context.Context, org, envID string) (MeshStatus, error)
}

// ComponentCatalog lists the components available for a project flavor.
type ComponentCatalog interface {
	Components(flavor string) []Component
}

// Providers bundles the collaborator set handed to the wizard.
type Providers struct {
	Identity   Identity
	Targets    Targets
	Mesh       Mesh
	Components ComponentCatalog
}
