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

package provider

import "context"

// Static is the built-in offline provider. It backs local operation and
// tests with a small canned data set.
type Static struct{}

// NewStatic returns the built-in offline provider bundle.
func NewStatic() Providers {
	s := &Static{}
	return Providers{Identity: s, Targets: s, Mesh: s, Components: s}
}

// Organizations implements Identity.
func (s *Static) Organizations(ctx context.Context) ([]Organization, error) {
	return []Organization{
		{ID: "acme", Name: "Acme Corp"},
		{ID: "personal", Name: "Personal"},
	}, nil
}

// Projects implements Targets.
func (s *Static) Projects(ctx context.Context, org string) ([]TargetProject, error) {
	if org == "personal" {
		return []TargetProject{
			{ID: "sandbox", Name: "Sandbox"},
		}, nil
	}
	return []TargetProject{
		{ID: "shop", Name: "Webshop"},
		{ID: "billing", Name: "Billing"},
		{ID: "internal-tools", Name: "Internal Tools"},
	}, nil
}

// Environments implements Targets.
func (s *Static) Environments(ctx context.Context, org, projectID string) ([]Environment, error) {
	return []Environment{
		{ID: "dev", Name: "Development", Region: "eu-central"},
		{ID: "stage", Name: "Staging", Region: "eu-central"},
		{ID: "prod", Name: "Production", Region: "eu-west"},
	}, nil
}

// Status implements Mesh.
func (s *Static) Status(ctx context.Context, org, envID string) (MeshStatus, error) {
	// The canned mesh is only provisioned in non-dev environments.
	if envID == "dev" {
		return MeshStatus{Available: false}, nil
	}
	return MeshStatus{Available: true, Version: "1.8.2", Nodes: 3}, nil
}

// staticComponents is the offline component catalog.
var staticComponents = map[string][]Component{
	"service": {
		{ID: "api", Name: "API Service", Description: "HTTP/gRPC backend", Plans: []string{"small", "medium", "large"}},
		{ID: "worker", Name: "Background Worker", Description: "Queue consumer", Plans: []string{"small", "medium"}},
		{ID: "postgres", Name: "PostgreSQL", Description: "Managed relational database", Plans: []string{"shared", "dedicated"}},
		{ID: "redis", Name: "Redis", Description: "Managed cache and broker", Plans: []string{"shared", "dedicated"}},
	},
	"static": {
		{ID: "site", Name: "Static Site", Description: "CDN-served static content", Plans: []string{"standard"}},
		{ID: "functions", Name: "Edge Functions", Description: "Per-request handlers", Plans: []string{"standard", "pro"}},
	},
}

// Components implements ComponentCatalog.
func (s *Static) Components(flavor string) []Component {
	return staticComponents[flavor]
}
