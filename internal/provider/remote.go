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

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Remote fetches identity, target, and mesh data from a platform API
// endpoint. The component catalog stays local: it is versioned with the
// binary, not the platform.
type Remote struct {
	endpoint string
	client   *http.Client
}

// NewRemote returns a provider bundle backed by the platform API at
// endpoint. Components come from the built-in catalog.
func NewRemote(endpoint string) Providers {
	r := &Remote{
		endpoint: strings.TrimRight(endpoint, "/"),
		client:   &http.Client{Timeout: 10 * time.Second},
	}
	return Providers{Identity: r, Targets: r, Mesh: r, Components: &Static{}}
}

// get issues a GET against the endpoint and decodes the JSON response
// into out.
func (r *Remote) get(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.endpoint+path, nil)
	if err != nil {
		return err
	}
	resp, err := r.client.Do(req)
	if err != nil {
		return fmt.Errorf("fetching %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("platform API returned status %d for %s", resp.StatusCode, path)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("parsing %s response: %w", path, err)
	}
	return nil
}

// Organizations implements Identity.
func (r *Remote) Organizations(ctx context.Context) ([]Organization, error) {
	var orgs []Organization
	if err := r.get(ctx, "/organizations", &orgs); err != nil {
		return nil, err
	}
	return orgs, nil
}

// Projects implements Targets.
func (r *Remote) Projects(ctx context.Context, org string) ([]TargetProject, error) {
	var projects []TargetProject
	path := fmt.Sprintf("/organizations/%s/projects", url.PathEscape(org))
	if err := r.get(ctx, path, &projects); err != nil {
		return nil, err
	}
	return projects, nil
}

// Environments implements Targets.
func (r *Remote) Environments(ctx context.Context, org, projectID string) ([]Environment, error) {
	var envs []Environment
	path := fmt.Sprintf("/organizations/%s/projects/%s/environments",
		url.PathEscape(org), url.PathEscape(projectID))
	if err := r.get(ctx, path, &envs); err != nil {
		return nil, err
	}
	return envs, nil
}

// Status implements Mesh.
func (r *Remote) Status(ctx context.Context, org, envID string) (MeshStatus, error) {
	var status MeshStatus
	path := fmt.Sprintf("/organizations/%s/environments/%s/mesh",
		url.PathEscape(org), url.PathEscape(envID))
	if err := r.get(ctx, path, &status); err != nil {
		return MeshStatus{}, err
	}
	return status, nil
}
