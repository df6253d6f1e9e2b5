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
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/cloud-exit/stackforge/internal/project"
	"github.com/cloud-exit/stackforge/internal/provider"
)

// ErrCancelled is returned when the operator backs out of the wizard.
var ErrCancelled = errors.New("wizard cancelled")

// Options configure a wizard session.
type Options struct {
	// ProjectName names the project being created. Ignored in edit mode
	// (the record's name wins).
	ProjectName string
	// Flavor selects the step catalog for new projects.
	Flavor Flavor
	// DefaultOrganization pre-positions the organization cursor for new
	// projects. It is a hint, not a decision.
	DefaultOrganization string
	// Providers are the external collaborators for identity, targets,
	// components, and mesh data.
	Providers provider.Providers
	// Record, when non-nil, opens the wizard in edit mode seeded from
	// this record.
	Record *project.Record
}

// Run executes the wizard TUI and returns the resulting project record.
// The record is not persisted; that is the caller's job.
func Run(opts Options) (*project.Record, error) {
	graph, err := NewDefaultGraph()
	if err != nil {
		return nil, fmt.Errorf("wizard configuration: %w", err)
	}

	var m Model
	if opts.Record != nil {
		flavor := Flavor(opts.Record.Flavor)
		if flavor != FlavorService && flavor != FlavorStatic {
			flavor = FlavorService
		}
		ctrl := NewController(NewCatalog(flavor), graph)
		m = NewModelFromRecord(opts.Record, opts.Providers, ctrl)
	} else {
		ctrl := NewController(NewCatalog(opts.Flavor), graph)
		m = NewModel(opts.ProjectName, opts.Flavor, opts.Providers, ctrl)
		m.defaultOrg = opts.DefaultOrganization
	}

	p := tea.NewProgram(m, tea.WithAltScreen())
	finalModel, err := p.Run()
	if err != nil {
		return nil, fmt.Errorf("wizard error: %w", err)
	}

	wm := finalModel.(Model)
	if wm.Cancelled() || !wm.Confirmed() {
		return nil, ErrCancelled
	}

	rec := &project.Record{
		Name:      wm.projectName,
		Flavor:    string(wm.flavor),
		Decisions: wm.Decisions(),
	}
	if opts.Record != nil {
		rec.Version = opts.Record.Version
		rec.CreatedAt = opts.Record.CreatedAt
	}
	return rec, nil
}
