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

package cmd

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/cloud-exit/stackforge/internal/project"
	"github.com/cloud-exit/stackforge/internal/ui"
	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show <name>",
	Short: "Show a project's saved decisions",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store := project.DefaultStore()
		rec, err := store.Get(args[0])
		if errors.Is(err, project.ErrNotFound) {
			return fmt.Errorf("project %q not found, see 'stackforge list'", args[0])
		}
		if err != nil {
			return fmt.Errorf("loading project: %w", err)
		}

		fmt.Println()
		ui.Cecho(rec.Name, ui.Cyan)
		fmt.Printf("  Flavor:   %s\n", rec.Flavor)
		fmt.Printf("  Created:  %s\n", rec.CreatedAt.Format("2006-01-02 15:04"))
		if !rec.UpdatedAt.IsZero() {
			fmt.Printf("  Updated:  %s\n", rec.UpdatedAt.Format("2006-01-02 15:04"))
		}
		fmt.Println()

		d := rec.Decisions
		if d.Auth != nil {
			fmt.Printf("  Organization:  %s\n", d.Auth.Organization)
		}
		if d.Project != nil {
			fmt.Printf("  Project:       %s\n", d.Project.Project)
		}
		if d.Environment != nil {
			fmt.Printf("  Environment:   %s\n", d.Environment.Environment)
		}
		if d.Components != nil {
			fmt.Printf("  Components:    %s\n", strings.Join(d.Components.Components, ", "))
		}
		if d.ComponentSettings != nil && len(d.ComponentSettings.Settings) > 0 {
			fmt.Println("  Settings:")
			ids := make([]string, 0, len(d.ComponentSettings.Settings))
			for id := range d.ComponentSettings.Settings {
				ids = append(ids, id)
			}
			sort.Strings(ids)
			for _, id := range ids {
				cs := d.ComponentSettings.Settings[id]
				fmt.Printf("    %-12s plan=%s replicas=%d\n", id, cs.Plan, cs.Replicas)
			}
		}
		if d.Mesh != nil {
			mesh := "disabled"
			if d.Mesh.Enabled {
				mesh = "enabled"
			}
			fmt.Printf("  Service mesh:  %s\n", mesh)
		}
		fmt.Println()
		return nil
	},
}

func init() {
	rootCmd.AddCommand(showCmd)
}
