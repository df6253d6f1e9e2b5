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
	"fmt"

	"github.com/cloud-exit/stackforge/internal/project"
	"github.com/cloud-exit/stackforge/internal/ui"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List provisioned projects",
	Run: func(cmd *cobra.Command, args []string) {
		store := project.DefaultStore()
		records, err := store.List()
		if err != nil {
			ui.Errorf("Failed to list projects: %v", err)
		}

		if len(records) == 0 {
			fmt.Println()
			ui.Cecho("No projects yet.", ui.Dim)
			fmt.Println()
			fmt.Println("Commands:")
			fmt.Println("  stackforge create <name>   Create a project")
			fmt.Println()
			return
		}

		fmt.Println()
		ui.Cecho("Projects:", ui.Cyan)
		fmt.Println()
		fmt.Printf("  %-20s %-10s %-12s %-12s\n", "NAME", "FLAVOR", "COMPONENTS", "CREATED")
		fmt.Printf("  %-20s %-10s %-12s %-12s\n", "----", "------", "----------", "-------")

		for _, rec := range records {
			count := 0
			if rec.Decisions.Components != nil {
				count = len(rec.Decisions.Components.Components)
			}
			fmt.Printf("  %-20s %-10s %-12d %-12s\n",
				rec.Name, rec.Flavor, count,
				rec.CreatedAt.Format("2006-01-02"))
		}

		fmt.Println()
		fmt.Println("Commands:")
		fmt.Println("  stackforge create <name>   Create a project")
		fmt.Println("  stackforge show <name>     Show a project's decisions")
		fmt.Println("  stackforge edit <name>     Edit a project")
		fmt.Println("  stackforge delete <name>   Delete a project")
		fmt.Println()
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}
