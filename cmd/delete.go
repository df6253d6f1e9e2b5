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
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/cloud-exit/stackforge/internal/project"
	"github.com/cloud-exit/stackforge/internal/ui"
	"github.com/spf13/cobra"
)

var deleteForce bool

var deleteCmd = &cobra.Command{
	Use:   "delete <name>",
	Short: "Delete a project record",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]
		store := project.DefaultStore()
		if !store.Exists(name) {
			return fmt.Errorf("project %q not found, see 'stackforge list'", name)
		}

		if !deleteForce {
			fmt.Printf("This removes the saved record for %q. ", name)
			fmt.Println("Provisioned resources on the platform are not touched.")
			fmt.Print("Are you sure? [y/N] ")

			reader := bufio.NewReader(os.Stdin)
			response, _ := reader.ReadString('\n')
			response = strings.TrimSpace(response)
			if !strings.EqualFold(response, "y") {
				ui.Info("Cancelled")
				return nil
			}
		}

		if err := store.Delete(name); errors.Is(err, project.ErrNotFound) {
			return fmt.Errorf("project %q not found", name)
		} else if err != nil {
			return fmt.Errorf("deleting project: %w", err)
		}

		ui.Successf("Project %q deleted", name)
		return nil
	},
}

func init() {
	deleteCmd.Flags().BoolVarP(&deleteForce, "force", "f", false, "Skip confirmation prompt")
	rootCmd.AddCommand(deleteCmd)
}
