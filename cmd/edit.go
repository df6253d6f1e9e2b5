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
	"os"

	"github.com/cloud-exit/stackforge/internal/config"
	"github.com/cloud-exit/stackforge/internal/project"
	"github.com/cloud-exit/stackforge/internal/ui"
	"github.com/cloud-exit/stackforge/internal/wizard"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var editCmd = &cobra.Command{
	Use:   "edit <name>",
	Short: "Edit an existing project through the wizard",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]

		// Resolve the record before any TUI starts so a missing
		// project is a plain error, not a broken screen.
		store := project.DefaultStore()
		rec, err := store.Get(name)
		if errors.Is(err, project.ErrNotFound) {
			return fmt.Errorf("project %q not found, see 'stackforge list'", name)
		}
		if err != nil {
			return fmt.Errorf("loading project: %w", err)
		}

		if !term.IsTerminal(int(os.Stdin.Fd())) {
			ui.Error("The edit wizard needs an interactive terminal.")
		}

		cfg := config.LoadOrDefault()
		updated, err := wizard.Run(wizard.Options{
			Providers: selectProviders(cfg),
			Record:    rec,
		})
		if errors.Is(err, wizard.ErrCancelled) {
			ui.Warn("Cancelled, nothing was changed.")
			return nil
		}
		if err != nil {
			return err
		}

		if err := store.Save(updated); err != nil {
			return fmt.Errorf("saving project: %w", err)
		}

		ui.Successf("Project %q updated", updated.Name)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(editCmd)
}
