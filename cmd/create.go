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
	"strings"

	"github.com/cloud-exit/stackforge/internal/config"
	"github.com/cloud-exit/stackforge/internal/project"
	"github.com/cloud-exit/stackforge/internal/ui"
	"github.com/cloud-exit/stackforge/internal/wizard"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var createFlavor string

var createCmd = &cobra.Command{
	Use:   "create <name>",
	Short: "Create a new project through the wizard",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := strings.TrimSpace(args[0])
		if name == "" {
			return errors.New("project name must not be empty")
		}

		if !term.IsTerminal(int(os.Stdin.Fd())) {
			ui.Error("The create wizard needs an interactive terminal.")
		}

		cfg := config.LoadOrDefault()
		flavor := createFlavor
		if flavor == "" {
			flavor = cfg.Defaults.Flavor
		}
		if !config.IsKnownFlavor(flavor) {
			return fmt.Errorf("unknown flavor %q (supported: service, static)", flavor)
		}

		store := project.DefaultStore()
		if store.Exists(name) {
			return fmt.Errorf("project %q already exists, use 'stackforge edit %s'", name, name)
		}

		rec, err := wizard.Run(wizard.Options{
			ProjectName:         name,
			Flavor:              wizard.Flavor(flavor),
			DefaultOrganization: cfg.Defaults.Organization,
			Providers:           selectProviders(cfg),
		})
		if errors.Is(err, wizard.ErrCancelled) {
			ui.Warn("Cancelled, nothing was created.")
			return nil
		}
		if err != nil {
			return err
		}

		if err := store.Save(rec); err != nil {
			return fmt.Errorf("saving project: %w", err)
		}

		ui.Successf("Project %q created (%s)", rec.Name, rec.Flavor)
		fmt.Println()
		fmt.Println("Next steps:")
		fmt.Printf("  stackforge show %s     Inspect the saved decisions\n", rec.Name)
		fmt.Printf("  stackforge edit %s     Revisit any step\n", rec.Name)
		fmt.Println()
		return nil
	},
}

func init() {
	createCmd.Flags().StringVarP(&createFlavor, "flavor", "F", "", "Project flavor (service, static)")
	rootCmd.AddCommand(createCmd)
}
