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
	"github.com/cloud-exit/stackforge/internal/config"
	"github.com/cloud-exit/stackforge/internal/provider"
	"github.com/cloud-exit/stackforge/internal/ui"
)

// selectProviders picks the provider bundle for a wizard session:
// the platform endpoint from the config, unless offline mode forces the
// built-in static provider.
func selectProviders(cfg *config.Config) provider.Providers {
	if cfg.Provider.Offline {
		return provider.NewStatic()
	}
	if cfg.Provider.Endpoint == "" {
		ui.Warnf("provider.offline is false but no endpoint is configured; using the built-in provider")
		return provider.NewStatic()
	}
	ui.Debugf("using platform endpoint %s", cfg.Provider.Endpoint)
	return provider.NewRemote(cfg.Provider.Endpoint)
}
