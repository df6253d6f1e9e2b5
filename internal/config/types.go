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

package config

// Config is the top-level stackforge configuration (config.yaml).
type Config struct {
	Version  int            `yaml:"version"`
	Defaults DefaultsConfig `yaml:"defaults"`
	Provider ProviderConfig `yaml:"provider"`
}

// DefaultsConfig holds pre-filled wizard defaults.
type DefaultsConfig struct {
	Flavor       string `yaml:"flavor,omitempty"`
	Organization string `yaml:"organization,omitempty"`
}

// ProviderConfig selects where identity, target, and mesh data come from.
type ProviderConfig struct {
	Endpoint string `yaml:"endpoint,omitempty"`
	// Offline forces the built-in static provider even when an endpoint
	// is configured.
	Offline bool `yaml:"offline,omitempty"`
}

// knownFlavors are the project flavors the wizard understands.
var knownFlavors = map[string]bool{
	"service": true,
	"static":  true,
}

// IsKnownFlavor reports whether name is a supported project flavor.
func IsKnownFlavor(name string) bool {
	return knownFlavors[name]
}
