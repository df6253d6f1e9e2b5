// StackForge - Project Provisioning Wizard
// Copyright (C) 2026 Cloud Exit B.V.
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.

package cmd

import (
	"testing"

	"github.com/cloud-exit/stackforge/internal/config"
	"github.com/cloud-exit/stackforge/internal/provider"
)

func TestSelectProviders(t *testing.T) {
	tests := []struct {
		name       string
		cfg        config.ProviderConfig
		wantRemote bool
	}{
		{"offline forces static", config.ProviderConfig{Offline: true, Endpoint: "https://api.example.com"}, false},
		{"no endpoint falls back to static", config.ProviderConfig{Offline: false}, false},
		{"endpoint selects remote", config.ProviderConfig{Offline: false, Endpoint: "https://api.example.com"}, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := selectProviders(&config.Config{Provider: tc.cfg})
			_, isRemote := p.Identity.(*provider.Remote)
			if isRemote != tc.wantRemote {
				t.Errorf("selectProviders() remote = %v, want %v", isRemote, tc.wantRemote)
			}
			if p.Components == nil {
				t.Error("provider bundle missing component catalog")
			}
		})
	}
}
