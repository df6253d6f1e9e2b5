// StackForge - Project Provisioning Wizard
// Copyright (C) 2026 Cloud Exit B.V.
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.

package cmd

import "testing"

func TestDetectShellFromEnv(t *testing.T) {
	tests := []struct {
		shell string
		want  string
	}{
		{"/bin/bash", "bash"},
		{"/usr/bin/zsh", "zsh"},
		{"/opt/homebrew/bin/fish", "fish"},
	}
	for _, tt := range tests {
		t.Setenv("SHELL", tt.shell)
		if got := detectShell(); got != tt.want {
			t.Errorf("detectShell() with SHELL=%s = %q, want %q", tt.shell, got, tt.want)
		}
	}
}

func TestDetectShellUnknownFallsBack(t *testing.T) {
	t.Setenv("SHELL", "/bin/tcsh")
	got := detectShell()
	switch got {
	case "bash", "zsh", "fish":
	default:
		t.Errorf("detectShell() = %q, want a supported shell", got)
	}
}
