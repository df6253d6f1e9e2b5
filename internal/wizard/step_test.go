// StackForge - Project Provisioning Wizard
// Copyright (C) 2026 Cloud Exit B.V.
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.

package wizard

import "testing"

func TestNewCatalog_ServiceEnablesAllSteps(t *testing.T) {
	c := NewCatalog(FlavorService)
	enabled := c.EnabledSteps()
	if len(enabled) != len(catalogOrder) {
		t.Fatalf("service catalog has %d enabled steps, want %d", len(enabled), len(catalogOrder))
	}
	for i, def := range enabled {
		if def.ID != catalogOrder[i] {
			t.Errorf("enabled[%d] = %q, want %q", i, def.ID, catalogOrder[i])
		}
	}
}

func TestNewCatalog_StaticDisablesMesh(t *testing.T) {
	c := NewCatalog(FlavorStatic)
	if c.IsEnabled(StepMesh) {
		t.Error("mesh step enabled for static flavor, want disabled")
	}
	for _, def := range c.EnabledSteps() {
		if def.ID == StepMesh {
			t.Error("mesh step present in EnabledSteps for static flavor")
		}
	}
}

func TestCatalogNext_SkipsDisabledSteps(t *testing.T) {
	c := NewCatalog(FlavorStatic)
	next, ok := c.Next(StepComponentSettings)
	if !ok || next != StepReview {
		t.Errorf("Next(component-settings) = %q, %v; want review, true (mesh disabled)", next, ok)
	}
}

func TestCatalogPrev_SkipsDisabledSteps(t *testing.T) {
	c := NewCatalog(FlavorStatic)
	prev, ok := c.Prev(StepReview)
	if !ok || prev != StepComponentSettings {
		t.Errorf("Prev(review) = %q, %v; want component-settings, true (mesh disabled)", prev, ok)
	}
}

func TestCatalogNext_Boundaries(t *testing.T) {
	c := NewCatalog(FlavorService)
	if _, ok := c.Next(StepCreate); ok {
		t.Error("Next(create) reported a following step")
	}
	if _, ok := c.Prev(StepAuth); ok {
		t.Error("Prev(auth) reported a preceding step")
	}
	if _, ok := c.Next("bogus"); ok {
		t.Error("Next(bogus) reported a following step")
	}
}

func TestCatalogFirst(t *testing.T) {
	if got := NewCatalog(FlavorService).First(); got != StepAuth {
		t.Errorf("First() = %q, want auth", got)
	}
}

func TestCatalogIsEnabled_UnknownStep(t *testing.T) {
	if NewCatalog(FlavorService).IsEnabled("bogus") {
		t.Error("IsEnabled(bogus) = true, want false")
	}
}
