// StackForge - Project Provisioning Wizard
// Copyright (C) 2026 Cloud Exit B.V.
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.

package wizard

import "testing"

func TestNewDefaultGraph_Valid(t *testing.T) {
	g, err := NewDefaultGraph()
	if err != nil {
		t.Fatalf("NewDefaultGraph() = %v, want nil", err)
	}
	deps := g.Dependents(StepAuth)
	if !deps.Has(StepProject) || !deps.Has(StepEnvironment) {
		t.Errorf("Dependents(auth) = %v, want project and environment", deps)
	}
}

func TestDefaultGraph_NoStepDependsOnItself(t *testing.T) {
	g, err := NewDefaultGraph()
	if err != nil {
		t.Fatal(err)
	}
	for _, id := range catalogOrder {
		if g.StepsToInvalidate(id).Has(id) {
			t.Errorf("step %q is a transitive dependent of itself", id)
		}
	}
}

func TestNewDependencyGraph_RejectsCycle(t *testing.T) {
	edges := map[StepID][]StepID{
		StepAuth:        {StepProject},
		StepProject:     {StepEnvironment},
		StepEnvironment: {StepAuth},
	}
	if _, err := NewDependencyGraph(edges); err == nil {
		t.Fatal("cyclic graph accepted, want construction error")
	}
}

func TestNewDependencyGraph_RejectsSelfEdge(t *testing.T) {
	edges := map[StepID][]StepID{
		StepAuth: {StepAuth},
	}
	if _, err := NewDependencyGraph(edges); err == nil {
		t.Fatal("self-edge accepted, want construction error")
	}
}

func TestNewDependencyGraph_RejectsUnknownSteps(t *testing.T) {
	tests := []struct {
		name  string
		edges map[StepID][]StepID
	}{
		{"unknown key", map[StepID][]StepID{"bogus": {StepProject}}},
		{"unknown target", map[StepID][]StepID{StepAuth: {"bogus"}}},
	}
	for _, tc := range tests {
		if _, err := NewDependencyGraph(tc.edges); err == nil {
			t.Errorf("%s: graph accepted, want construction error", tc.name)
		}
	}
}

func TestDependents_LeafStepIsEmpty(t *testing.T) {
	g, err := NewDefaultGraph()
	if err != nil {
		t.Fatal(err)
	}
	for _, id := range []StepID{StepReview, StepCreate, StepMesh} {
		if deps := g.Dependents(id); deps.Len() != 0 {
			t.Errorf("Dependents(%q) = %v, want empty", id, deps)
		}
	}
}
