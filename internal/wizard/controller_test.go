// StackForge - Project Provisioning Wizard
// Copyright (C) 2026 Cloud Exit B.V.
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.

package wizard

import "testing"

func newTestController(t *testing.T, flavor Flavor) *Controller {
	t.Helper()
	g, err := NewDefaultGraph()
	if err != nil {
		t.Fatal(err)
	}
	return NewController(NewCatalog(flavor), g)
}

func TestAdvance_MarksCompletedAndMoves(t *testing.T) {
	c := newTestController(t, FlavorService)
	s := NewState(c.Catalog())

	s = c.Apply(s, Advance{})
	if s.Current != StepProject {
		t.Errorf("Current = %q, want project", s.Current)
	}
	if !s.Completed.Has(StepAuth) {
		t.Error("auth not completed after advancing past it")
	}
	if s.Confirmed.Len() != 0 {
		t.Errorf("Confirmed = %v outside edit mode, want empty", s.Confirmed)
	}
}

func TestAdvance_NoDuplicateCompletion(t *testing.T) {
	c := newTestController(t, FlavorService)
	s := NewState(c.Catalog())

	// Bounce in and out of the project step a few times.
	for i := 0; i < 4; i++ {
		s = c.Apply(s, Advance{})
		s = c.Apply(s, Retreat{})
	}
	if !s.Completed.Has(StepAuth) {
		t.Fatal("auth lost its completion")
	}
	if s.Completed.Len() != 1 {
		t.Errorf("Completed = %v, want exactly {auth}", s.Completed)
	}
}

func TestAdvance_PastLastStepIsNoOp(t *testing.T) {
	c := newTestController(t, FlavorService)
	s := NewState(c.Catalog())
	s.Current = StepCreate

	got := c.Apply(s, Advance{})
	if got.Current != StepCreate {
		t.Errorf("Current = %q after advancing past create, want create", got.Current)
	}
}

func TestAdvance_UnknownCurrentIsNoOp(t *testing.T) {
	c := newTestController(t, FlavorService)
	s := NewState(c.Catalog())
	s.Current = "bogus"

	got := c.Apply(s, Advance{})
	if got.Current != "bogus" || got.Completed.Len() != 0 {
		t.Errorf("advance from unknown step changed state: %+v", got)
	}
}

func TestRetreat_KeepsCompletion(t *testing.T) {
	c := newTestController(t, FlavorService)
	s := NewState(c.Catalog())
	s = c.Apply(s, Advance{})
	s = c.Apply(s, Advance{})

	s = c.Apply(s, Retreat{})
	if s.Current != StepProject {
		t.Errorf("Current = %q, want project", s.Current)
	}
	if !s.Completed.Has(StepAuth) || !s.Completed.Has(StepProject) {
		t.Errorf("Completed = %v, retreat must not clear completion", s.Completed)
	}
	if s.Invalidated.Len() != 0 {
		t.Errorf("Invalidated = %v, moving backward must not invalidate", s.Invalidated)
	}
}

func TestRetreat_FromFirstStepIsNoOp(t *testing.T) {
	c := newTestController(t, FlavorService)
	s := NewState(c.Catalog())
	got := c.Apply(s, Retreat{})
	if got.Current != StepAuth {
		t.Errorf("Current = %q, want auth", got.Current)
	}
}

func TestJump_OnlyVisitedStepsAreClickable(t *testing.T) {
	c := newTestController(t, FlavorService)
	s := NewState(c.Catalog())
	s = c.Apply(s, Advance{}) // auth done, now on project

	if !c.Clickable(s, StepAuth) {
		t.Error("completed step auth not clickable")
	}
	if !c.Clickable(s, StepProject) {
		t.Error("current step not clickable")
	}
	if c.Clickable(s, StepComponents) {
		t.Error("never-visited step components clickable; forward skipping is disallowed")
	}

	// Forward jump to a never-visited step is rejected.
	got := c.Apply(s, Jump{Target: StepComponents})
	if got.Current != StepProject {
		t.Errorf("Current = %q after illegal jump, want project", got.Current)
	}

	// Backward jump to a completed step works.
	got = c.Apply(s, Jump{Target: StepAuth})
	if got.Current != StepAuth {
		t.Errorf("Current = %q after jump to auth, want auth", got.Current)
	}
}

func TestJump_InvalidatedStepIsClickable(t *testing.T) {
	c := newTestController(t, FlavorService)
	s := NewState(c.Catalog())
	for i := 0; i < 3; i++ {
		s = c.Apply(s, Advance{}) // complete auth, project, environment
	}
	s = c.Apply(s, Jump{Target: StepAuth})
	s = c.Apply(s, ChangeDecision{Step: StepAuth})

	// project was dropped from completed but is invalidated, so it stays
	// reachable for re-confirmation.
	if s.Completed.Has(StepProject) {
		t.Fatal("project still completed after auth change")
	}
	if !c.Clickable(s, StepProject) {
		t.Error("invalidated step project not clickable")
	}
	got := c.Apply(s, Jump{Target: StepProject})
	if got.Current != StepProject {
		t.Errorf("Current = %q after jump to invalidated step, want project", got.Current)
	}
}

func TestJump_DisabledStepIsNoOp(t *testing.T) {
	c := newTestController(t, FlavorStatic)
	s := NewState(c.Catalog())
	s.Completed.Add(StepMesh) // malformed state on purpose

	got := c.Apply(s, Jump{Target: StepMesh})
	if got.Current != StepAuth {
		t.Errorf("Current = %q after jump to disabled step, want auth", got.Current)
	}
}

func TestChangeDecision_InvalidatesTransitiveDependents(t *testing.T) {
	c := newTestController(t, FlavorService)
	s := NewState(c.Catalog())
	s.Completed = NewStepSet(StepAuth, StepProject, StepEnvironment, StepComponents)
	s.Current = StepAuth

	s = c.Apply(s, ChangeDecision{Step: StepAuth})

	// auth -> {project, environment}, environment -> {mesh}.
	wantInvalid := NewStepSet(StepProject, StepEnvironment, StepMesh)
	if !s.Invalidated.Equal(wantInvalid) {
		t.Errorf("Invalidated = %v, want %v", s.Invalidated, wantInvalid)
	}
	wantCompleted := NewStepSet(StepAuth, StepComponents)
	if !s.Completed.Equal(wantCompleted) {
		t.Errorf("Completed = %v, want %v", s.Completed, wantCompleted)
	}
}

func TestChangeDecision_IndependentBranchUntouched(t *testing.T) {
	c := newTestController(t, FlavorService)
	s := NewState(c.Catalog())
	s.Completed = NewStepSet(StepAuth, StepProject, StepEnvironment, StepComponents)
	s.Current = StepProject

	s = c.Apply(s, ChangeDecision{Step: StepProject})

	if s.Invalidated.Has(StepAuth) {
		t.Error("auth invalidated by project change; no edge into auth")
	}
	if s.Invalidated.Has(StepComponents) || !s.Completed.Has(StepComponents) {
		t.Error("components affected by project change; branches are independent")
	}
	if !s.Invalidated.Has(StepEnvironment) {
		t.Error("environment not invalidated by project change")
	}
	if !s.Completed.Has(StepAuth) {
		t.Error("auth lost completion on project change")
	}
}

func TestChangeDecision_NoDependentsIsIdempotentNoOp(t *testing.T) {
	c := newTestController(t, FlavorService)
	s := NewState(c.Catalog())
	s.Completed = NewStepSet(StepAuth, StepProject)
	before := s

	s = c.Apply(s, ChangeDecision{Step: StepReview})
	if !s.Completed.Equal(before.Completed) {
		t.Errorf("Completed changed: %v -> %v", before.Completed, s.Completed)
	}
	if s.Invalidated.Len() != 0 {
		t.Errorf("Invalidated = %v, want empty", s.Invalidated)
	}
}

func TestChangeDecision_NeverSelfInvalidates(t *testing.T) {
	c := newTestController(t, FlavorService)
	s := NewState(c.Catalog())
	s.Completed = NewStepSet(StepAuth)

	s = c.Apply(s, ChangeDecision{Step: StepAuth})
	if s.Invalidated.Has(StepAuth) {
		t.Error("auth invalidated by its own change")
	}
	if !s.Completed.Has(StepAuth) {
		t.Error("auth lost its own completion on change")
	}
}

func TestChangeDecision_SkipsDisabledDependents(t *testing.T) {
	// Static flavor disables mesh; environment -> mesh must not leak a
	// disabled step into the invalidated set.
	c := newTestController(t, FlavorStatic)
	s := NewState(c.Catalog())
	s.Completed = NewStepSet(StepAuth, StepProject, StepEnvironment)

	s = c.Apply(s, ChangeDecision{Step: StepEnvironment})
	if s.Invalidated.Has(StepMesh) {
		t.Error("disabled mesh step entered the invalidated set")
	}
}

func TestTerminalGate_ReviewBlockedWhileInvalidated(t *testing.T) {
	c := newTestController(t, FlavorService)
	s := NewState(c.Catalog())
	for i := 0; i < 5; i++ {
		s = c.Apply(s, Advance{}) // walk auth..mesh, now on mesh
	}
	if s.Current != StepMesh {
		t.Fatalf("Current = %q, want mesh", s.Current)
	}

	// Invalidate environment (and mesh) by changing project.
	s = c.Apply(s, ChangeDecision{Step: StepProject})
	if s.Invalidated.Len() == 0 {
		t.Fatal("expected invalidated steps after project change")
	}

	// Advance into review is rejected; state unchanged.
	blocked := c.Apply(s, Advance{})
	if blocked.Current != StepMesh {
		t.Errorf("Current = %q, advance into review must be rejected while invalidated", blocked.Current)
	}

	// Jump to review is rejected even though review itself is not stale.
	blocked = c.Apply(s, Jump{Target: StepReview})
	if blocked.Current != StepMesh {
		t.Errorf("Current = %q, jump to review must be rejected while invalidated", blocked.Current)
	}

	// Resolve the stale steps; the gate opens immediately after the
	// last one.
	s = c.Apply(s, Resolve{Step: StepEnvironment})
	blocked = c.Apply(s, Jump{Target: StepReview})
	if blocked.Current == StepReview {
		t.Error("review reachable while mesh still invalidated")
	}
	s = c.Apply(s, Resolve{Step: StepMesh})
	s = c.Apply(s, Advance{})
	if s.Current != StepReview {
		t.Errorf("Current = %q after resolving all and advancing, want review", s.Current)
	}
}

func TestResolve_ClearsInvalidationAndRestoresCompletion(t *testing.T) {
	c := newTestController(t, FlavorService)
	s := NewState(c.Catalog())
	s.Completed = NewStepSet(StepAuth, StepProject, StepEnvironment)
	s = c.Apply(s, ChangeDecision{Step: StepProject})
	if !s.Invalidated.Has(StepEnvironment) {
		t.Fatal("environment not invalidated")
	}

	s = c.Apply(s, Resolve{Step: StepEnvironment})
	if s.Invalidated.Has(StepEnvironment) {
		t.Error("environment still invalidated after resolve")
	}
	if !s.Completed.Has(StepEnvironment) {
		t.Error("environment not completed after resolve")
	}
}

func TestResolve_UnflaggedStepIsNoOp(t *testing.T) {
	c := newTestController(t, FlavorService)
	s := NewState(c.Catalog())

	// Resolving a never-visited step must not complete it; that would
	// make it clickable and open a forward skip to review.
	got := c.Apply(s, Resolve{Step: StepReview})
	if got.Completed.Has(StepReview) {
		t.Fatal("resolve completed a step that was never invalidated")
	}
	if got.Confirmed.Len() != 0 {
		t.Errorf("Confirmed = %v, want empty", got.Confirmed)
	}
	jumped := c.Apply(got, Jump{Target: StepReview})
	if jumped.Current == StepReview {
		t.Error("review reachable from the first step via a bogus resolve")
	}
}

func TestRetreat_IntoReviewBlockedWhileInvalidated(t *testing.T) {
	c := newTestController(t, FlavorService)
	s := NewState(c.Catalog())
	s.Current = StepCreate
	s.Invalidated = NewStepSet(StepEnvironment)

	got := c.Apply(s, Retreat{})
	if got.Current != StepCreate {
		t.Errorf("Current = %q, retreat into review must be rejected while invalidated", got.Current)
	}
}

func TestAdvance_ResolvesInvalidatedCurrentStep(t *testing.T) {
	c := newTestController(t, FlavorService)
	s := NewState(c.Catalog())
	s.Completed = NewStepSet(StepAuth, StepProject, StepEnvironment)
	s.Current = StepProject
	s = c.Apply(s, ChangeDecision{Step: StepAuth})
	if !s.Invalidated.Has(StepProject) {
		t.Fatal("project not invalidated")
	}

	// Advancing past the invalidated step re-confirms it.
	s = c.Apply(s, Advance{})
	if s.Invalidated.Has(StepProject) {
		t.Error("project still invalidated after advancing past it")
	}
	if !s.Completed.Has(StepProject) {
		t.Error("project not completed after advancing past it")
	}
}

func TestApply_DoesNotMutateInputState(t *testing.T) {
	c := newTestController(t, FlavorService)
	s := NewState(c.Catalog())
	s.Completed = NewStepSet(StepAuth, StepProject, StepEnvironment)
	s.Current = StepAuth

	_ = c.Apply(s, ChangeDecision{Step: StepAuth})
	if s.Completed.Len() != 3 || s.Invalidated.Len() != 0 {
		t.Errorf("input state mutated: completed=%v invalidated=%v", s.Completed, s.Invalidated)
	}
}

func TestEditMode_AdvanceConfirmsAndResolves(t *testing.T) {
	c := newTestController(t, FlavorService)
	s := NewState(c.Catalog())
	s.EditMode = true
	s.Completed = NewStepSet(StepAuth, StepProject, StepEnvironment)
	s.Invalidated = NewStepSet(StepAuth)

	s = c.Apply(s, Advance{})
	if s.Invalidated.Has(StepAuth) {
		t.Error("auth still invalidated after advancing past it")
	}
	if !s.Confirmed.Has(StepAuth) {
		t.Error("auth not confirmed after advancing past it in edit mode")
	}
}

func TestEditMode_InvalidationDowngradesConfirmation(t *testing.T) {
	c := newTestController(t, FlavorService)
	s := NewState(c.Catalog())
	s.EditMode = true
	s.Completed = NewStepSet(StepAuth, StepProject, StepEnvironment)
	s.Confirmed = NewStepSet(StepProject, StepEnvironment)

	s = c.Apply(s, ChangeDecision{Step: StepAuth})
	if s.Confirmed.Has(StepProject) || s.Confirmed.Has(StepEnvironment) {
		t.Errorf("Confirmed = %v, invalidation must downgrade confirmation", s.Confirmed)
	}
	for id := range s.Invalidated {
		if s.Confirmed.Has(id) {
			t.Errorf("step %q is both invalidated and confirmed", id)
		}
	}
}

func TestStatusOf_Precedence(t *testing.T) {
	s := State{
		Current:     StepAuth,
		Completed:   NewStepSet(StepProject, StepEnvironment, StepComponents),
		Invalidated: NewStepSet(StepEnvironment),
		Confirmed:   NewStepSet(StepComponents, StepEnvironment),
	}
	tests := []struct {
		id   StepID
		want StepStatus
	}{
		{StepAuth, StatusCurrent},
		{StepEnvironment, StatusInvalidated}, // invalidated beats confirmed
		{StepComponents, StatusConfirmed},
		{StepProject, StatusCompleted},
		{StepMesh, StatusUpcoming},
	}
	for _, tc := range tests {
		if got := s.StatusOf(tc.id); got != tc.want {
			t.Errorf("StatusOf(%q) = %v, want %v", tc.id, got, tc.want)
		}
	}
}
