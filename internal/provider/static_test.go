// StackForge - Project Provisioning Wizard
// Copyright (C) 2026 Cloud Exit B.V.
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.

package provider

import (
	"context"
	"testing"
)

func TestStaticBundleComplete(t *testing.T) {
	p := NewStatic()
	if p.Identity == nil || p.Targets == nil || p.Mesh == nil || p.Components == nil {
		t.Fatal("static bundle has nil members")
	}
}

func TestStaticProjectsPerOrg(t *testing.T) {
	s := &Static{}
	ctx := context.Background()

	acme, err := s.Projects(ctx, "acme")
	if err != nil {
		t.Fatal(err)
	}
	personal, err := s.Projects(ctx, "personal")
	if err != nil {
		t.Fatal(err)
	}
	if len(acme) == 0 || len(personal) == 0 {
		t.Fatal("expected canned projects for both organizations")
	}
	if len(acme) == len(personal) {
		t.Error("expected organizations to have distinct project lists")
	}
}

func TestStaticMeshUnavailableInDev(t *testing.T) {
	s := &Static{}
	ctx := context.Background()

	dev, err := s.Status(ctx, "acme", "dev")
	if err != nil {
		t.Fatal(err)
	}
	if dev.Available {
		t.Error("mesh should not be provisioned in dev")
	}

	prod, err := s.Status(ctx, "acme", "prod")
	if err != nil {
		t.Fatal(err)
	}
	if !prod.Available {
		t.Error("mesh should be provisioned in prod")
	}
	if prod.Version == "" || prod.Nodes == 0 {
		t.Error("available mesh should report version and node count")
	}
}

func TestStaticComponentsPerFlavor(t *testing.T) {
	s := &Static{}

	service := s.Components("service")
	static := s.Components("static")
	if len(service) == 0 || len(static) == 0 {
		t.Fatal("expected canned components for both flavors")
	}
	for _, c := range append(service, static...) {
		if c.ID == "" || len(c.Plans) == 0 {
			t.Errorf("component %+v missing id or plans", c)
		}
	}
	if got := s.Components("unknown"); got != nil {
		t.Errorf("unknown flavor returned %v, want nil", got)
	}
}
