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
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestRemoteOrganizations(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/organizations" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"id":"acme","name":"Acme Corp"},{"id":"personal","name":"Personal"}]`))
	}))
	defer srv.Close()

	p := NewRemote(srv.URL)
	orgs, err := p.Identity.Organizations(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(orgs) != 2 || orgs[0].ID != "acme" {
		t.Errorf("unexpected organizations: %v", orgs)
	}
}

func TestRemoteEnvironments(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/organizations/acme/projects/shop/environments" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"id":"prod","name":"Production","region":"eu-west"}]`))
	}))
	defer srv.Close()

	p := NewRemote(srv.URL)
	envs, err := p.Targets.Environments(context.Background(), "acme", "shop")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(envs) != 1 || envs[0].Region != "eu-west" {
		t.Errorf("unexpected environments: %v", envs)
	}
}

func TestRemoteMeshStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/organizations/acme/environments/prod/mesh" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"available":true,"version":"1.8.2","nodes":3}`))
	}))
	defer srv.Close()

	p := NewRemote(srv.URL)
	status, err := p.Mesh.Status(context.Background(), "acme", "prod")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !status.Available || status.Nodes != 3 {
		t.Errorf("unexpected status: %+v", status)
	}
}

func TestRemoteErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusForbidden)
	}))
	defer srv.Close()

	p := NewRemote(srv.URL)
	if _, err := p.Identity.Organizations(context.Background()); err == nil {
		t.Fatal("expected error for non-200 response")
	}
}

func TestRemoteComponentsAreLocal(t *testing.T) {
	// The component catalog ships with the binary; no server involved.
	p := NewRemote("http://unreachable.invalid")
	if got := p.Components.Components("service"); len(got) == 0 {
		t.Error("remote bundle lost the built-in component catalog")
	}
}
