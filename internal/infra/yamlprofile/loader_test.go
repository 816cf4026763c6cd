package yamlprofile

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/nvidales/agelens/internal/domain"
)

func TestLoadProfile(t *testing.T) {
	path := filepath.Join("testdata", "profile.yaml")
	prof, err := NewLoader().LoadProfile(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if prof.Name != "demo" {
		t.Fatalf("expected name demo, got %q", prof.Name)
	}
	if prof.Person.ChronologicalAge != 40 {
		t.Fatalf("expected chronological age 40, got %v", prof.Person.ChronologicalAge)
	}
	if prof.Person.Activity != "Moderately Active" {
		t.Fatalf("expected activity to pass through verbatim, got %q", prof.Person.Activity)
	}
	if len(prof.Person.Conditions) != 1 || prof.Person.Conditions[0] != "Smoker" {
		t.Fatalf("expected conditions [Smoker], got %v", prof.Person.Conditions)
	}
	if prof.Financial.NetWorth() != 300000 {
		t.Fatalf("expected net worth 300000, got %v", prof.Financial.NetWorth())
	}
}

func TestLoadProfileMissingFile(t *testing.T) {
	_, err := NewLoader().LoadProfile(filepath.Join("testdata", "nope.yaml"))
	if err == nil {
		t.Fatalf("expected error")
	}
	if !domain.IsKind(err, domain.KindNotFound) {
		t.Fatalf("expected not_found kind, got %v", err)
	}
}

func TestLoadProfileInvalidFields(t *testing.T) {
	path := filepath.Join("testdata", "profile_invalid.yaml")
	_, err := NewLoader().LoadProfile(path)
	if err == nil {
		t.Fatalf("expected error")
	}
	if !strings.Contains(err.Error(), "person.height_cm") {
		t.Fatalf("expected field in error, got %v", err)
	}
	if !strings.Contains(err.Error(), path) {
		t.Fatalf("expected path in error, got %v", err)
	}
}

func TestLoadProfileMalformedYAML(t *testing.T) {
	tmp := t.TempDir()
	path := filepath.Join(tmp, "bad.yaml")
	if err := os.WriteFile(path, []byte("person: [not: a map"), 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := NewLoader().LoadProfile(path)
	if err == nil {
		t.Fatalf("expected error")
	}
	if !domain.IsKind(err, domain.KindInvalidProfile) {
		t.Fatalf("expected invalid_profile kind, got %v", err)
	}
}
