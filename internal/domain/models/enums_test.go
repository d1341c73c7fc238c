package models

import (
	"reflect"
	"testing"
)

func TestEnumSetFind(t *testing.T) {
	tests := []struct {
		name      string
		set       EnumSet
		value     string
		wantLabel string
		wantOK    bool
	}{
		{"stage by machine value", Stages, "3-Selected", "Selected", true},
		{"first stage", Stages, "1-Need", "Need", true},
		{"stage label is not a value", Stages, "Selected", "", false},
		{"role", Roles, "Decision Maker", "Decision Maker", true},
		{"viewpoint", Viewpoints, "Economic Buyer", "Economic Buyer", true},
		{"outside the closed set", Roles, "Champion", "", false},
		{"case matters", Stages, "3-selected", "", false},
		{"empty value", Viewpoints, "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			member, ok := tt.set.Find(tt.value)
			if ok != tt.wantOK {
				t.Fatalf("Find(%q) ok = %v, want %v", tt.value, ok, tt.wantOK)
			}
			if member.Label != tt.wantLabel {
				t.Errorf("Find(%q) label = %q, want %q", tt.value, member.Label, tt.wantLabel)
			}
		})
	}
}

func TestEnumSetValues(t *testing.T) {
	want := []string{"1-Need", "2-Sourcing", "3-Selected", "4-Ordered", "5-Usage", "6-Adoption", "7-Assess"}
	if got := Stages.Values(); !reflect.DeepEqual(got, want) {
		t.Errorf("Stages.Values() = %v, want %v", got, want)
	}

	if got := len(Roles.Values()); got != 4 {
		t.Errorf("len(Roles.Values()) = %d, want 4", got)
	}
	if got := len(Viewpoints.Values()); got != 5 {
		t.Errorf("len(Viewpoints.Values()) = %d, want 5", got)
	}
}

func TestEnumSetByName(t *testing.T) {
	for _, name := range []string{"stages", "roles", "viewpoints"} {
		set, ok := EnumSetByName(name)
		if !ok {
			t.Errorf("EnumSetByName(%q) not found", name)
			continue
		}
		if set.Name != name {
			t.Errorf("EnumSetByName(%q).Name = %q", name, set.Name)
		}
	}

	if _, ok := EnumSetByName("personas"); ok {
		t.Error("EnumSetByName(\"personas\") = ok, want miss")
	}
}

func TestCallContextLookup(t *testing.T) {
	callCtx := NewCallContext([]ContextField{
		{Name: "stage", Label: "Stage", Value: "1-Need"},
		{Name: "scenario", Label: "Scenario"},
	})

	if v, ok := callCtx.Value("stage"); !ok || v != "1-Need" {
		t.Errorf("Value(stage) = %q, %v", v, ok)
	}
	// Empty value is still bound
	if v, ok := callCtx.Value("scenario"); !ok || v != "" {
		t.Errorf("Value(scenario) = %q, %v", v, ok)
	}
	if _, ok := callCtx.Value("role"); ok {
		t.Error("Value(role) = ok, want miss")
	}
}

func TestCallContextImmutable(t *testing.T) {
	source := []ContextField{{Name: "stage", Label: "Stage", Value: "1-Need"}}
	callCtx := NewCallContext(source)

	// Mutating the source slice or a returned copy must not affect the context
	source[0].Value = "changed"
	fields := callCtx.Fields()
	fields[0].Value = "also changed"

	if v, _ := callCtx.Value("stage"); v != "1-Need" {
		t.Errorf("Value(stage) = %q after external mutation, want %q", v, "1-Need")
	}
}
