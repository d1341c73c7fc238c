package variants

import (
	"strings"
	"testing"

	"callprep/internal/domain/models"
	"callprep/internal/service/prompt"
)

func TestNewRegistryLoadsCatalog(t *testing.T) {
	registry, err := NewRegistry()
	if err != nil {
		t.Fatalf("NewRegistry() unexpected error: %v", err)
	}

	catalog := registry.List()
	if len(catalog) == 0 {
		t.Fatal("List() returned no variants")
	}

	// Catalog order comes from the YAML file, not map iteration
	if catalog[0].ID != "stakeholder-360" {
		t.Errorf("first variant = %q, want %q", catalog[0].ID, "stakeholder-360")
	}
}

func TestGetVariant(t *testing.T) {
	registry, err := NewRegistry()
	if err != nil {
		t.Fatalf("NewRegistry() unexpected error: %v", err)
	}

	variant, err := registry.Get("objection-handler")
	if err != nil {
		t.Fatalf("Get() unexpected error: %v", err)
	}
	if variant.DisplayName == "" || variant.Template == "" {
		t.Error("variant is missing display name or template")
	}
	if !variant.HasField("objection") {
		t.Error("objection-handler should declare an objection field")
	}

	if _, err := registry.Get("no-such-variant"); err == nil {
		t.Error("Get() with unknown ID expected error, got nil")
	}
}

func TestAnalystVariant(t *testing.T) {
	registry, err := NewRegistry()
	if err != nil {
		t.Fatalf("NewRegistry() unexpected error: %v", err)
	}

	variant, err := registry.Get("analyst-360")
	if err != nil {
		t.Fatalf("Get() unexpected error: %v", err)
	}

	required := map[string]bool{}
	for _, f := range variant.Fields {
		required[f.Name] = f.Required
	}
	for _, name := range []string{"company", "business_unit"} {
		if req, ok := required[name]; !ok || !req {
			t.Errorf("field %q should be declared and required", name)
		}
	}
	for _, name := range []string{"competitors", "context"} {
		if req, ok := required[name]; !ok || req {
			t.Errorf("field %q should be declared and optional", name)
		}
	}

	// The analyst briefing is a table-formatted market read, not prose
	if !strings.Contains(variant.Template, "Markdown Tables") {
		t.Error("template missing the table output directive")
	}
	if !strings.Contains(variant.Template, "Business Unit Health") {
		t.Error("template missing the unit-health section")
	}
}

func TestCatalogIntegrity(t *testing.T) {
	registry, err := NewRegistry()
	if err != nil {
		t.Fatalf("NewRegistry() unexpected error: %v", err)
	}

	for _, variant := range registry.List() {
		t.Run(variant.ID, func(t *testing.T) {
			declared := make(map[string]FieldSpec, len(variant.Fields))
			for _, f := range variant.Fields {
				if f.Label == "" {
					t.Errorf("field %q has no label", f.Name)
				}
				declared[f.Name] = f

				if f.Kind == FieldKindEnum {
					if _, ok := models.EnumSetByName(f.Enum); !ok {
						t.Errorf("field %q references unknown enum set %q", f.Name, f.Enum)
					}
				}
			}

			// Every template placeholder must be a declared field; a
			// dangling placeholder is an authoring error the registry is
			// supposed to reject at load
			for _, placeholder := range prompt.Parse(variant.Template).Placeholders() {
				if _, ok := declared[placeholder]; !ok {
					t.Errorf("template references undeclared field %q", placeholder)
				}
			}
		})
	}
}

func TestValidateVariant(t *testing.T) {
	tests := []struct {
		name    string
		variant Variant
		wantErr bool
	}{
		{
			name: "valid",
			variant: Variant{
				ID: "ok",
				Fields: []FieldSpec{
					{Name: "stage", Label: "Stage", Kind: FieldKindEnum, Enum: "stages"},
				},
				Template: "Stage={stage}",
			},
		},
		{
			name:    "no fields",
			variant: Variant{ID: "bad", Template: "constant"},
			wantErr: true,
		},
		{
			name: "duplicate field",
			variant: Variant{
				ID: "bad",
				Fields: []FieldSpec{
					{Name: "stage", Label: "Stage", Kind: FieldKindText},
					{Name: "stage", Label: "Stage Again", Kind: FieldKindText},
				},
				Template: "{stage}",
			},
			wantErr: true,
		},
		{
			name: "unknown enum set",
			variant: Variant{
				ID: "bad",
				Fields: []FieldSpec{
					{Name: "stage", Label: "Stage", Kind: FieldKindEnum, Enum: "phases"},
				},
				Template: "{stage}",
			},
			wantErr: true,
		},
		{
			name: "unknown field kind",
			variant: Variant{
				ID: "bad",
				Fields: []FieldSpec{
					{Name: "stage", Label: "Stage", Kind: FieldKind("dropdown")},
				},
				Template: "{stage}",
			},
			wantErr: true,
		},
		{
			name: "template references undeclared field",
			variant: Variant{
				ID: "bad",
				Fields: []FieldSpec{
					{Name: "stage", Label: "Stage", Kind: FieldKindText},
				},
				Template: "Stage={stage}, Role={role}",
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateVariant(&tt.variant)
			if tt.wantErr && err == nil {
				t.Error("validateVariant() expected error, got nil")
			}
			if !tt.wantErr && err != nil {
				t.Errorf("validateVariant() unexpected error: %v", err)
			}
		})
	}
}
