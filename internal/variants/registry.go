package variants

import (
	"embed"
	"fmt"
	"sync"

	"gopkg.in/yaml.v3"

	"callprep/internal/domain"
	"callprep/internal/domain/models"
	"callprep/internal/service/prompt"
)

//go:embed config/*.yaml
var configFiles embed.FS

// Registry holds the form-variant catalog: which fields each variant shows
// and which instruction template it uses. Loaded once from embedded YAML
// and validated at startup, so template authoring mistakes fail the boot,
// not a user action.
type Registry struct {
	variants []Variant
	byID     map[string]int
	mu       sync.RWMutex
}

// NewRegistry loads and validates the embedded variant catalog.
func NewRegistry() (*Registry, error) {
	r := &Registry{
		byID: make(map[string]int),
	}

	if err := r.loadCatalogFile("call_prep"); err != nil {
		return nil, fmt.Errorf("failed to load call_prep catalog: %w", err)
	}

	return r, nil
}

// loadCatalogFile loads one catalog YAML file and validates its variants.
func (r *Registry) loadCatalogFile(name string) error {
	filename := fmt.Sprintf("config/%s.yaml", name)
	data, err := configFiles.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", filename, err)
	}

	var catalog Catalog
	if err := yaml.Unmarshal(data, &catalog); err != nil {
		return fmt.Errorf("failed to unmarshal %s: %w", filename, err)
	}

	for i := range catalog.Variants {
		if err := validateVariant(&catalog.Variants[i]); err != nil {
			return fmt.Errorf("variant %q: %w", catalog.Variants[i].ID, err)
		}
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	for _, v := range catalog.Variants {
		if _, exists := r.byID[v.ID]; exists {
			return fmt.Errorf("duplicate variant id %q", v.ID)
		}
		r.byID[v.ID] = len(r.variants)
		r.variants = append(r.variants, v)
	}

	return nil
}

// validateVariant enforces the catalog authoring rules: unique field names,
// enum fields referencing known sets, and every template placeholder bound
// to a declared field.
func validateVariant(v *Variant) error {
	if len(v.Fields) == 0 {
		return fmt.Errorf("declares no fields")
	}

	seen := make(map[string]bool, len(v.Fields))
	for _, f := range v.Fields {
		if f.Name == "" {
			return fmt.Errorf("field with empty name")
		}
		if seen[f.Name] {
			return fmt.Errorf("duplicate field %q", f.Name)
		}
		seen[f.Name] = true

		switch f.Kind {
		case FieldKindEnum:
			if _, ok := models.EnumSetByName(f.Enum); !ok {
				return fmt.Errorf("field %q references unknown enum set %q", f.Name, f.Enum)
			}
		case FieldKindText:
			// free text, no set to check
		default:
			return fmt.Errorf("field %q has unknown kind %q", f.Name, f.Kind)
		}
	}

	for _, placeholder := range prompt.Parse(v.Template).Placeholders() {
		if !seen[placeholder] {
			return fmt.Errorf("template references undeclared field %q", placeholder)
		}
	}

	return nil
}

// Get returns the variant with the given ID.
func (r *Registry) Get(id string) (*Variant, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i, ok := r.byID[id]
	if !ok {
		return nil, fmt.Errorf("%w: variant %q", domain.ErrNotFound, id)
	}
	return &r.variants[i], nil
}

// List returns all variants in catalog order.
func (r *Registry) List() []Variant {
	r.mu.RLock()
	defer r.mu.RUnlock()

	variants := make([]Variant, len(r.variants))
	copy(variants, r.variants)
	return variants
}
