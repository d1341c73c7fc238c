package variants

import "gopkg.in/yaml.v3"

// FieldKind distinguishes closed-set fields from free text.
type FieldKind string

const (
	FieldKindEnum FieldKind = "enum"
	FieldKindText FieldKind = "text"
)

// FieldSpec declares one form field of a variant: its placeholder name, how
// it is shown, and how its value is constrained.
type FieldSpec struct {
	// Name is the placeholder name templates reference.
	Name string `yaml:"name" json:"name"`
	// Label is the display name shown on the form and in the restatement.
	Label string `yaml:"label" json:"label"`
	// Kind is enum or text.
	Kind FieldKind `yaml:"kind" json:"kind"`
	// Enum names the closed set for enum fields (stages, roles, viewpoints).
	Enum string `yaml:"enum,omitempty" json:"enum,omitempty"`
	// Required marks fields the user must fill before generating.
	Required bool `yaml:"required" json:"required"`
	// Placeholder is the hint text shown in empty form controls.
	Placeholder string `yaml:"placeholder,omitempty" json:"placeholder,omitempty"`
}

// Variant is one form variant: which fields are shown and which instruction
// template their values are interpolated into.
type Variant struct {
	// Variant identifier (set during YAML unmarshaling)
	ID string `yaml:"-" json:"id"`

	DisplayName string `yaml:"display_name" json:"display_name"`
	Description string `yaml:"description" json:"description"`

	// Fields in form order. Restatement follows this order.
	Fields []FieldSpec `yaml:"fields" json:"fields"`

	// Template is the instruction blueprint. Its placeholders must be a
	// subset of the declared field names; the registry enforces this at
	// load time.
	Template string `yaml:"template" json:"-"`
}

// HasField reports whether the variant declares a field with the given name.
func (v *Variant) HasField(name string) bool {
	for _, f := range v.Fields {
		if f.Name == name {
			return true
		}
	}
	return false
}

// Catalog represents all variants of one catalog file.
type Catalog struct {
	Name     string    `yaml:"catalog" json:"catalog"`
	Variants []Variant `yaml:"-" json:"variants"` // Ordered slice, populated by custom unmarshaler
}

// UnmarshalYAML implements custom YAML unmarshaling to preserve variant
// order from the catalog file.
func (c *Catalog) UnmarshalYAML(node *yaml.Node) error {
	// First, decode the catalog name
	for i := 0; i < len(node.Content); i += 2 {
		if node.Content[i].Value == "catalog" {
			c.Name = node.Content[i+1].Value
			break
		}
	}

	// Decode variants into a map first to get the full data
	type variantsOnly struct {
		Variants map[string]Variant `yaml:"variants"`
	}
	var m variantsOnly
	if err := node.Decode(&m); err != nil {
		return err
	}

	// Now extract variant keys in YAML order and build the slice
	for i := 0; i < len(node.Content); i += 2 {
		if node.Content[i].Value == "variants" {
			variantsNode := node.Content[i+1]
			// variantsNode.Content alternates: key, value, key, value...
			for j := 0; j < len(variantsNode.Content); j += 2 {
				variantID := variantsNode.Content[j].Value
				if variant, ok := m.Variants[variantID]; ok {
					variant.ID = variantID
					c.Variants = append(c.Variants, variant)
				}
			}
			break
		}
	}

	return nil
}
