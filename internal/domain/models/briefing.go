package models

// ContextField is one bound field of a call context.
type ContextField struct {
	// Name is the placeholder name referenced by instruction templates.
	Name string
	// Label is the field's display name, used in the context restatement.
	Label string
	// Value is the machine value substituted into the template. Empty means
	// the field was left unspecified by the user.
	Value string
	// Display is the human form of the value (an enum member's label).
	// Falls back to Value when empty.
	Display string
}

// DisplayValue returns the human form of the bound value.
func (f ContextField) DisplayValue() string {
	if f.Display != "" {
		return f.Display
	}
	return f.Value
}

// CallContext is the structured user input for one generate action: an
// ordered, immutable set of bound fields. Built once per action and
// discarded after the request is sent. Field order is preserved so that
// rendering and restatement are deterministic.
type CallContext struct {
	fields []ContextField
	index  map[string]int
}

// NewCallContext builds a call context from bound fields. Later duplicates
// of a field name shadow earlier ones for lookup; order is kept as given.
func NewCallContext(fields []ContextField) CallContext {
	index := make(map[string]int, len(fields))
	copied := make([]ContextField, len(fields))
	copy(copied, fields)
	for i, f := range copied {
		index[f.Name] = i
	}
	return CallContext{fields: copied, index: index}
}

// Fields returns the bound fields in declaration order.
func (c CallContext) Fields() []ContextField {
	fields := make([]ContextField, len(c.fields))
	copy(fields, c.fields)
	return fields
}

// Value returns the machine value bound to a field name.
func (c CallContext) Value(name string) (string, bool) {
	i, ok := c.index[name]
	if !ok {
		return "", false
	}
	return c.fields[i].Value, true
}

// RequestPayload is the single artifact sent to the generation backend.
// Exactly one of the two shapes is produced per call: a
// (system-instruction, message) pair when the selected model supports a
// separate instruction channel, or a combined Message with an empty
// SystemInstruction when it does not.
type RequestPayload struct {
	SystemInstruction string
	Message           string
}

// HasSystemInstruction reports whether the payload uses the structured
// instruction channel.
func (p RequestPayload) HasSystemInstruction() bool {
	return p.SystemInstruction != ""
}
