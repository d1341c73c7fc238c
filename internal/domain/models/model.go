package models

// ResolutionSource records how a model descriptor was arrived at. Callers
// can tell "couldn't ask the backend" apart from "asked, got nothing".
type ResolutionSource string

const (
	// SourceDiscovered means the identifier came from the backend's model list.
	SourceDiscovered ResolutionSource = "discovered"
	// SourceFallbackUnreachable means the discovery query failed and the
	// default identifier was used.
	SourceFallbackUnreachable ResolutionSource = "fallback_unreachable"
	// SourceFallbackEmpty means discovery succeeded but returned no usable
	// models, and the default identifier was used.
	SourceFallbackEmpty ResolutionSource = "fallback_empty"
)

// ModelDescriptor identifies the backend model selected for a session.
// Immutable once resolved; re-created only by explicit re-resolution.
type ModelDescriptor struct {
	// Name is the backend model identifier, e.g. "models/gemini-1.5-flash-001".
	Name string `json:"name"`
	// SupportsSystemInstruction reports whether the model accepts a separate
	// system-instruction channel. Derived from a naming convention on the
	// identifier, not from a verified capability query.
	SupportsSystemInstruction bool `json:"supports_system_instruction"`
	// Source records which path produced this descriptor.
	Source ResolutionSource `json:"source"`
}
