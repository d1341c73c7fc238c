package config

import "time"

const (
	// MaxVariantIDLength is the maximum length for variant identifiers.
	// Catalog IDs are short kebab-case slugs; anything longer is a
	// malformed request.
	MaxVariantIDLength = 64

	// MaxFieldValueLength is the maximum length for a single free-text
	// field value. Scenario notes pasted from a CRM fit comfortably;
	// longer input inflates the prompt and the backend bill.
	MaxFieldValueLength = 4000

	// DefaultGenerationTimeout bounds the external generation call.
	// Gemini free-form generation typically completes well under a
	// minute; a timed-out action is retried by the user, never
	// automatically.
	DefaultGenerationTimeout = 60 * time.Second

	// ModelListPageSize is the page size used for backend model discovery.
	ModelListPageSize = 200
)
