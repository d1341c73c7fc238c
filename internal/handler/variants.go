package handler

import (
	"log/slog"
	"net/http"

	"callprep/internal/domain/models"
	"callprep/internal/httputil"
	"callprep/internal/variants"
)

// VariantsHandler handles HTTP requests for the form-variant catalog
type VariantsHandler struct {
	registry *variants.Registry
	logger   *slog.Logger
}

// NewVariantsHandler creates a new variants handler
func NewVariantsHandler(registry *variants.Registry, logger *slog.Logger) *VariantsHandler {
	return &VariantsHandler{
		registry: registry,
		logger:   logger,
	}
}

// VariantResponse represents one variant for the API response, with enum
// fields expanded to their allowed members so the frontend can render the
// form controls without hardcoding the sets.
type VariantResponse struct {
	ID          string          `json:"id"`
	DisplayName string          `json:"display_name"`
	Description string          `json:"description"`
	Fields      []FieldResponse `json:"fields"`
}

// FieldResponse represents one form field of a variant
type FieldResponse struct {
	Name        string              `json:"name"`
	Label       string              `json:"label"`
	Kind        string              `json:"kind"`
	Required    bool                `json:"required"`
	Placeholder string              `json:"placeholder,omitempty"`
	Options     []models.EnumMember `json:"options,omitempty"`
}

// ListVariants returns the whole catalog in authoring order.
// GET /api/variants
func (h *VariantsHandler) ListVariants(w http.ResponseWriter, r *http.Request) {
	catalog := h.registry.List()

	response := make([]VariantResponse, 0, len(catalog))
	for i := range catalog {
		response = append(response, convertVariant(&catalog[i]))
	}

	httputil.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"variants": response,
	})
}

// GetVariant returns one variant by ID.
// GET /api/variants/{id}
func (h *VariantsHandler) GetVariant(w http.ResponseWriter, r *http.Request) {
	variant, err := h.registry.Get(r.PathValue("id"))
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, convertVariant(variant))
}

// convertVariant converts a catalog variant to API response format
func convertVariant(v *variants.Variant) VariantResponse {
	fields := make([]FieldResponse, 0, len(v.Fields))
	for _, f := range v.Fields {
		field := FieldResponse{
			Name:        f.Name,
			Label:       f.Label,
			Kind:        string(f.Kind),
			Required:    f.Required,
			Placeholder: f.Placeholder,
		}
		if f.Kind == variants.FieldKindEnum {
			if set, ok := models.EnumSetByName(f.Enum); ok {
				field.Options = set.Members
			}
		}
		fields = append(fields, field)
	}

	return VariantResponse{
		ID:          v.ID,
		DisplayName: v.DisplayName,
		Description: v.Description,
		Fields:      fields,
	}
}
