package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"callprep/internal/config"
	"callprep/internal/domain"
	"callprep/internal/domain/models"
	"callprep/internal/domain/services"
	"callprep/internal/service/model"
	"callprep/internal/service/prompt"
	"callprep/internal/variants"
)

// GenerateBriefingRequest is one user "generate" action: a variant ID and
// the form field values.
type GenerateBriefingRequest struct {
	Variant string            `json:"variant"`
	Fields  map[string]string `json:"fields"`
}

// Briefing is the result of one generate action.
type Briefing struct {
	Variant string                 `json:"variant"`
	Model   models.ModelDescriptor `json:"model"`
	Text    string                 `json:"text"`
}

// BriefingService runs the generate pipeline: validate, build the call
// context, resolve the model, assemble the payload, call the backend once.
type BriefingService struct {
	variants  *variants.Registry
	resolver  *model.Resolver
	generator services.TextGenerator
	timeout   time.Duration
	logger    *slog.Logger
}

// NewBriefingService creates a new briefing service
func NewBriefingService(
	registry *variants.Registry,
	resolver *model.Resolver,
	generator services.TextGenerator,
	timeout time.Duration,
	logger *slog.Logger,
) *BriefingService {
	if timeout <= 0 {
		timeout = config.DefaultGenerationTimeout
	}
	return &BriefingService{
		variants:  registry,
		resolver:  resolver,
		generator: generator,
		timeout:   timeout,
		logger:    logger,
	}
}

// PromptPreview is the assembled request for one action, returned without
// calling the backend so the user can inspect or copy the prompt first.
type PromptPreview struct {
	Variant           string                 `json:"variant"`
	Model             models.ModelDescriptor `json:"model"`
	SystemInstruction string                 `json:"system_instruction,omitempty"`
	Message           string                 `json:"message"`
}

// Generate performs one briefing action. Validation and assembly failures
// fail the action immediately; only the external generation call is wrapped
// with the stable generation-failure prefix and surfaced for a user retry.
func (s *BriefingService) Generate(ctx context.Context, req *GenerateBriefingRequest) (*Briefing, error) {
	variant, descriptor, payload, err := s.assembleRequest(ctx, req)
	if err != nil {
		return nil, err
	}

	genCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	text, err := s.generator.GenerateText(genCtx, descriptor.Name, payload)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrGeneration, err)
	}

	s.logger.Info("briefing generated",
		"variant", variant.ID,
		"model", descriptor.Name,
		"model_source", descriptor.Source,
		"chars", len(text),
	)

	return &Briefing{
		Variant: variant.ID,
		Model:   descriptor,
		Text:    text,
	}, nil
}

// Preview runs the same pipeline as Generate but stops after assembly: the
// payload is returned instead of sent, and the backend is never called.
func (s *BriefingService) Preview(ctx context.Context, req *GenerateBriefingRequest) (*PromptPreview, error) {
	variant, descriptor, payload, err := s.assembleRequest(ctx, req)
	if err != nil {
		return nil, err
	}

	return &PromptPreview{
		Variant:           variant.ID,
		Model:             descriptor,
		SystemInstruction: payload.SystemInstruction,
		Message:           payload.Message,
	}, nil
}

// assembleRequest is the shared front half of Generate and Preview:
// validate, look up the variant, build the call context, resolve the model,
// assemble the payload.
func (s *BriefingService) assembleRequest(ctx context.Context, req *GenerateBriefingRequest) (*variants.Variant, models.ModelDescriptor, models.RequestPayload, error) {
	if err := s.validateGenerateRequest(req); err != nil {
		return nil, models.ModelDescriptor{}, models.RequestPayload{}, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	variant, err := s.variants.Get(req.Variant)
	if err != nil {
		return nil, models.ModelDescriptor{}, models.RequestPayload{}, err
	}

	callCtx, err := buildCallContext(variant, req.Fields)
	if err != nil {
		return nil, models.ModelDescriptor{}, models.RequestPayload{}, err
	}

	descriptor := s.resolver.Resolve(ctx)
	template := prompt.Parse(variant.Template)

	payload, err := prompt.Assemble(template, callCtx, descriptor.SupportsSystemInstruction)
	if err != nil {
		return nil, models.ModelDescriptor{}, models.RequestPayload{}, err
	}

	return variant, descriptor, payload, nil
}

func (s *BriefingService) validateGenerateRequest(req *GenerateBriefingRequest) error {
	return validation.ValidateStruct(req,
		validation.Field(&req.Variant,
			validation.Required,
			validation.Length(1, config.MaxVariantIDLength),
		),
		validation.Field(&req.Fields, validation.By(validateFieldLengths)),
	)
}

func validateFieldLengths(value interface{}) error {
	fields, ok := value.(map[string]string)
	if !ok {
		return nil
	}
	for name, v := range fields {
		if len(v) > config.MaxFieldValueLength {
			return fmt.Errorf("field %q exceeds %d characters", name, config.MaxFieldValueLength)
		}
	}
	return nil
}

// buildCallContext binds the submitted field values to the variant's
// declared fields, in form order. Mandatory-field enforcement and enum
// membership live here, before assembly, so the assembler only ever sees a
// well-formed context.
func buildCallContext(v *variants.Variant, values map[string]string) (models.CallContext, error) {
	for name := range values {
		if !v.HasField(name) {
			return models.CallContext{}, fmt.Errorf("%w: unknown field %q for variant %q",
				domain.ErrValidation, name, v.ID)
		}
	}

	fields := make([]models.ContextField, 0, len(v.Fields))
	for _, spec := range v.Fields {
		raw := strings.TrimSpace(values[spec.Name])

		if raw == "" {
			if spec.Required {
				return models.CallContext{}, fmt.Errorf("%w: field %q is required",
					domain.ErrValidation, spec.Name)
			}
			// Optional and empty: bound as unspecified, not an error
			fields = append(fields, models.ContextField{Name: spec.Name, Label: spec.Label})
			continue
		}

		field := models.ContextField{Name: spec.Name, Label: spec.Label, Value: raw}
		if spec.Kind == variants.FieldKindEnum {
			set, ok := models.EnumSetByName(spec.Enum)
			if !ok {
				// Registry validation makes this unreachable; guard anyway
				return models.CallContext{}, fmt.Errorf("field %q references unknown enum set %q",
					spec.Name, spec.Enum)
			}
			member, found := set.Find(raw)
			if !found {
				return models.CallContext{}, &domain.InvalidEnumValueError{
					Field:   spec.Name,
					Value:   raw,
					Allowed: set.Values(),
				}
			}
			field.Value = member.Value
			field.Display = member.Label
		}

		fields = append(fields, field)
	}

	return models.NewCallContext(fields), nil
}
