package services

import (
	"context"

	"callprep/internal/domain/models"
)

// ModelLister queries the generation backend for the identifiers of models
// that support free-form text generation. The call blocks on the network;
// callers bound it with the context.
type ModelLister interface {
	ListTextModels(ctx context.Context) ([]string, error)
}

// TextGenerator performs the single external generation call for one user
// action. Failures are opaque to the core: they are surfaced to the caller
// and never retried internally.
type TextGenerator interface {
	GenerateText(ctx context.Context, model string, payload models.RequestPayload) (string, error)
}
