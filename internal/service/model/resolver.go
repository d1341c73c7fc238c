package model

import (
	"context"
	"log/slog"
	"strings"
	"sync"

	"callprep/internal/domain/models"
	"callprep/internal/domain/services"
)

// DefaultModel is the designated fallback identifier. It is attempted even
// when absent from the discovered set, on the assumption that the base
// generation is broadly available.
const DefaultModel = "models/gemini-pro"

// defaultPreferences is the fixed preference table, most capable first.
// Each entry is matched as a substring against discovered identifiers, so
// versioned releases like "models/gemini-1.5-flash-001" match their family.
var defaultPreferences = []string{
	"models/gemini-1.5-flash",
	"models/gemini-1.5-pro",
	"models/gemini-pro",
}

// Resolver decides which backend model identifier to use for the current
// session and whether it supports structured system instructions, tolerating
// an unreachable or restricted backend.
//
// The first resolution wins for the session: the result is cached until
// Invalidate is called (e.g. when credentials change). Concurrent callers
// may redundantly query the backend but never observe a partially-populated
// cache.
type Resolver struct {
	lister   services.ModelLister
	prefs    []string
	fallback string
	logger   *slog.Logger

	mu     sync.RWMutex
	cached *models.ModelDescriptor
}

// NewResolver creates a resolver over the given model lister. An empty
// fallback selects DefaultModel.
func NewResolver(lister services.ModelLister, fallback string, logger *slog.Logger) *Resolver {
	if fallback == "" {
		fallback = DefaultModel
	}
	return &Resolver{
		lister:   lister,
		prefs:    defaultPreferences,
		fallback: fallback,
		logger:   logger,
	}
}

// Resolve returns the session's model descriptor, discovering it on first
// use. Resolve never fails: discovery errors and empty model lists both
// degrade to the fallback identifier, with the descriptor's Source recording
// which path was taken.
func (r *Resolver) Resolve(ctx context.Context) models.ModelDescriptor {
	// Fast path: check cache with read lock
	r.mu.RLock()
	if r.cached != nil {
		desc := *r.cached
		r.mu.RUnlock()
		return desc
	}
	r.mu.RUnlock()

	// Slow path: discover with write lock
	r.mu.Lock()
	defer r.mu.Unlock()

	// Double-check after acquiring the write lock; another goroutine may
	// have resolved while we waited
	if r.cached != nil {
		return *r.cached
	}

	desc := r.discover(ctx)
	r.cached = &desc
	return desc
}

// Invalidate drops the cached resolution so the next Resolve re-queries the
// backend. Called when credentials change or the user forces a refresh.
func (r *Resolver) Invalidate() {
	r.mu.Lock()
	r.cached = nil
	r.mu.Unlock()
}

// discover performs one discovery query and selection. Caller holds the
// write lock.
func (r *Resolver) discover(ctx context.Context) models.ModelDescriptor {
	discovered, err := r.lister.ListTextModels(ctx)
	if err != nil {
		r.logger.Warn("model discovery failed, using fallback",
			"fallback", r.fallback,
			"error", err.Error(),
		)
		return r.describe(r.fallback, models.SourceFallbackUnreachable)
	}

	if len(discovered) == 0 {
		r.logger.Warn("model discovery returned no usable models, using fallback",
			"fallback", r.fallback,
		)
		return r.describe(r.fallback, models.SourceFallbackEmpty)
	}

	selected := selectModel(discovered, r.prefs, r.fallback)
	r.logger.Info("model resolved",
		"model", selected,
		"discovered", len(discovered),
	)
	return r.describe(selected, models.SourceDiscovered)
}

func (r *Resolver) describe(name string, source models.ResolutionSource) models.ModelDescriptor {
	return models.ModelDescriptor{
		Name:                      name,
		SupportsSystemInstruction: SupportsSystemInstruction(name),
		Source:                    source,
	}
}

// selectModel walks the preference table in order and picks the first
// discovered identifier containing the preferred substring. Deterministic:
// the same discovered set always yields the same selection. Falls back to
// the designated default when nothing matches.
func selectModel(discovered, prefs []string, fallback string) string {
	for _, pref := range prefs {
		for _, name := range discovered {
			if strings.Contains(name, pref) {
				return name
			}
		}
	}
	return fallback
}
