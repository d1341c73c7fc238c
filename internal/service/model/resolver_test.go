package model

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"callprep/internal/domain/models"
)

type fakeLister struct {
	names []string
	err   error
	calls int
}

func (f *fakeLister) ListTextModels(ctx context.Context) ([]string, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.names, nil
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestResolve(t *testing.T) {
	tests := []struct {
		name           string
		discovered     []string
		listErr        error
		wantModel      string
		wantCapability bool
		wantSource     models.ResolutionSource
	}{
		{
			name:           "flash preferred over base pro",
			discovered:     []string{"models/gemini-1.5-flash-001", "models/gemini-pro"},
			wantModel:      "models/gemini-1.5-flash-001",
			wantCapability: true,
			wantSource:     models.SourceDiscovered,
		},
		{
			name:           "preference order beats discovery order",
			discovered:     []string{"models/gemini-pro", "models/gemini-1.5-pro-002"},
			wantModel:      "models/gemini-1.5-pro-002",
			wantCapability: true,
			wantSource:     models.SourceDiscovered,
		},
		{
			name:           "base pro when it is all there is",
			discovered:     []string{"models/gemini-pro", "models/gemini-pro-vision"},
			wantModel:      "models/gemini-pro",
			wantCapability: false,
			wantSource:     models.SourceDiscovered,
		},
		{
			name:           "no preference matches",
			discovered:     []string{"models/embedding-001", "models/aqa"},
			wantModel:      DefaultModel,
			wantCapability: false,
			wantSource:     models.SourceDiscovered,
		},
		{
			name:           "empty set falls back",
			discovered:     []string{},
			wantModel:      DefaultModel,
			wantCapability: false,
			wantSource:     models.SourceFallbackEmpty,
		},
		{
			name:           "discovery failure falls back",
			listErr:        errors.New("connection refused"),
			wantModel:      DefaultModel,
			wantCapability: false,
			wantSource:     models.SourceFallbackUnreachable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lister := &fakeLister{names: tt.discovered, err: tt.listErr}
			resolver := NewResolver(lister, "", testLogger())

			got := resolver.Resolve(context.Background())

			if got.Name != tt.wantModel {
				t.Errorf("Resolve() model = %v, want %v", got.Name, tt.wantModel)
			}
			if got.SupportsSystemInstruction != tt.wantCapability {
				t.Errorf("Resolve() capability = %v, want %v", got.SupportsSystemInstruction, tt.wantCapability)
			}
			if got.Source != tt.wantSource {
				t.Errorf("Resolve() source = %v, want %v", got.Source, tt.wantSource)
			}
		})
	}
}

func TestResolveIsDeterministic(t *testing.T) {
	discovered := []string{"models/gemini-pro", "models/gemini-1.5-flash-002", "models/gemini-1.5-flash-001"}

	lister := &fakeLister{names: discovered}
	resolver := NewResolver(lister, "", testLogger())

	first := resolver.Resolve(context.Background())
	resolver.Invalidate()
	second := resolver.Resolve(context.Background())

	if first != second {
		t.Errorf("same discovered set resolved differently: %+v vs %+v", first, second)
	}
}

func TestResolveCaching(t *testing.T) {
	t.Run("first resolution wins for the session", func(t *testing.T) {
		lister := &fakeLister{names: []string{"models/gemini-1.5-flash-001"}}
		resolver := NewResolver(lister, "", testLogger())

		resolver.Resolve(context.Background())
		resolver.Resolve(context.Background())
		resolver.Resolve(context.Background())

		if lister.calls != 1 {
			t.Errorf("expected 1 discovery query, got %d", lister.calls)
		}
	})

	t.Run("fallback results are cached too", func(t *testing.T) {
		lister := &fakeLister{err: errors.New("quota exceeded")}
		resolver := NewResolver(lister, "", testLogger())

		resolver.Resolve(context.Background())
		resolver.Resolve(context.Background())

		if lister.calls != 1 {
			t.Errorf("expected 1 discovery query, got %d", lister.calls)
		}
	})

	t.Run("invalidate forces re-discovery", func(t *testing.T) {
		lister := &fakeLister{names: []string{"models/gemini-pro"}}
		resolver := NewResolver(lister, "", testLogger())

		resolver.Resolve(context.Background())
		resolver.Invalidate()
		resolver.Resolve(context.Background())

		if lister.calls != 2 {
			t.Errorf("expected 2 discovery queries, got %d", lister.calls)
		}
	})
}

func TestResolveCustomFallback(t *testing.T) {
	lister := &fakeLister{err: errors.New("unauthorized")}
	resolver := NewResolver(lister, "models/gemini-1.5-flash-latest", testLogger())

	got := resolver.Resolve(context.Background())

	if got.Name != "models/gemini-1.5-flash-latest" {
		t.Errorf("Resolve() model = %v, want custom fallback", got.Name)
	}
	// Capability is computed from the identifier the same way on every path
	if !got.SupportsSystemInstruction {
		t.Error("Resolve() capability = false, want true for a 1.5 fallback")
	}
}

func TestSelectModel(t *testing.T) {
	prefs := []string{"models/gemini-1.5-flash", "models/gemini-1.5-pro", "models/gemini-pro"}

	tests := []struct {
		name       string
		discovered []string
		want       string
	}{
		{
			name:       "first preference wins over set order",
			discovered: []string{"models/gemini-pro", "models/gemini-1.5-pro", "models/gemini-1.5-flash"},
			want:       "models/gemini-1.5-flash",
		},
		{
			name:       "versioned identifiers match their family",
			discovered: []string{"models/gemini-1.5-flash-001", "models/gemini-pro"},
			want:       "models/gemini-1.5-flash-001",
		},
		{
			name:       "second preference when first is absent",
			discovered: []string{"models/gemini-pro", "models/gemini-1.5-pro-002"},
			want:       "models/gemini-1.5-pro-002",
		},
		{
			name:       "fallback when nothing matches",
			discovered: []string{"models/embedding-001"},
			want:       "models/gemini-pro",
		},
		{
			name:       "first matching identifier within a preference",
			discovered: []string{"models/gemini-1.5-flash-002", "models/gemini-1.5-flash-001"},
			want:       "models/gemini-1.5-flash-002",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := selectModel(tt.discovered, prefs, "models/gemini-pro")
			if got != tt.want {
				t.Errorf("selectModel() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSupportsSystemInstruction(t *testing.T) {
	tests := []struct {
		name  string
		model string
		want  bool
	}{
		{"1.5 flash versioned", "models/gemini-1.5-flash-001", true},
		{"1.5 pro", "models/gemini-1.5-pro", true},
		{"2.0 family", "models/gemini-2.0-flash", true},
		{"base pro", "models/gemini-pro", false},
		{"base pro vision", "models/gemini-pro-vision", false},
		{"unrelated model", "models/embedding-001", false},
		{"case insensitive", "models/GEMINI-1.5-FLASH", true},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SupportsSystemInstruction(tt.model); got != tt.want {
				t.Errorf("SupportsSystemInstruction(%q) = %v, want %v", tt.model, got, tt.want)
			}
		})
	}
}
