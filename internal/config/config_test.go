package config

import "testing"

func TestLoadDebug(t *testing.T) {
	tests := []struct {
		name        string
		environment string
		debug       string
		want        bool
	}{
		{name: "dev defaults on", environment: "dev", want: true},
		{name: "prod defaults off", environment: "prod", want: false},
		{name: "explicit off in dev", environment: "dev", debug: "false", want: false},
		{name: "explicit on in prod", environment: "prod", debug: "true", want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("ENVIRONMENT", tt.environment)
			t.Setenv("DEBUG", tt.debug)

			cfg := Load()
			if cfg.Debug != tt.want {
				t.Errorf("Debug = %v, want %v", cfg.Debug, tt.want)
			}
		})
	}
}

func TestLoadGenerationTimeout(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  string
	}{
		{name: "unset uses default", value: "", want: DefaultGenerationTimeout.String()},
		{name: "valid seconds", value: "90", want: "1m30s"},
		{name: "unparsable uses default", value: "soon", want: DefaultGenerationTimeout.String()},
		{name: "non-positive uses default", value: "0", want: DefaultGenerationTimeout.String()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("GENERATION_TIMEOUT_SECONDS", tt.value)

			cfg := Load()
			if got := cfg.GenerationTimeout.String(); got != tt.want {
				t.Errorf("GenerationTimeout = %s, want %s", got, tt.want)
			}
		})
	}
}
