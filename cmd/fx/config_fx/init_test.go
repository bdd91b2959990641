package config_fx

import (
	"testing"

	"github.com/rs/zerolog"
	"go.uber.org/fx"
)

func TestRuntimeConfiguredOnStartup(t *testing.T) {
	// A provider nobody injects never runs; the invoke must flip the
	// global zerolog settings the moment the graph is built.
	zerolog.TimeFieldFormat = "not-configured"

	app := fx.New(Module, fx.NopLogger)
	if err := app.Err(); err != nil {
		t.Fatalf("building app graph: %v", err)
	}

	if zerolog.TimeFieldFormat != zerolog.TimeFormatUnix {
		t.Errorf("TimeFieldFormat = %q, want %q; logger setup never ran",
			zerolog.TimeFieldFormat, zerolog.TimeFormatUnix)
	}
}
