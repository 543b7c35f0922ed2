package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func validConfig() *StructuredConfig {
	return defaultConfig()
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(cfg *StructuredConfig)
		wantErr error
	}{
		{"defaults are valid", func(*StructuredConfig) {}, nil},
		{"every format", func(cfg *StructuredConfig) { cfg.Output.Format = FormatTable }, nil},
		{"empty file", func(cfg *StructuredConfig) { cfg.Resolver.FilePath = "" }, ErrInvalidResolverConfigs},
		{"empty mode var", func(cfg *StructuredConfig) { cfg.Resolver.ModeVar = "" }, ErrInvalidResolverConfigs},
		{"unknown format", func(cfg *StructuredConfig) { cfg.Output.Format = "xml" }, ErrInvalidOutputConfigs},
		{"unknown level", func(cfg *StructuredConfig) { cfg.Log.Level = "loud" }, ErrInvalidLogConfigs},
		{"empty level", func(cfg *StructuredConfig) { cfg.Log.Level = "" }, ErrInvalidLogConfigs},
		{"zero debounce", func(cfg *StructuredConfig) { cfg.Watch.Debounce = 0 }, ErrInvalidWatchConfigs},
		{"negative debounce", func(cfg *StructuredConfig) { cfg.Watch.Debounce = -time.Second }, ErrInvalidWatchConfigs},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)

			err := cfg.validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
