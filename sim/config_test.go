package sim

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSimConfig_FieldEquivalence(t *testing.T) {
	got := NewSimConfig(1_000_000, 10_000_000, 1_000_000)
	want := SimConfig{
		Size:          1_000_000,
		Rounds:        10_000_000,
		ProgressEvery: 1_000_000,
	}
	assert.Equal(t, want, got)
}

func TestNewSimConfig_ZeroValues_NoDefaults(t *testing.T) {
	// Zero-value arguments must NOT inject non-zero defaults
	assert.Equal(t, SimConfig{}, NewSimConfig(0, 0, 0))
}

func TestSimConfig_ResolveSize(t *testing.T) {
	tests := []struct {
		name    string
		cfg     SimConfig
		k       int
		want    int
		wantErr string
	}{
		{name: "zero size means input length", cfg: NewSimConfig(0, 100, 0), k: 9, want: 9},
		{name: "explicit size", cfg: NewSimConfig(1_000_000, 1, 0), k: 9, want: 1_000_000},
		{name: "size equals input", cfg: NewSimConfig(9, 1, 0), k: 9, want: 9},
		{name: "size below input", cfg: NewSimConfig(5, 1, 0), k: 9, wantErr: "size"},
		{name: "negative rounds", cfg: NewSimConfig(0, -3, 0), k: 9, wantErr: "rounds"},
		{name: "below minimum", cfg: NewSimConfig(3, 1, 0), k: 3, wantErr: "size"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := tc.cfg.resolveSize(tc.k)
			if tc.wantErr == "" {
				require.NoError(t, err)
				assert.Equal(t, tc.want, got)
				return
			}
			var cfgErr *ConfigurationError
			require.True(t, errors.As(err, &cfgErr), "want ConfigurationError, got %v", err)
			assert.Equal(t, tc.wantErr, cfgErr.Field)
		})
	}
}

func TestConfigurationError_NamesFieldAndValue(t *testing.T) {
	err := &ConfigurationError{Field: "rounds", Value: -1, Reason: "must not be negative"}
	assert.Equal(t, "invalid configuration: rounds=-1: must not be negative", err.Error())
}
