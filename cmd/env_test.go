package cmd

import (
	"os"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv_Defaults(t *testing.T) {
	for _, key := range []string{"CUPSIM_LOG", "CUPSIM_DEFAULTS", "CUPSIM_CUPS"} {
		t.Setenv(key, "") // restores the original value on cleanup
		require.NoError(t, os.Unsetenv(key))
	}

	cfg, err := parseEnv()
	require.NoError(t, err)
	assert.Equal(t, "error", cfg.LogLevel)
	assert.Equal(t, "defaults.yaml", cfg.DefaultsPath)
	assert.Empty(t, cfg.Cups)
}

func TestParseEnv_Overrides(t *testing.T) {
	t.Setenv("CUPSIM_LOG", "debug")
	t.Setenv("CUPSIM_DEFAULTS", "/etc/cupsim.yaml")
	t.Setenv("CUPSIM_CUPS", "389125467")

	cfg, err := parseEnv()
	require.NoError(t, err)
	assert.Equal(t, envConfig{LogLevel: "debug", DefaultsPath: "/etc/cupsim.yaml", Cups: "389125467"}, cfg)
}

func TestApplyEnv_FlagsWin(t *testing.T) {
	// GIVEN a command where --log was set explicitly
	c := &cobra.Command{Use: "test"}
	var lvl, path, order string
	c.Flags().StringVar(&lvl, "log", "error", "")
	c.Flags().StringVar(&path, "defaults", "defaults.yaml", "")
	c.Flags().StringVar(&order, "cups", "", "")
	require.NoError(t, c.Flags().Set("log", "warn"))

	oldLog, oldPath, oldCups := logLevel, defaultsFilePath, cups
	t.Cleanup(func() { logLevel, defaultsFilePath, cups = oldLog, oldPath, oldCups })
	logLevel, defaultsFilePath, cups = "warn", "defaults.yaml", ""

	// WHEN the environment is applied
	applyEnv(c, envConfig{LogLevel: "trace", DefaultsPath: "env.yaml", Cups: "2413"})

	// THEN the explicit flag is kept and unset ones come from the environment
	assert.Equal(t, "warn", logLevel)
	assert.Equal(t, "env.yaml", defaultsFilePath)
	assert.Equal(t, "2413", cups)
}
