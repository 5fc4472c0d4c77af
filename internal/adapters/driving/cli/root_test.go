package cli

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/radix-cli/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/radix-cli/internal/core/domain"
	"github.com/custodia-labs/radix-cli/internal/core/ports/driving"
	"github.com/custodia-labs/radix-cli/internal/core/services"
)

// setupTestServices installs real services backed by an in-memory config
// store and restores the package state when the test ends.
func setupTestServices(t *testing.T) *services.SettingsService {
	t.Helper()

	converter := services.NewConverterService()
	calculator := services.NewCalculatorService(converter)
	settings := services.NewSettingsService(memory.NewConfigStore())

	SetServices(&Services{
		Converter:  converter,
		Calculator: calculator,
		Settings:   settings,
		NewKeypad: func(base domain.Base) driving.Keypad {
			return services.NewKeypad(converter, calculator, base)
		},
	})

	origInteractive := isInteractive
	isInteractive = func() bool { return false }

	t.Cleanup(func() {
		SetServices(&Services{})
		isInteractive = origInteractive
	})
	return settings
}

// resetFlags restores every flag to its default so tests do not leak
// values into each other through the shared command tree.
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue) //nolint:errcheck // defaults always parse
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, c := range cmd.Commands() {
		resetFlags(c)
	}
}

// execute runs the root command with args and returns stdout and stderr.
func execute(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	resetFlags(rootCmd)

	stdout := new(bytes.Buffer)
	stderr := new(bytes.Buffer)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetArgs(nil)
		rootCmd.SetIn(nil)
	})

	err := rootCmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestRootCmd_Use(t *testing.T) {
	assert.Equal(t, "radix", rootCmd.Use)
	assert.True(t, rootCmd.SilenceUsage)
}

func TestRootCmd_HasSubcommands(t *testing.T) {
	names := make(map[string]bool)
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}

	for _, want := range []string{"convert", "decode", "calc", "keys", "tui", "mcp", "settings", "version"} {
		assert.True(t, names[want], "missing command %s", want)
	}
}

func TestRootCmd_PersistentFlags(t *testing.T) {
	assert.NotNil(t, rootCmd.PersistentFlags().Lookup("verbose"))
	assert.NotNil(t, rootCmd.PersistentFlags().Lookup("config-dir"))
	assert.Equal(t, "v", rootCmd.PersistentFlags().Lookup("verbose").Shorthand)
}

func TestRootCmd_NonInteractiveShowsHelp(t *testing.T) {
	setupTestServices(t)

	stdout, _, err := execute(t, "")

	require.NoError(t, err)
	assert.Contains(t, stdout, "Usage:")
	assert.Contains(t, stdout, "convert")
}

func TestRootCmd_BootstrapReceivesConfigDir(t *testing.T) {
	setupTestServices(t)

	var gotDir string
	SetBootstrap(func(dir string) (*Services, error) {
		gotDir = dir
		return &Services{Converter: services.NewConverterService()}, nil
	})
	t.Cleanup(func() { SetBootstrap(nil) })

	stdout, _, err := execute(t, "", "--config-dir", "/tmp/radix-test", "convert", "5", "--base", "bin")

	require.NoError(t, err)
	assert.Equal(t, "/tmp/radix-test", gotDir)
	assert.Contains(t, stdout, "5 (DEC) = 101 (BIN)")
}

func TestRootCmd_BootstrapError(t *testing.T) {
	setupTestServices(t)
	SetBootstrap(func(string) (*Services, error) {
		return nil, errors.New("no config")
	})
	t.Cleanup(func() { SetBootstrap(nil) })

	_, _, err := execute(t, "", "version")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "initialising services: no config")
}

func TestSetServices(t *testing.T) {
	setupTestServices(t)

	assert.NotNil(t, converterService)
	assert.NotNil(t, calculatorService)
	assert.NotNil(t, settingsService)
	require.NotNil(t, newKeypad)
	assert.Equal(t, domain.BaseHex, newKeypad(domain.BaseHex).Snapshot().Base)
	assert.Nil(t, configWatcher)
}
