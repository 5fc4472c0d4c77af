package cli

import (
	"encoding/json"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/custodia-labs/radix-cli/internal/adapters/driving/mcp"
)

func withVersion(t *testing.T, v string) {
	t.Helper()
	original := version
	version = v
	t.Cleanup(func() { version = original })
}

func TestVersionCmd_Use(t *testing.T) {
	assert.Equal(t, "version", versionCmd.Use)
	assert.NotNil(t, versionCmd.Flags().Lookup("format"))
}

func TestVersionCmd_Text(t *testing.T) {
	withVersion(t, "test-version-1.0.0")

	stdout, _, err := execute(t, "", "version")

	require.NoError(t, err)
	assert.Equal(t, "radix version test-version-1.0.0\n", stdout)
}

func TestVersionCmd_DisplaysDevByDefault(t *testing.T) {
	withVersion(t, "dev")

	stdout, _, err := execute(t, "", "version")

	require.NoError(t, err)
	assert.Contains(t, stdout, "radix version dev")
}

func TestVersionCmd_VerboseShowsBuildDetails(t *testing.T) {
	withVersion(t, "1.2.3")

	stdout, _, err := execute(t, "", "version", "--verbose")

	require.NoError(t, err)
	assert.Contains(t, stdout, "radix version 1.2.3")
	assert.Contains(t, stdout, runtime.Version())
	assert.Contains(t, stdout, "mcp:   "+mcp.Version)
	assert.Contains(t, stdout, "bases: DEC, BIN, OCT, HEX")
}

func TestVersionCmd_JSON(t *testing.T) {
	withVersion(t, "1.2.3")

	stdout, _, err := execute(t, "", "version", "--format", "json")
	require.NoError(t, err)

	var info buildInfo
	require.NoError(t, json.Unmarshal([]byte(stdout), &info))
	assert.Equal(t, "1.2.3", info.Version)
	assert.Equal(t, runtime.GOOS+"/"+runtime.GOARCH, info.Platform)
	assert.Equal(t, []string{"DEC", "BIN", "OCT", "HEX"}, info.Bases)
}

func TestVersionCmd_YAML(t *testing.T) {
	withVersion(t, "1.2.3")

	stdout, _, err := execute(t, "", "version", "-o", "yaml")
	require.NoError(t, err)

	var info buildInfo
	require.NoError(t, yaml.Unmarshal([]byte(stdout), &info))
	assert.Equal(t, mcp.Version, info.MCPVersion)
}

func TestVersionCmd_BadFormat(t *testing.T) {
	_, _, err := execute(t, "", "version", "--format", "xml")

	assert.Error(t, err)
}
