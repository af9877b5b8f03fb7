package cli_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nextcheck/nextcheck/internal/adapters/inbound/cli"
	"github.com/nextcheck/nextcheck/internal/adapters/outbound/history"
	"github.com/nextcheck/nextcheck/internal/domain"
)

func TestValidate_CompleteProjectPasses(t *testing.T) {
	dir := writeProject(t, completeProject...)

	out, _, err := execute(t, "validate", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "Validating project structure: ")
	assert.Contains(t, out, "## Directory Structure")
	assert.Contains(t, out, "Overall: PASSED")
}

func TestRoot_ValidatesWithoutSubcommand(t *testing.T) {
	dir := writeProject(t, completeProject...)

	out, _, err := execute(t, dir)
	require.NoError(t, err)
	assert.Contains(t, out, "Overall: PASSED")
}

func TestValidate_FailingProjectExitsOne(t *testing.T) {
	dir := writeProject(t, "app/page.tsx", "package.json")

	out, _, err := execute(t, "validate", dir)
	require.Error(t, err)
	assert.Equal(t, cli.ExitFailed, cli.ExitCode(err))

	var exitErr *cli.ExitError
	require.ErrorAs(t, err, &exitErr)
	assert.True(t, exitErr.Silent)

	assert.Contains(t, out, "Missing required directory: components/")
	assert.Contains(t, out, "Overall: FAILED")
}

func TestValidate_NamingViolationReported(t *testing.T) {
	dir := writeProject(t, append(completeProject, "components/features/cart-item.tsx")...)

	out, _, err := execute(t, "validate", dir)
	assert.Equal(t, cli.ExitFailed, cli.ExitCode(err))
	assert.Contains(t, out, "Component file should be PascalCase: components/features/cart-item.tsx")
}

func TestValidate_JSONOutput(t *testing.T) {
	dir := writeProject(t, completeProject...)

	out, _, err := execute(t, "validate", dir, "--json")
	require.NoError(t, err)

	var report domain.Report
	require.NoError(t, json.Unmarshal([]byte(out), &report))
	assert.True(t, report.Passed)
	assert.True(t, report.Directories.Passed)
	assert.Nil(t, report.Imports)
}

func TestValidate_JSONAndPrettyConflict(t *testing.T) {
	dir := writeProject(t, completeProject...)

	_, _, err := execute(t, "validate", dir, "--json", "--pretty")
	require.Error(t, err)
	assert.Equal(t, cli.ExitFault, cli.ExitCode(err))
}

func TestValidate_CheckImportsAddsSection(t *testing.T) {
	dir := writeProject(t, completeProject...)

	out, _, err := execute(t, "validate", dir, "--check-imports")
	assert.Equal(t, cli.ExitFailed, cli.ExitCode(err), "placeholder tsconfig.json is not JSON")
	assert.Contains(t, out, "## Import Paths")
}

func TestValidate_IgnoreFlagSkipsFiles(t *testing.T) {
	dir := writeProject(t, append(completeProject, "components/features/cart-item.tsx")...)

	out, _, err := execute(t, "validate", dir, "--ignore", "components/features/**")
	require.NoError(t, err)
	assert.Contains(t, out, "Overall: PASSED")
}

func TestValidate_ConfigFileRelaxesRules(t *testing.T) {
	dir := writeProject(t, "app/page.tsx", "components/Button.tsx", "lib/format.ts", "package.json")
	cfg := `directories:
  required: [app, components, lib]
  optional: []
files:
  required: [package.json]
  recommended: []
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".nextcheck.yaml"), []byte(cfg), 0o644))

	out, _, err := execute(t, "validate", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "Overall: PASSED")
}

func TestValidate_InvalidConfigIsFault(t *testing.T) {
	dir := writeProject(t, completeProject...)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".nextcheck.yaml"), []byte("naming:\n  component: \"([\"\n"), 0o644))

	_, _, err := execute(t, "validate", dir)
	require.Error(t, err)
	assert.Equal(t, cli.ExitFault, cli.ExitCode(err))
	assert.Contains(t, err.Error(), "naming.component")
}

func TestValidate_MissingExplicitConfigIsFault(t *testing.T) {
	dir := writeProject(t, completeProject...)

	_, _, err := execute(t, "validate", dir, "--config", filepath.Join(dir, "nope.yaml"))
	require.Error(t, err)
	assert.Equal(t, cli.ExitFault, cli.ExitCode(err))
}

func TestValidate_RecordAppendsHistory(t *testing.T) {
	dir := writeProject(t, completeProject...)

	_, _, err := execute(t, "validate", dir, "--record")
	require.NoError(t, err)
	_, _, err = execute(t, "validate", dir, "--record")
	require.NoError(t, err)

	entries, err := history.New().Load(dir)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.True(t, entries[1].Passed)
}

func TestValidate_WithoutRecordLeavesProjectUntouched(t *testing.T) {
	dir := writeProject(t, completeProject...)

	_, _, err := execute(t, "validate", dir)
	require.NoError(t, err)

	_, statErr := os.Stat(filepath.Join(dir, ".nextcheck"))
	assert.True(t, os.IsNotExist(statErr))
}

func TestValidate_VerboseLogsToStderr(t *testing.T) {
	dir := writeProject(t, completeProject...)

	_, stderr, err := execute(t, "validate", dir, "--verbose")
	require.NoError(t, err)
	assert.NotEmpty(t, stderr)
}

func TestValidate_MissingPathFailsValidation(t *testing.T) {
	target := filepath.Join(t.TempDir(), "missing")

	out, _, err := execute(t, "validate", target, "--check-imports")
	assert.Equal(t, cli.ExitFailed, cli.ExitCode(err))
	assert.Contains(t, out, "Missing required directory: components/")
	assert.Contains(t, out, "Missing required file: tsconfig.json")
	assert.Contains(t, out, "Overall: FAILED")
}

func TestValidate_TooManyArgs(t *testing.T) {
	_, _, err := execute(t, "validate", "a", "b")
	require.Error(t, err)
	assert.Equal(t, cli.ExitFault, cli.ExitCode(err))
}
