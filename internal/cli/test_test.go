package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const harnessScenarios = "../harness/testdata/scenarios"

const passingScenario = `name: tiny
description: "small prime generator"
cases:
  - name: small_prime
    generator: {multiplier: "7", increment: "3", modulus: "97"}
    count: 10
    expect: {multiplier: "7", increment: "3", modulus: "97"}
`

const failingScenario = `name: wrong
description: "expects the wrong modulus"
cases:
  - name: small_prime
    generator: {multiplier: "7", increment: "3", modulus: "97"}
    count: 10
    expect: {modulus: "101"}
`

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestTestCommand_MissingArgs(t *testing.T) {
	res := execute(t, "", nil, "test")
	require.Error(t, res.err)
	assert.Contains(t, res.err.Error(), "accepts 1 arg")
}

func TestTestCommand_NonExistentDir(t *testing.T) {
	res := execute(t, "", nil, "test", "/nonexistent/scenarios")
	require.Error(t, res.err)
	assert.Equal(t, ExitCommandError, GetExitCode(res.err))
	assert.Contains(t, res.err.Error(), "scenarios directory not found")
}

func TestTestCommand_RepositoryScenarios(t *testing.T) {
	res := execute(t, "", nil, "test", harnessScenarios, "--format", "json")
	require.NoError(t, res.err)

	var result TestResult
	resp := decodeData(t, res.stdout, &result)
	assert.Equal(t, "ok", resp.Status)
	assert.Equal(t, 3, result.Total)
	assert.Equal(t, 3, result.Passed)
}

func TestTestCommand_Filter(t *testing.T) {
	res := execute(t, "", nil, "test", harnessScenarios, "--filter", "failure_*")
	require.NoError(t, res.err)
	assert.Contains(t, res.stdout, "✓ failure_modes (4 cases)")
	assert.Contains(t, res.stdout, "1 passed, 0 failed, 1 total")
}

func TestTestCommand_Failure(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "ok.yaml"), passingScenario)
	writeFile(t, filepath.Join(dir, "wrong.yaml"), failingScenario)

	res := execute(t, "", nil, "test", dir)
	require.Error(t, res.err)
	assert.Equal(t, ExitFailure, GetExitCode(res.err))
	assert.Contains(t, res.stdout, "✓ tiny")
	assert.Contains(t, res.stdout, "✗ wrong")
	assert.Contains(t, res.stdout, "modulus: expected 101, got 97")
	assert.Contains(t, res.stdout, "1 passed, 1 failed, 2 total")
}

func TestTestCommand_LoadError(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "broken.yaml"), "name: broken\n")

	res := execute(t, "", nil, "test", dir, "--format", "json")
	require.Error(t, res.err)
	assert.Equal(t, ExitFailure, GetExitCode(res.err))

	resp := decodeData(t, res.stdout, nil)
	require.NotNil(t, resp.Error)
	assert.Equal(t, CodeTestFailed, resp.Error.Code)
}

func TestTestCommand_GoldenUpdateAndCompare(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "tiny.yaml"), passingScenario)

	update := execute(t, "", nil, "test", dir, "--update")
	require.NoError(t, update.err)
	assert.Contains(t, update.stdout, "golden updated")

	golden, err := os.ReadFile(filepath.Join(dir, "golden", "tiny.golden"))
	require.NoError(t, err)
	assert.Contains(t, string(golden), `"scenario":"tiny"`)

	// The golden directory itself is not scanned for scenarios.
	again := execute(t, "", nil, "test", dir)
	require.NoError(t, again.err)
	assert.Contains(t, again.stdout, "1 passed, 0 failed, 1 total")

	writeFile(t, filepath.Join(dir, "golden", "tiny.golden"), `{"tampered":true}`)
	tampered := execute(t, "", nil, "test", dir)
	require.Error(t, tampered.err)
	assert.Contains(t, tampered.stdout, "does not match golden file")
}

func TestTestCommand_EmptyDir(t *testing.T) {
	res := execute(t, "", nil, "test", t.TempDir())
	require.NoError(t, res.err)
	assert.Contains(t, res.stdout, "No scenarios found.")
}

func TestFindScenarioFiles_InvalidFilter(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a.yaml"), passingScenario)

	_, err := findScenarioFiles(dir, "[")
	assert.Error(t, err)
}
