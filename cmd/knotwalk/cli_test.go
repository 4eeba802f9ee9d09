package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// kinkLoop is a one-crossing unknot in the eval input format.
const kinkLoop = `# one kink
-1 -1 0
1 1 0.2
2 1 0
2 -1 0
1 -1 0
-1 1 -0.2
-2 1 0
-2 -1 0
`

// execute runs a fresh command tree with args and stdin.
func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(args)
	err := root.Execute()

	return out.String(), err
}

// TestEval_Stdin analyses a walk from stdin and prints the matrix.
func TestEval_Stdin(t *testing.T) {
	out, err := execute(t, kinkLoop, "eval", "--matrix", "--crossings")
	require.NoError(t, err)
	assert.Contains(t, out, "edges:      8")
	assert.Contains(t, out, "crossings:  1")
	assert.Contains(t, out, "Δ(-1) = 1")
	assert.Contains(t, out, "knotted:    false")
	assert.Contains(t, out, "[-1]")
	assert.Contains(t, out, "generator 0")
}

// TestEval_FileAndT reads a file and evaluates at several points.
func TestEval_FileAndT(t *testing.T) {
	path := filepath.Join(t.TempDir(), "walk.txt")
	require.NoError(t, os.WriteFile(path, []byte(kinkLoop), 0o600))

	out, err := execute(t, "", "eval", path, "--t", "2,3")
	require.NoError(t, err)
	assert.Contains(t, out, "Δ(2) = 1")
	assert.Contains(t, out, "Δ(3) = 1")
	assert.NotContains(t, out, "knotted:")
}

// TestEval_TFromEnvAndConfig: --t follows the same precedence as every other
// setting.
func TestEval_TFromEnvAndConfig(t *testing.T) {
	cfg := filepath.Join(t.TempDir(), "knotwalk.yaml")
	require.NoError(t, os.WriteFile(cfg, []byte("t: [2, 5]\n"), 0o600))

	out, err := execute(t, kinkLoop, "eval", "--config", cfg)
	require.NoError(t, err)
	assert.Contains(t, out, "Δ(2) = 1")
	assert.Contains(t, out, "Δ(5) = 1")
	assert.NotContains(t, out, "Δ(-1)")

	t.Setenv("KNOTWALK_T", "3,4")
	out, err = execute(t, kinkLoop, "eval", "--config", cfg)
	require.NoError(t, err)
	assert.Contains(t, out, "Δ(3) = 1")
	assert.Contains(t, out, "Δ(4) = 1")
	assert.NotContains(t, out, "Δ(2)")

	out, err = execute(t, kinkLoop, "eval", "--t", "7")
	require.NoError(t, err)
	assert.Contains(t, out, "Δ(7) = 1")
	assert.NotContains(t, out, "Δ(3)")

	t.Setenv("KNOTWALK_T", "x")
	_, err = execute(t, kinkLoop, "eval")
	require.Error(t, err)
}

// TestEval_Errors surfaces parse and pipeline errors.
func TestEval_Errors(t *testing.T) {
	_, err := execute(t, "0 0\n", "eval")
	require.Error(t, err)

	_, err = execute(t, "", "eval", filepath.Join(t.TempDir(), "missing.txt"))
	require.Error(t, err)
}

// TestRun_Summary runs a small batch with the table and metrics.
func TestRun_Summary(t *testing.T) {
	out, err := execute(t, "", "run", "--walks", "6", "--length", "16", "--workers", "2", "--table", "--metrics")
	require.NoError(t, err)
	assert.Contains(t, out, "walks:        6 (length 16, seed 1)")
	assert.Contains(t, out, "| WALK |")
	assert.Contains(t, out, "knotwalk_walks_total")
	assert.Contains(t, out, "knotwalk_crossings_bucket")
}

// TestRun_ConfigAndEnv checks that a config file and the environment reach
// the command, and that flags win over both.
func TestRun_ConfigAndEnv(t *testing.T) {
	cfg := filepath.Join(t.TempDir(), "knotwalk.yaml")
	require.NoError(t, os.WriteFile(cfg, []byte("walks: 3\nlength: 12\n"), 0o600))

	out, err := execute(t, "", "run", "--config", cfg)
	require.NoError(t, err)
	assert.Contains(t, out, "walks:        3 (length 12, seed 1)")

	t.Setenv("KNOTWALK_SEED", "9")
	out, err = execute(t, "", "run", "--config", cfg, "--walks", "2")
	require.NoError(t, err)
	assert.Contains(t, out, "walks:        2 (length 12, seed 9)")
}

// TestRun_BadFlags rejects nonsensical settings before running.
func TestRun_BadFlags(t *testing.T) {
	for _, args := range [][]string{
		{"run", "--walks", "-1"},
		{"run", "--length", "2"},
		{"run", "--workers", "0"},
		{"run", "--max_attempts", "0"},
		{"run", "--knot_tolerance", "0"},
	} {
		_, err := execute(t, "", args...)
		require.Error(t, err, args)
	}
}
