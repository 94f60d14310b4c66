package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvnum/scenario"
	"github.com/katalvlaran/lvnum/vector"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := BuildRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())

	return out.String(), err
}

func TestBernoulliCmd_Text(t *testing.T) {
	out, err := run(t, "bernoulli", "--log-level", "error")
	require.NoError(t, err)
	assert.Equal(t, "Bernoulli(p=0.1)\npmf(0) = 0.9\nmean   = 0.1\nvar    = 0.09\nsd     = 0.3\n", out)
}

func TestZipCmd_JSON(t *testing.T) {
	out, err := run(t, "zip", "-o", "json", "--a", "1,2", "--b", "10,20")
	require.NoError(t, err)

	var res scenario.ZipResult
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.Equal(t, []float64{11, 22}, res.ZipWith)
	assert.True(t, res.Match)
}

func TestZipCmd_LengthMismatch(t *testing.T) {
	_, err := run(t, "zip", "--a", "1,2", "--b", "1")
	assert.ErrorIs(t, err, vector.ErrLengthMismatch)
}

func TestTransposeCmd_YAML(t *testing.T) {
	out, err := run(t, "transpose", "--output", "yaml")
	require.NoError(t, err)

	var res scenario.TransposeResult
	require.NoError(t, yaml.Unmarshal([]byte(out), &res))
	assert.True(t, res.Match)
	assert.Equal(t, 1, res.Transposed.Rows)
	assert.Equal(t, 4, res.Transposed.Cols)
	assert.Equal(t, "Row", res.Transposed.Layout)
	assert.Equal(t, []float64{1, 2, 3, 4}, res.Transposed.Data)
}

func TestTransposeCmd_Text(t *testing.T) {
	out, err := run(t, "transpose", "--data", "1,2,3,4", "--rows", "2", "--cols", "2", "--layout", "row")
	require.NoError(t, err)
	assert.Contains(t, out, "transposed (2x2, Col):\n     c[0] c[1]\nr[0]    1    3\nr[1]    2    4\n")
	assert.Contains(t, out, "match = true\n")
}

func TestCheckCmd(t *testing.T) {
	out, err := run(t, "check")
	require.NoError(t, err)
	assert.Contains(t, out, "PASS bernoulli\nPASS zip\nPASS transpose\n")
}

func TestCheckCmd_ConfigFileFailure(t *testing.T) {
	file := filepath.Join(t.TempDir(), "lvnum.yaml")
	require.NoError(t, os.WriteFile(file, []byte("zip:\n  a: [1, 2]\n  b: [1]\n"), 0o600))

	out, err := run(t, "check", "--config", file, "--log-level", "error")
	require.Error(t, err)
	assert.Contains(t, out, "FAIL zip\n")
	assert.ErrorIs(t, err, vector.ErrLengthMismatch)
}

func TestRootCmd_BadOutput(t *testing.T) {
	_, err := run(t, "bernoulli", "-o", "xml")
	assert.Error(t, err)
}
