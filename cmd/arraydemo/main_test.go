package main

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/hupe1980/fixedarray"
)

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	var stdout, stderr bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	if args == nil {
		args = []string{}
	}
	cmd.SetArgs(args)

	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

const wantDefaultText = `Empty: false
Size: 6
Front: 999
Back: 777

{
  999
  3
  1234
  777
  777
  777
}
{
  1998
  6
  2468
  1554
  1554
  1554
}
`

func TestRun_DefaultText(t *testing.T) {
	for _, args := range [][]string{nil, {"run"}} {
		out, errOut, err := execute(t, args...)
		require.NoError(t, err)
		assert.Equal(t, wantDefaultText, out)
		assert.Empty(t, errOut)
	}
}

func TestRun_Flags(t *testing.T) {
	out, _, err := execute(t, "run", "--fill", "1", "--front", "2", "--second", "3", "--third", "4", "--factor", "10")
	require.NoError(t, err)
	assert.Contains(t, out, "Front: 2\nBack: 1\n")
	assert.Contains(t, out, "{\n  20\n  30\n  40\n  10\n  10\n  10\n}\n")
}

func TestRun_YAML(t *testing.T) {
	out, _, err := execute(t, "--format", "yaml")
	require.NoError(t, err)

	dec := yaml.NewDecoder(bytes.NewBufferString(out))

	var initial, scaled report
	require.NoError(t, dec.Decode(&initial))
	require.NoError(t, dec.Decode(&scaled))

	assert.Equal(t, "initial", initial.Stage)
	assert.Equal(t, 6, initial.Size)
	assert.False(t, initial.Empty)
	require.NotNil(t, initial.Front)
	assert.Equal(t, 999, *initial.Front)
	assert.Equal(t, 777, *initial.Back)
	assert.Equal(t, []int{999, 3, 1234, 777, 777, 777}, initial.Elements)

	assert.Equal(t, "scaled", scaled.Stage)
	assert.Equal(t, []int{1998, 6, 2468, 1554, 1554, 1554}, scaled.Elements)
}

func TestRun_EnvAndConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "arraydemo.yaml")
	require.NoError(t, os.WriteFile(path, []byte("fill: 5\nfactor: 3\n"), 0o644))

	t.Setenv("ARRAYDEMO_FRONT", "11")

	out, _, err := execute(t, "run", "--config", path, "--second", "7")
	require.NoError(t, err)
	assert.Contains(t, out, "{\n  11\n  7\n  1234\n  5\n  5\n  5\n}\n")
	assert.Contains(t, out, "{\n  33\n  21\n  3702\n  15\n  15\n  15\n}\n")
}

func TestRun_InvalidConfig(t *testing.T) {
	_, _, err := execute(t, "--format", "xml")
	require.ErrorIs(t, err, errInvalidConfig)
	assert.Equal(t, exitUserError, exitCode(err))

	_, _, err = execute(t, "--config", filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorIs(t, err, errInvalidConfig)

	_, _, err = execute(t, "--log-level", "loud")
	require.ErrorIs(t, err, errInvalidConfig)
}

func TestRun_DebugLogging(t *testing.T) {
	_, errOut, err := execute(t, "run", "--log-level", "debug", "--log-format", "json")
	require.NoError(t, err)
	assert.Contains(t, errOut, `"msg":"mutation completed"`)
	assert.Contains(t, errOut, `"op":"set_at"`)
	assert.Contains(t, errOut, `"direction":"backward"`)
	assert.Contains(t, errOut, `"command":"run"`)
}

func TestEmpty(t *testing.T) {
	out, errOut, err := execute(t, "empty")
	require.Error(t, err)
	assert.ErrorIs(t, err, fixedarray.ErrLength)
	assert.Equal(t, exitUserError, exitCode(err))

	assert.Equal(t, "Empty: true\nSize: 0\n\n{\n}\n", out)
	assert.Contains(t, errOut, "access failed")
	assert.NotContains(t, out, "Element 0")
}

func TestVersion(t *testing.T) {
	out, _, err := execute(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "arraydemo "+version+"\n", out)
}

func TestExitCode(t *testing.T) {
	assert.Equal(t, exitSuccess, exitCode(nil))
	assert.Equal(t, exitUserError, exitCode(fmt.Errorf("x: %w", &fixedarray.OutOfRangeError{Index: 6, Size: 6})))
	assert.Equal(t, exitUserError, exitCode(&fixedarray.LengthError{}))
	assert.Equal(t, exitSysError, exitCode(errors.New("disk full")))
}

func TestReadFirst(t *testing.T) {
	v, err := readFirst(fixedarray.Empty[int]{})
	assert.Zero(t, v)

	var le *fixedarray.LengthError
	require.ErrorAs(t, err, &le)
	assert.Equal(t, 0, le.Index)
}
