package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"os/exec"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mordilloSan/fsearch/search/testhelpers"
)

const (
	childEnv     = "CMD_TEST_CHILD"
	childArgsEnv = "CMD_TEST_ARGS"
)

// TestMain doubles as the fsearch binary when re-executed by runChild, so the
// command writes to the real process stdout like it does in production.
func TestMain(m *testing.M) {
	if os.Getenv(childEnv) == "1" {
		var args []string
		if err := json.Unmarshal([]byte(os.Getenv(childArgsEnv)), &args); err != nil {
			os.Exit(2)
		}
		root := NewRootCommand()
		root.SetArgs(args)
		if err := execute(context.Background(), root); err != nil {
			os.Exit(1)
		}
		os.Exit(0)
	}
	os.Exit(m.Run())
}

// runChild runs the command in a fresh process and returns its raw stdout.
func runChild(t *testing.T, args ...string) []byte {
	t.Helper()
	encoded, err := json.Marshal(args)
	require.NoError(t, err)

	child := exec.Command(os.Args[0], "-test.run=^$")
	child.Env = append(os.Environ(),
		childEnv+"=1",
		childArgsEnv+"="+string(encoded),
		"XDG_CONFIG_HOME="+t.TempDir(),
	)
	var stdout, stderr bytes.Buffer
	child.Stdout = &stdout
	child.Stderr = &stderr

	require.NoError(t, child.Run(), "stderr: %s", stderr.String())
	return stdout.Bytes()
}

func TestJSONStdoutIsSingleDocument(t *testing.T) {
	mockFS := testhelpers.NewMockFileSystem(t)
	mockFS.CreateSmallTree()
	mockFS.CreateDir("locked")
	require.NoError(t, os.Chmod(mockFS.Path("locked"), 0o000))

	want := []string{mockFS.Path("sub"), mockFS.Path("sub/b.txt")}

	tests := []struct {
		name string
		args []string
	}{
		{"quiet", []string{"--json", "b", mockFS.Root}},
		{"verbose", []string{"--json", "-v", "b", mockFS.Root}},
		{"verbose skip system", []string{"--json", "-v", "--skip-system", "b", mockFS.Root}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := runChild(t, tt.args...)

			var paths []string
			require.NoError(t, json.Unmarshal(out, &paths), "stdout: %s", out)
			assert.Equal(t, want, paths)
		})
	}
}

func TestJSONDetailStdoutIsSingleDocument(t *testing.T) {
	mockFS := testhelpers.NewMockFileSystem(t)
	mockFS.CreateSmallTree()

	out := runChild(t, "-j", "-d", "-v", `\.txt$`, mockFS.Root)

	var records []map[string]any
	require.NoError(t, json.Unmarshal(out, &records), "stdout: %s", out)
	assert.Len(t, records, 2)
}
