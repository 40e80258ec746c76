package cli_test

// NOTE: Tests in this file use t.Chdir() and t.Setenv(), which are
// process-wide. They must not use t.Parallel().

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tasker/internal/cli"
	"tasker/internal/exitcode"
)

// withWorkDir runs the test in an empty directory with no user config.
func withWorkDir(t *testing.T) string {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	for _, key := range []string{"TASKER_FILE", "TASKER_PROMPT", "TASKER_QUIET", "TASKER_DEBUG"} {
		t.Setenv(key, "")
	}
	dir := t.TempDir()
	t.Chdir(dir)
	return dir
}

func runCLI(t *testing.T, stdin string, args ...string) (stdout, stderr string, code int) {
	t.Helper()

	var outBuf, errBuf bytes.Buffer
	code = cli.Run(context.Background(), args, strings.NewReader(stdin), &outBuf, &errBuf)
	return outBuf.String(), errBuf.String(), code
}

func TestRun_DefaultFileInWorkingDir(t *testing.T) {
	dir := withWorkDir(t)

	stdout, stderr, code := runCLI(t, "add buy milk\nadd walk dog\ncomplete 1\nview\n")

	assert.Equal(t, exitcode.Success, code)
	assert.Empty(t, stderr)
	assert.Equal(t, "> > > > 1 [✓] buy milk\n2 [ ] walk dog\n> \n", stdout)

	data, err := os.ReadFile(filepath.Join(dir, "tasks.json"))
	require.NoError(t, err)
	assert.Equal(t, `[
  {
    "description": "buy milk",
    "complete": true
  },
  {
    "description": "walk dog",
    "complete": false
  }
]
`, string(data))
}

func TestRun_PersistsBetweenRuns(t *testing.T) {
	dir := withWorkDir(t)
	file := filepath.Join(dir, "sub", "todo.json")

	_, _, code := runCLI(t, "add buy milk\nadd walk dog\ncomplete 1\n", "--file", file, "--quiet")
	require.Equal(t, exitcode.Success, code)

	stdout, stderr, code := runCLI(t, "remove 1\nview\n", "-f", file, "-q")
	assert.Equal(t, exitcode.Success, code)
	assert.Empty(t, stderr)
	assert.Equal(t, "1 [ ] walk dog\n", stdout)

	stdout, _, _ = runCLI(t, "view\n", "-f", file, "-q")
	assert.Equal(t, "1 [ ] walk dog\n", stdout)
}

func TestRun_ViewOnlyDoesNotCreateFile(t *testing.T) {
	dir := withWorkDir(t)

	stdout, _, code := runCLI(t, "view\n", "--quiet")

	assert.Equal(t, exitcode.Success, code)
	assert.Empty(t, stdout)
	assert.NoFileExists(t, filepath.Join(dir, "tasks.json"))
}

func TestRun_FileFromEnv(t *testing.T) {
	dir := withWorkDir(t)
	t.Setenv("TASKER_FILE", filepath.Join(dir, "env.json"))
	t.Setenv("TASKER_QUIET", "true")

	stdout, _, code := runCLI(t, "add from env\n")

	assert.Equal(t, exitcode.Success, code)
	assert.Empty(t, stdout)
	assert.FileExists(t, filepath.Join(dir, "env.json"))
}

func TestRun_CorruptFileIsFatal(t *testing.T) {
	dir := withWorkDir(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "tasks.json"), []byte("{not json"), 0644))

	stdout, stderr, code := runCLI(t, "view\n")

	assert.Equal(t, exitcode.StorageError, code)
	assert.Empty(t, stdout)
	assert.True(t, strings.HasPrefix(stderr, "error: failed to read tasks from tasks.json: "), stderr)

	// The corrupt file is left alone
	data, err := os.ReadFile(filepath.Join(dir, "tasks.json"))
	require.NoError(t, err)
	assert.Equal(t, "{not json", string(data))
}

func TestRun_Version(t *testing.T) {
	withWorkDir(t)

	stdout, stderr, code := runCLI(t, "", "--version")

	assert.Equal(t, exitcode.Success, code)
	assert.Empty(t, stderr)
	assert.Equal(t, "tasker version 0.1.0\n", stdout)
}

func TestRun_Help(t *testing.T) {
	withWorkDir(t)

	stdout, _, code := runCLI(t, "", "--help")

	assert.Equal(t, exitcode.Success, code)
	assert.Contains(t, stdout, "Usage:")
	assert.Contains(t, stdout, "Commands:\n")
	for _, line := range []string{
		"  add <description>    Append a task\n",
		"  complete <n>         Mark a task completed\n",
		"  remove <n>           Delete a task; later tasks move up\n",
		"  view                 List all tasks\n",
	} {
		assert.Contains(t, stdout, line)
	}
}

func TestRun_UnknownFlag(t *testing.T) {
	withWorkDir(t)

	_, stderr, code := runCLI(t, "", "--unknown")

	assert.Equal(t, exitcode.UserError, code)
	assert.Equal(t, "error: unknown flag: --unknown\n", stderr)
}

func TestRun_PositionalArgsRejected(t *testing.T) {
	withWorkDir(t)

	_, stderr, code := runCLI(t, "", "add", "milk")

	assert.Equal(t, exitcode.UserError, code)
	assert.True(t, strings.HasPrefix(stderr, "error: "), stderr)
}

func TestRun_MissingConfigFile(t *testing.T) {
	dir := withWorkDir(t)

	_, stderr, code := runCLI(t, "", "--config", filepath.Join(dir, "missing.yaml"))

	assert.Equal(t, exitcode.UserError, code)
	assert.True(t, strings.HasPrefix(stderr, "error: invalid configuration: config file"), stderr)
}

func TestRun_ConfigFile(t *testing.T) {
	dir := withWorkDir(t)
	cfgPath := filepath.Join(dir, "custom.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("file: from-config.json\nprompt: \"$ \"\n"), 0644))

	stdout, _, code := runCLI(t, "add x\n", "--config", cfgPath)

	assert.Equal(t, exitcode.Success, code)
	assert.Equal(t, "$ $ \n", stdout)
	assert.FileExists(t, filepath.Join(dir, "from-config.json"))
}

func TestRun_DebugLogging(t *testing.T) {
	withWorkDir(t)

	_, stderr, code := runCLI(t, "add x\n", "--debug", "--quiet")

	assert.Equal(t, exitcode.Success, code)
	assert.Contains(t, stderr, "level=DEBUG")
	assert.Contains(t, stderr, `msg="saved tasks"`)
}

func TestRun_CommandErrorsExitZero(t *testing.T) {
	withWorkDir(t)

	_, stderr, code := runCLI(t, "complete 1\nremove x\n", "--quiet")

	assert.Equal(t, exitcode.Success, code)
	assert.Equal(t, "error: invalid task index: 1 (no tasks)\nerror: invalid task number: x\n", stderr)
}
