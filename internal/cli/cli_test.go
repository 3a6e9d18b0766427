package cli_test

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/csift/internal/cli"
	"github.com/yaklabco/csift/internal/logging"
)

const testMainSource = `#include <foo.h>

// entry point
int main() { return 2 + 3 * 4; }
`

func buildInfo() cli.BuildInfo {
	return cli.BuildInfo{Version: "test", Commit: "test", Date: "test"}
}

// execute runs the root command with args and returns stdout and the
// command error.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	cmd := cli.NewRootCommand(buildInfo())
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return stdout.String(), err
}

func writeSource(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "main.cpp")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestRunCommand(t *testing.T) {
	t.Parallel()

	path := writeSource(t, "int main() { return 0; }")

	out, err := execute(t, "run", path)
	require.NoError(t, err)
	assert.Contains(t, out, "program exited with code 0")
}

func TestRunCommandNonzeroExit(t *testing.T) {
	t.Parallel()

	path := writeSource(t, testMainSource)

	out, err := execute(t, "run", path)

	var progErr *cli.ProgramExitError
	require.ErrorAs(t, err, &progErr)
	assert.Equal(t, 14, progErr.Code)
	assert.Equal(t, 14, cli.ExitCodeFromError(err))
	assert.Contains(t, out, "program exited with code 14")
}

func TestRunCommandNoMain(t *testing.T) {
	t.Parallel()

	path := writeSource(t, "int helper() { return 1; }")

	_, err := execute(t, "run", path)
	require.Error(t, err)

	var progErr *cli.ProgramExitError
	assert.False(t, errors.As(err, &progErr))
	assert.Equal(t, cli.ExitFailure, cli.ExitCodeFromError(err))
	assert.Contains(t, err.Error(), "no main function found")
}

func TestTokensCommand(t *testing.T) {
	t.Parallel()

	path := writeSource(t, testMainSource)

	out, err := execute(t, "tokens", "--color", "never", path)
	require.NoError(t, err)

	assert.Contains(t, out, path)
	assert.Contains(t, out, "PP{")
	assert.Contains(t, out, "PP.H")
	assert.Contains(t, out, "foo.h")
	assert.Contains(t, out, "KEY")
	assert.Contains(t, out, "main")
	assert.Contains(t, out, "COMMENT")
}

func TestTokensCommandDiscardsComments(t *testing.T) {
	t.Parallel()

	path := writeSource(t, testMainSource)

	out, err := execute(t, "tokens", "--keep-comments=false", path)
	require.NoError(t, err)
	assert.NotContains(t, out, "COMMENT")
}

func TestIncludesCommand(t *testing.T) {
	t.Parallel()

	path := writeSource(t, testMainSource)

	out, err := execute(t, "includes", path)
	require.NoError(t, err)
	assert.Contains(t, out, "foo.h")
}

func TestStatsCommand(t *testing.T) {
	t.Parallel()

	path := writeSource(t, testMainSource)

	out, err := execute(t, "stats", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Summary")
	assert.Contains(t, out, "Files scanned: 1")

	compact, err := execute(t, "stats", "--compact", path)
	require.NoError(t, err)
	assert.Contains(t, compact, "in 1 file")

	keywords, err := execute(t, "stats", "--keywords", path)
	require.NoError(t, err)
	assert.Contains(t, keywords, "int")
	assert.Contains(t, keywords, "return")
}

func TestDocsCommand(t *testing.T) {
	t.Parallel()

	path := writeSource(t, "// A growable buffer.\nclass Buffer {};\n")

	md, err := execute(t, "docs", path)
	require.NoError(t, err)
	assert.Contains(t, md, "## Buffer")
	assert.Contains(t, md, "A growable buffer.")

	html, err := execute(t, "docs", "--format", "html", path)
	require.NoError(t, err)
	assert.Contains(t, html, "<h2")

	_, err = execute(t, "docs", "--format", "pdf", path)
	require.Error(t, err)
}

func TestDocsCommandOutputFile(t *testing.T) {
	t.Parallel()

	path := writeSource(t, "// Doc.\nclass C {};\n")
	outPath := filepath.Join(t.TempDir(), "api.md")

	_, err := execute(t, "docs", "--output", outPath, path)
	require.NoError(t, err)

	written, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.Contains(t, string(written), "## C")
}

func TestScanCommandsRejectNoArgs(t *testing.T) {
	t.Parallel()

	for _, sub := range []string{"run", "tokens", "includes", "stats", "docs"} {
		_, err := execute(t, sub)
		if err == nil {
			t.Errorf("%s without paths must fail", sub)
			continue
		}
		if got := cli.ExitCodeFromError(err); got != cli.ExitInvalidUsage {
			t.Errorf("%s without paths: exit code %d, want %d", sub, got, cli.ExitInvalidUsage)
		}
	}
}

func TestExitCodeClassification(t *testing.T) {
	t.Parallel()

	path := writeSource(t, "int main() { return 0; }")

	tests := []struct {
		name string
		args []string
		want int
	}{
		{"success", []string{"run", path}, cli.ExitSuccess},
		{"unknown flag", []string{"run", "--no-such-flag", path}, cli.ExitInvalidUsage},
		{"missing config", []string{"run", "--config", filepath.Join(t.TempDir(), "none.yaml"), path}, cli.ExitConfigError},
		{"missing input", []string{"run", filepath.Join(t.TempDir(), "none.cpp")}, cli.ExitIOError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := execute(t, tt.args...)
			assert.Equal(t, tt.want, cli.ExitCodeFromError(err))
		})
	}
}

func TestLexicalErrorSurfacesPosition(t *testing.T) {
	t.Parallel()

	path := writeSource(t, "int x = 08;\n")

	_, err := execute(t, "tokens", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), path+":1:")
	assert.Contains(t, err.Error(), "octal")
}

func TestExplicitConfig(t *testing.T) {
	t.Parallel()

	cfgPath := filepath.Join(t.TempDir(), "cfg.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("keep_comments: false\n"), 0o644))

	path := writeSource(t, testMainSource)

	out, err := execute(t, "tokens", "--config", cfgPath, path)
	require.NoError(t, err)
	assert.NotContains(t, out, "COMMENT")
}

func TestConfigLogLevel(t *testing.T) {
	// Mutates the default logger, so not parallel.
	defer logging.SetLevel("info")

	cfgPath := filepath.Join(t.TempDir(), "cfg.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("log_level: debug\n"), 0o644))

	path := writeSource(t, testMainSource)

	_, err := execute(t, "stats", "--config", cfgPath, path)
	require.NoError(t, err)
	assert.Equal(t, "debug", logging.Level())
}

func TestIgnoreGlobs(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "main.cpp"),
		[]byte("int main() { return 0; }\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "skip.cpp"),
		[]byte("int helper() { return 1; }\n"), 0o644))

	out, err := execute(t, "stats", "--compact", "--ignore", "skip.cpp", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "in 1 file")

	cfgPath := filepath.Join(t.TempDir(), "cfg.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("ignore:\n  - skip.cpp\n"), 0o644))

	out, err = execute(t, "stats", "--compact", "--config", cfgPath, dir)
	require.NoError(t, err)
	assert.Contains(t, out, "in 1 file")
}

func TestInitCommand(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	outPath := filepath.Join(dir, ".csift.yaml")

	_, err := execute(t, "init", "--output", outPath)
	require.NoError(t, err)

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "keep_comments: true")

	// A second init without --force refuses to overwrite.
	_, err = execute(t, "init", "--output", outPath)
	require.Error(t, err)

	_, err = execute(t, "init", "--output", outPath, "--force")
	require.NoError(t, err)
}
