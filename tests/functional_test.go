// Package tests runs .swift fixture files through the compiled swiftparse
// binary and checks its exit code and output shape — this tests the actual
// binary, not the internal packages directly.
package tests

import (
	"bytes"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// TestFunctionalAccepts feeds every .swift fixture in testdata/accept/ to
// the binary and requires a zero exit code and an "ok" report.
func TestFunctionalAccepts(t *testing.T) {
	binaryPath := buildBinary(t)

	fixtures, err := filepath.Glob("testdata/accept/*.swift")
	require.NoError(t, err)
	require.NotEmpty(t, fixtures, "expected at least one accept fixture")

	for _, fixture := range fixtures {
		fixture := fixture
		t.Run(filepath.Base(fixture), func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			cmd := exec.Command(binaryPath, fixture)
			cmd.Stdout = &stdout
			cmd.Stderr = &stderr

			err := cmd.Run()
			require.NoError(t, err, "stderr: %s", stderr.String())
			require.True(t, strings.HasPrefix(stdout.String(), "ok:"), "got stdout %q", stdout.String())
		})
	}
}

// TestFunctionalRejects feeds every .swift fixture in testdata/reject/ to
// the binary and requires a non-zero exit code and a position-tagged error
// on stderr.
func TestFunctionalRejects(t *testing.T) {
	binaryPath := buildBinary(t)

	fixtures, err := filepath.Glob("testdata/reject/*.swift")
	require.NoError(t, err)
	require.NotEmpty(t, fixtures, "expected at least one reject fixture")

	for _, fixture := range fixtures {
		fixture := fixture
		t.Run(filepath.Base(fixture), func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			cmd := exec.Command(binaryPath, fixture)
			cmd.Stdout = &stdout
			cmd.Stderr = &stderr

			err := cmd.Run()
			require.Error(t, err, "expected a non-zero exit, got stdout %q", stdout.String())
			require.NotEmpty(t, stderr.String())
			require.Contains(t, stderr.String(), fixture)
		})
	}
}

func buildBinary(t *testing.T) string {
	t.Helper()
	projectRoot, err := filepath.Abs("..")
	require.NoError(t, err)

	binaryPath := filepath.Join(t.TempDir(), "swiftparse-test-binary")

	cmd := exec.Command("go", "build", "-o", binaryPath, "./cmd/swiftparse")
	cmd.Dir = projectRoot
	output, err := cmd.CombinedOutput()
	require.NoError(t, err, "build failed: %s", output)

	_, err = os.Stat(binaryPath)
	require.NoError(t, err)
	return binaryPath
}
