//go:build integration

// Package integration contains integration tests for gitroast.
// These tests are excluded from normal test runs due to build tags.
// To run these tests: go test -tags integration ./integration
package integration

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newRepo creates a repository whose history is the given messages, oldest first.
func newRepo(t *testing.T, messages ...string) string {
	t.Helper()
	dir := t.TempDir()
	run := func(env []string, args ...string) {
		t.Helper()
		base := []string{"-C", dir, "-c", "user.name=Roast Tester", "-c", "user.email=roast@example.com", "-c", "commit.gpgsign=false"}
		cmd := exec.Command("git", append(base, args...)...)
		cmd.Env = append(os.Environ(), env...)
		out, err := cmd.CombinedOutput()
		require.NoError(t, err, "git %v: %s", args, out)
	}
	run(nil, "init", "-q")
	for i, msg := range messages {
		date := fmt.Sprintf("2024-02-%02dT10:00:00Z", i+1)
		run([]string{"GIT_AUTHOR_DATE=" + date, "GIT_COMMITTER_DATE=" + date}, "commit", "-q", "--allow-empty", "-m", msg)
	}
	return dir
}

// runGitroast runs the binary in dir with colors off and returns stdout, stderr and the exit code.
func runGitroast(t *testing.T, dir string, args ...string) (string, string, int) {
	t.Helper()
	cmd := exec.Command(getBinary(), append([]string{"--color", "no"}, args...)...)
	cmd.Dir = dir
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	err := cmd.Run()

	code := 0
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		code = exitErr.ExitCode()
	} else {
		require.NoError(t, err)
	}
	return stdout.String(), stderr.String(), code
}

func skipIfGitNotAvailable(t *testing.T) {
	t.Helper()
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not available")
	}
}

func TestRoastHead(t *testing.T) {
	skipIfGitNotAvailable(t)
	dir := newRepo(t, "Initial commit", "fix bug!!!")

	for _, backend := range []string{"exec", "gogit"} {
		t.Run(backend, func(t *testing.T) {
			stdout, _, code := runGitroast(t, dir, "--backend", backend)
			assert.Equal(t, 0, code)
			assert.Contains(t, stdout, "Commit HEAD:")
			assert.Contains(t, stdout, "fix bug!!!")
			assert.Contains(t, stdout, "Git Roast Rating: 4/10")
		})
	}
}

func TestRoastInvalidRef(t *testing.T) {
	skipIfGitNotAvailable(t)
	dir := newRepo(t, "Initial commit")
	ref := strings.Repeat("0", 40)

	for _, backend := range []string{"exec", "gogit"} {
		t.Run(backend, func(t *testing.T) {
			stdout, stderr, code := runGitroast(t, dir, "--backend", backend, ref)
			assert.Equal(t, 1, code)
			assert.NotContains(t, stdout, "Git Roast Rating")
			assert.Contains(t, stderr, "could not retrieve commit message for "+ref)
		})
	}
}

func TestRoastOutsideRepository(t *testing.T) {
	skipIfGitNotAvailable(t)
	_, stderr, code := runGitroast(t, t.TempDir())
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "could not retrieve commit message for HEAD")
}

func TestRoastTop(t *testing.T) {
	skipIfGitNotAvailable(t)
	dir := newRepo(t,
		"Initial commit",
		"WOW!!! This is AMAZING!!! 🎉🎉 Best feature ever?!",
		"fix bug!!!",
	)

	stdout, _, code := runGitroast(t, dir, "top")
	require.Equal(t, 0, code)
	assert.True(t, strings.HasPrefix(stdout, "Roasting top commits...\n"))
	assert.Contains(t, stdout, "Top 10 Roast Commits:")

	wow := strings.Index(stdout, "WOW!!!")
	fix := strings.Index(stdout, "fix bug!!!")
	initial := strings.Index(stdout, "Initial commit")
	require.NotEqual(t, -1, wow)
	assert.Less(t, wow, fix)
	assert.Less(t, fix, initial)
}

func TestRoastTopJSON(t *testing.T) {
	skipIfGitNotAvailable(t)
	dir := newRepo(t, "Initial commit", "fix bug!!!", "Add parser")

	stdout, _, code := runGitroast(t, dir, "top", "--output", "json", "--limit", "2")
	require.Equal(t, 0, code)

	var ranked []map[string]any
	require.NoError(t, json.Unmarshal([]byte(stdout), &ranked))
	require.Len(t, ranked, 2)
	assert.Equal(t, "fix bug!!!", ranked[0]["subject"])
	assert.Equal(t, float64(4), ranked[0]["rating"])
	assert.Len(t, ranked[0]["hash"], 40)
}

func TestRoastConfigFromEnv(t *testing.T) {
	skipIfGitNotAvailable(t)
	dir := newRepo(t, "fix bug!!!")

	cmd := exec.Command(getBinary())
	cmd.Dir = dir
	cmd.Env = append(os.Environ(), "GITROAST_OUTPUT=yaml")
	out, err := cmd.Output()
	require.NoError(t, err)
	assert.Contains(t, string(out), "rating: 4")
}
