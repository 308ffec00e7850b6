package contract

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strconv"
	"strings"

	"go.uber.org/zap"
)

// LocalGitClient implements the GitClient interface by executing the
// local 'git' binary installed on the machine.
type LocalGitClient struct {
	logger *zap.SugaredLogger
}

var _ GitClient = &LocalGitClient{} // Compile-time check

// NewLocalGitClient creates a new instance of the local Git client.
func NewLocalGitClient(logger *zap.SugaredLogger) *LocalGitClient {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return &LocalGitClient{logger: logger}
}

// Run executes a git command and returns its stdout output.
func (c *LocalGitClient) Run(ctx context.Context, repoPath string, args ...string) ([]byte, error) {
	fullArgs := append([]string{"-C", repoPath}, args...)
	c.logger.Debugw("running git", "args", fullArgs)
	cmd := exec.CommandContext(ctx, "git", fullArgs...)
	out, err := cmd.Output()
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		stderr := strings.TrimSpace(string(exitErr.Stderr))
		return nil, fmt.Errorf("git command failed in %q: %s", repoPath, stderr)
	} else if err != nil {
		return nil, fmt.Errorf("git command failed: %w. Ensure Git is installed and available on your PATH", err)
	}
	return out, nil
}

// GetMessage implements the GitClient interface.
func (c *LocalGitClient) GetMessage(ctx context.Context, repoPath string, ref string) (string, error) {
	if err := validateRef(ref); err != nil {
		return "", &LookupError{Op: MessageLookup, Ref: ref, Err: err}
	}
	out, err := c.Run(ctx, repoPath, "log", "-1", "--format=%B", ref, "--")
	if err != nil {
		return "", &LookupError{Op: MessageLookup, Ref: ref, Err: err}
	}
	return strings.TrimSpace(string(out)), nil
}

// GetSubject implements the GitClient interface.
func (c *LocalGitClient) GetSubject(ctx context.Context, repoPath string, ref string) string {
	if err := validateRef(ref); err != nil {
		c.logger.Debugw("subject lookup skipped", "ref", ref, "error", err)
		return ""
	}
	out, err := c.Run(ctx, repoPath, "log", "-1", "--format=%s", ref, "--")
	if err != nil {
		c.logger.Debugw("subject lookup failed", "ref", ref, "error", err)
		return ""
	}
	return strings.TrimSpace(string(out))
}

// GetRecentHashes implements the GitClient interface.
func (c *LocalGitClient) GetRecentHashes(ctx context.Context, repoPath string, limit int) ([]string, error) {
	if limit <= 0 {
		return []string{}, nil
	}
	out, err := c.Run(ctx, repoPath, "log", "-n", strconv.Itoa(limit), "--format=%H")
	if err != nil {
		return nil, &LookupError{Op: HistoryLookup, Err: err}
	}
	hashes := strings.Split(strings.TrimSpace(string(out)), "\n")
	if len(hashes) == 1 && hashes[0] == "" {
		return []string{}, nil
	}
	return hashes, nil
}

// validateRef rejects references that git would parse as options.
func validateRef(ref string) error {
	if ref == "" {
		return errors.New("empty reference")
	}
	if strings.HasPrefix(ref, "-") {
		return fmt.Errorf("invalid reference %q", ref)
	}
	return nil
}
