package contract

import (
	"context"
	"errors"
	"strings"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/go-git/go-git/v5/plumbing/storer"
	"go.uber.org/zap"
)

// GoGitClient implements the GitClient interface in-process with go-git,
// so no git executable is required.
type GoGitClient struct {
	logger *zap.SugaredLogger
}

var _ GitClient = &GoGitClient{} // Compile-time check

// NewGoGitClient creates a new instance of the go-git client.
func NewGoGitClient(logger *zap.SugaredLogger) *GoGitClient {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return &GoGitClient{logger: logger}
}

// open finds the repository containing repoPath, walking up parent directories like git does.
func (c *GoGitClient) open(repoPath string) (*git.Repository, error) {
	return git.PlainOpenWithOptions(repoPath, &git.PlainOpenOptions{DetectDotGit: true})
}

// commitAt resolves ref to its commit object.
func (c *GoGitClient) commitAt(ctx context.Context, repoPath string, ref string) (*object.Commit, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := validateRef(ref); err != nil {
		return nil, err
	}
	repo, err := c.open(repoPath)
	if err != nil {
		return nil, err
	}
	hash, err := repo.ResolveRevision(plumbing.Revision(ref))
	if err != nil {
		return nil, err
	}
	return repo.CommitObject(*hash)
}

// GetMessage implements the GitClient interface.
func (c *GoGitClient) GetMessage(ctx context.Context, repoPath string, ref string) (string, error) {
	commit, err := c.commitAt(ctx, repoPath, ref)
	if err != nil {
		return "", &LookupError{Op: MessageLookup, Ref: ref, Err: err}
	}
	return strings.TrimSpace(commit.Message), nil
}

// GetSubject implements the GitClient interface.
func (c *GoGitClient) GetSubject(ctx context.Context, repoPath string, ref string) string {
	commit, err := c.commitAt(ctx, repoPath, ref)
	if err != nil {
		c.logger.Debugw("subject lookup failed", "ref", ref, "error", err)
		return ""
	}
	return SubjectLine(commit.Message)
}

// GetRecentHashes implements the GitClient interface.
func (c *GoGitClient) GetRecentHashes(ctx context.Context, repoPath string, limit int) ([]string, error) {
	if limit <= 0 {
		return []string{}, nil
	}
	repo, err := c.open(repoPath)
	if err != nil {
		return nil, &LookupError{Op: HistoryLookup, Err: err}
	}
	head, err := repo.Head()
	if err != nil {
		return nil, &LookupError{Op: HistoryLookup, Err: err}
	}
	iter, err := repo.Log(&git.LogOptions{From: head.Hash(), Order: git.LogOrderCommitterTime})
	if err != nil {
		return nil, &LookupError{Op: HistoryLookup, Err: err}
	}
	defer iter.Close()

	hashes := make([]string, 0, limit)
	err = iter.ForEach(func(commit *object.Commit) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		hashes = append(hashes, commit.Hash.String())
		if len(hashes) >= limit {
			return storer.ErrStop
		}
		return nil
	})
	if err != nil && !errors.Is(err, storer.ErrStop) {
		return nil, &LookupError{Op: HistoryLookup, Err: err}
	}
	c.logger.Debugw("collected recent commits", "count", len(hashes))
	return hashes, nil
}
