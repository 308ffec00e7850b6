// Package contract provides interfaces and shared utilities for internal architecture.
package contract

import "context"

// GitClient defines the commit lookups needed to rate messages.
// This allows the rating logic to be tested without needing a real git executable.
type GitClient interface {
	// GetMessage returns the full, trimmed message of the commit at ref.
	// It fails with a *LookupError if ref cannot be resolved or repoPath is not a repository.
	GetMessage(ctx context.Context, repoPath string, ref string) (string, error)

	// GetSubject returns the subject line of the commit at ref.
	// Lookup failures are not reported; an empty string is returned instead.
	GetSubject(ctx context.Context, repoPath string, ref string) string

	// GetRecentHashes returns up to limit full commit hashes reachable from HEAD,
	// most recent first. It fails with a *LookupError if history cannot be read.
	GetRecentHashes(ctx context.Context, repoPath string, limit int) ([]string, error)
}
