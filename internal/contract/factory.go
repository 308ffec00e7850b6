package contract

import (
	"fmt"

	"github.com/huangsam/gitroast/schema"
	"go.uber.org/zap"
)

// NewGitClient returns the GitClient implementation for the given backend.
func NewGitClient(backend schema.GitBackend, logger *zap.SugaredLogger) (GitClient, error) {
	switch backend {
	case schema.ExecBackend, "":
		return NewLocalGitClient(logger), nil
	case schema.GoGitBackend:
		return NewGoGitClient(logger), nil
	default:
		return nil, fmt.Errorf("invalid git backend '%s'. must be exec, gogit", backend)
	}
}
