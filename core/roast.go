// Package core has core logic for fetching, rating and ranking commits.
package core

import (
	"context"
	"io"

	"github.com/huangsam/gitroast/core/algo"
	"github.com/huangsam/gitroast/internal/contract"
	"github.com/huangsam/gitroast/internal/outwriter"
	"github.com/huangsam/gitroast/schema"
	"go.uber.org/zap"
)

// ExecutorFunc defines the function signature for executing the different roast modes.
type ExecutorFunc func(ctx context.Context, cfg *contract.Config, client contract.GitClient, logger *zap.SugaredLogger, w io.Writer) error

// ExecuteRoastCommit rates the commit at cfg.Ref and writes the result.
// Nothing is written when the commit cannot be read.
func ExecuteRoastCommit(ctx context.Context, cfg *contract.Config, client contract.GitClient, logger *zap.SugaredLogger, w io.Writer) error {
	result, err := RoastCommit(ctx, cfg, client, logger)
	if err != nil {
		return err
	}
	return outwriter.WriteRoastResult(w, result, cfg)
}

// ExecuteRoastTop ranks the most recent commits and writes the top of the list.
func ExecuteRoastTop(ctx context.Context, cfg *contract.Config, client contract.GitClient, logger *zap.SugaredLogger, w io.Writer) error {
	if err := outwriter.WriteTopBanner(w, cfg); err != nil {
		return err
	}
	ranked, err := RoastTop(ctx, cfg, client, logger)
	if err != nil {
		return err
	}
	return outwriter.WriteTopCommits(w, ranked, cfg)
}

// RoastCommit fetches the message at cfg.Ref and rates it.
func RoastCommit(ctx context.Context, cfg *contract.Config, client contract.GitClient, logger *zap.SugaredLogger) (schema.RoastResult, error) {
	message, err := client.GetMessage(ctx, cfg.RepoPath, cfg.Ref)
	if err != nil {
		return schema.RoastResult{}, err
	}
	result := RoastMessage(cfg.Ref, message, cfg.Explain)
	logger.Debugw("rated commit", "ref", cfg.Ref, "rating", result.Rating, "band", result.Band)
	return result, nil
}

// RoastMessage rates a message that did not come from a repository.
// The breakdown is attached only when explain is set.
func RoastMessage(ref string, message string, explain bool) schema.RoastResult {
	breakdown := algo.RateWithBreakdown(message)
	verdict := algo.Describe(breakdown.Rating)
	result := schema.RoastResult{
		Ref:     ref,
		Message: message,
		Rating:  breakdown.Rating,
		Band:    verdict.Band,
		Verdict: verdict.Text,
	}
	if explain {
		result.Breakdown = &breakdown
	}
	return result
}

// RoastTop rates up to cfg.Count recent commits one at a time and returns the best cfg.Limit of them.
// A commit whose message cannot be read aborts the whole run; a missing subject does not.
func RoastTop(ctx context.Context, cfg *contract.Config, client contract.GitClient, logger *zap.SugaredLogger) ([]schema.RatedCommit, error) {
	hashes, err := client.GetRecentHashes(ctx, cfg.RepoPath, cfg.Count)
	if err != nil {
		return nil, err
	}
	logger.Debugw("roasting recent commits", "count", len(hashes), "limit", cfg.Limit)

	rated := make([]schema.RatedCommit, 0, len(hashes))
	for _, hash := range hashes {
		record, err := FetchCommit(ctx, cfg, client, hash)
		if err != nil {
			return nil, err
		}
		rated = append(rated, schema.RatedCommit{
			Hash:    record.Hash,
			Subject: record.Subject,
			Rating:  algo.Rate(record.Message),
		})
	}
	return algo.RankCommits(rated, cfg.Limit), nil
}

// FetchCommit reads the message and subject of ref. Only the message lookup can fail.
func FetchCommit(ctx context.Context, cfg *contract.Config, client contract.GitClient, ref string) (schema.CommitRecord, error) {
	message, err := client.GetMessage(ctx, cfg.RepoPath, ref)
	if err != nil {
		return schema.CommitRecord{}, err
	}
	return schema.CommitRecord{
		Hash:    ref,
		Message: message,
		Subject: client.GetSubject(ctx, cfg.RepoPath, ref),
	}, nil
}
