package algo

import (
	"sort"

	"github.com/huangsam/gitroast/schema"
)

// RankCommits sorts commits by rating in descending order and returns the
// top 'limit' commits. Commits with equal ratings keep their input order,
// so for history listings the more recent commit wins a tie. If limit is
// greater than the number of commits, all commits are returned in sorted order.
func RankCommits(commits []schema.RatedCommit, limit int) []schema.RatedCommit {
	sort.SliceStable(commits, func(i, j int) bool {
		return commits[i].Rating > commits[j].Rating
	})
	if limit >= 0 && len(commits) > limit {
		return commits[:limit]
	}
	return commits
}

// ToRankedCommits numbers already ranked commits from 1 and attaches their verdict band.
func ToRankedCommits(commits []schema.RatedCommit) []schema.RankedCommit {
	ranked := make([]schema.RankedCommit, 0, len(commits))
	for i, c := range commits {
		ranked = append(ranked, schema.RankedCommit{
			Rank:    i + 1,
			Hash:    c.Hash,
			Subject: c.Subject,
			Rating:  c.Rating,
			Band:    Describe(c.Rating).Band,
		})
	}
	return ranked
}
