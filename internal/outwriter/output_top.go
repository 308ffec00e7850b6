package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/huangsam/gitroast/internal/contract"
	"github.com/huangsam/gitroast/schema"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// writeTopTable generates and writes the human-readable ranking.
func writeTopTable(w io.Writer, commits []schema.RankedCommit, cfg *contract.Config) error {
	if _, err := contract.HighlightText.Fprintf(w, "\nTop %d Roast Commits:\n", cfg.Limit); err != nil {
		return err
	}
	if len(commits) == 0 {
		_, err := fmt.Fprintln(w, "No commits to roast.")
		return err
	}

	table := tablewriter.NewWriter(w)
	table.Header([]string{"Rank", "Rating", "Commit", "Subject", "Verdict"})
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignRight
	})

	maxSubject := GetMaxSubjectWidth(cfg)
	var data [][]string
	for _, c := range commits {
		data = append(data, []string{
			strconv.Itoa(c.Rank),
			fmtRating(c.Rating),
			schema.ShortHash(c.Hash),
			contract.TruncateText(c.Subject, maxSubject),
			contract.GetColorBand(c.Rating, c.Band),
		})
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	return table.Render()
}

// writeTopCSV writes the ranking in CSV format with full hashes.
func writeTopCSV(w io.Writer, commits []schema.RankedCommit) error {
	header := []string{"rank", "rating", "hash", "subject", "band"}
	return writeCSVWithHeader(w, header, func(cw *csv.Writer) error {
		for _, c := range commits {
			row := []string{
				strconv.Itoa(c.Rank),
				strconv.Itoa(c.Rating),
				c.Hash,
				c.Subject,
				string(c.Band),
			}
			if err := cw.Write(row); err != nil {
				return fmt.Errorf("failed to write CSV row: %w", err)
			}
		}
		return nil
	})
}
