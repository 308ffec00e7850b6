package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/huangsam/gitroast/internal/contract"
	"github.com/huangsam/gitroast/schema"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// frameLine separates the commit message from the rest of the report.
var frameLine = strings.Repeat("-", 40)

// writeRoastText prints the framed message, its rating and the verdict.
func writeRoastText(w io.Writer, result schema.RoastResult) error {
	if _, err := contract.FrameColor.Fprintf(w, "Commit %s:\n", result.Ref); err != nil {
		return err
	}
	if _, err := contract.FrameColor.Fprintln(w, frameLine); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, result.Message); err != nil {
		return err
	}
	if _, err := contract.FrameColor.Fprintln(w, frameLine); err != nil {
		return err
	}
	if _, err := contract.HighlightText.Fprintf(w, "Git Roast Rating: %s\n", fmtRating(result.Rating)); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, contract.GetColorVerdict(result.Rating, result.Verdict)); err != nil {
		return err
	}
	if result.Breakdown != nil {
		return writeBreakdownTable(w, result.Breakdown)
	}
	return nil
}

// writeBreakdownTable lists every signal that moved the score.
func writeBreakdownTable(w io.Writer, breakdown *schema.RatingBreakdown) error {
	if _, err := fmt.Fprintln(w); err != nil {
		return err
	}
	table := tablewriter.NewWriter(w)
	table.Header([]string{"Signal", "Contribution"})
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignRight
	})

	var data [][]string
	for _, key := range schema.AllSignalKeys {
		v, ok := breakdown.Signals[key]
		if !ok || v == 0 {
			continue
		}
		data = append(data, []string{string(key), fmtSignal(v)})
	}
	data = append(data, []string{"total", fmtSignal(breakdown.Raw)})

	if err := table.Bulk(data); err != nil {
		return err
	}
	return table.Render()
}

// writeRoastCSV writes a single rated commit as one CSV row.
// With a breakdown, one column per signal follows the fixed columns.
func writeRoastCSV(w io.Writer, result schema.RoastResult) error {
	header := []string{"ref", "rating", "band", "verdict", "message"}
	if result.Breakdown != nil {
		header = append(header, "raw")
		for _, key := range schema.AllSignalKeys {
			header = append(header, string(key))
		}
	}
	return writeCSVWithHeader(w, header, func(cw *csv.Writer) error {
		row := []string{
			result.Ref,
			strconv.Itoa(result.Rating),
			string(result.Band),
			result.Verdict,
			result.Message,
		}
		if result.Breakdown != nil {
			row = append(row, strconv.FormatFloat(result.Breakdown.Raw, 'f', -1, 64))
			for _, key := range schema.AllSignalKeys {
				row = append(row, strconv.FormatFloat(result.Breakdown.Signals[key], 'f', -1, 64))
			}
		}
		return cw.Write(row)
	})
}
