// Package outwriter has output and writer logic.
package outwriter

import (
	"fmt"
	"io"

	"github.com/huangsam/gitroast/core/algo"
	"github.com/huangsam/gitroast/internal/contract"
	"github.com/huangsam/gitroast/schema"
)

// WriteRoastResult outputs a single rated commit, dispatching based on the output format configured.
func WriteRoastResult(w io.Writer, result schema.RoastResult, cfg *contract.Config) error {
	switch cfg.Output {
	case schema.JSONOut:
		if err := writeJSON(w, result); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.YAMLOut:
		if err := writeYAML(w, result); err != nil {
			return fmt.Errorf("error writing YAML output: %w", err)
		}
	case schema.CSVOut:
		if err := writeRoastCSV(w, result); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	default:
		return writeRoastText(w, result)
	}
	return nil
}

// WriteTopBanner announces a top commits run. Only text output gets a banner
// so machine-readable formats stay parseable.
func WriteTopBanner(w io.Writer, cfg *contract.Config) error {
	if cfg.Output != schema.TextOut {
		return nil
	}
	_, err := contract.FrameColor.Fprintln(w, "Roasting top commits...")
	return err
}

// WriteTopCommits outputs the ranked commits, dispatching based on the output format configured.
func WriteTopCommits(w io.Writer, commits []schema.RatedCommit, cfg *contract.Config) error {
	ranked := algo.ToRankedCommits(commits)
	switch cfg.Output {
	case schema.JSONOut:
		if err := writeJSON(w, ranked); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.YAMLOut:
		if err := writeYAML(w, ranked); err != nil {
			return fmt.Errorf("error writing YAML output: %w", err)
		}
	case schema.CSVOut:
		if err := writeTopCSV(w, ranked); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	default:
		return writeTopTable(w, ranked, cfg)
	}
	return nil
}
