package contract

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/huangsam/gitroast/schema"
)

// Default values for configuration.
const (
	DefaultRef   = "HEAD"
	DefaultCount = 100
	DefaultLimit = 10
	MaxCount     = 10000
)

// Config holds the runtime configuration for a roast.
// This struct remains the "final, validated" config.
type Config struct {
	RepoPath  string
	Ref       string
	Count     int // Number of recent commits scanned in top mode
	Limit     int // Number of commits reported in top mode
	Output    schema.OutputMode
	Backend   schema.GitBackend
	Explain   bool
	Debug     bool
	UseColors bool
	Width     int // Terminal width override (0 = auto-detect)
}

// ConfigRawInput holds the raw inputs from all sources (flags, env, config file).
// Viper unmarshals into this struct.
type ConfigRawInput struct {
	// This is set manually from positional args, so no tag
	RefStr string

	// --- Fields from rootCmd.PersistentFlags() ---
	Repo    string `mapstructure:"repo"`
	Output  string `mapstructure:"output"`
	Color   string `mapstructure:"color"`
	Explain bool   `mapstructure:"explain"`
	Backend string `mapstructure:"backend"`
	Debug   bool   `mapstructure:"debug"`
	Width   int    `mapstructure:"width"`

	// --- Fields from topCmd.Flags() ---
	Count int `mapstructure:"count"`
	Limit int `mapstructure:"limit"`
}

// Clone returns a copy of the Config struct.
func (c *Config) Clone() *Config {
	clone := *c
	return &clone
}

// ProcessAndValidate performs all parsing and validation on the raw inputs
// and updates the final Config struct.
func ProcessAndValidate(cfg *Config, input *ConfigRawInput) error {
	if err := validateSimpleInputs(cfg, input); err != nil {
		return err
	}
	if err := validateTopInputs(cfg, input); err != nil {
		return err
	}
	return resolveRepoAndRef(cfg, input)
}

// validateSimpleInputs processes and validates the flags shared by every command.
func validateSimpleInputs(cfg *Config, input *ConfigRawInput) error {
	cfg.Explain = input.Explain
	cfg.Debug = input.Debug

	colors, err := ParseBoolString(input.Color)
	if err != nil {
		return fmt.Errorf("invalid --color value: %w", err)
	}
	cfg.UseColors = colors

	if input.Width < 0 {
		return fmt.Errorf("width cannot be negative (received %d)", input.Width)
	}
	cfg.Width = input.Width

	cfg.Output = schema.OutputMode(strings.ToLower(input.Output))
	if _, ok := schema.ValidOutputModes[cfg.Output]; !ok {
		return fmt.Errorf("invalid output format '%s'. must be text, json, csv, yaml", input.Output)
	}

	cfg.Backend = schema.GitBackend(strings.ToLower(input.Backend))
	if _, ok := schema.ValidGitBackends[cfg.Backend]; !ok {
		return fmt.Errorf("invalid git backend '%s'. must be exec, gogit", input.Backend)
	}
	return nil
}

// validateTopInputs checks the bounds used when ranking recent commits.
func validateTopInputs(cfg *Config, input *ConfigRawInput) error {
	if input.Count <= 0 || input.Count > MaxCount {
		return fmt.Errorf("count must be greater than 0 and cannot exceed %d (received %d)", MaxCount, input.Count)
	}
	cfg.Count = input.Count

	if input.Limit <= 0 || input.Limit > MaxCount {
		return fmt.Errorf("limit must be greater than 0 and cannot exceed %d (received %d)", MaxCount, input.Limit)
	}
	cfg.Limit = input.Limit
	return nil
}

// resolveRepoAndRef makes the repository path absolute and defaults the reference.
// Whether the path is really a repository is left to the git client.
func resolveRepoAndRef(cfg *Config, input *ConfigRawInput) error {
	repo := input.Repo
	if repo == "" {
		repo = "."
	}
	absRepo, err := filepath.Abs(repo)
	if err != nil {
		return fmt.Errorf("failed to resolve repository path %q: %w", repo, err)
	}
	cfg.RepoPath = absRepo

	cfg.Ref = strings.TrimSpace(input.RefStr)
	if cfg.Ref == "" {
		cfg.Ref = DefaultRef
	}
	return nil
}
