package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/huangsam/gitroast/core"
	"github.com/huangsam/gitroast/internal/contract"
	"github.com/huangsam/gitroast/schema"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// All linker flags will be set by goreleaser infra at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// rootCtx is the root context for all operations.
var rootCtx = context.Background()

// cfg will hold the validated, final configuration.
var cfg = &contract.Config{}

// input holds the raw, unvalidated configuration from all sources (file, env, flags).
// Viper will unmarshal into this struct.
var input = &contract.ConfigRawInput{}

// gitClient reads commits for every command. It is chosen by --backend during setup.
var gitClient contract.GitClient

// logger is the diagnostic logger. It stays silent until setup replaces it.
var logger = zap.NewNop().Sugar()

// rootCmd rates a single commit and is the parent of all other commands.
var rootCmd = &cobra.Command{
	Use:   "gitroast [ref]",
	Short: "Roast the entertainment value of a Git commit message.",
	Long: `Gitroast scores a commit message from 1 to 10 using a handful of text heuristics
and prints a snarky verdict. The reference defaults to HEAD.

A reference with the same name as a subcommand (like "top") runs that subcommand instead.`,
	Example: `  gitroast
  gitroast HEAD~3
  gitroast --explain --output json 1a2b3c4`,
	Version:            version,
	Args:               cobra.MaximumNArgs(1),
	SilenceErrors:      true,
	SilenceUsage:       true,
	DisableSuggestions: true,
	PreRunE:            sharedSetupWrapper,
	RunE:               executeWith(core.ExecuteRoastCommit),
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	// Check if a specific config file is provided
	if configFile := viper.GetString("config"); configFile != "" {
		viper.SetConfigFile(configFile)
	} else {
		viper.SetConfigName(".gitroast") // Name of config file (without extension)
		viper.SetConfigType("yaml")      // We'll use YAML format
		viper.AddConfigPath(".")         // Look in the current directory
		viper.AddConfigPath("$HOME")     // Look in the home directory
	}

	// Set environment variable prefix
	viper.SetEnvPrefix("GITROAST")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv() // Read in environment variables that match

	// Set defaults in Viper
	viper.SetDefault("repo", ".")
	viper.SetDefault("output", schema.TextOut)
	viper.SetDefault("backend", schema.ExecBackend)
	viper.SetDefault("color", "yes")
	viper.SetDefault("count", contract.DefaultCount)
	viper.SetDefault("limit", contract.DefaultLimit)
}

// sharedSetup unmarshals config, runs validation and builds the logger and git client.
func sharedSetup(_ context.Context, _ *cobra.Command, args []string) error {
	// 1. Read config file. This merges defaults, file, env, and flags.
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			// Config file was found but another error was produced
			return fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found, which is fine; we'll use defaults/env/flags.
	}

	// 2. Unmarshal all resolved values from Viper into our raw input struct.
	if err := viper.Unmarshal(input); err != nil {
		return fmt.Errorf("unable to unmarshal config: %w", err)
	}

	// 3. Handle positional arguments (which Viper doesn't do).
	input.RefStr = ""
	if len(args) == 1 {
		input.RefStr = args[0]
	}

	// 4. Run all validation and parsing.
	if err := contract.ProcessAndValidate(cfg, input); err != nil {
		return err
	}
	contract.SetColorEnabled(cfg.UseColors)

	// 5. Build the shared dependencies from the validated config.
	l, err := contract.NewLogger(cfg.Debug)
	if err != nil {
		return fmt.Errorf("failed to build logger: %w", err)
	}
	logger = l
	client, err := contract.NewGitClient(cfg.Backend, logger)
	if err != nil {
		return err
	}
	gitClient = client

	logger.Debugw("configuration loaded",
		"config_file", viper.ConfigFileUsed(),
		"repo", cfg.RepoPath,
		"ref", cfg.Ref,
		"backend", cfg.Backend,
		"output", cfg.Output)
	return nil
}

// executeWith runs the given executor against the state built by sharedSetup.
func executeWith(executeFunc core.ExecutorFunc) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, _ []string) error {
		return executeFunc(rootCtx, cfg, gitClient, logger, cmd.OutOrStdout())
	}
}

// sharedSetupWrapper wraps sharedSetup to provide context for Cobra's PreRunE.
func sharedSetupWrapper(cmd *cobra.Command, args []string) error {
	return sharedSetup(rootCtx, cmd, args)
}

// Execute runs the root command.
func Execute() error {
	defer func() { _ = logger.Sync() }()
	return rootCmd.Execute()
}
