// Package cmd defines the command-line interface for gitroast.
package cmd

import (
	"github.com/huangsam/gitroast/internal/contract"
	"github.com/huangsam/gitroast/schema"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	// Call initConfig on Cobra's initialization
	cobra.OnInitialize(initConfig)

	// Add subcommands to the root command
	rootCmd.AddCommand(topCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(mcpCmd)

	// Bind all persistent flags of rootCmd to Viper
	rootCmd.PersistentFlags().String("repo", ".", "Path inside the Git repository to read commits from")
	rootCmd.PersistentFlags().StringP("output", "o", string(schema.TextOut), "Output format: text or json or csv or yaml")
	rootCmd.PersistentFlags().String("color", "yes", "Enable colored output (yes/no/true/false/1/0)")
	rootCmd.PersistentFlags().Bool("explain", false, "Print the contribution of every scoring signal")
	rootCmd.PersistentFlags().String("backend", string(schema.ExecBackend), "Git backend: exec (git binary) or gogit (in-process)")
	rootCmd.PersistentFlags().Bool("debug", false, "Print diagnostic logs to stderr")
	rootCmd.PersistentFlags().Int("width", 0, "Terminal width override (0 = auto-detect)")
	rootCmd.PersistentFlags().String("config", "", "Path to config file")
	if err := viper.BindPFlags(rootCmd.PersistentFlags()); err != nil {
		contract.LogFatal("Error binding root flags", err)
	}

	// Bind all flags of topCmd to Viper
	topCmd.Flags().IntP("count", "n", contract.DefaultCount, "Number of recent commits to scan")
	topCmd.Flags().IntP("limit", "l", contract.DefaultLimit, "Number of commits to display")
	if err := viper.BindPFlags(topCmd.Flags()); err != nil {
		contract.LogFatal("Error binding top flags", err)
	}
}
