// Package commands implements the CLI commands for gomctl.
package commands

import (
	"os"

	"github.com/spf13/cobra"
)

var (
	// Version information injected at build time.
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// Flags stores global flag values accessible by subcommands.
var Flags = &GlobalFlags{}

// GlobalFlags holds the global flag values.
type GlobalFlags struct {
	Server  string
	APIKey  string
	Output  string
	NoColor bool
	Verbose bool
}

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "gomctl",
	Short: "gomctl - scripting-runtime bridge client",
	Long: `gomctl is the command-line client for a host application's scripting
runtime over the codec-driven RPC bridge.

Use this tool to register an interpreter, run commands and API functions,
and inspect object state on a running server.

Use "gomctl [command] --help" for more information about a command.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		Flags.Server, _ = cmd.Flags().GetString("server")
		Flags.APIKey, _ = cmd.Flags().GetString("apikey")
		Flags.Output, _ = cmd.Flags().GetString("output")
		Flags.NoColor, _ = cmd.Flags().GetBool("no-color")
		Flags.Verbose, _ = cmd.Flags().GetBool("verbose")
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

// GetRootCmd returns the root command for testing purposes.
func GetRootCmd() *cobra.Command {
	return rootCmd
}

func init() {
	rootCmd.PersistentFlags().String("server", "", "Connection URL (overrides stored context)")
	rootCmd.PersistentFlags().String("apikey", "", "API key (overrides stored context)")
	rootCmd.PersistentFlags().StringP("output", "o", "table", "Output format (table|json|yaml)")
	rootCmd.PersistentFlags().Bool("no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose output")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(connectCmd)
	rootCmd.AddCommand(contextCmd)
	rootCmd.AddCommand(registerCmd)
	rootCmd.AddCommand(callCmd)
	rootCmd.AddCommand(consoleCmd)

	rootCmd.CompletionOptions.DisableDefaultCmd = true
}

// PrintErr prints an error message to stderr.
func PrintErr(format string, args ...any) {
	rootCmd.PrintErrf(format+"\n", args...)
}

// Exit prints an error and exits with code 1.
func Exit(format string, args ...any) {
	PrintErr(format, args...)
	os.Exit(1)
}
