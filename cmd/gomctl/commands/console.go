package commands

import (
	"bufio"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var consoleFile string

var consoleCmd = &cobra.Command{
	Use:   "console",
	Short: "Open an interactive console against the server",
	Long: `Register an interpreter and forward each line of standard input to the
server's interactive console, printing back whatever it evaluates to.`,
	RunE: runConsole,
}

func init() {
	consoleCmd.Flags().StringVar(&consoleFile, "file", "gomctl-console", "Source file label sent with REGISTER")
}

func runConsole(cmd *cobra.Command, args []string) error {
	client, err := dialFromFlags(consoleFile)
	if err != nil {
		return err
	}
	defer func() { _ = client.Close() }()

	scanner := bufio.NewScanner(os.Stdin)
	out := cmd.OutOrStdout()
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}

		result, err := client.Console(line)
		if err != nil {
			fmt.Fprintf(out, "error: %v\n", err)
			continue
		}
		if err := printValue(out, result); err != nil {
			fmt.Fprintf(out, "error: %v\n", err)
		}
	}
	return scanner.Err()
}
