package commands

import (
	"fmt"

	"github.com/TRenneke/gom-go/internal/cli/credentials"
	"github.com/TRenneke/gom-go/internal/cli/output"
	"github.com/spf13/cobra"
)

var contextCmd = &cobra.Command{
	Use:   "context",
	Short: "Manage saved connections",
}

var contextListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved connections",
	RunE:  runContextList,
}

var contextUseCmd = &cobra.Command{
	Use:   "use <name>",
	Short: "Switch the active connection",
	Args:  cobra.ExactArgs(1),
	RunE:  runContextUse,
}

func init() {
	contextCmd.AddCommand(contextListCmd)
	contextCmd.AddCommand(contextUseCmd)
}

type contextRow struct {
	Name    string `json:"name"`
	Server  string `json:"server_url"`
	Current bool   `json:"current"`
}

func runContextList(cmd *cobra.Command, args []string) error {
	store, err := credentials.NewStore()
	if err != nil {
		return err
	}

	current := store.GetCurrentContextName()
	names := store.ListContexts()

	rows := make([]contextRow, 0, len(names))
	for _, name := range names {
		ctx, err := store.GetContext(name)
		if err != nil {
			continue
		}
		rows = append(rows, contextRow{Name: name, Server: ctx.ServerURL, Current: name == current})
	}

	return PrintOutput(cmd.OutOrStdout(), rows, len(rows) == 0, "No saved connections.", contextTable(rows))
}

func contextTable(rows []contextRow) output.TableRenderer {
	t := output.NewTableData("NAME", "SERVER", "CURRENT")
	for _, r := range rows {
		t.AddRow(r.Name, r.Server, boolToYesNo(r.Current))
	}
	return t
}

func boolToYesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

func runContextUse(cmd *cobra.Command, args []string) error {
	store, err := credentials.NewStore()
	if err != nil {
		return err
	}

	name := args[0]
	if err := store.UseContext(name); err != nil {
		return fmt.Errorf("switch connection: %w", err)
	}

	PrintSuccess(fmt.Sprintf("Switched to connection %q", name))
	return nil
}
