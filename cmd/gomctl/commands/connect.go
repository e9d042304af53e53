package commands

import (
	"fmt"
	"net/url"

	"github.com/TRenneke/gom-go/internal/cli/credentials"
	"github.com/TRenneke/gom-go/pkg/gomclient"
	"github.com/spf13/cobra"
)

var (
	connectServer        string
	connectAPIKey        string
	connectInterpreterID string
	connectStripTraces   bool
	connectTest          bool
)

var connectCmd = &cobra.Command{
	Use:   "connect",
	Short: "Save connection settings for a scripting-runtime server",
	Long: `Save the server URL, API key, and interpreter identity used by every
other gomctl command.

Examples:
  # Save and remember a server
  gomctl connect --server tcp://localhost:7890 --apikey secret

  # Save, then immediately verify the REGISTER handshake succeeds
  gomctl connect --server tcp://localhost:7890 --apikey secret --test`,
	RunE: runConnect,
}

func init() {
	connectCmd.Flags().StringVar(&connectServer, "server", "", "Server URL (required on first connect)")
	connectCmd.Flags().StringVar(&connectAPIKey, "apikey", "", "API key")
	connectCmd.Flags().StringVar(&connectInterpreterID, "interpreter-id", "", "Interpreter identity (default: a fresh UUID per connection)")
	connectCmd.Flags().BoolVar(&connectStripTraces, "strip-tracebacks", true, "Save strip_tracebacks in the connection URL (parsed, not sent to the server)")
	connectCmd.Flags().BoolVar(&connectTest, "test", false, "Dial and register immediately to verify the connection")
}

func runConnect(cmd *cobra.Command, args []string) error {
	store, err := credentials.NewStore()
	if err != nil {
		return fmt.Errorf("failed to initialize context store: %w", err)
	}

	serverURLStr := connectServer
	if serverURLStr == "" {
		if current, err := store.GetCurrentContext(); err == nil {
			serverURLStr = current.ServerURL
		}
	}
	if serverURLStr == "" {
		return fmt.Errorf("no server URL specified and no saved context found\n\n" +
			"Specify a server URL:\n  gomctl connect --server tcp://localhost:7890")
	}

	if _, err := url.Parse(serverURLStr); err != nil {
		return fmt.Errorf("invalid server URL: %w", err)
	}

	contextName := store.GetCurrentContextName()
	if contextName == "" {
		contextName = credentials.GenerateContextName(serverURLStr)
	}

	ctx := &credentials.Context{
		ServerURL:       serverURLStr,
		APIKey:          connectAPIKey,
		InterpreterID:   connectInterpreterID,
		StripTracebacks: connectStripTraces,
	}

	if connectTest {
		client, err := gomclient.Dial(connectionURL(ctx), "gomctl-connect")
		if err != nil {
			return fmt.Errorf("connection test failed: %w", err)
		}
		_ = client.Close()
		fmt.Println("Connection verified.")
	}

	if err := store.SetContext(contextName, ctx); err != nil {
		return fmt.Errorf("failed to save connection settings: %w", err)
	}
	if err := store.UseContext(contextName); err != nil {
		return fmt.Errorf("failed to set current context: %w", err)
	}

	fmt.Printf("Saved connection %q to %s\n", contextName, serverURLStr)
	fmt.Printf("Settings saved to: %s\n", store.ConfigPath())
	return nil
}
