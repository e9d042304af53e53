package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

var registerFile string

var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "Dial the saved connection and register an interpreter",
	Long: `Open the transport, send the REGISTER request for the saved connection,
and report success. Useful for confirming a server is reachable and an
API key is accepted before scripting further commands against it.`,
	RunE: runRegister,
}

func init() {
	registerCmd.Flags().StringVar(&registerFile, "file", "gomctl-register", "Source file label sent with REGISTER")
}

func runRegister(cmd *cobra.Command, args []string) error {
	client, err := dialFromFlags(registerFile)
	if err != nil {
		return err
	}
	defer func() { _ = client.Close() }()

	fmt.Println("Registered successfully.")
	return nil
}
