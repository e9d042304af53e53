package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"net/url"
	"os"

	"github.com/TRenneke/gom-go/internal/cli/credentials"
	"github.com/TRenneke/gom-go/internal/cli/output"
	"github.com/TRenneke/gom-go/pkg/cdc"
	"github.com/TRenneke/gom-go/pkg/gomclient"
	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// envDefaults holds connection settings sourced from GOMCTL_* environment
// variables, consulted beneath explicit flags but above a saved context.
type envDefaults struct {
	Server        string `mapstructure:"server"`
	APIKey        string `mapstructure:"apikey"`
	InterpreterID string `mapstructure:"interpreter_id"`
}

// loadEnvDefaults reads GOMCTL_SERVER, GOMCTL_APIKEY, and
// GOMCTL_INTERPRETER_ID; resolveContext applies them beneath explicit
// flags and above the saved context.
func loadEnvDefaults() envDefaults {
	v := viper.New()
	v.SetEnvPrefix("GOMCTL")
	v.AutomaticEnv()
	_ = v.BindEnv("server")
	_ = v.BindEnv("apikey")
	_ = v.BindEnv("interpreter_id")

	settings := map[string]any{
		"server":         v.Get("server"),
		"apikey":         v.Get("apikey"),
		"interpreter_id": v.Get("interpreter_id"),
	}

	var out envDefaults
	_ = mapstructure.Decode(settings, &out)
	return out
}

// resolveContext merges the --server/--apikey flag overrides with the
// stored current context, returning the effective connection context.
func resolveContext() (*credentials.Context, error) {
	store, err := credentials.NewStore()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize context store: %w", err)
	}

	ctx := &credentials.Context{StripTracebacks: true}
	if current, err := store.GetCurrentContext(); err == nil {
		ctx = current
	}

	env := loadEnvDefaults()
	if env.Server != "" {
		ctx.ServerURL = env.Server
	}
	if env.APIKey != "" {
		ctx.APIKey = env.APIKey
	}
	if env.InterpreterID != "" {
		ctx.InterpreterID = env.InterpreterID
	}

	if Flags.Server != "" {
		ctx.ServerURL = Flags.Server
	}
	if Flags.APIKey != "" {
		ctx.APIKey = Flags.APIKey
	}

	if ctx.ServerURL == "" {
		return nil, fmt.Errorf("no server URL configured\n\n" +
			"Specify one:\n  gomctl connect --server tcp://host:port")
	}

	return ctx, nil
}

// connectionURL builds the connurl-compatible URL string from a context.
func connectionURL(ctx *credentials.Context) string {
	u, err := url.Parse(ctx.ServerURL)
	if err != nil {
		// ServerURL was validated at connect time; fall back to a bare
		// reconstruction rather than failing the caller.
		u = &url.URL{Scheme: "tcp", Host: ctx.ServerURL}
	}

	q := u.Query()
	if ctx.APIKey != "" {
		q.Set("apikey", ctx.APIKey)
	}
	if ctx.InterpreterID != "" {
		q.Set("interpreter_id", ctx.InterpreterID)
	}
	if !ctx.StripTracebacks {
		q.Set("strip_tracebacks", "0")
	}
	u.RawQuery = q.Encode()

	return u.String()
}

// dialFromFlags resolves the effective context and dials a gomclient.Client,
// registering the interpreter against the given source file label.
func dialFromFlags(file string) (*gomclient.Client, error) {
	ctx, err := resolveContext()
	if err != nil {
		return nil, err
	}

	client, err := gomclient.Dial(connectionURL(ctx), file)
	if err != nil {
		return nil, fmt.Errorf("connect: %w", err)
	}
	return client, nil
}

// GetOutputFormatParsed returns the parsed output format from global flags.
func GetOutputFormatParsed() (output.Format, error) {
	return output.ParseFormat(Flags.Output)
}

// PrintOutput prints data in the configured format, falling back to a plain
// message when there is nothing to show in table mode.
func PrintOutput(w io.Writer, data any, isEmpty bool, emptyMsg string, tableRenderer output.TableRenderer) error {
	format, err := GetOutputFormatParsed()
	if err != nil {
		return err
	}

	switch format {
	case output.FormatJSON:
		return output.PrintJSON(w, data)
	case output.FormatYAML:
		return output.PrintYAML(w, data)
	default:
		if isEmpty {
			_, _ = fmt.Fprintln(w, emptyMsg)
			return nil
		}
		return output.PrintTable(w, tableRenderer)
	}
}

// printValue prints a single decoded cdc.Value in the configured format.
// Table format has no natural single-value rendering, so it falls back to
// the same indented JSON as the json format.
func printValue(w io.Writer, v cdc.Value) error {
	format, err := GetOutputFormatParsed()
	if err != nil {
		return err
	}

	data := valueToJSON(v)
	switch format {
	case output.FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		defer func() { _ = enc.Close() }()
		return enc.Encode(data)
	default:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(data)
	}
}

// PrintSuccess prints a success message if the output format is table.
func PrintSuccess(msg string) {
	format, err := GetOutputFormatParsed()
	if err != nil || format != output.FormatTable {
		return
	}
	printer := output.NewPrinter(os.Stdout, format, !Flags.NoColor)
	printer.Success(msg)
}
