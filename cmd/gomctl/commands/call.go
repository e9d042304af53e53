package commands

import (
	"fmt"
	"strings"

	"github.com/TRenneke/gom-go/pkg/cdc"
	"github.com/TRenneke/gom-go/pkg/rpcclient"
	"github.com/spf13/cobra"
)

var callFile string

// kindByName maps request-kind names (case-insensitively) to their wire
// codes, for dispatching an arbitrary request from the command line.
var kindByName = map[string]rpcclient.RequestKind{
	"api":            rpcclient.KindAPI,
	"command":        rpcclient.KindCommand,
	"configuration":  rpcclient.KindConfiguration,
	"console":        rpcclient.KindConsole,
	"dataarray":      rpcclient.KindDataArray,
	"dataattr":       rpcclient.KindDataAttr,
	"dataindex":      rpcclient.KindDataIndex,
	"datashape":      rpcclient.KindDataShape,
	"doc":            rpcclient.KindDoc,
	"equal":          rpcclient.KindEqual,
	"exit":           rpcclient.KindExit,
	"get":            rpcclient.KindGet,
	"getattr":        rpcclient.KindGetAttr,
	"filter":         rpcclient.KindFilter,
	"import":         rpcclient.KindImport,
	"index":          rpcclient.KindIndex,
	"key":            rpcclient.KindKey,
	"len":            rpcclient.KindLen,
	"less":           rpcclient.KindLess,
	"line":           rpcclient.KindLine,
	"log":            rpcclient.KindLog,
	"objecttypes":    rpcclient.KindObjectTypes,
	"query":          rpcclient.KindQuery,
	"release":        rpcclient.KindRelease,
	"repr":           rpcclient.KindRepr,
	"resourcekey":    rpcclient.KindResourceKey,
	"resourcelen":    rpcclient.KindResourceLen,
	"runapi":         rpcclient.KindRunAPI,
	"service":        rpcclient.KindService,
	"setattr":        rpcclient.KindSetAttr,
	"setenv":         rpcclient.KindSetEnv,
	"tokens":         rpcclient.KindTokens,
	"translate":      rpcclient.KindTranslate,
	"typecall":       rpcclient.KindTypeCall,
	"typeconstruct":  rpcclient.KindTypeConstruct,
	"typecmp":        rpcclient.KindTypeCmp,
	"typedoc":        rpcclient.KindTypeDoc,
	"typegetattr":    rpcclient.KindTypeGetAttr,
	"typegetitem":    rpcclient.KindTypeGetItem,
	"typeiter":       rpcclient.KindTypeIter,
	"typelen":        rpcclient.KindTypeLen,
	"typerepr":       rpcclient.KindTypeRepr,
	"typesetattr":    rpcclient.KindTypeSetAttr,
	"typesetitem":    rpcclient.KindTypeSetItem,
	"typestr":        rpcclient.KindTypeStr,
}

var callCmd = &cobra.Command{
	Use:   "call <kind> [key=json ...]",
	Short: "Register and issue a single request against the server",
	Long: `Dial the saved connection, register an interpreter, and issue a single
request of the given kind. Params are given as key=json pairs, e.g.:

  gomctl call getattr item='{"id":"door-1","category":3,"stage":0}' name='"hinge"'`,
	Args: cobra.MinimumNArgs(1),
	RunE: runCall,
}

func init() {
	callCmd.Flags().StringVar(&callFile, "file", "gomctl-call", "Source file label sent with REGISTER")
}

func runCall(cmd *cobra.Command, args []string) error {
	kindName := strings.ToLower(args[0])
	kind, ok := kindByName[kindName]
	if !ok {
		return fmt.Errorf("unknown request kind %q", args[0])
	}

	params := cdc.Map{}
	for _, pair := range args[1:] {
		key, raw, ok := strings.Cut(pair, "=")
		if !ok {
			return fmt.Errorf("invalid param %q, expected key=json", pair)
		}
		val, err := parseJSONValue(raw)
		if err != nil {
			return fmt.Errorf("param %q: %w", key, err)
		}
		params[key] = val
	}
	if len(params) == 0 {
		params = nil
	}

	client, err := dialFromFlags(callFile)
	if err != nil {
		return err
	}
	defer func() { _ = client.Close() }()

	result, err := client.RPC().Request(kind, params)
	if err != nil {
		return fmt.Errorf("call %s: %w", args[0], err)
	}

	return printValue(cmd.OutOrStdout(), result)
}
