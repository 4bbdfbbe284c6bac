// Package pretty implements the command that pretty-prints JSON the way the
// facade does for AsJSON entries.
package pretty

import (
	"fmt"
	"io"
	"strings"

	"alshakib/logcompat/internal/facade"

	"github.com/spf13/cobra"
)

// Cmd represents the pretty command
var Cmd = &cobra.Command{
	Use:   "pretty [json]",
	Short: "Pretty-print a JSON object",
	Long: `Pretty-print a JSON object with 4-space indentation.

Reads the argument, or standard input when no argument is given.
Input that is not a single JSON object is echoed with an
"Invalid JSON object: " prefix.`,
	Args: cobra.MaximumNArgs(1),
	RunE: prettyFunc,
}

func prettyFunc(cmd *cobra.Command, args []string) error {
	var input string
	if len(args) == 1 {
		input = args[0]
	} else {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return fmt.Errorf("failed to read standard input: %w", err)
		}
		input = strings.TrimRight(string(data), "\r\n")
	}

	_, err := fmt.Fprintln(cmd.OutOrStdout(), facade.PrettyPrint(input))
	return err
}
