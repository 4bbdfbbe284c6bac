// Package send implements the demo command that writes a line through the
// logging facade.
package send

import (
	"strings"

	"alshakib/logcompat/cmd/root"
	"alshakib/logcompat/internal/facade"
	"alshakib/logcompat/internal/models"

	"github.com/spf13/cobra"
)

var (
	severity    string
	asJSON      bool
	explicitTag string
	noTag       bool
	sample      bool
)

// Cmd represents the send command
var Cmd = &cobra.Command{
	Use:   "send [text...]",
	Short: "Send a log line through the facade",
	Long: `Send a log line through the facade.

The text is logged as an object payload at info level. Unless told
otherwise the tag is the name of the command's handler type, the way a
screen would tag its own log lines.

Example:
  logcompat send --json '{"id":1,"title":"So What"}'
  logcompat send --sample --json --severity debug`,
	RunE: sendFunc,
}

func init() {
	Cmd.Flags().StringVarP(&severity, "severity", "s", "info", "Severity (verbose, debug, info, warning, error)")
	Cmd.Flags().BoolVarP(&asJSON, "json", "j", false, "Pretty-print the payload as a JSON object")
	Cmd.Flags().StringVar(&explicitTag, "explicit-tag", "", "Tag the line with this string")
	Cmd.Flags().BoolVar(&noTag, "no-tag", false, "Omit the tag so the default tag applies")
	Cmd.Flags().BoolVar(&sample, "sample", false, "Log a sample track instead of the text")
}

// handler is the tag source for lines sent by this command.
type handler struct{}

func sendFunc(cmd *cobra.Command, args []string) error {
	sev, err := facade.ParseSeverity(severity)
	if err != nil {
		return err
	}

	var entry facade.Entry
	switch {
	case sample:
		entry = facade.Object(models.SampleTrack())
	case len(args) > 0:
		entry = facade.Object(strings.Join(args, " "))
	default:
		entry = facade.Object(nil)
	}

	switch {
	case noTag:
	case explicitTag != "":
		entry = entry.WithTag(explicitTag)
	default:
		entry = entry.WithTag(&handler{})
	}

	if asJSON {
		entry = entry.AsJSON()
	}

	root.App.GetFacade().Log(sev, entry)
	return nil
}
