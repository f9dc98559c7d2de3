// guide.go implements the "juris guide" and "juris llm" commands.
//
// Design: Guides are embedded in the binary via the guide package, so
// documentation is available without external files. Terminal output is
// rendered with glamour; pipes and --raw get the markdown unchanged, which
// is what an LLM loading the guide into context wants.

package core

import (
	"fmt"
	"os"
	"strings"

	"github.com/jpl-au/juris/cmd"
	"github.com/jpl-au/juris/extension"
	"github.com/jpl-au/juris/guide"
	"github.com/jpl-au/juris/internal/format"
	"github.com/jpl-au/juris/internal/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

func newGuideCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "guide [topic]",
		Short: "Show the juris usage guide",
		Long: `Outputs the juris guide for LLMs and humans.

  juris guide          # main guide
  juris guide find     # how search terms are matched
  juris guide config   # configuration keys`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			name := ""
			if len(args) > 0 {
				name = args[0]
			}
			raw, _ := c.Flags().GetBool(extension.FlagRaw)
			return showGuide(name, raw)
		},
	}
	c.Flags().Bool(extension.FlagRaw, false, "Print markdown without terminal styling")
	return c
}

func newLlmCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "llm",
		Short: "Getting started guide for LLMs",
		Long:  `Quick reference for LLMs to discover the search commands and MCP tools.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			return showGuide("llm", false)
		},
	}
}

func showGuide(name string, raw bool) error {
	content, err := guide.Get(name)
	log.Event("core:guide", "read").Detail("topic", name).Write(err)
	if err != nil {
		available, listErr := guide.List()
		if listErr != nil {
			return listErr
		}
		return cmd.PrintJSONError(fmt.Errorf("guide %q not found. Available: %s", name, strings.Join(available, ", ")))
	}

	if cmd.JSON() {
		return cmd.PrintJSON(map[string]string{"topic": name, "content": content})
	}
	if !raw && term.IsTerminal(int(os.Stdout.Fd())) {
		return format.Render(cmd.Out(), content)
	}
	fmt.Fprint(cmd.Out(), content)
	return nil
}
