// Command translate translates text from the command line using the same
// lexicon and pipeline as the server.
//
// Usage:
//
//	translate namaskar
//	translate --text="apa jal"
//	translate < input.txt
//	translate --debug --lexicon=./data/lexicon.csv < input.txt
//
// Without text arguments every stdin line is translated independently. With
// --debug each result is printed as one JSON object per line, including the
// matched phrases.
package main

import (
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

type flags struct {
	text       string
	debug      bool
	lexicon    string
	configPath string
}

func newRootCommand() *cobra.Command {
	f := &flags{}

	cmd := &cobra.Command{
		Use:   "translate [text...]",
		Short: "Rule-based phrase translation",
		Long: `translate replaces known words and phrases with their lexicon
translations using greedy longest-match segmentation.

Examples:
  translate namaskar                  # translate the arguments
  translate --text "apa jal"          # same, via flag
  translate < input.txt               # translate stdin line by line
  translate --debug < input.txt       # JSON output with matches`,
		Args:         cobra.ArbitraryArgs,
		SilenceUsage: true,
		Version:      version(),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, f, args)
		},
	}

	cmd.Flags().StringVarP(&f.text, "text", "t", "", "text to translate; stdin is read when empty")
	cmd.Flags().BoolVarP(&f.debug, "debug", "d", false, "print JSON with the matched phrases")
	cmd.Flags().StringVarP(&f.lexicon, "lexicon", "l", "", "lexicon file; overrides lexicon.path from config")
	cmd.Flags().StringVarP(&f.configPath, "config", "c", "", "config file (default is $CONFIG_PATH or ./config.yaml)")

	return cmd
}
