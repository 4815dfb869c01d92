package app

import (
	"github.com/spf13/cobra"

	"github.com/pranshuparmar/ps2gv/internal/completion"
	"github.com/pranshuparmar/ps2gv/internal/config"
	"github.com/pranshuparmar/ps2gv/internal/log"
	"github.com/pranshuparmar/ps2gv/internal/render"
)

var (
	flagConfig       string
	flagLayout       string
	flagFormat       string
	flagDOT          bool
	flagSaveSnapshot string
	flagPreview      bool
	flagNoColor      bool
	flagVerbose      bool
)

var rootCmd = &cobra.Command{
	Use:   "ps2gv [flags] [snapshot files...]",
	Short: "Draw the process tree as a Graphviz graph",
	Long: `ps2gv turns a process table into a Graphviz graph: one node per process,
one edge from each parent to its child. Nodes are coloured by command or
systemd unit and sized by CPU or memory use.

With no arguments the live process table is captured with ps and rendered to
ptree.<format>. Each snapshot file argument (saved ps output) is rendered to
<name>.<format> in the current directory.`,
	Example: `  ps2gv                          # live, writes ptree.svg
  ps2gv -T png -l twopi snap.txt # writes snap.png
  ps2gv --dot *.txt              # DOT text only, no Graphviz needed`,
	Args:              cobra.ArbitraryArgs,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRun:  setupLogging,
	RunE:              runRoot,
	ValidArgsFunction: completeFiles,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&flagConfig, "config", "c", config.DefaultPath, "style configuration file")
	pf.BoolVar(&flagNoColor, "no-color", false, "disable coloured terminal output")
	pf.BoolVarP(&flagVerbose, "verbose", "v", false, "debug logging")

	f := rootCmd.Flags()
	f.StringVarP(&flagLayout, "layout", "l", render.DefaultLayout, "graphviz layout engine")
	f.StringVarP(&flagFormat, "format", "T", render.DefaultFormat, "output image format")
	f.BoolVar(&flagDOT, "dot", false, "write the DOT description instead of rendering (.dot files)")
	f.StringVar(&flagSaveSnapshot, "save-snapshot", "", "live mode: also save the raw process table to this file")
	f.BoolVar(&flagPreview, "preview", false, "preview each graph interactively before rendering")

	_ = rootCmd.RegisterFlagCompletionFunc("layout", completeCandidates(completion.CompleteLayouts))
	_ = rootCmd.RegisterFlagCompletionFunc("format", completeCandidates(completion.CompleteFormats))

	rootCmd.AddCommand(recordsCmd)
}

// Execute runs the command line. The returned error has not been printed.
func Execute() error {
	return rootCmd.Execute()
}

func setupLogging(cmd *cobra.Command, _ []string) {
	log.SetOutput(cmd.ErrOrStderr())
	if flagVerbose {
		log.SetLevel(log.DebugLevel)
	} else {
		log.SetLevel(log.InfoLevel)
	}
}

func completeCandidates(t completion.CompleteType) func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
	return func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return completion.Candidates(t), cobra.ShellCompDirectiveNoFileComp
	}
}

func completeFiles(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
	return nil, cobra.ShellCompDirectiveDefault
}
