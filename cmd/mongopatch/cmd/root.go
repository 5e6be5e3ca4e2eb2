package cmd

import (
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/brunoga/mongopatch/internal/config"
)

// app holds the flag values of one command invocation.
type app struct {
	configFile string
	input      string
	output     string
	logLevel   string
	color      string
	strictAdd  bool
	copyValues bool
	indent     bool

	// colorMode is the resolved color setting used to report errors.
	colorMode string
}

func newApp() *app {
	return &app{colorMode: config.ColorAuto}
}

func (a *app) command() *cobra.Command {
	def := config.Default()

	root := &cobra.Command{
		Use:   "mongopatch [FILE...]",
		Short: "Translate JSON Patch documents into MongoDB update documents",
		Long: `mongopatch reads RFC 6902 JSON Patch documents (JSON or YAML) and prints the
equivalent MongoDB update document built from $set, $unset, $push and $rename.
With no FILE, or when FILE is -, the patch is read from standard input.`,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          a.runTranslate,
	}

	root.PersistentFlags().StringVar(&a.configFile, "config", "", "config file path")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", def.LogLevel, "log level (debug, info, warn, error)")
	root.PersistentFlags().StringVar(&a.color, "color", def.Color, "color error messages (auto, always, never)")

	root.Flags().StringVar(&a.input, "input", def.Input, "input format (auto, json, yaml)")
	root.Flags().StringVar(&a.output, "output", def.Output, "output format (json, relaxed, canonical)")
	root.Flags().BoolVar(&a.strictAdd, "strict-add", def.StrictAdd, "reject add operations whose path does not end in an array position")
	root.Flags().BoolVar(&a.copyValues, "copy-values", def.CopyValues, "deep copy patch values into the update")
	root.Flags().BoolVar(&a.indent, "indent", def.Indent, "indent the output")

	root.AddCommand(newFieldPathCommand())
	return root
}

// loadConfig merges the config file and environment with the flags that
// were set explicitly.
func (a *app) loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load(a.configFile)
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("input") {
		cfg.Input = a.input
	}
	if flags.Changed("output") {
		cfg.Output = a.output
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = a.logLevel
	}
	if flags.Changed("color") {
		cfg.Color = a.color
	}
	if flags.Changed("strict-add") {
		cfg.StrictAdd = a.strictAdd
	}
	if flags.Changed("copy-values") {
		cfg.CopyValues = a.copyValues
	}
	if flags.Changed("indent") {
		cfg.Indent = a.indent
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	a.colorMode = cfg.Color
	return cfg, nil
}

func (a *app) execute(args []string, in io.Reader, out, errOut io.Writer) error {
	root := a.command()
	root.SetArgs(args)
	root.SetIn(in)
	root.SetOut(out)
	root.SetErr(errOut)

	err := root.Execute()
	if err != nil {
		if a.color != "" && a.colorMode == config.ColorAuto {
			a.colorMode = a.color
		}
		reportError(errOut, err, a.colorMode)
	}
	return err
}

// Execute runs the mongopatch command with the process arguments.
func Execute() error {
	return newApp().execute(os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
}
