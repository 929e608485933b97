// Package commands implements the command line interface of pexwrap.
package commands

import (
	"context"
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.trai.ch/pexwrap/internal/app"
	"go.trai.ch/pexwrap/internal/build"
	"go.trai.ch/pexwrap/internal/core/domain"
	"go.trai.ch/pexwrap/internal/core/ports"
)

// CLI represents the command line interface for pexwrap.
type CLI struct {
	app     *app.App
	loader  ports.ConfigLoader
	logger  ports.Logger
	rootCmd *cobra.Command
}

// New creates a new CLI instance with the given app.
func New(a *app.App, loader ports.ConfigLoader, logger ports.Logger) *CLI {
	c := &CLI{
		app:    a,
		loader: loader,
		logger: logger,
	}

	rootCmd := &cobra.Command{
		Use:   "pexwrap [flags] <output> [manifest]",
		Short: "Build a PEX archive from a manifest",
		Long: "Build a PEX archive from a tab-indented manifest read from the given file, " +
			"or from standard input when only the output path is given.",
		Args:          outputArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
		RunE:          c.run,
	}

	rootCmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return domain.NewUsageError(err)
	})

	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	flags := rootCmd.Flags()
	flags.String("entry-point", domain.DefaultEntryPoint, "Module or module:function run when the archive starts")
	flags.Bool("no-pypi", false, "Do not resolve against the package index")
	flags.Bool("not-zip-safe", false, "Mark the archive as requiring extraction before import")
	flags.String("python", domain.DefaultPython, "Interpreter binary name or path")
	flags.StringSlice("find-links", nil, "Additional directories or pages to search for distributions")
	flags.Bool("no-use-wheel", false, "Do not resolve wheel support for the interpreter")
	flags.String("pex-root", domain.DefaultPexRoot, "Root directory of the build and interpreter caches")
	flags.StringP("config", "c", domain.ConfigFileName, "Path to the configuration file")
	flags.String("index-url", domain.DefaultIndexURL, "Base URL of the package index")
	flags.String("setuptools-path", "", "Location of a setuptools distribution to use for the interpreter")
	flags.String("wheel-path", "", "Location of a wheel distribution to use for the interpreter")
	flags.StringSlice("bootstrap", nil, "Files placed in the archive bootstrap directory")
	flags.String("journal", "", "Write every build step to this file as JSON lines")
	flags.Bool("log-json", false, "Log as JSON instead of text")

	c.rootCmd = rootCmd
	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetIn sets the reader the manifest is read from when no manifest file is given.
func (c *CLI) SetIn(r io.Reader) {
	c.rootCmd.SetIn(r)
}

// SetOutput sets the destination for help and version output.
func (c *CLI) SetOutput(w io.Writer) {
	c.rootCmd.SetOut(w)
	c.rootCmd.SetErr(w)
}

func outputArgs(_ *cobra.Command, args []string) error {
	if len(args) < 1 || len(args) > 2 {
		return domain.NewUsageError(domain.ErrOutputRequired)
	}
	return nil
}

func (c *CLI) run(cmd *cobra.Command, args []string) error {
	flags := cmd.Flags()

	configPath, _ := flags.GetString("config")
	opts, err := c.loader.Load(configPath, flags.Changed("config"))
	if err != nil {
		return domain.NewUsageError(err)
	}
	applyFlags(flags, &opts)
	c.logger.SetJSON(opts.LogJSON)

	req := app.BuildRequest{
		Options: opts,
		Output:  args[0],
		Stdin:   cmd.InOrStdin(),
	}
	if len(args) == 2 {
		req.ManifestPath = args[1]
	}

	return c.app.Build(cmd.Context(), req)
}

// applyFlags overlays the flags set on the command line onto opts.
func applyFlags(flags *pflag.FlagSet, opts *domain.BuildOptions) {
	if flags.Changed("entry-point") {
		opts.EntryPoint, _ = flags.GetString("entry-point")
	}
	if flags.Changed("no-pypi") {
		noPyPI, _ := flags.GetBool("no-pypi")
		opts.PyPI = !noPyPI
	}
	if flags.Changed("not-zip-safe") {
		notZipSafe, _ := flags.GetBool("not-zip-safe")
		opts.ZipSafe = !notZipSafe
	}
	if flags.Changed("python") {
		opts.Python, _ = flags.GetString("python")
	}
	if flags.Changed("find-links") {
		opts.FindLinks, _ = flags.GetStringSlice("find-links")
	}
	if flags.Changed("no-use-wheel") {
		noWheel, _ := flags.GetBool("no-use-wheel")
		opts.UseWheel = !noWheel
	}
	if flags.Changed("pex-root") {
		opts.PexRoot, _ = flags.GetString("pex-root")
	}
	if flags.Changed("index-url") {
		opts.IndexURL, _ = flags.GetString("index-url")
	}
	if flags.Changed("setuptools-path") {
		opts.SetuptoolsPath, _ = flags.GetString("setuptools-path")
	}
	if flags.Changed("wheel-path") {
		opts.WheelPath, _ = flags.GetString("wheel-path")
	}
	if flags.Changed("bootstrap") {
		opts.BootstrapFiles, _ = flags.GetStringSlice("bootstrap")
	}
	if flags.Changed("journal") {
		opts.Journal, _ = flags.GetString("journal")
	}
	if flags.Changed("log-json") {
		opts.LogJSON, _ = flags.GetBool("log-json")
	}
}
