package terminal

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/de-tools/pnl-dashboard/pkg/runtime/terminal/commands"
	"github.com/de-tools/pnl-dashboard/pkg/runtime/terminal/export"
	"github.com/de-tools/pnl-dashboard/pkg/services/config"
	"github.com/de-tools/pnl-dashboard/pkg/services/view"
	"github.com/de-tools/pnl-dashboard/pkg/store/client"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// CLI represents the command-line interface
type CLI struct {
	output    io.Writer
	logOutput io.Writer
	factory   commands.ControllerFactory
	rootCmd   *cobra.Command

	configPath   string
	profilesPath string
	profile      string
	endpoint     string
	settings     *config.Settings
}

// Options contain configuration for the CLI
type Options struct {
	Output    io.Writer
	LogOutput io.Writer
	// Factory replaces the settings based view controller construction
	Factory commands.ControllerFactory
}

// NewCLI creates a new CLI instance
func NewCLI(opts Options) *CLI {
	if opts.Output == nil {
		opts.Output = os.Stdout
	}
	if opts.LogOutput == nil {
		opts.LogOutput = os.Stderr
	}

	cli := &CLI{
		output:    opts.Output,
		logOutput: opts.LogOutput,
		factory:   opts.Factory,
	}
	if cli.factory == nil {
		cli.factory = cli.newController
	}

	cli.rootCmd = cli.newRootCmd()
	return cli
}

func (cli *CLI) Execute(ctx context.Context) error {
	return cli.rootCmd.ExecuteContext(ctx)
}

func (cli *CLI) newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:               "pnl",
		Short:             "Profit and loss report for daily revenue, COGS and ad spend",
		SilenceUsage:      true,
		PersistentPreRunE: cli.setup,
	}
	cmd.SetOut(cli.output)

	flags := cmd.PersistentFlags()
	flags.StringVarP(&cli.configPath, "config", "c", "", "Path to the settings file")
	flags.StringVar(&cli.profilesPath, "profiles", config.DefaultProfilesPath(), "Path to the endpoint profiles file")
	flags.StringVarP(&cli.profile, "profile", "p", "", "Endpoint profile to use")
	flags.StringVar(&cli.endpoint, "endpoint", "", "Report endpoint URL, overrides settings and profile")

	reporters := map[string]commands.Reporter{
		"table":   export.NewReporter(cli.output),
		"summary": NewReporter(cli.output),
	}
	cmd.AddCommand(commands.NewReportCmd(cli.factory, reporters))
	cmd.AddCommand(commands.NewChartCmd(cli.factory))
	cmd.AddCommand(commands.NewProfilesCmd(&cli.profilesPath))

	return cmd
}

// setup loads settings and attaches the configured logger to the command context.
func (cli *CLI) setup(cmd *cobra.Command, _ []string) error {
	settings, err := config.LoadSettings(cli.configPath)
	if err != nil {
		return err
	}

	if cli.profile != "" {
		registry, err := config.NewRegistry(cli.profilesPath)
		if err != nil {
			return fmt.Errorf("failed to load profiles from %s: %w", cli.profilesPath, err)
		}
		profile, err := registry.GetProfile(cmd.Context(), cli.profile)
		if err != nil {
			return err
		}
		settings.ApplyProfile(profile)
	}
	if cli.endpoint != "" {
		settings.Endpoint.URL = cli.endpoint
	}
	cli.settings = settings

	level, err := zerolog.ParseLevel(settings.Log.Level)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", settings.Log.Level, err)
	}
	logger := zerolog.New(zerolog.ConsoleWriter{Out: cli.logOutput}).
		Level(level).
		With().
		Timestamp().
		Logger()
	cmd.SetContext(logger.WithContext(cmd.Context()))

	return nil
}

func (cli *CLI) newController(_ context.Context) (view.Controller, error) {
	if cli.settings == nil {
		return nil, fmt.Errorf("settings are not loaded")
	}

	reportClient, err := client.NewReportClient(client.Settings{
		URL:         cli.settings.Endpoint.URL,
		ResultsPath: cli.settings.Endpoint.ResultsPath,
		Timeout:     cli.settings.Fetch.Timeout,
	})
	if err != nil {
		return nil, err
	}
	return view.NewController(reportClient), nil
}

