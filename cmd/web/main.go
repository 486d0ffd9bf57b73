package main

import (
	"fmt"
	"net"
	"os"

	"github.com/de-tools/pnl-dashboard/pkg/server"
	"github.com/de-tools/pnl-dashboard/pkg/services/config"
	"github.com/de-tools/pnl-dashboard/pkg/services/view"
	"github.com/de-tools/pnl-dashboard/pkg/store/client"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var (
	cfgPath      string
	profilesPath string
	profileName  string
)

func main() {
	var rootCmd = &cobra.Command{
		Use:   "web",
		Short: "Start the P&L dashboard web server",
		RunE:  runServer,
	}

	rootCmd.Flags().StringVarP(&cfgPath, "config", "c", "", "Path to the settings file")
	rootCmd.Flags().StringVar(&profilesPath, "profiles", config.DefaultProfilesPath(), "Path to the endpoint profiles file")
	rootCmd.Flags().StringVarP(&profileName, "profile", "p", "", "Endpoint profile to use")

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func runServer(cmd *cobra.Command, _ []string) error {
	if err := godotenv.Load(); err != nil {
		fmt.Printf("Error loading .env file: %v\n", err)
	}

	settings, err := config.LoadSettings(cfgPath)
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}

	level, err := zerolog.ParseLevel(settings.Log.Level)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", settings.Log.Level, err)
	}
	logger := zerolog.New(os.Stdout).Level(level).With().Timestamp().Logger()
	ctx := logger.WithContext(cmd.Context())

	if profileName != "" {
		registry, err := config.NewRegistry(profilesPath)
		if err != nil {
			return fmt.Errorf("failed to create profile registry: %w", err)
		}
		profile, err := registry.GetProfile(ctx, profileName)
		if err != nil {
			return err
		}
		settings.ApplyProfile(profile)
		logger.Info().Msgf("Profile `%s` loaded from `%s`", profile.Name, profilesPath)
	}

	reportClient, err := client.NewReportClient(client.Settings{
		URL:         settings.Endpoint.URL,
		ResultsPath: settings.Endpoint.ResultsPath,
		Timeout:     settings.Fetch.Timeout,
	})
	if err != nil {
		return fmt.Errorf("failed to create report client: %w", err)
	}
	logger.Info().Msgf("Reading records from `%s` at `%s`", settings.Endpoint.URL, settings.Endpoint.ResultsPath)

	// SERVER_HOST and SERVER_PORT from .env take precedence over the settings file
	host := settings.Server.Host
	if v := os.Getenv("SERVER_HOST"); v != "" {
		host = v
	}
	port := settings.Server.Port
	if v := os.Getenv("SERVER_PORT"); v != "" {
		port = v
	}

	webAPI := server.NewWebAPI(server.Config{
		Addr: net.JoinHostPort(host, port),
		Dependencies: server.Dependencies{
			View:   view.NewController(reportClient),
			Logger: logger,
		},
	})

	return webAPI.Start(ctx)
}
