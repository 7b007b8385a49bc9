package main

import (
	"fmt"
	"os"
	"time"

	"github.com/de-tools/failure-analyst/pkg/server"
	"github.com/de-tools/failure-analyst/pkg/services/analysis"
	"github.com/de-tools/failure-analyst/pkg/services/config"
	"github.com/de-tools/failure-analyst/pkg/services/llm"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "web",
		Short: "Start the Explain My Failure web server",
		RunE:  runServer,
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func runServer(cmd *cobra.Command, _ []string) error {
	// The .env file is optional; environment variables win either way.
	_ = godotenv.Load()

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
	ctx := logger.WithContext(cmd.Context())

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	var analyzer *analysis.Analyzer
	if cfg.DemoMode() {
		logger.Warn().Msg("no API key configured, running in demo mode")
		analyzer = analysis.NewDemoAnalyzer()
	} else {
		client, err := llm.NewClient(ctx, cfg)
		if err != nil {
			return fmt.Errorf("failed to create llm client: %w", err)
		}
		logger.Info().
			Str("provider", cfg.Provider).
			Str("model", client.Model()).
			Msg("llm provider configured")
		analyzer = analysis.NewAnalyzer(analysis.Settings{
			Client:     client,
			MaxRetries: cfg.LLMMaxRetries,
		})
	}

	api := server.NewWebAPI(logger, server.Config{
		Addr:            cfg.Addr(),
		ShutdownTimeout: 10 * time.Second,
		Dependencies: server.Dependencies{
			Analyzer: analyzer,
			Logger:   logger,
		},
	})

	return api.Start()
}
