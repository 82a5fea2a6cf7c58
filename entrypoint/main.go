package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"turkmorph.org/core/analysis"
	"turkmorph.org/core/api"
	"turkmorph.org/core/logger"
	"turkmorph.org/core/types"
	"turkmorph.org/core/utils"
)

type Config struct {
	ConfigPath  string   `envconfig:"TMC_CONFIG_PATH"`
	LexiconPath string   `envconfig:"TMC_LEXICON_PATH"`
	APIPort     string   `envconfig:"TMC_API_PORT" default:"10000"`
	CORSOrigins []string `envconfig:"TMC_API_CORS_ORIGINS" default:"*"`
}

func main() {
	logger.SetupLogging()
	tmcLogger := logger.NewLogger("Main")
	defer logger.HandlePanic(tmcLogger)

	if err := rootCmd(tmcLogger).Execute(); err != nil {
		tmcLogger.Error().Err(err).Msg("Command failed")
		os.Exit(1)
	}
}

func rootCmd(tmcLogger zerolog.Logger) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "turkmorph",
		Short:         "Turkish morphological analysis",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.AddCommand(analyzeCmd(tmcLogger), serveCmd(tmcLogger))
	return cmd
}

func analyzeCmd(tmcLogger zerolog.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "analyze [words...]",
		Short: "Print the analyses of the given words, or of stdin lines when none are given",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, cfg, err := loadSettings()
			if err != nil {
				return err
			}
			m, err := analysis.NewMorphologyFromConfig(cfg, tmcLogger)
			if err != nil {
				return err
			}

			words := args
			if len(words) == 0 {
				for line := range utils.NewLineReader(cmd.InOrStdin(), "stdin", "#") {
					words = append(words, line)
				}
			}
			results, err := m.AnalyzeAll(cmd.Context(), words)
			if err != nil {
				return err
			}
			return printAnalyses(cmd.OutOrStdout(), words, results)
		},
	}
}

func printAnalyses(w io.Writer, words []string, results [][]*analysis.SingleAnalysis) error {
	bw := bufio.NewWriter(w)
	for i, word := range words {
		fmt.Fprintln(bw, word)
		analyses := results[i]
		if len(analyses) == 0 {
			analyses = []*analysis.SingleAnalysis{analysis.UnknownAnalysis(word)}
		}
		for _, a := range analyses {
			fmt.Fprintf(bw, "\t%s\n", a.FormatLong())
		}
	}
	return bw.Flush()
}

func serveCmd(tmcLogger zerolog.Logger) *cobra.Command {
	var watch bool
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the analysis API",
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, cfg, err := loadSettings()
			if err != nil {
				return err
			}

			reloader, err := newLexiconReloader(cfg, tmcLogger)
			if err != nil {
				return err
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			if watch {
				if err := reloader.Watch(ctx); err != nil {
					return err
				}
			}

			tmcLogger.Info().Msg("Starting API service")
			apiLogger := logger.NewLogger("API")
			apiRequest := &api.Request{
				Morphology: reloader.Current,
				Logger:     &apiLogger,
			}
			server := &http.Server{
				Addr:              fmt.Sprintf(":%s", settings.APIPort),
				Handler:           api.NewHandler(apiRequest, settings.CORSOrigins),
				ReadHeaderTimeout: 10 * time.Second,
			}
			go func() {
				defer logger.HandlePanic(tmcLogger)
				<-ctx.Done()
				shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				_ = server.Shutdown(shutdownCtx)
			}()

			tmcLogger.Info().Msgf("REST API on %s", server.Addr)
			if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				return fmt.Errorf("REST API stopped with error: %w", err)
			}
			tmcLogger.Info().Msg("REST API stopped")
			return nil
		},
	}
	cmd.Flags().BoolVar(&watch, "watch", true, "reload the lexicon when its files change")
	return cmd
}

// loadSettings reads the environment and the optional YAML configuration.
func loadSettings() (Config, types.Config, error) {
	var settings Config
	if err := envconfig.Process("", &settings); err != nil {
		return settings, types.Config{}, fmt.Errorf("failed to read environment: %w", err)
	}
	cfg := types.DefaultConfig()
	if settings.ConfigPath != "" {
		loaded, err := types.LoadConfig(settings.ConfigPath)
		if err != nil {
			return settings, cfg, err
		}
		cfg = loaded
	}
	if settings.LexiconPath != "" {
		cfg.LexiconPaths = append(cfg.LexiconPaths, settings.LexiconPath)
	}
	if len(cfg.LexiconPaths) == 0 {
		return settings, cfg, fmt.Errorf("no lexicon configured: set TMC_LEXICON_PATH or lexicon_paths")
	}
	return settings, cfg, nil
}
