package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"github.com/aplusacademy/tutor-directory/backend/internal/adapters/search"
	"github.com/aplusacademy/tutor-directory/backend/internal/adapters/upstream"
	"github.com/aplusacademy/tutor-directory/backend/internal/infrastructure/clients/directoryapi"
	"github.com/aplusacademy/tutor-directory/backend/internal/infrastructure/clients/typesense"
	"github.com/aplusacademy/tutor-directory/backend/internal/infrastructure/observability"
	"github.com/aplusacademy/tutor-directory/backend/pkg/config"
)

func main() {
	var intervalFlag string
	flag.StringVar(&intervalFlag, "interval", "", "repeat interval for reindexing (e.g. 6h, 30m)")
	flag.Parse()

	_ = godotenv.Load()

	intervalValue := strings.TrimSpace(intervalFlag)
	if intervalValue == "" {
		intervalValue = strings.TrimSpace(os.Getenv("REINDEX_INTERVAL"))
	}

	var interval time.Duration
	var err error
	if intervalValue != "" {
		interval, err = time.ParseDuration(intervalValue)
		if err != nil {
			log.Fatal().Str("interval", intervalValue).Err(err).Msg("Invalid interval")
		}
		if interval <= 0 {
			log.Fatal().Msg("Interval must be greater than zero")
		}
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}
	observability.InitLogger("tutor-directory-indexer", cfg.Env)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	for {
		if err := indexOnce(ctx, cfg); err != nil {
			log.Error().Err(err).Msg("Reindex failed")
		}

		if interval <= 0 {
			break
		}

		log.Info().Dur("next_run_in", interval).Msg("Reindex complete")

		select {
		case <-ctx.Done():
			log.Info().Msg("Reindexer shutting down")
			return
		case <-time.After(interval):
		}
	}
}

func indexOnce(ctx context.Context, cfg *config.Config) error {
	typesenseClient, err := typesense.NewClient(&cfg.Typesense)
	if err != nil {
		return err
	}

	searchRepo := search.NewTypesenseAdapter(typesenseClient)
	if err := searchRepo.InitSchema(ctx); err != nil {
		return err
	}

	apiClient := directoryapi.NewClient(cfg.Upstream.BaseURL, cfg.Upstream.Timeout)
	catalog := upstream.NewTutorCatalogAdapter(apiClient)

	tutors, err := catalog.List(ctx)
	if err != nil {
		return err
	}

	if err := searchRepo.IndexBatch(ctx, tutors); err != nil {
		return err
	}

	log.Info().Int("count", len(tutors)).Msg("Indexed tutor directory")
	return nil
}
