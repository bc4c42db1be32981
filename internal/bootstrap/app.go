package bootstrap

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"

	"resume-scorer/internal/analyses"
	"resume-scorer/internal/catalog"
	"resume-scorer/internal/profile"
	"resume-scorer/internal/samples"
	"resume-scorer/internal/scoring"
	"resume-scorer/internal/services/health"
	"resume-scorer/internal/shared/config"
	"resume-scorer/internal/shared/server"
	"resume-scorer/internal/shared/storage/db"
	"resume-scorer/internal/shared/storage/object"
	localstore "resume-scorer/internal/shared/storage/object/local"
	s3store "resume-scorer/internal/shared/storage/object/s3"
	"resume-scorer/internal/shared/telemetry"
)

// App holds shared dependencies.
type App struct {
	Config          config.Config
	Router          *gin.Engine
	DB              *sql.DB
	Table           scoring.Table
	SamplesStore    object.ObjectStore
	AnalysesService *analyses.Service
	SamplesService  *samples.Service
	Health          *health.Service
}

// Build prepares dependencies and wires routes. A database that cannot be
// reached is logged and the built-in skill table is used instead.
func Build(ctx context.Context, cfg config.Config) (*App, error) {
	if strings.TrimSpace(cfg.Env) == "" {
		cfg.Env = "dev"
	}

	sqlDB := buildDB(ctx, cfg)
	table := catalog.LoadOrDefault(ctx, catalog.Open(sqlDB))

	store, err := buildStore(ctx, cfg)
	if err != nil {
		return nil, err
	}
	sampleSvc := samples.NewService(store)

	var recognizer scoring.EntityRecognizer
	if cfg.EntityRecognizer {
		recognizer = scoring.TermRecognizer{}
	}
	analysisSvc, err := analyses.NewService(table, analyses.Options{
		DefaultPreset: cfg.ScoringPreset,
		Recognizer:    recognizer,
		Samples:       sampleSvc,
	})
	if err != nil {
		return nil, fmt.Errorf("build analyses service: %w", err)
	}

	app := &App{
		Config:          cfg,
		DB:              sqlDB,
		Table:           table,
		SamplesStore:    store,
		AnalysesService: analysisSvc,
		SamplesService:  sampleSvc,
		Health:          health.NewService(sqlDB, table),
	}

	var fetcher profile.Fetcher
	if cfg.LinkedInAPIBase != "" {
		fetcher = profile.NewLinkedInClient(cfg.LinkedInAPIBase)
	}

	app.Router = server.NewRouter(server.RouterDeps{
		Config:          cfg,
		Health:          app.Health,
		AnalysisHandler: analyses.NewHandler(analysisSvc, cfg.MaxUploadBytes),
		SampleHandler:   samples.NewHandler(sampleSvc),
		ProfileHandler:  profile.NewHandler(fetcher),
	})

	telemetry.Info("bootstrap.ready", map[string]any{
		"env":           cfg.Env,
		"preset":        cfg.ScoringPreset,
		"samples_store": cfg.SamplesStore,
		"database":      sqlDB != nil,
		"skills":        table.Len(),
	})
	return app, nil
}

// Close releases the database pool.
func (a *App) Close() error {
	if a.DB == nil {
		return nil
	}
	return a.DB.Close()
}

func buildDB(ctx context.Context, cfg config.Config) *sql.DB {
	if strings.TrimSpace(cfg.DatabaseURL) == "" {
		telemetry.Info("bootstrap.database_disabled", map[string]any{"reason": "DATABASE_URL empty"})
		return nil
	}

	sqlDB, err := db.Connect(ctx, cfg.DatabaseURL, db.OptionsFromEnv(db.DefaultServerOptions()))
	if err != nil {
		telemetry.Warn("bootstrap.database_connect_failed", map[string]any{"error": err.Error()})
		return nil
	}
	if cfg.RunMigrations {
		if err := db.RunMigrations(ctx, sqlDB); err != nil {
			telemetry.Warn("bootstrap.migrations_failed", map[string]any{"error": err.Error()})
			_ = sqlDB.Close()
			return nil
		}
	}
	return sqlDB
}

func buildStore(ctx context.Context, cfg config.Config) (object.ObjectStore, error) {
	switch cfg.SamplesStore {
	case "s3":
		store, err := s3store.New(ctx, cfg.AWSRegion, cfg.S3Bucket, cfg.S3Prefix)
		if err != nil {
			return nil, fmt.Errorf("build s3 samples store: %w", err)
		}
		return store, nil
	default:
		return localstore.New(cfg.SamplesDir), nil
	}
}
