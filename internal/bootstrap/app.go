// Package bootstrap assembles the application from configuration: database,
// object store, AI client, audit log and the HTTP router.
package bootstrap

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/reventhtv/careerscope-AI/internal/admin"
	"github.com/reventhtv/careerscope-AI/internal/ai"
	"github.com/reventhtv/careerscope-AI/internal/analyses"
	"github.com/reventhtv/careerscope-AI/internal/auditlog"
	"github.com/reventhtv/careerscope-AI/internal/courses"
	"github.com/reventhtv/careerscope-AI/internal/feedback"
	"github.com/reventhtv/careerscope-AI/internal/shared/config"
	"github.com/reventhtv/careerscope-AI/internal/shared/server"
	"github.com/reventhtv/careerscope-AI/internal/shared/storage/db"
	"github.com/reventhtv/careerscope-AI/internal/shared/storage/object"
	localstore "github.com/reventhtv/careerscope-AI/internal/shared/storage/object/local"
	s3store "github.com/reventhtv/careerscope-AI/internal/shared/storage/object/s3"
)

// App holds shared dependencies for one running process.
type App struct {
	Config config.Config
	Router *gin.Engine
	DB     *sql.DB
	Store  object.ObjectStore
	Audit  *auditlog.Logger
	AI     ai.Client

	AnalysesService *analyses.Service
	FeedbackService *feedback.Service
}

// NewApp builds the application. In dev-like environments missing
// infrastructure degrades to in-memory or placeholder implementations; in
// production it is an error.
func NewApp(cfg config.Config) (*App, error) {
	ctx := context.Background()

	sqlDB, err := buildDB(ctx, cfg)
	if err != nil {
		return nil, err
	}

	store, err := buildStore(ctx, cfg)
	if err != nil {
		return nil, err
	}

	audit, err := auditlog.New(cfg.LogDir)
	if err != nil {
		return nil, fmt.Errorf("bootstrap: audit log: %w", err)
	}

	aiClient := buildAI(ctx, cfg)

	var analysisRepo analyses.Repo
	var feedbackRepo feedback.Repo
	if sqlDB != nil {
		analysisRepo = &analyses.PGRepo{DB: sqlDB}
		feedbackRepo = &feedback.PGRepo{DB: sqlDB}
	} else {
		analysisRepo = analyses.NewMemoryRepo()
		feedbackRepo = feedback.NewMemoryRepo()
	}

	analysisSvc := &analyses.Service{
		Store: store,
		Repo:  analysisRepo,
		Audit: audit,
		AI:    aiClient,
		Cache: ai.NewCache(cfg.AICacheMax, cfg.AICacheTTL),
	}
	feedbackSvc := &feedback.Service{Repo: feedbackRepo, Audit: audit}

	app := &App{
		Config:          cfg,
		DB:              sqlDB,
		Store:           store,
		Audit:           audit,
		AI:              aiClient,
		AnalysesService: analysisSvc,
		FeedbackService: feedbackSvc,
	}

	app.Router = server.NewRouter(server.RouterDeps{
		Config:          cfg,
		AnalysisHandler: analyses.NewHandler(analysisSvc),
		FeedbackHandler: feedback.NewHandler(feedbackSvc),
		CourseHandler:   courses.NewHandler(),
		AdminHandler:    admin.NewHandler(cfg.AdminUser, cfg.AdminPassword, audit),
	})

	return app, nil
}

func buildDB(ctx context.Context, cfg config.Config) (*sql.DB, error) {
	if strings.TrimSpace(cfg.DatabaseURL) == "" {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: DATABASE_URL empty; using in-memory repositories")
			return nil, nil
		}
		return nil, fmt.Errorf("DATABASE_URL is required")
	}

	opts := db.OptionsFromEnv(db.DefaultServerOptions())
	sqlDB, err := db.Connect(ctx, cfg.DatabaseURL, opts)
	if err != nil {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: database connect failed; using in-memory repositories: %v", err)
			return nil, nil
		}
		return nil, err
	}

	if err := db.RunMigrations(ctx, sqlDB); err != nil {
		sqlDB.Close()
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: migrations failed; using in-memory repositories: %v", err)
			return nil, nil
		}
		return nil, fmt.Errorf("bootstrap: migrations: %w", err)
	}

	return sqlDB, nil
}

func buildStore(ctx context.Context, cfg config.Config) (object.ObjectStore, error) {
	switch cfg.ObjectStoreType {
	case "s3":
		if strings.TrimSpace(cfg.AWSRegion) == "" || strings.TrimSpace(cfg.S3Bucket) == "" {
			return nil, fmt.Errorf("OBJECT_STORE=s3 requires AWS_REGION and S3_BUCKET")
		}
		return s3store.New(ctx, cfg.AWSRegion, cfg.S3Bucket, cfg.S3Prefix, cfg.SSEKMSKeyID)
	default:
		return localstore.New(cfg.LocalStoreDir), nil
	}
}

func buildAI(ctx context.Context, cfg config.Config) ai.Client {
	if strings.TrimSpace(cfg.AIAPIKey) == "" {
		log.Printf("bootstrap: AI_API_KEY empty; AI suggestions disabled")
		return ai.Placeholder{}
	}
	client, err := ai.NewGemini(ctx, cfg.AIAPIKey, cfg.AIModel)
	if err != nil {
		log.Printf("bootstrap: gemini client init failed; AI suggestions disabled: %v", err)
		return ai.Placeholder{}
	}
	return client
}

func isDevLike(env string) bool {
	switch strings.ToLower(strings.TrimSpace(env)) {
	case "dev", "local":
		return true
	default:
		return false
	}
}
