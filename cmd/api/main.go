package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	appai "github.com/plainweb/plainaudit/internal/application/ai"
	appaudits "github.com/plainweb/plainaudit/internal/application/audits"
	"github.com/plainweb/plainaudit/internal/config"
	domain "github.com/plainweb/plainaudit/internal/domain/audits"
	openaicli "github.com/plainweb/plainaudit/internal/infra/ai/openai"
	mysqlp "github.com/plainweb/plainaudit/internal/infra/db/mysql"
	postgresp "github.com/plainweb/plainaudit/internal/infra/db/postgres"
	"github.com/plainweb/plainaudit/internal/infra/executor/lighthouse"
	"github.com/plainweb/plainaudit/internal/infra/httpserver"
	minioStore "github.com/plainweb/plainaudit/internal/infra/storage"
	"github.com/plainweb/plainaudit/internal/middleware"
)

func main() {
	// path config.yaml
	path := "config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		path = v
	}

	// load config
	cfg, err := config.Load(path)
	if err != nil {
		log.Fatalf("config load error: %v", err)
	}

	ctx := context.Background()

	// connect database (mysql or postgres per config)
	var db *sql.DB
	var repo domain.Repository
	switch cfg.Database.Driver {
	case "", "mysql":
		db, err = mysqlp.Connect(ctx, cfg.MySQLDSN())
		if err != nil {
			log.Fatalf("mysql connect error: %v", err)
		}
		repo = mysqlp.NewReportRepository(db)
	case "postgres":
		db, err = postgresp.Connect(ctx, cfg.PostgresDSN())
		if err != nil {
			log.Fatalf("postgres connect error: %v", err)
		}
		repo = postgresp.NewReportRepository(db)
	default:
		log.Fatalf("unsupported database driver: %s", cfg.Database.Driver)
	}
	defer db.Close()

	// init minio
	store, err := minioStore.New(ctx,
		cfg.Minio.Endpoint,
		cfg.Minio.Region,
		cfg.Minio.BucketName,
		cfg.Minio.AccessKey,
		cfg.Minio.SecretKey,
		cfg.Minio.UseSSL,
	)
	if err != nil {
		log.Fatalf("minio init error: %v", err)
	}

	// init runner
	runner := lighthouse.NewRunner(cfg.Audit.RunnerImage)

	// init text generation (optional: summaries degrade to fallbacks without it)
	var texter *appai.Service
	if cfg.OpenAI.APIKey != "" {
		texter = appai.NewService(openaicli.NewClient(cfg.OpenAI.APIKey, cfg.OpenAI.Model))
	} else {
		log.Println("openai api key not set, prose summaries will use fallbacks")
		texter = appai.NewService(nil)
	}

	// init service
	svc := &appaudits.Service{
		Repo:      repo,
		Runner:    runner,
		Artifacts: store,
		Texter:    texter,
		Clock:     appaudits.SystemClock{},
		CacheTTL:  time.Duration(middleware.ValidateDays(cfg.Audit.CacheTTLDays)) * 24 * time.Hour,
	}

	// init router
	mux := chi.NewRouter()
	origins := cfg.Audit.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	mux.Use(cors.Handler(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
	}))
	mux.Use(middleware.LoggingMiddleware)
	mux.Use(middleware.MetricsMiddleware)
	mux.Use(middleware.RateLimitMiddleware(30, 1))
	if len(cfg.Audit.APIKeys) > 0 {
		mux.Use(middleware.APIKeyAuth(cfg.Audit.APIKeys))
	}
	mux.Get("/ready", middleware.ReadinessHandler)
	mux.Get("/live", middleware.LivenessHandler)
	mux.Get("/health/deep", middleware.HealthHandler(map[string]middleware.HealthChecker{
		"database": &middleware.DatabaseHealthChecker{DB: db},
	}))
	mux.Get("/metrics", middleware.MetricsHandler)
	mux.Mount("/", httpserver.NewRouter(svc))

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	srv := &http.Server{
		Addr:    addr,
		Handler: mux,
		// audits run synchronously inside the request
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 5 * time.Minute,
		IdleTimeout:  60 * time.Second,
	}

	// run server
	go func() {
		log.Printf("server listening on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	// graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop
	log.Println("shutting down server...")

	ctx2, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx2); err != nil {
		log.Printf("shutdown error: %v", err)
	}
}
