package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"poadmin/audit"
	"poadmin/db"
	"poadmin/db/mongo"
	"poadmin/db/postgres"
	"poadmin/handlers"
	"poadmin/repository"
	"poadmin/routes"
	"poadmin/utils"
)

var skipMigrations bool

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return serve()
	},
}

func init() {
	serveCmd.Flags().BoolVar(&skipMigrations, "skip-migrations", false, "Do not apply migrations on startup")
	rootCmd.AddCommand(serveCmd)
}

func serve() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pg := postgres.NewPostgresDB(cfg.PostgresURL, cfg.MaxOpenConns, cfg.MaxIdleConns)
	if err := pg.Connect(ctx); err != nil {
		return err
	}
	defer pg.Disconnect(context.Background())
	slog.Info("connected to postgres")

	if !skipMigrations {
		if err := db.MigrateUp(pg.Conn); err != nil {
			return err
		}
	}

	var recorder audit.Recorder = audit.Nop{}
	if cfg.AuditMongoURL != "" {
		mg := mongo.NewMongoDB(cfg.AuditMongoURL, cfg.AuditMongoDB)
		if err := mg.Connect(ctx); err != nil {
			slog.Warn("audit log disabled, mongo unreachable", "error", err)
		} else {
			defer mg.Disconnect(context.Background())
			recorder = audit.NewMongoRecorder(mg.Collection("audit_logs"))
		}
	}

	var objects handlers.ObjectStore
	if cfg.R2.Enabled() {
		store, err := utils.NewObjectStore(ctx, cfg.R2)
		if err != nil {
			slog.Warn("file mirror disabled", "error", err)
		} else {
			objects = store
		}
	}

	headerRepo := repository.NewPostgresHeaderRepo(pg.Conn)
	itemRepo := repository.NewPostgresItemRepo(pg.Conn)
	costRepo := repository.NewPostgresCostRepo(pg.Conn)
	conversationRepo := repository.NewPostgresConversationRepo(pg.Conn)
	attachmentRepo := repository.NewPostgresAttachmentRepo(pg.Conn)

	resp := handlers.Responder{Logger: slog.Default(), Production: cfg.Production()}
	router := routes.NewRouter(routes.Handlers{
		Headers:       handlers.NewHeaderHandler(headerRepo, recorder, resp),
		Items:         handlers.NewItemHandler(itemRepo, recorder, resp),
		Costs:         handlers.NewCostHandler(costRepo, recorder, resp),
		Conversations: handlers.NewConversationHandler(conversationRepo, recorder, resp),
		Attachments:   handlers.NewAttachmentHandler(attachmentRepo, recorder, resp, objects, cfg.MaxUploadMB<<20),
		PDF: &handlers.PDFHandler{
			Responder: resp,
			Repo:      repository.NewPDFRepository(headerRepo, itemRepo, costRepo),
			Generator: &utils.PDFGenerator{Timeout: cfg.ChromePDFTimeout},
			Objects:   objects,
		},
		Health: &handlers.HealthHandler{DB: pg, Version: version},
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           routes.Wrap(router, cfg.CORSOrigins),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("server running", "port", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	slog.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
