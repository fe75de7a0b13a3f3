package devserver

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/pressly/goose/v3"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/logger"

	"github.com/dev-kelz/Event-Management-System/internal/config"
	"github.com/dev-kelz/Event-Management-System/internal/devserver/auth"
	"github.com/dev-kelz/Event-Management-System/internal/devserver/handler"
	"github.com/dev-kelz/Event-Management-System/internal/devserver/store"
	"github.com/dev-kelz/Event-Management-System/internal/devserver/store/postgres"
	"github.com/dev-kelz/Event-Management-System/internal/middleware"

	_ "github.com/lib/pq"
)

const migrationsDir = "migrations"

type Server struct {
	cfg        *config.Config
	log        logger.Logger
	db         *dbpg.DB
	httpServer *http.Server
}

func New(cfg *config.Config) (*Server, error) {
	srv := &Server{cfg: cfg}

	log, err := logger.InitLogger(
		cfg.Logger.LogEngine(),
		"eventms-devserver",
		cfg.Logger.Env,
		logger.WithLevel(cfg.Logger.LogLevel()),
	)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}
	srv.log = log

	st, err := srv.initStore()
	if err != nil {
		return nil, fmt.Errorf("init store: %w", err)
	}

	tokens := auth.NewTokenIssuer(cfg.DevServer.JWTSecret, cfg.DevServer.TokenTTL)
	h := handler.New(st, tokens, log)

	r := InitRouter(
		cfg.DevServer.GinMode,
		h,
		cors.Default(),
		middleware.RequestID(),
		middleware.RequestLogger(log),
		middleware.Recovery(log),
	)

	srv.httpServer = &http.Server{
		Addr:         cfg.DevServer.Addr,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return srv, nil
}

// initStore picks Postgres when configured and falls back to the in-memory
// store, which is the default for local development.
func (s *Server) initStore() (store.Store, error) {
	if !s.cfg.DevServer.Postgres.Enabled {
		s.log.Info("using in-memory store")
		return store.NewMemory(), nil
	}

	if err := s.runMigrations(); err != nil {
		return nil, fmt.Errorf("migrations: %w", err)
	}

	db, err := dbpg.New(
		s.cfg.DevServer.Postgres.DSN(),
		nil,
		&dbpg.Options{
			MaxOpenConns: s.cfg.DevServer.Postgres.MaxOpenConns,
			MaxIdleConns: s.cfg.DevServer.Postgres.MaxIdleConns,
		},
	)
	if err != nil {
		return nil, fmt.Errorf("connecting to database: %w", err)
	}

	if err := db.Master.PingContext(context.Background()); err != nil {
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	s.db = db
	s.log.LogAttrs(context.Background(), logger.InfoLevel, "database connected",
		logger.String("host", s.cfg.DevServer.Postgres.Host),
		logger.Int("port", s.cfg.DevServer.Postgres.Port),
		logger.String("database", s.cfg.DevServer.Postgres.Database),
	)

	return postgres.New(db), nil
}

func (s *Server) runMigrations() error {
	db, err := sql.Open("postgres", s.cfg.DevServer.Postgres.DSN())
	if err != nil {
		return fmt.Errorf("open db for migrations: %w", err)
	}
	defer db.Close()

	if err := goose.Up(db, migrationsDir); err != nil {
		return fmt.Errorf("goose up: %w", err)
	}

	s.log.Info("migrations applied successfully")
	return nil
}

func (s *Server) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		s.log.LogAttrs(ctx, logger.InfoLevel, "HTTP server starting",
			logger.String("addr", s.httpServer.Addr),
		)
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- fmt.Errorf("http server: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		s.log.LogAttrs(context.Background(), logger.InfoLevel, "shutdown signal received")
	case err := <-errCh:
		return err
	}

	return s.shutdown()
}

func (s *Server) shutdown() error {
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http server shutdown: %w", err)
	}
	s.log.LogAttrs(context.Background(), logger.InfoLevel, "HTTP server stopped")

	if s.db != nil {
		if err := s.db.Master.Close(); err != nil {
			return fmt.Errorf("close db: %w", err)
		}
		s.log.LogAttrs(context.Background(), logger.InfoLevel, "database connection closed")
	}

	return nil
}
