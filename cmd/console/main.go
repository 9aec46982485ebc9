package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"magiccall-admin/internal/audit"
	"magiccall-admin/internal/config"
	"magiccall-admin/internal/console"
	"magiccall-admin/internal/ratelimit"
	"magiccall-admin/internal/session"
	"magiccall-admin/internal/upstream"
	"magiccall-admin/pkg/logger"
	"magiccall-admin/pkg/utils"

	"github.com/gin-gonic/gin"
	_ "github.com/jackc/pgx/v5/stdlib"
)

func main() {
	// Root context that cancels on shutdown
	rootCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("config load failed", "err", err)
		os.Exit(1)
	}

	log := logger.New(cfg.App.Env)
	slog.SetDefault(log)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	rdb, err := utils.OpenRedis(rootCtx, utils.RedisConfig{Addr: cfg.RedisAddr()})
	if err != nil {
		log.Error("redis init failed", "err", err)
		os.Exit(1)
	}
	defer rdb.Close()

	// Audit trail falls back to an in-process buffer when no database is
	// configured (local development).
	var auditRepo audit.Repository = audit.NewMemoryRepo()
	if cfg.HasAuditDB() {
		db, err := utils.OpenPostgres(rootCtx, "pgx", cfg.PostgresDSN(), utils.PostgresPoolConfig{})
		if err != nil {
			log.Error("postgres init failed", "err", err)
			os.Exit(1)
		}
		defer db.Close()
		auditRepo = audit.NewPostgresRepo(db)
	} else {
		log.Warn("audit database not configured, using in-memory audit trail")
	}

	guard := session.Guard{
		Store:  session.NewRedisStore(rdb),
		Cookie: session.CookieOptions{Name: cfg.Session.CookieName, Secure: cfg.Session.CookieSecure},
	}

	h := console.NewHandlers(
		upstream.NewClient(cfg.Upstream.BaseURL, cfg.Upstream.Timeout),
		guard,
		audit.NewService(auditRepo),
		ratelimit.NewLoginLimiter(rdb, cfg.Login.AttemptLimit, cfg.Login.AttemptWindow),
		cfg.Session.TTL,
	)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(logger.Middleware(log))

	registerRoutes(r, h, guard)

	srv := &http.Server{
		Addr:              cfg.HTTPAddr(),
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Info("console listening", "addr", srv.Addr, "env", cfg.App.Env, "upstream", cfg.Upstream.BaseURL)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("http server failed", "err", err)
			stop()
		}
	}()

	<-rootCtx.Done()
	log.Info("shutdown initiated")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 20*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("http shutdown failed", "err", err)
	}
}
