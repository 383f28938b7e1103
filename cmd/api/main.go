package main

import (
	"log"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	httpadp "wepresto-backend/internal/adapter/http"
	"wepresto-backend/internal/adapter/middleware"
	"wepresto-backend/internal/adapter/repository/mysql"
	"wepresto-backend/internal/config"
	"wepresto-backend/internal/infrastructure/cache"
	"wepresto-backend/internal/infrastructure/db"
	"wepresto-backend/internal/observability"
	loanUC "wepresto-backend/internal/usecase/loan"
	"wepresto-backend/internal/usecase/obligation"
)

func main() {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	logger, err := observability.NewLogger(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		log.Fatal(err)
	}
	defer func() { _ = logger.Sync() }()

	gdb, err := db.OpenGorm(cfg.MySQLDSN())
	if err != nil {
		logger.Fatal("mysql connect failed", zap.Error(err))
	}
	logger.Info("mysql connected", zap.String("db", cfg.MySQLDB))

	rdb, err := cache.OpenRedis(cfg.RedisAddr, cfg.RedisDB)
	if err != nil {
		logger.Fatal("redis connect failed", zap.Error(err))
	}
	logger.Info("redis connected", zap.String("addr", cfg.RedisAddr))

	loanRepo := mysql.NewLoanRepository(gdb)
	movementRepo := mysql.NewMovementRepository(gdb)

	obligations := obligation.NewUsecase(loanRepo, movementRepo, logger)
	loans := loanUC.NewUsecase(loanRepo, logger)

	h := httpadp.NewHandler()
	lh := httpadp.NewLoanHandler(obligations, loans)

	e := echo.New()
	e.HideBanner = true
	e.Validator = httpadp.NewValidator()
	e.Use(echomw.Logger(), echomw.Recover())

	quoteTTL := time.Duration(cfg.QuoteCacheTTLSecs) * time.Second
	quoteCache := middleware.QuoteCache(rdb, quoteTTL, logger)

	// routes
	e.GET("/health", h.Health)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	e.GET("/loans/minimum-payment", lh.MinimumPayment, quoteCache)
	e.GET("/loans/total-payment", lh.TotalPayment, quoteCache)
	e.GET("/loans/needing-funding", lh.NeedingFunding)
	e.GET("/loans/terms", lh.GetLoanTerms)
	e.GET("/loans/:uid", lh.GetLoan)

	addr := ":" + cfg.AppPort
	logger.Info("listening", zap.String("addr", addr))
	if err := e.Start(addr); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}
