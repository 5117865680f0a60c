package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"quotelog/internal/bootstrap"
	"quotelog/internal/config"
	"quotelog/internal/domain"
	"quotelog/internal/infrastructure/console"
	httpserver "quotelog/internal/infrastructure/http"
	"quotelog/internal/infrastructure/logx"
	"quotelog/internal/infrastructure/worker"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func init() { _ = godotenv.Load() }

func main() {
	os.Exit(run())
}

func run() int {
	cfg := config.Load()

	once := flag.Bool("once", false, "run one fetch-and-log cycle, then exit")
	flag.IntVar(&cfg.IntervalMin, "interval", cfg.IntervalMin, "minutes between cycles in scheduled mode")
	flag.StringVar(&cfg.Symbol, "symbol", cfg.Symbol, "ticker symbol to log")
	flag.StringVar(&cfg.CSVPath, "csv", cfg.CSVPath, "path of the CSV log")
	flag.StringVar(&cfg.Provider, "provider", cfg.Provider, "quote source: yahoo, chart or static")
	flag.StringVar(&cfg.ListenAddr, "listen", cfg.ListenAddr, "status server address, empty disables it")
	flag.Parse()

	log := logx.L().With(zap.String("run_id", uuid.NewString()))
	defer func() { _ = log.Sync() }()

	symbol, err := domain.NormalizeSymbol(cfg.Symbol)
	if err != nil {
		log.Error("bad_symbol", zap.String("symbol", cfg.Symbol), zap.Error(err))
		return 1
	}
	if cfg.IntervalMin < 1 {
		log.Error("bad_interval", zap.Int("minutes", cfg.IntervalMin))
		return 1
	}

	latest := &httpserver.Latest{}
	svc, err := bootstrap.BuildService(cfg, console.New(os.Stdout), latest)
	if err != nil {
		log.Error("bootstrap", zap.Error(err))
		return 1
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if cfg.ListenAddr != "" {
		srv := &http.Server{
			Addr:    cfg.ListenAddr,
			Handler: httpserver.NewRouter(httpserver.NewServer(latest)),
		}
		go func() {
			log.Info("status_server_started", zap.String("addr", cfg.ListenAddr))
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				log.Error("status_server", zap.Error(err))
			}
		}()
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), config.DefaultShutdownTimeout)
			defer cancel()
			_ = srv.Shutdown(shutdownCtx)
		}()
	}

	if *once {
		rec, err := svc.CaptureOnce(ctx, symbol)
		if err != nil {
			log.Error("capture_failed", zap.String("symbol", string(symbol)), zap.Error(err))
			return 1
		}
		log.Info("quote_logged",
			zap.String("symbol", string(rec.Symbol)),
			zap.String("csv", cfg.CSVPath),
		)
		return 0
	}

	w := &worker.IntervalWorker{
		Service: svc,
		Symbol:  symbol,
		Every:   time.Duration(cfg.IntervalMin) * time.Minute,
		Log:     log,
	}
	if err := w.Run(ctx); err != nil {
		log.Error("worker_failed", zap.Error(err))
		return 1
	}
	return 0
}
