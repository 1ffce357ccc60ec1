package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"meme-market/internal/caption"
	"meme-market/internal/config"
	"meme-market/internal/db"
	"meme-market/internal/ledger"
	"meme-market/internal/metrics"
	"meme-market/internal/repository"
	"meme-market/internal/server"
	"meme-market/internal/supabase"
	"meme-market/internal/wallet"
	"meme-market/utils"
)

func main() {
	cfg, err := config.Load(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid configuration: %v\n", err)
		os.Exit(1)
	}
	utils.SetLevel(cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	repo, closeRepo, err := openStore(cfg)
	if err != nil {
		utils.Fatal("failed to open store", map[string]any{"driver": cfg.StoreDriver, "error": err.Error()})
	}
	defer closeRepo()

	captioner, closeCaptioner := newCaptioner(ctx, cfg)
	defer closeCaptioner()

	m := metrics.New()
	market := ledger.NewLedger(repo, captioner, ledger.WithObserver(m))
	if cfg.SeedMemes {
		if err := seedMemes(ctx, repo); err != nil {
			utils.Warn("failed to seed memes", map[string]any{"error": err.Error()})
		}
	}
	if err := market.Refresh(ctx); err != nil {
		utils.Warn("initial meme load failed, starting with an empty cache", map[string]any{"error": err.Error()})
	}

	dir := wallet.NewDirectory()
	if cfg.IdentityFile != "" {
		if err := dir.Load(cfg.IdentityFile); err != nil {
			utils.Fatal("failed to load identities", map[string]any{"path": cfg.IdentityFile, "error": err.Error()})
		}
	}
	sessions := wallet.NewSessions(dir)

	router := server.SetupRouter(market, sessions, m)
	srv := &http.Server{
		Addr:              cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		utils.Info("starting meme market server", map[string]any{"addr": cfg.Port, "store": cfg.StoreDriver})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			utils.Fatal("server failed", map[string]any{"error": err.Error()})
		}
	}()

	<-ctx.Done()
	utils.Info("shutting down", nil)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		utils.Error("graceful shutdown failed", map[string]any{"error": err.Error()})
	}

	sessions.Close()
	if cfg.IdentityFile != "" {
		if err := dir.Save(cfg.IdentityFile); err != nil {
			utils.Error("failed to save identities", map[string]any{"path": cfg.IdentityFile, "error": err.Error()})
		}
	}
}

// openStore builds the MarketDB selected by the config and a function that releases it
func openStore(cfg *config.Config) (repository.MarketDB, func(), error) {
	switch cfg.StoreDriver {
	case config.DriverPostgres:
		conn, err := db.InitPostgres(cfg.DatabaseDSN)
		if err != nil {
			return nil, nil, err
		}
		return repository.NewPostgresRepo(conn), func() { _ = conn.Close() }, nil
	case config.DriverSupabase:
		client, err := supabase.New(supabase.Config{URL: cfg.SupabaseURL, APIKey: cfg.SupabaseKey})
		if err != nil {
			return nil, nil, err
		}
		return repository.NewSupabaseRepo(client), func() {}, nil
	default:
		return repository.NewMemoryRepo(), func() {}, nil
	}
}

// newCaptioner prefers Gemini when a key is configured and falls back to the tag table
func newCaptioner(ctx context.Context, cfg *config.Config) (caption.Captioner, func()) {
	table := caption.NewTableCaptioner(cfg.CaptionDelay)
	if cfg.GeminiAPIKey == "" {
		return table, func() {}
	}

	g, err := caption.NewGeminiCaptioner(ctx, cfg.GeminiAPIKey, cfg.GeminiModel, table)
	if err != nil {
		utils.Warn("gemini unavailable, using tag table captions", map[string]any{"error": err.Error()})
		return table, func() {}
	}
	return g, func() { _ = g.Close() }
}

// seedMemes inserts the starter listings, skipping ones the store already has
func seedMemes(ctx context.Context, repo repository.MarketDB) error {
	existing, err := repo.ListMemes(ctx)
	if err != nil {
		return err
	}
	have := make(map[string]struct{}, len(existing))
	for _, m := range existing {
		have[m.MemeID] = struct{}{}
	}

	for _, m := range ledger.SeedMemes(time.Now().UTC()) {
		if _, ok := have[m.MemeID]; ok {
			continue
		}
		if err := repo.InsertMeme(ctx, m); err != nil {
			return err
		}
	}
	return nil
}
