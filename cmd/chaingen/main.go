// Command chaingen generates a typed Go enumeration of EVM chains from the
// chainid.network chain list. It is meant to run from a go:generate directive:
//
//	//go:generate go run chaingen/cmd/chaingen -o chains_gen.go
//
// SOURCE_URL overrides the download location and SOURCE_PATH reads a local
// file instead of fetching.
package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"chaingen/internal/adapter/render/golang"
	"chaingen/internal/adapter/storage/chainlist"
	"chaingen/internal/adapter/storage/file"
	"chaingen/internal/adapter/storage/overrides"
	"chaingen/internal/application"
	"chaingen/internal/config"
	domainRepo "chaingen/internal/domain/repository"
	"chaingen/internal/logger"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	// --- Flags ---
	flags := pflag.NewFlagSet("chaingen", pflag.ContinueOnError)
	config.RegisterFlags(flags)
	if err := flags.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return 0
		}
		return 2
	}
	cfgPath, _ := flags.GetString("config")

	// --- Configuration ---
	cfg, err := config.Load(cfgPath, flags)
	if err != nil {
		log.Printf("chaingen: failed to load configuration from %s: %v", cfgPath, err)
		return 1
	}

	// --- Logger ---
	zlog, err := logger.NewLogger(cfg.Logger)
	if err != nil {
		log.Printf("chaingen: failed to setup logger: %v", err)
		return 1
	}
	defer zlog.Sync()
	zlog.Debug("Logger initialized", zap.Any("config", cfg.Logger))

	// --- Dependency Injection (Manual) ---
	var local domainRepo.SourceRepository
	if cfg.Source.Path != "" {
		local = chainlist.NewFileSource(cfg.Source.Path, zlog)
	}
	remote := chainlist.NewHTTPSource(cfg.Source, zlog)
	cache := file.NewCacheRepository(cfg.Cache, zlog)
	fetcher := application.NewFetcher(local, remote, cache, cfg.Cache, zlog)

	parser := chainlist.NewParser(cfg.Generator.ParseMode(), zlog)
	renderer := golang.NewRenderer(filepath.Base(cfg.Generator.Output))
	overrideRepo := overrides.NewRepository(cfg.Generator.Overrides, zlog)
	generator := application.NewGenerator(parser, renderer, overrideRepo, cfg.Generator.Package, zlog)

	svc := application.NewService(fetcher, generator, file.NewWriter(zlog), cfg.Generator.Output, zlog)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	result, err := svc.Run(ctx)
	if err != nil {
		zlog.Error("Chain generation failed", zap.Error(err))
		fmt.Fprintf(os.Stderr, "chaingen: %v\n", err)
		return 1
	}

	zlog.Info("Done",
		zap.String("source", result.Source),
		zap.String("output", result.Output),
		zap.Int("variants", result.Variants),
		zap.Bool("changed", result.Changed),
	)
	return 0
}
