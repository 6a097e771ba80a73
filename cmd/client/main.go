package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrijs2005/refugio/internal/buildinfo"
	"github.com/dmitrijs2005/refugio/internal/client/cli"
	"github.com/dmitrijs2005/refugio/internal/client/config"
	"github.com/dmitrijs2005/refugio/internal/logging"
)

func main() {
	buildinfo.PrintBuildData(os.Stdout)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg := config.LoadConfig()

	logger, flush, err := logging.NewFileLogger(cfg.LogFile, cfg.Debug)
	if err != nil {
		log.Fatalf("%v", err)
	}
	defer flush()

	app, err := cli.NewApp(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
	}

	app.Run(ctx)
}
