package main

import (
	"context"
	"log"
	"os"
	"os/signal"

	"golang.org/x/term"

	"github.com/dmitrijs2005/wellbeinghub/internal/buildinfo"
	"github.com/dmitrijs2005/wellbeinghub/internal/client/brand"
	"github.com/dmitrijs2005/wellbeinghub/internal/client/cli"
	"github.com/dmitrijs2005/wellbeinghub/internal/client/config"
	"github.com/dmitrijs2005/wellbeinghub/internal/logging"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	cfg := config.LoadConfig()

	_, noColor := os.LookupEnv("NO_COLOR")
	brand.Apply(cfg.Brand, !noColor && term.IsTerminal(int(os.Stdout.Fd())))

	logger := logging.NewConsoleLogger(cfg.LogLevel, os.Stderr, term.IsTerminal(int(os.Stderr.Fd())))

	app, err := cli.NewApp(ctx, cfg, logger, os.Stdin, os.Stdout)
	if err != nil {
		log.Fatalf("%v", err)
		return
	}
	defer func() {
		if err := app.Close(); err != nil {
			logger.Error(ctx, "close session store", "error", err)
		}
	}()

	app.Run(ctx)

}
