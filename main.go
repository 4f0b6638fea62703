package main

import (
	"context"
	"flag"
	"os"
	"os/signal"

	log "github.com/sirupsen/logrus"

	"github.com/AnkushinDaniil/doubleslit/app"
	"github.com/AnkushinDaniil/doubleslit/config"
	"github.com/AnkushinDaniil/doubleslit/entity/format"
)

func main() {
	var (
		configPath = flag.String("config", "", "YAML run file")
		output     = flag.String("output", "", "report file, overrides the run file")
		outFormat  = flag.String("format", "", "report format: html or csv")
		logLevel   = flag.String("log-level", "", "log level, overrides the run file")
		ticks      = flag.Int("ticks", -1, "number of ticks to simulate")
		seed       = flag.Uint64("seed", 0, "sampler seed, 0 for random")
	)
	flag.Parse()

	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})

	cfg := config.Default()
	if *configPath != "" {
		var err error
		cfg, err = config.Load(*configPath)
		if err != nil {
			log.WithError(err).Fatal("Failed to load config")
		}
	}
	if *output != "" {
		cfg.Output = *output
	}
	if *outFormat != "" {
		f, err := format.Parse(*outFormat)
		if err != nil {
			log.WithError(err).Fatal("Failed to parse format")
		}
		cfg.Format = f
	}
	if *logLevel != "" {
		cfg.LogLevel = *logLevel
	}
	if *ticks >= 0 {
		cfg.Ticks = *ticks
	}
	if *seed != 0 {
		cfg.Seed = *seed
	}
	if err := cfg.Validate(); err != nil {
		log.WithError(err).Fatal("Invalid config")
	}

	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		log.WithError(err).Fatal("Failed to parse log level")
	}
	log.SetLevel(level)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := app.New(cfg).Run(ctx); err != nil {
		log.WithError(err).Error("App failed")
		stop()
		os.Exit(1)
	}
}
