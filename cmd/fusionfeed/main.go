package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/fatih/color"
	"github.com/go-pkgz/lgr"
	"github.com/jessevdk/go-flags"
	"github.com/joho/godotenv"

	"github.com/TomaszChromy/fusionfinance.pl-sub001/pkg/config"
	"github.com/TomaszChromy/fusionfinance.pl-sub001/pkg/content"
	"github.com/TomaszChromy/fusionfinance.pl-sub001/pkg/feed"
	"github.com/TomaszChromy/fusionfinance.pl-sub001/pkg/warmer"
	"github.com/TomaszChromy/fusionfinance.pl-sub001/server"
)

// Opts with all CLI options
type Opts struct {
	Config string `short:"c" long:"config" env:"CONFIG" default:"config.yml" description:"configuration file"`
	Listen string `short:"l" long:"listen" env:"LISTEN" description:"listen address override"`

	// Common options
	Debug   bool `long:"dbg" env:"DEBUG" description:"debug mode"`
	Version bool `short:"V" long:"version" description:"show version info"`
	NoColor bool `long:"no-color" env:"NO_COLOR" description:"disable color output"`
}

var revision = "unknown"

func main() {
	// optional .env for local development, ignored when absent
	_ = godotenv.Load()

	var opts Opts
	parser := flags.NewParser(&opts, flags.Default)
	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	if opts.Version {
		fmt.Printf("Version: %s\nGolang: %s\n", revision, runtime.Version())
		os.Exit(0)
	}

	setupLog(opts.Debug)

	log.Printf("[INFO] starting fusionfeed version %s", revision)

	cfg, err := config.Load(opts.Config)
	if err != nil {
		log.Printf("[ERROR] can't load config: %v", err)
		os.Exit(1)
	}
	if opts.Listen != "" {
		cfg.Server.Listen = opts.Listen
	}

	ctx, cancel := context.WithCancel(context.Background())

	// handle termination signals
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
		<-sigChan
		log.Print("[INFO] termination signal received")
		cancel()
	}()

	// feed pipeline
	feedFetcher := feed.NewFetcher(cfg.Fetch.FeedTimeout, cfg.Fetch.FeedCacheTTL, cfg.Fetch.UserAgent, cfg.Fetch.Attempts)
	feedParser := feed.NewParser(cfg.Extraction.DescriptionLimit)
	aggregator := feed.NewAggregator(cfg.Topics, cfg.DefaultTopic, feedFetcher, feedParser, cfg.Fetch.MaxConcurrent)

	// article extraction
	pageFetcher := content.NewFetcher(cfg.Fetch.ArticleTimeout, cfg.Fetch.ArticleCacheTTL, cfg.Fetch.UserAgent, cfg.Fetch.RateLimit)
	extractor := content.NewExtractor(content.DefaultSiteRules(), cfg.Extraction)
	articles := content.NewService(pageFetcher, extractor)

	// background cache warming, disabled unless a schedule is configured
	w := warmer.New(aggregator, cfg.Warmup.Topics, cfg.Warmup.Limit)
	if err := w.Start(ctx, cfg.Warmup.Schedule); err != nil {
		log.Printf("[ERROR] can't start cache warming: %v", err)
		os.Exit(1)
	}

	srv := server.New(cfg, aggregator, articles, revision, opts.Debug)

	err = srv.Run(ctx)
	cancel()

	if err != nil {
		log.Printf("[ERROR] server failed: %v", err)
		os.Exit(1)
	}

	log.Print("[INFO] shutdown complete")
}

func setupLog(dbg bool, secs ...string) {
	logOpts := []lgr.Option{lgr.Msec, lgr.LevelBraces}
	if dbg {
		logOpts = []lgr.Option{lgr.Debug, lgr.Msec, lgr.LevelBraces, lgr.StackTraceOnError}
	}

	colorizer := lgr.Mapper{
		ErrorFunc:  func(s string) string { return color.New(color.FgHiRed).Sprint(s) },
		WarnFunc:   func(s string) string { return color.New(color.FgRed).Sprint(s) },
		InfoFunc:   func(s string) string { return color.New(color.FgYellow).Sprint(s) },
		DebugFunc:  func(s string) string { return color.New(color.FgWhite).Sprint(s) },
		CallerFunc: func(s string) string { return color.New(color.FgBlue).Sprint(s) },
		TimeFunc:   func(s string) string { return color.New(color.FgCyan).Sprint(s) },
	}
	logOpts = append(logOpts, lgr.Map(colorizer))
	if len(secs) > 0 {
		logOpts = append(logOpts, lgr.Secret(secs...))
	}
	lgr.SetupStdLogger(logOpts...)
	lgr.Setup(logOpts...)
}
