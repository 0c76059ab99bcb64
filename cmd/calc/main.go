package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/GriffinCanCode/econcalc/internal/domain/scenario"
	"github.com/GriffinCanCode/econcalc/internal/domain/service"
	"github.com/GriffinCanCode/econcalc/internal/infrastructure/logging"
	"github.com/GriffinCanCode/econcalc/internal/providers/finance"
)

func main() {
	out := flag.String("out", "", "Write the report to this file instead of stdout")
	verbose := flag.Bool("v", false, "Log progress to stderr")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [flags] scenario.{yaml,toml,json}\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(1)
	}

	logger := logging.NewNop()
	if *verbose {
		cfg := logging.DevelopmentConfig()
		cfg.OutputPaths = []string{"stderr"}
		l, err := logging.New(cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to create logger: %v\n", err)
			os.Exit(1)
		}
		logger = l
	}

	code := run(flag.Arg(0), *out, logger)
	_ = logger.Sync()
	os.Exit(code)
}

func run(path, out string, logger *logging.Logger) int {
	file, err := scenario.Load(path)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	registry := service.NewRegistry()
	if err := finance.RegisterAll(registry); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	report, runErr := scenario.NewRunner(registry, logger).Run(ctx, file)
	if runErr != nil {
		logger.Warn("Scenario interrupted", zap.Error(runErr))
	}

	data, err := report.JSON()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	data = append(data, '\n')

	if out == "" {
		_, err = os.Stdout.Write(data)
	} else {
		err = os.WriteFile(out, data, 0o644)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to write report: %v\n", err)
		return 1
	}

	if runErr != nil || report.Summary.Failed > 0 {
		return 2
	}
	return 0
}
