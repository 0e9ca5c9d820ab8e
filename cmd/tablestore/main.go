/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

// Command tablestore brings up the configured DynamoDB tables, optionally
// seeds sample data, and tears the tables down again on shutdown when
// destructive operations are enabled.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/suparena/tablestore"
	"github.com/suparena/tablestore/catalog"
	"github.com/suparena/tablestore/config"
	"github.com/suparena/tablestore/datastore/ddb"
	"github.com/suparena/tablestore/models"
	"github.com/suparena/tablestore/registry"
	"github.com/suparena/tablestore/seed"
)

var (
	configFlag  = flag.String("config", "", "Path to the YAML config file")
	seedFlag    = flag.Bool("seed", false, "Load sample product data after initialization")
	versionFlag = flag.Bool("version", false, "Show version information")
	vFlag       = flag.Bool("v", false, "Show version information (short)")
)

func main() {
	flag.Parse()

	if *versionFlag || *vFlag {
		info := tablestore.GetVersionInfo()
		fmt.Printf("TableStore version %s\n", info.Version)
		fmt.Printf("Git commit: %s\n", info.GitCommit)
		fmt.Printf("Build date: %s\n", info.BuildDate)
		fmt.Printf("Go version: %s\n", info.GoVersion)
		os.Exit(0)
	}

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "tablestore: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	logger, err := zap.NewProduction()
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer logger.Sync()

	cfg, err := config.Load(*configFlag)
	if err != nil {
		return err
	}

	reg := registry.New()
	productSchema, err := models.ProductSchema()
	if err != nil {
		return err
	}
	if err := reg.Register(productSchema); err != nil {
		return err
	}
	registry.RegisterSchemaFor[models.Product](productSchema)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	ts, err := tablestore.Open(ctx, cfg, reg, tablestore.WithLogger(logger))
	if err != nil {
		return err
	}
	defer ts.Close(context.Background())

	if *seedFlag {
		store, err := ddb.NewDataStore[models.Product](ts.Client(), productSchema)
		if err != nil {
			return err
		}
		repo := catalog.NewRepository(store, logger)
		if err := seed.Load(ctx, repo, logger); err != nil {
			return err
		}
	}

	logger.Info("tablestore ready",
		zap.Strings("tables", ts.Manager().ManagedTables()),
		zap.Bool("ddlEnabled", cfg.DDLEnabled))

	<-ctx.Done()
	logger.Info("shutting down")
	return nil
}
