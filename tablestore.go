/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package tablestore

import (
	"context"
	"fmt"

	sdk "github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"go.uber.org/zap"

	"github.com/suparena/tablestore/config"
	"github.com/suparena/tablestore/datastore/ddb"
	"github.com/suparena/tablestore/lifecycle"
	"github.com/suparena/tablestore/registry"
)

// TableStore is the module's front door: it connects to DynamoDB, ensures
// the configured tables exist and are active, and hands out the pieces an
// application needs to build datastores on top.
type TableStore struct {
	cfg     *config.Config
	client  *sdk.Client
	reg     *registry.Registry
	manager *lifecycle.Manager
	logger  *zap.Logger
}

// Option customizes a TableStore.
type Option func(*TableStore)

// WithLogger sets the logger used by the store and its lifecycle manager.
func WithLogger(logger *zap.Logger) Option {
	return func(ts *TableStore) {
		if logger != nil {
			ts.logger = logger
		}
	}
}

// Open connects to DynamoDB and initializes every table named in
// cfg.Entities. Each entity must have a schema registered in reg. Open
// blocks until all tables are active or initialization fails.
func Open(ctx context.Context, cfg *config.Config, reg *registry.Registry, opts ...Option) (*TableStore, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	ts := &TableStore{
		cfg:    cfg,
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(ts)
	}

	managed := registry.New()
	for _, name := range cfg.Entities {
		s, ok := reg.Get(name)
		if !ok {
			return nil, fmt.Errorf("no schema registered for configured entity %q", name)
		}
		if err := managed.Register(s); err != nil {
			return nil, err
		}
	}
	ts.reg = managed

	client, err := ddb.NewClient(ctx, ddb.ClientConfig{
		Region:    cfg.AWS.Region,
		Endpoint:  cfg.AWS.Endpoint,
		AccessKey: cfg.AWS.AccessKey,
		SecretKey: cfg.AWS.SecretKey,
	})
	if err != nil {
		return nil, err
	}
	ts.client = client

	ts.manager = lifecycle.New(client, managed,
		lifecycle.WithLogger(ts.logger),
		lifecycle.WithDestructiveOperations(cfg.DDLEnabled),
		lifecycle.WithWaitPolicy(cfg.Wait.MaxAttempts, cfg.Wait.Interval),
	)
	if err := ts.manager.Initialize(ctx); err != nil {
		return nil, err
	}
	return ts, nil
}

// Client returns the underlying DynamoDB client. It satisfies both the
// lifecycle and item-level API interfaces.
func (ts *TableStore) Client() *sdk.Client { return ts.client }

// Registry returns the registry of managed schemas.
func (ts *TableStore) Registry() *registry.Registry { return ts.reg }

// Manager returns the table lifecycle manager.
func (ts *TableStore) Manager() *lifecycle.Manager { return ts.manager }

// Close tears down managed tables when destructive operations are enabled.
// It is best effort and safe to call on shutdown paths.
func (ts *TableStore) Close(ctx context.Context) {
	ts.manager.Shutdown(ctx)
}
