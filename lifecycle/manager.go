/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package lifecycle

import (
	"context"
	"sync"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"go.uber.org/zap"

	"github.com/suparena/tablestore/errors"
	"github.com/suparena/tablestore/registry"
	"github.com/suparena/tablestore/schema"
)

const (
	// DefaultMaxWaitAttempts is the default number of status checks before
	// activation polling gives up.
	DefaultMaxWaitAttempts = 60

	// DefaultWaitInterval is the default delay between status checks.
	DefaultWaitInterval = 2 * time.Second
)

// Manager provisions the tables backing every registered schema before
// the application serves traffic, and optionally tears them down on
// shutdown. Initialize must complete before the application is ready;
// Shutdown is best-effort.
type Manager struct {
	client   TableAPI
	registry *registry.Registry
	logger   *zap.Logger

	// destructive gates table deletion during Shutdown. Read-only after
	// construction.
	destructive bool

	maxWaitAttempts int
	waitInterval    time.Duration

	// managed holds every table this manager has created or observed,
	// keyed by table name. Safe for concurrent insertion because table
	// initializations may complete out of order.
	managed sync.Map // string -> *schema.Schema
}

// Option configures a Manager.
type Option func(*Manager)

// WithDestructiveOperations enables table deletion during Shutdown.
// Disabled by default: tables are preserved across restarts.
func WithDestructiveOperations(enabled bool) Option {
	return func(m *Manager) {
		m.destructive = enabled
	}
}

// WithWaitPolicy overrides the activation polling budget.
func WithWaitPolicy(maxAttempts int, interval time.Duration) Option {
	return func(m *Manager) {
		if maxAttempts > 0 {
			m.maxWaitAttempts = maxAttempts
		}
		if interval > 0 {
			m.waitInterval = interval
		}
	}
}

// WithLogger sets the logger. Defaults to a no-op logger.
func WithLogger(logger *zap.Logger) Option {
	return func(m *Manager) {
		if logger != nil {
			m.logger = logger
		}
	}
}

// New creates a Manager for the schemas in the given registry.
func New(client TableAPI, reg *registry.Registry, opts ...Option) *Manager {
	m := &Manager{
		client:          client,
		registry:        reg,
		logger:          zap.NewNop(),
		maxWaitAttempts: DefaultMaxWaitAttempts,
		waitInterval:    DefaultWaitInterval,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Initialize ensures every registered schema has an active backing table.
// Tables are processed in deterministic (sorted-name) order: absent tables
// are created and polled until ACTIVE; pre-existing tables are trusted as
// usable and only tracked. The first failure aborts with an
// InitializationError naming the table; no partial readiness is possible.
//
// Initialize is idempotent: a second run observes every table as existing
// and issues no further CreateTable calls.
func (m *Manager) Initialize(ctx context.Context) error {
	schemas := m.registry.Schemas()

	for _, name := range m.registry.Names() {
		if err := m.ensureTable(ctx, name, schemas[name]); err != nil {
			m.logger.Error("failed to create/verify table",
				zap.String("table", name), zap.Error(err))
			return errors.NewInitializationError(name, err)
		}
	}

	m.logger.Info("initialized tables", zap.Int("count", len(schemas)))
	return nil
}

// ensureTable runs the create-if-absent / poll-until-active sequence for
// one table and records it in the managed set.
func (m *Manager) ensureTable(ctx context.Context, name string, s *schema.Schema) error {
	exists, err := m.tableExists(ctx, name)
	if err != nil {
		return err
	}

	if !exists {
		m.logger.Info("creating table", zap.String("table", name))
		if _, err := m.client.CreateTable(ctx, s.CreateTableInput()); err != nil {
			return err
		}
		if err := m.waitForTableActive(ctx, name); err != nil {
			return err
		}
		m.logger.Info("created table", zap.String("table", name))
	} else {
		m.logger.Info("table already exists, tracking for management",
			zap.String("table", name))
	}

	m.managed.Store(name, s)
	return nil
}

// Shutdown deletes every managed table when destructive operations are
// enabled; otherwise it logs and returns without any remote call. Each
// deletion is attempted independently and failures are only logged, so
// shutdown always completes.
func (m *Manager) Shutdown(ctx context.Context) {
	if !m.destructive {
		m.logger.Info("destructive operations disabled, skipping table deletion")
		return
	}

	m.managed.Range(func(key, _ any) bool {
		name := key.(string)

		exists, err := m.tableExists(ctx, name)
		if err != nil {
			m.logger.Warn("failed to check table before deletion",
				zap.String("table", name), zap.Error(err))
			return true
		}
		if !exists {
			return true
		}

		m.logger.Info("deleting table", zap.String("table", name))
		if _, err := m.client.DeleteTable(ctx, &dynamodb.DeleteTableInput{
			TableName: aws.String(name),
		}); err != nil {
			m.logger.Warn("failed to delete table",
				zap.String("table", name), zap.Error(err))
			return true
		}
		m.logger.Info("deleted table", zap.String("table", name))
		return true
	})
}

// ManagedTables returns the names of every table the manager has created
// or observed, in no particular order.
func (m *Manager) ManagedTables() []string {
	var names []string
	m.managed.Range(func(key, _ any) bool {
		names = append(names, key.(string))
		return true
	})
	return names
}

// IsManaged reports whether the named table is tracked by this manager.
func (m *Manager) IsManaged(name string) bool {
	_, ok := m.managed.Load(name)
	return ok
}
