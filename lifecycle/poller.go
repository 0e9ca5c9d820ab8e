/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package lifecycle

import (
	"context"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"go.uber.org/zap"

	"github.com/suparena/tablestore/errors"
)

// waitForTableActive blocks until the named table reports ACTIVE, checking
// at most maxWaitAttempts times with waitInterval between checks. A status
// check that errors is logged and consumes an attempt; it does not extend
// the budget. The wait is interruptible: context cancellation aborts the
// loop promptly, including mid-sleep.
func (m *Manager) waitForTableActive(ctx context.Context, name string) error {
	m.logger.Info("waiting for table to become active", zap.String("table", name))

	for attempt := 1; attempt <= m.maxWaitAttempts; attempt++ {
		out, err := m.client.DescribeTable(ctx, &dynamodb.DescribeTableInput{
			TableName: aws.String(name),
		})
		switch {
		case err != nil:
			if ctx.Err() != nil {
				return ctx.Err()
			}
			m.logger.Warn("status check failed while waiting for table",
				zap.String("table", name),
				zap.Int("attempt", attempt),
				zap.Error(err))
		case out.Table != nil && out.Table.TableStatus == types.TableStatusActive:
			m.logger.Info("table is now active", zap.String("table", name))
			return nil
		default:
			m.logger.Debug("table not yet active",
				zap.String("table", name),
				zap.String("status", string(tableStatus(out))),
				zap.Int("attempt", attempt))
		}

		if err := m.sleep(ctx); err != nil {
			return err
		}
	}

	return errors.NewActivationTimeoutError(name, m.maxWaitAttempts, m.waitInterval)
}

// sleep waits one poll interval or until the context is cancelled.
func (m *Manager) sleep(ctx context.Context) error {
	timer := time.NewTimer(m.waitInterval)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

func tableStatus(out *dynamodb.DescribeTableOutput) types.TableStatus {
	if out == nil || out.Table == nil {
		return ""
	}
	return out.Table.TableStatus
}
