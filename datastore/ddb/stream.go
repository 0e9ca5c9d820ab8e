/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package ddb

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	sdk "github.com/aws/aws-sdk-go-v2/service/dynamodb"

	"github.com/suparena/tablestore/storagemodels"
)

// Stream scans the table in the background and delivers each item on the
// returned channel. The channel closes when the scan completes, fails, or
// the context is cancelled; a scan failure is delivered as a final result
// carrying the error.
func (d *DynamodbDataStore[T]) Stream(ctx context.Context, params *storagemodels.ScanParams, opts ...storagemodels.StreamOption) <-chan storagemodels.StreamResult[T] {
	options := storagemodels.DefaultStreamOptions()
	for _, opt := range opts {
		opt(&options)
	}

	resultCh := make(chan storagemodels.StreamResult[T], options.BufferSize)
	go d.streamWorker(ctx, params, options, resultCh)
	return resultCh
}

func (d *DynamodbDataStore[T]) streamWorker(
	ctx context.Context,
	params *storagemodels.ScanParams,
	options storagemodels.StreamOptions,
	resultCh chan<- storagemodels.StreamResult[T],
) {
	defer close(resultCh)

	if params == nil {
		params = &storagemodels.ScanParams{}
	}

	tableName := d.schema.TableName()
	input := &sdk.ScanInput{
		TableName:                 &tableName,
		FilterExpression:          params.FilterExpression,
		ExpressionAttributeNames:  params.ExpressionAttributeNames,
		ExpressionAttributeValues: params.ExpressionAttributeValues,
		Limit:                     aws.Int32(options.PageSize),
		ExclusiveStartKey:         params.ExclusiveStartKey,
	}

	var index int64
	var page int
	for {
		out, err := d.client.Scan(ctx, input)
		if err != nil {
			d.send(ctx, resultCh, storagemodels.StreamResult[T]{
				Error: fmt.Errorf("scan error on page %d: %w", page+1, err),
			})
			return
		}
		page++

		for _, raw := range out.Items {
			entity := new(T)
			result := storagemodels.StreamResult[T]{
				Raw: raw,
				Meta: storagemodels.StreamMeta{
					Index:      index,
					PageNumber: page,
					Timestamp:  time.Now(),
				},
			}
			if err := attributevalue.UnmarshalMap(raw, entity); err != nil {
				result.Error = fmt.Errorf("failed to unmarshal item %d: %w", index, err)
			} else {
				result.Item = *entity
			}
			if !d.send(ctx, resultCh, result) {
				return
			}
			index++
		}

		if out.LastEvaluatedKey == nil {
			return
		}
		input.ExclusiveStartKey = out.LastEvaluatedKey
	}
}

func (d *DynamodbDataStore[T]) send(ctx context.Context, ch chan<- storagemodels.StreamResult[T], result storagemodels.StreamResult[T]) bool {
	select {
	case ch <- result:
		return true
	case <-ctx.Done():
		return false
	}
}
