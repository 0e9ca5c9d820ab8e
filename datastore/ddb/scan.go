/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package ddb

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	sdk "github.com/aws/aws-sdk-go-v2/service/dynamodb"

	"github.com/suparena/tablestore/storagemodels"
)

// Scan returns every item matching the optional filter, following
// pagination until the table is exhausted.
func (d *DynamodbDataStore[T]) Scan(ctx context.Context, params *storagemodels.ScanParams) ([]T, error) {
	if params == nil {
		params = &storagemodels.ScanParams{}
	}

	tableName := d.schema.TableName()
	input := &sdk.ScanInput{
		TableName:                 &tableName,
		FilterExpression:          params.FilterExpression,
		ExpressionAttributeNames:  params.ExpressionAttributeNames,
		ExpressionAttributeValues: params.ExpressionAttributeValues,
		Limit:                     params.Limit,
		ExclusiveStartKey:         params.ExclusiveStartKey,
	}

	var results []T
	for {
		out, err := d.client.Scan(ctx, input)
		if err != nil {
			return nil, fmt.Errorf("scan error: %w", err)
		}

		for _, item := range out.Items {
			entity := new(T)
			if err := attributevalue.UnmarshalMap(item, entity); err != nil {
				return nil, fmt.Errorf("failed to unmarshal item: %w", err)
			}
			results = append(results, *entity)
		}

		if out.LastEvaluatedKey == nil {
			return results, nil
		}
		input.ExclusiveStartKey = out.LastEvaluatedKey
	}
}
