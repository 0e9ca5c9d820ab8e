/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package storagemodels

import (
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// ScanParams defines parameters for a filtered DynamoDB Scan operation.
type ScanParams struct {
	// FilterExpression is an optional filter applied server-side.
	FilterExpression *string
	// ExpressionAttributeNames contains placeholder-to-attribute mappings.
	ExpressionAttributeNames map[string]string
	// ExpressionAttributeValues contains the values for expression placeholders.
	ExpressionAttributeValues map[string]types.AttributeValue
	// Limit defines an optional limit per scan page.
	Limit *int32
	// ExclusiveStartKey for pagination.
	ExclusiveStartKey map[string]types.AttributeValue
}
