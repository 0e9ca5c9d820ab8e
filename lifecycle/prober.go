/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package lifecycle

import (
	"context"
	"errors"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// tableExists reports whether the named table currently exists. A
// resource-not-found response maps to (false, nil); any other describe
// failure is propagated. Non-active states still count as existing.
func (m *Manager) tableExists(ctx context.Context, name string) (bool, error) {
	_, err := m.client.DescribeTable(ctx, &dynamodb.DescribeTableInput{
		TableName: aws.String(name),
	})
	if err != nil {
		var nf *types.ResourceNotFoundException
		if errors.As(err, &nf) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
