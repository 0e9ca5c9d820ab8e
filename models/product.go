/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

// Package models holds the catalog domain entities stored in DynamoDB.
package models

import (
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/go-openapi/strfmt"

	"github.com/suparena/tablestore/schema"
)

// Product is a catalog item. ID, Version and the timestamps are managed by
// the datastore: Put assigns them, Update bumps the version under an
// optimistic-lock condition.
type Product struct {
	ID            string          `dynamodbav:"id" json:"id"`
	Name          string          `dynamodbav:"name" json:"name"`
	Price         float64         `dynamodbav:"price" json:"price"`
	Category      string          `dynamodbav:"category" json:"category"`
	StockQuantity int             `dynamodbav:"stock_quantity" json:"stockQuantity"`
	RetryCount    int             `dynamodbav:"retry_count" json:"retryCount"`
	Version       int64           `dynamodbav:"version" json:"version"`
	CreatedAt     strfmt.DateTime `dynamodbav:"created_at" json:"createdAt"`
	UpdatedAt     strfmt.DateTime `dynamodbav:"updated_at" json:"updatedAt"`
}

// ProductSchema describes the product table: a single string partition key
// with the managed attributes the datastore maintains.
func ProductSchema() (*schema.Schema, error) {
	return schema.New(
		schema.DeriveTableName[Product](),
		schema.Attribute{Name: "id", Type: types.ScalarAttributeTypeS},
		schema.WithManaged(schema.Managed{
			GeneratedKey: "id",
			CreatedAt:    "created_at",
			UpdatedAt:    "updated_at",
			Version:      "version",
			Counter:      "retry_count",
		}),
	)
}
