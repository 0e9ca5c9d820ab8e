/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package ddb

import (
	"context"
	stderrors "errors"
	"fmt"
	"reflect"
	"strconv"
	"time"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/expression"
	sdk "github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/go-openapi/strfmt"
	"github.com/google/uuid"

	"github.com/suparena/tablestore/datastore"
	"github.com/suparena/tablestore/errors"
	"github.com/suparena/tablestore/registry"
	"github.com/suparena/tablestore/schema"
)

var _ datastore.DataStore[struct{}] = (*DynamodbDataStore[struct{}])(nil)

// DynamodbDataStore implements datastore.DataStore[T] against one managed
// DynamoDB table described by a schema.Schema.
type DynamodbDataStore[T any] struct {
	client     ItemAPI
	schema     *schema.Schema
	entityType string
}

// NewDataStore constructs a DynamodbDataStore for type T. When s is nil
// the schema registered for T in the type index is used.
func NewDataStore[T any](client ItemAPI, s *schema.Schema) (*DynamodbDataStore[T], error) {
	if s == nil {
		registered, ok := registry.SchemaFor[T]()
		if !ok {
			return nil, fmt.Errorf("no schema registered for entity type %s", typeName[T]())
		}
		s = registered
	}
	return &DynamodbDataStore[T]{
		client:     client,
		schema:     s,
		entityType: typeName[T](),
	}, nil
}

// Schema returns the table schema backing this datastore.
func (d *DynamodbDataStore[T]) Schema() *schema.Schema { return d.schema }

// GetOne retrieves a single item by its partition key value.
func (d *DynamodbDataStore[T]) GetOne(ctx context.Context, key string) (*T, error) {
	tableName := d.schema.TableName()
	out, err := d.client.GetItem(ctx, &sdk.GetItemInput{
		TableName: &tableName,
		Key:       d.schema.Key(key),
	})
	if err != nil {
		return nil, fmt.Errorf("GetItem error: %w", err)
	}
	if out.Item == nil {
		return nil, errors.NewNotFoundError(d.entityType, key)
	}

	result := new(T)
	if err := attributevalue.UnmarshalMap(out.Item, result); err != nil {
		return nil, fmt.Errorf("failed to unmarshal item: %w", err)
	}
	return result, nil
}

// Put stores the entity, filling the schema's managed attributes: an empty
// partition key receives a generated UUID, timestamps are stamped, and the
// optimistic-lock version starts at 1. The stored entity is returned.
func (d *DynamodbDataStore[T]) Put(ctx context.Context, entity T) (*T, error) {
	av, err := attributevalue.MarshalMap(entity)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal entity: %w", err)
	}

	managed := d.schema.ManagedAttributes()
	now := strfmt.DateTime(time.Now().UTC())

	if managed.GeneratedKey != "" && isEmptyString(av[managed.GeneratedKey]) {
		av[managed.GeneratedKey] = &types.AttributeValueMemberS{Value: uuid.NewString()}
	}
	if managed.CreatedAt != "" && isUnsetTimestamp(av[managed.CreatedAt]) {
		av[managed.CreatedAt] = &types.AttributeValueMemberS{Value: now.String()}
	}
	if managed.UpdatedAt != "" {
		av[managed.UpdatedAt] = &types.AttributeValueMemberS{Value: now.String()}
	}
	if managed.Version != "" {
		if _, ok := numberValue(av[managed.Version]); !ok || isZeroNumber(av[managed.Version]) {
			av[managed.Version] = &types.AttributeValueMemberN{Value: "1"}
		}
	}

	tableName := d.schema.TableName()
	if _, err := d.client.PutItem(ctx, &sdk.PutItemInput{
		TableName: &tableName,
		Item:      av,
	}); err != nil {
		return nil, fmt.Errorf("PutItem failed: %w", err)
	}

	stored := new(T)
	if err := attributevalue.UnmarshalMap(av, stored); err != nil {
		return nil, fmt.Errorf("failed to unmarshal stored entity: %w", err)
	}
	return stored, nil
}

// Update writes the entity conditionally on its current optimistic-lock
// version and increments it. The entity must carry the version read from
// the store; a mismatch means a concurrent writer won and surfaces as a
// ConditionFailedError.
func (d *DynamodbDataStore[T]) Update(ctx context.Context, entity T) (*T, error) {
	managed := d.schema.ManagedAttributes()
	if managed.Version == "" {
		return d.Put(ctx, entity)
	}

	av, err := attributevalue.MarshalMap(entity)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal entity: %w", err)
	}

	expected, ok := numberValue(av[managed.Version])
	if !ok || expected < 1 {
		return nil, errors.NewValidationError(managed.Version,
			"update requires the entity's current version")
	}

	av[managed.Version] = &types.AttributeValueMemberN{
		Value: strconv.FormatInt(expected+1, 10),
	}
	if managed.UpdatedAt != "" {
		now := strfmt.DateTime(time.Now().UTC())
		av[managed.UpdatedAt] = &types.AttributeValueMemberS{Value: now.String()}
	}

	cond := expression.Name(managed.Version).Equal(expression.Value(expected))
	expr, err := expression.NewBuilder().WithCondition(cond).Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build condition expression: %w", err)
	}

	tableName := d.schema.TableName()
	_, err = d.client.PutItem(ctx, &sdk.PutItemInput{
		TableName:                 &tableName,
		Item:                      av,
		ConditionExpression:       expr.Condition(),
		ExpressionAttributeNames:  expr.Names(),
		ExpressionAttributeValues: expr.Values(),
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if stderrors.As(err, &cfe) {
			return nil, errors.NewConditionFailedError("update",
				fmt.Sprintf("%s = %d", managed.Version, expected))
		}
		return nil, fmt.Errorf("PutItem failed: %w", err)
	}

	updated := new(T)
	if err := attributevalue.UnmarshalMap(av, updated); err != nil {
		return nil, fmt.Errorf("failed to unmarshal updated entity: %w", err)
	}
	return updated, nil
}

// Delete removes the item with the given partition key value. Deleting a
// missing item is not an error.
func (d *DynamodbDataStore[T]) Delete(ctx context.Context, key string) error {
	tableName := d.schema.TableName()
	if _, err := d.client.DeleteItem(ctx, &sdk.DeleteItemInput{
		TableName: &tableName,
		Key:       d.schema.Key(key),
	}); err != nil {
		return fmt.Errorf("failed to delete item: %w", err)
	}
	return nil
}

func typeName[T any]() string {
	var zero T
	t := reflect.TypeOf(zero)
	for t != nil && t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if t == nil {
		return "unknown"
	}
	return t.Name()
}

func isEmptyString(av types.AttributeValue) bool {
	if av == nil {
		return true
	}
	switch v := av.(type) {
	case *types.AttributeValueMemberS:
		return v.Value == ""
	case *types.AttributeValueMemberNULL:
		return true
	}
	return false
}

// isUnsetTimestamp reports whether a timestamp attribute is absent, empty,
// or carries the zero time. strfmt.DateTime marshals its zero value to
// "0001-01-01T00:00:00.000Z" rather than an empty string.
func isUnsetTimestamp(av types.AttributeValue) bool {
	if isEmptyString(av) {
		return true
	}
	s, ok := av.(*types.AttributeValueMemberS)
	if !ok {
		return true
	}
	t, err := time.Parse(time.RFC3339, s.Value)
	return err == nil && t.IsZero()
}

func numberValue(av types.AttributeValue) (int64, bool) {
	n, ok := av.(*types.AttributeValueMemberN)
	if !ok {
		return 0, false
	}
	v, err := strconv.ParseInt(n.Value, 10, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

func isZeroNumber(av types.AttributeValue) bool {
	v, ok := numberValue(av)
	return ok && v == 0
}
