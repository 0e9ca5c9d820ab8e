/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package schema

import (
	"reflect"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/suparena/tablestore/errors"
)

// Attribute describes a key attribute of a table.
type Attribute struct {
	// Name is the DynamoDB attribute name (e.g., "id").
	Name string
	// Type is the scalar attribute type: S, N, or B.
	Type types.ScalarAttributeType
}

// Managed holds the names of attributes the datastore maintains on behalf
// of the caller. An empty name disables that behavior for the schema.
type Managed struct {
	// GeneratedKey is populated with a fresh UUID when the entity is
	// stored with an empty partition key value.
	GeneratedKey string
	// CreatedAt and UpdatedAt are timestamp attributes stamped on write.
	CreatedAt string
	UpdatedAt string
	// Version is the optimistic-lock counter attribute.
	Version string
	// Counter is a monotonically increasing retry counter attribute.
	Counter string
}

// Schema describes the physical layout of one logical table: its name,
// key attributes, managed attributes, and provisioning parameters.
// Build one with New; a zero Schema is not usable.
type Schema struct {
	tableName    string
	partitionKey Attribute
	sortKey      *Attribute
	managed      Managed

	// Billing defaults to on-demand. ReadCapacity/WriteCapacity are only
	// honored with provisioned billing.
	billingMode   types.BillingMode
	readCapacity  int64
	writeCapacity int64
}

// Option configures a Schema during construction.
type Option func(*Schema)

// WithSortKey declares an optional sort key attribute.
func WithSortKey(name string, typ types.ScalarAttributeType) Option {
	return func(s *Schema) {
		s.sortKey = &Attribute{Name: name, Type: typ}
	}
}

// WithManaged declares the datastore-managed attribute names.
func WithManaged(m Managed) Option {
	return func(s *Schema) {
		s.managed = m
	}
}

// WithProvisionedThroughput switches the table to provisioned billing.
func WithProvisionedThroughput(read, write int64) Option {
	return func(s *Schema) {
		s.billingMode = types.BillingModeProvisioned
		s.readCapacity = read
		s.writeCapacity = write
	}
}

// New builds a Schema for the given table with exactly one partition key.
// The table name may be empty only when derived beforehand with
// DeriveTableName.
func New(tableName string, partitionKey Attribute, opts ...Option) (*Schema, error) {
	if tableName == "" {
		return nil, errors.NewValidationError("tableName", "must not be empty")
	}
	if partitionKey.Name == "" {
		return nil, errors.NewValidationError("partitionKey", "must not be empty")
	}
	if partitionKey.Type == "" {
		partitionKey.Type = types.ScalarAttributeTypeS
	}

	s := &Schema{
		tableName:    tableName,
		partitionKey: partitionKey,
		billingMode:  types.BillingModePayPerRequest,
	}
	for _, opt := range opts {
		opt(s)
	}

	if s.sortKey != nil && s.sortKey.Name == s.partitionKey.Name {
		return nil, errors.NewValidationError("sortKey", "must differ from the partition key")
	}
	return s, nil
}

// DeriveTableName returns the deterministic table name for an entity type:
// the lower-cased Go type name. Pointer types are dereferenced first.
func DeriveTableName[T any]() string {
	var zero T
	t := reflect.TypeOf(zero)
	for t != nil && t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if t == nil {
		return ""
	}
	return strings.ToLower(t.Name())
}

// TableName returns the physical table name.
func (s *Schema) TableName() string { return s.tableName }

// PartitionKey returns the partition key attribute.
func (s *Schema) PartitionKey() Attribute { return s.partitionKey }

// SortKey returns the sort key attribute, or nil if the table has none.
func (s *Schema) SortKey() *Attribute { return s.sortKey }

// ManagedAttributes returns the datastore-managed attribute names.
func (s *Schema) ManagedAttributes() Managed { return s.managed }

// Key builds the DynamoDB key map for a partition key value.
func (s *Schema) Key(partitionValue string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		s.partitionKey.Name: &types.AttributeValueMemberS{Value: partitionValue},
	}
}

// CreateTableInput builds the SDK input that provisions this schema.
// Only key attributes appear in AttributeDefinitions; DynamoDB is
// schemaless beyond the key.
func (s *Schema) CreateTableInput() *dynamodb.CreateTableInput {
	defs := []types.AttributeDefinition{
		{
			AttributeName: aws.String(s.partitionKey.Name),
			AttributeType: s.partitionKey.Type,
		},
	}
	keys := []types.KeySchemaElement{
		{
			AttributeName: aws.String(s.partitionKey.Name),
			KeyType:       types.KeyTypeHash,
		},
	}
	if s.sortKey != nil {
		defs = append(defs, types.AttributeDefinition{
			AttributeName: aws.String(s.sortKey.Name),
			AttributeType: s.sortKey.Type,
		})
		keys = append(keys, types.KeySchemaElement{
			AttributeName: aws.String(s.sortKey.Name),
			KeyType:       types.KeyTypeRange,
		})
	}

	input := &dynamodb.CreateTableInput{
		TableName:            aws.String(s.tableName),
		AttributeDefinitions: defs,
		KeySchema:            keys,
		BillingMode:          s.billingMode,
	}
	if s.billingMode == types.BillingModeProvisioned {
		input.ProvisionedThroughput = &types.ProvisionedThroughput{
			ReadCapacityUnits:  aws.Int64(s.readCapacity),
			WriteCapacityUnits: aws.Int64(s.writeCapacity),
		}
	}
	return input
}
