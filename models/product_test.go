/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package models

import (
	"testing"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

func TestProductSchema(t *testing.T) {
	s, err := ProductSchema()
	if err != nil {
		t.Fatalf("ProductSchema failed: %v", err)
	}

	if s.TableName() != "product" {
		t.Errorf("Expected table name product, got %q", s.TableName())
	}
	if s.PartitionKey().Name != "id" {
		t.Errorf("Expected partition key id, got %q", s.PartitionKey().Name)
	}

	managed := s.ManagedAttributes()
	if managed.Version != "version" || managed.GeneratedKey != "id" {
		t.Errorf("Unexpected managed attributes: %+v", managed)
	}
}

func TestProductMarshalRoundTrip(t *testing.T) {
	p := Product{
		ID:            "p1",
		Name:          "Laptop",
		Price:         1299.99,
		Category:      "Electronics",
		StockQuantity: 50,
		Version:       1,
	}

	av, err := attributevalue.MarshalMap(p)
	if err != nil {
		t.Fatalf("MarshalMap failed: %v", err)
	}
	if _, ok := av["stock_quantity"].(*types.AttributeValueMemberN); !ok {
		t.Errorf("Expected stock_quantity as a number attribute, got %T", av["stock_quantity"])
	}

	var back Product
	if err := attributevalue.UnmarshalMap(av, &back); err != nil {
		t.Fatalf("UnmarshalMap failed: %v", err)
	}
	if back.Name != p.Name || back.Price != p.Price || back.StockQuantity != p.StockQuantity {
		t.Errorf("Round trip mismatch: %+v", back)
	}
}
