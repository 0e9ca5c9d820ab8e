/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package ddb

import (
	"context"
	"fmt"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	sdk "github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/suparena/tablestore/errors"
	"github.com/suparena/tablestore/schema"
)

// mockItemAPI is an expectation-based mock for item-level operations.
type mockItemAPI struct {
	getFunc    func(ctx context.Context, params *sdk.GetItemInput, optFns ...func(*sdk.Options)) (*sdk.GetItemOutput, error)
	putFunc    func(ctx context.Context, params *sdk.PutItemInput, optFns ...func(*sdk.Options)) (*sdk.PutItemOutput, error)
	deleteFunc func(ctx context.Context, params *sdk.DeleteItemInput, optFns ...func(*sdk.Options)) (*sdk.DeleteItemOutput, error)
	scanFunc   func(ctx context.Context, params *sdk.ScanInput, optFns ...func(*sdk.Options)) (*sdk.ScanOutput, error)
}

var _ ItemAPI = (*mockItemAPI)(nil)

func (m *mockItemAPI) GetItem(ctx context.Context, params *sdk.GetItemInput, optFns ...func(*sdk.Options)) (*sdk.GetItemOutput, error) {
	return m.getFunc(ctx, params, optFns...)
}

func (m *mockItemAPI) PutItem(ctx context.Context, params *sdk.PutItemInput, optFns ...func(*sdk.Options)) (*sdk.PutItemOutput, error) {
	return m.putFunc(ctx, params, optFns...)
}

func (m *mockItemAPI) DeleteItem(ctx context.Context, params *sdk.DeleteItemInput, optFns ...func(*sdk.Options)) (*sdk.DeleteItemOutput, error) {
	return m.deleteFunc(ctx, params, optFns...)
}

func (m *mockItemAPI) Scan(ctx context.Context, params *sdk.ScanInput, optFns ...func(*sdk.Options)) (*sdk.ScanOutput, error) {
	return m.scanFunc(ctx, params, optFns...)
}

type testItem struct {
	ID        string  `dynamodbav:"id"`
	Name      string  `dynamodbav:"name"`
	Price     float64 `dynamodbav:"price"`
	Version   int64   `dynamodbav:"version"`
	CreatedAt string  `dynamodbav:"created_at"`
	UpdatedAt string  `dynamodbav:"updated_at"`
}

func testSchema(t *testing.T) *schema.Schema {
	t.Helper()
	s, err := schema.New("testitem",
		schema.Attribute{Name: "id", Type: types.ScalarAttributeTypeS},
		schema.WithManaged(schema.Managed{
			GeneratedKey: "id",
			CreatedAt:    "created_at",
			UpdatedAt:    "updated_at",
			Version:      "version",
		}))
	if err != nil {
		t.Fatalf("schema.New failed: %v", err)
	}
	return s
}

func newStore(t *testing.T, mock *mockItemAPI) *DynamodbDataStore[testItem] {
	t.Helper()
	store, err := NewDataStore[testItem](mock, testSchema(t))
	if err != nil {
		t.Fatalf("NewDataStore failed: %v", err)
	}
	return store
}

func stringAttr(av types.AttributeValue) string {
	if s, ok := av.(*types.AttributeValueMemberS); ok {
		return s.Value
	}
	return ""
}

func TestPut(t *testing.T) {
	t.Run("FillsManagedAttributes", func(t *testing.T) {
		var captured map[string]types.AttributeValue
		mock := &mockItemAPI{
			putFunc: func(ctx context.Context, params *sdk.PutItemInput, optFns ...func(*sdk.Options)) (*sdk.PutItemOutput, error) {
				captured = params.Item
				return &sdk.PutItemOutput{}, nil
			},
		}
		store := newStore(t, mock)

		stored, err := store.Put(context.Background(), testItem{Name: "Laptop", Price: 1299.99})
		if err != nil {
			t.Fatalf("Put failed: %v", err)
		}

		if stringAttr(captured["id"]) == "" {
			t.Error("Expected a generated id")
		}
		if stored.ID == "" {
			t.Error("Stored entity should carry the generated id")
		}
		if stored.Version != 1 {
			t.Errorf("Expected version 1, got %d", stored.Version)
		}
		if stringAttr(captured["created_at"]) == "" || stringAttr(captured["updated_at"]) == "" {
			t.Error("Expected timestamps to be stamped")
		}
	})

	t.Run("PreservesProvidedKey", func(t *testing.T) {
		var captured map[string]types.AttributeValue
		mock := &mockItemAPI{
			putFunc: func(ctx context.Context, params *sdk.PutItemInput, optFns ...func(*sdk.Options)) (*sdk.PutItemOutput, error) {
				captured = params.Item
				return &sdk.PutItemOutput{}, nil
			},
		}
		store := newStore(t, mock)

		if _, err := store.Put(context.Background(), testItem{ID: "fixed", Name: "Laptop"}); err != nil {
			t.Fatalf("Put failed: %v", err)
		}
		if got := stringAttr(captured["id"]); got != "fixed" {
			t.Errorf("Expected id fixed, got %q", got)
		}
	})
}

func TestUpdate(t *testing.T) {
	t.Run("IncrementsVersionConditionally", func(t *testing.T) {
		var captured *sdk.PutItemInput
		mock := &mockItemAPI{
			putFunc: func(ctx context.Context, params *sdk.PutItemInput, optFns ...func(*sdk.Options)) (*sdk.PutItemOutput, error) {
				captured = params
				return &sdk.PutItemOutput{}, nil
			},
		}
		store := newStore(t, mock)

		updated, err := store.Update(context.Background(), testItem{ID: "p1", Name: "Laptop", Version: 3})
		if err != nil {
			t.Fatalf("Update failed: %v", err)
		}

		if updated.Version != 4 {
			t.Errorf("Expected version 4, got %d", updated.Version)
		}
		if captured.ConditionExpression == nil {
			t.Fatal("Expected a condition expression on update")
		}
	})

	t.Run("StaleVersion", func(t *testing.T) {
		mock := &mockItemAPI{
			putFunc: func(ctx context.Context, params *sdk.PutItemInput, optFns ...func(*sdk.Options)) (*sdk.PutItemOutput, error) {
				return nil, &types.ConditionalCheckFailedException{Message: aws.String("stale")}
			},
		}
		store := newStore(t, mock)

		_, err := store.Update(context.Background(), testItem{ID: "p1", Version: 2})
		if !errors.IsConditionFailed(err) {
			t.Errorf("Expected condition failure, got %v", err)
		}
	})

	t.Run("MissingVersion", func(t *testing.T) {
		store := newStore(t, &mockItemAPI{})

		_, err := store.Update(context.Background(), testItem{ID: "p1"})
		if !errors.IsValidationError(err) {
			t.Errorf("Expected validation error for missing version, got %v", err)
		}
	})
}

func TestGetOne(t *testing.T) {
	t.Run("Found", func(t *testing.T) {
		mock := &mockItemAPI{
			getFunc: func(ctx context.Context, params *sdk.GetItemInput, optFns ...func(*sdk.Options)) (*sdk.GetItemOutput, error) {
				if got := stringAttr(params.Key["id"]); got != "p1" {
					t.Errorf("Expected key p1, got %q", got)
				}
				return &sdk.GetItemOutput{Item: map[string]types.AttributeValue{
					"id":    &types.AttributeValueMemberS{Value: "p1"},
					"name":  &types.AttributeValueMemberS{Value: "Laptop"},
					"price": &types.AttributeValueMemberN{Value: "1299.99"},
				}}, nil
			},
		}
		store := newStore(t, mock)

		item, err := store.GetOne(context.Background(), "p1")
		if err != nil {
			t.Fatalf("GetOne failed: %v", err)
		}
		if item.Name != "Laptop" || item.Price != 1299.99 {
			t.Errorf("Unexpected item: %+v", item)
		}
	})

	t.Run("NotFound", func(t *testing.T) {
		mock := &mockItemAPI{
			getFunc: func(ctx context.Context, params *sdk.GetItemInput, optFns ...func(*sdk.Options)) (*sdk.GetItemOutput, error) {
				return &sdk.GetItemOutput{}, nil
			},
		}
		store := newStore(t, mock)

		_, err := store.GetOne(context.Background(), "missing")
		if !errors.IsNotFound(err) {
			t.Errorf("Expected not found error, got %v", err)
		}
	})
}

func TestDelete(t *testing.T) {
	called := false
	mock := &mockItemAPI{
		deleteFunc: func(ctx context.Context, params *sdk.DeleteItemInput, optFns ...func(*sdk.Options)) (*sdk.DeleteItemOutput, error) {
			called = true
			if got := stringAttr(params.Key["id"]); got != "p1" {
				t.Errorf("Expected key p1, got %q", got)
			}
			return &sdk.DeleteItemOutput{}, nil
		},
	}
	store := newStore(t, mock)

	if err := store.Delete(context.Background(), "p1"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if !called {
		t.Error("Expected DeleteItem to be called")
	}
}

func TestScanPaginates(t *testing.T) {
	page := 0
	mock := &mockItemAPI{
		scanFunc: func(ctx context.Context, params *sdk.ScanInput, optFns ...func(*sdk.Options)) (*sdk.ScanOutput, error) {
			page++
			switch page {
			case 1:
				return &sdk.ScanOutput{
					Items: []map[string]types.AttributeValue{
						{"id": &types.AttributeValueMemberS{Value: "p1"}},
					},
					LastEvaluatedKey: map[string]types.AttributeValue{
						"id": &types.AttributeValueMemberS{Value: "p1"},
					},
				}, nil
			case 2:
				if params.ExclusiveStartKey == nil {
					t.Error("Expected the second page to carry the start key")
				}
				return &sdk.ScanOutput{
					Items: []map[string]types.AttributeValue{
						{"id": &types.AttributeValueMemberS{Value: "p2"}},
					},
				}, nil
			default:
				return nil, fmt.Errorf("unexpected page %d", page)
			}
		},
	}
	store := newStore(t, mock)

	items, err := store.Scan(context.Background(), nil)
	if err != nil {
		t.Fatalf("Scan failed: %v", err)
	}
	if len(items) != 2 || items[0].ID != "p1" || items[1].ID != "p2" {
		t.Errorf("Unexpected scan result: %+v", items)
	}
}

func TestStream(t *testing.T) {
	mock := &mockItemAPI{
		scanFunc: func(ctx context.Context, params *sdk.ScanInput, optFns ...func(*sdk.Options)) (*sdk.ScanOutput, error) {
			return &sdk.ScanOutput{
				Items: []map[string]types.AttributeValue{
					{"id": &types.AttributeValueMemberS{Value: "p1"}},
					{"id": &types.AttributeValueMemberS{Value: "p2"}},
				},
			}, nil
		},
	}
	store := newStore(t, mock)

	var ids []string
	for result := range store.Stream(context.Background(), nil) {
		if result.Error != nil {
			t.Fatalf("Stream result error: %v", result.Error)
		}
		ids = append(ids, result.Item.ID)
	}
	if len(ids) != 2 || ids[0] != "p1" || ids[1] != "p2" {
		t.Errorf("Unexpected streamed ids: %v", ids)
	}
}
