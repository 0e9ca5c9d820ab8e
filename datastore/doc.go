/*
Package datastore defines the core interface for TableStore's data
persistence layer.

The main interface is DataStore[T], which provides generic CRUD and scan
operations against one managed table:

	type DataStore[T any] interface {
	    GetOne(ctx context.Context, key string) (*T, error)
	    Put(ctx context.Context, entity T) (*T, error)
	    Update(ctx context.Context, entity T) (*T, error)
	    Delete(ctx context.Context, key string) error
	    Scan(ctx context.Context, params *storagemodels.ScanParams) ([]T, error)
	    Stream(ctx context.Context, params *storagemodels.ScanParams, opts ...storagemodels.StreamOption) <-chan storagemodels.StreamResult[T]
	}

Implementations:
  - ddb: DynamoDB implementation driven by a schema.Schema
  - mock: in-memory mock implementation for testing

Update is deliberately version-checked: the stored optimistic-lock version
must match the entity's, and a mismatch surfaces as a ConditionFailedError
instead of silently overwriting concurrent writes.
*/
package datastore
