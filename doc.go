/*
Package tablestore manages the lifecycle of DynamoDB tables and provides
type-safe datastores over them.

Applications declare their tables as schemas, register them, and let the
lifecycle manager bring the environment up: tables that do not exist are
created and polled until active, tables that already exist are adopted
as-is. On shutdown the manager can tear managed tables down again, but
only when destructive operations are explicitly enabled.

Basic Usage:

	reg := registry.New()
	productSchema, _ := models.ProductSchema()
	reg.Register(productSchema)

	cfg, _ := config.Load("tablestore.yaml")
	ts, err := tablestore.Open(ctx, cfg, reg)
	if err != nil {
		// a table failed to initialize
	}
	defer ts.Close(ctx)

	store, _ := ddb.NewDataStore[models.Product](ts.Client(), productSchema)
	laptop, _ := store.Put(ctx, models.Product{Name: "Laptop", Price: 1299.99})

Writes through a datastore maintain managed attributes: generated keys,
created/updated timestamps, and an optimistic-lock version that updates
must carry back unchanged.
*/
package tablestore
