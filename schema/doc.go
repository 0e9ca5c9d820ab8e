/*
Package schema describes the physical layout of managed DynamoDB tables.

A Schema is an explicit, reflection-free description of one logical table:
its name, its single partition key (and optional sort key), the attribute
names the datastore maintains automatically (generated key, timestamps,
optimistic-lock version, retry counter), and provisioning parameters.

Schemas are built once at startup and handed to the registry:

	s, err := schema.New("product",
	    schema.Attribute{Name: "id", Type: types.ScalarAttributeTypeS},
	    schema.WithManaged(schema.Managed{
	        GeneratedKey: "id",
	        CreatedAt:    "created_at",
	        UpdatedAt:    "updated_at",
	        Version:      "version",
	        Counter:      "retry_count",
	    }),
	)

Table names can be derived deterministically from the entity type with
DeriveTableName, which returns the lower-cased type name.
*/
package schema
