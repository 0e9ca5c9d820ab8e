/*
Package ddb provides the DynamoDB implementation of the DataStore
interface.

A DynamodbDataStore is bound to one table schema and handles the managed
attributes the schema declares:

  - an empty partition key value is replaced with a generated UUID on Put
  - created/updated timestamps are stamped on write
  - the optimistic-lock version starts at 1 on Put and is checked and
    incremented on Update

Updates are conditional writes: the entity's version must match the stored
one, otherwise the caller receives a ConditionFailedError and is expected
to re-read and retry. Filtered access goes through Scan (one-shot) or
Stream (channel-based, paginated in the background).
*/
package ddb
